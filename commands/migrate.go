package commands

import (
	"fmt"

	"festivos/config"
	"festivos/services"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options) *cobra.Command {
	var seed bool

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create the holiday tables and optionally load the Colombian calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := newLogger(opts.cfg)
			defer log.Sync()

			db, err := config.ConnectDB(opts.cfg)
			if err != nil {
				return err
			}
			if err := services.Migrate(ctx, db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("tables migrated")

			if !seed {
				return nil
			}
			if err := services.Seed(ctx, db); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			log.Info("holiday data seeded")
			return nil
		},
	}
	c.Flags().BoolVar(&seed, "seed", false, "insert the holiday types and Colombia's holidays")
	return c
}
