package commands

import (
	"festivos/config"

	"github.com/spf13/cobra"
)

// options shared by every subcommand
type options struct {
	rulesFile string
	cfg       config.Config
}

// Execute builds the command tree and runs it
func Execute() error {
	config.LoadEnv()
	return newRootCmd(config.Load()).Execute()
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	c := &cobra.Command{
		Use:   "festivos",
		Short: "Public holiday calendars resolved from holiday rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
		SilenceUsage: true,
	}
	c.PersistentFlags().StringVarP(&opts.rulesFile, "rules", "r", cfg.RulesFile, "YAML rule file to use instead of the database")

	c.AddCommand(newServeCmd(opts))
	c.AddCommand(newListCmd(opts))
	c.AddCommand(newCheckCmd(opts))
	c.AddCommand(newMigrateCmd(opts))
	return c
}
