package commands

import (
	"fmt"
	"io"
	"strconv"

	"festivos/constants"
	"festivos/dto"
	"festivos/types"
	"festivos/validator"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:     "list <countryId> <year>",
		Short:   "Print the holidays of a country in a year",
		Example: "festivos list 1 2024 --rules rules.yaml",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			countryID, err := parseCountryID(args[0])
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
			if err := validator.ValidateYear(year); err != nil {
				return err
			}

			ctx := cmd.Context()
			log := newLogger(opts.cfg)
			defer log.Sync()

			source, err := openSource(opts)
			if err != nil {
				return err
			}
			service, closeCache := newHolidayService(ctx, opts, source, log)
			defer closeCache()

			holidays, err := service.ListHolidays(ctx, countryID, year)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.NewHolidayListResponse(countryID, year, holidays))
			}
			for _, holiday := range holidays {
				printHoliday(cmd.OutOrStdout(), holiday)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return c
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "check <countryId> <YYYY-MM-DD>",
		Short:   "Tell whether a date is a holiday",
		Example: "festivos check 1 2024-03-29",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			countryID, err := parseCountryID(args[0])
			if err != nil {
				return err
			}
			date, err := validator.ParseISODate(args[1])
			if err != nil {
				return err
			}
			if err := validator.ValidateYear(date.Year()); err != nil {
				return err
			}

			ctx := cmd.Context()
			log := newLogger(opts.cfg)
			defer log.Sync()

			source, err := openSource(opts)
			if err != nil {
				return err
			}
			service, closeCache := newHolidayService(ctx, opts, source, log)
			defer closeCache()

			holiday, err := service.FindRuleForDate(ctx, countryID, date)
			if err != nil {
				return err
			}

			if holiday == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not a holiday\n", date.Format(constants.DateLayout))
				return nil
			}
			printHoliday(cmd.OutOrStdout(), *holiday)
			return nil
		},
	}
}

func parseCountryID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid country id %q", arg)
	}
	return uint(id), nil
}

func printHoliday(w io.Writer, holiday types.ResolvedHoliday) {
	fmt.Fprintf(w, "%s  %-32s %s\n", holiday.Date.Format(constants.DateLayout), holiday.Name, holiday.Rule.Type)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
