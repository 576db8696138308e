package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewlint/crewlint/internal/domain/cron"
)

func newCronCmd() *cobra.Command {
	var hint string

	cmd := &cobra.Command{
		Use:   "cron [expression]",
		Short: "Validate a cron expression or translate a schedule phrase",
		Long:  `Validate a 5-field cron expression, or translate a phrase like "daily at 9am" into one with --hint.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hint != "" {
				expr, ok := cron.FromHint(hint)
				if !ok {
					return fmt.Errorf("no cron translation for %q", hint)
				}
				fmt.Fprintln(cmd.OutOrStdout(), expr)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("specify a cron expression or use --hint")
			}
			if err := cron.Validate(args[0]); err != nil {
				return fmt.Errorf("invalid cron expression: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&hint, "hint", "", `Schedule phrase to translate (e.g. "every 2 hours")`)

	return cmd
}
