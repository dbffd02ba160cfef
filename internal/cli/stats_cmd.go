package cli

import (
	"fmt"

	"github.com/alexanderramin/pogodoro/internal/cli/formatter"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show pomodoros finished per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("%w: --days must be positive", domain.ErrInvalidInput)
			}
			counts, err := app.History.DailyCounts(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(counts))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "number of days to show")
	return cmd
}
