package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/internal/ui"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [YYYY-MM]",
		Short: "Show per-student shift counts for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthFromArgs(args)
			if err != nil {
				return err
			}

			stats, total := services.MonthlyStats(app.Store.Data(), year, month)
			fmt.Println(ui.RenderStats(stats, total, year, int(month), app.Theme))
			return nil
		},
	}
}
