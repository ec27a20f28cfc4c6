package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/internal/ui"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show the shift calendar for a month (defaults to the current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthFromArgs(args)
			if err != nil {
				return err
			}

			view, err := services.BuildMonth(app.Store.Data(), app.Cfg, year, month, app.Store.PendingDates())
			if err != nil {
				return err
			}

			fmt.Println(ui.RenderCalendar(view, app.Theme))
			if banner := ui.RenderPendingBanner(app.Store.PendingLen(), app.Theme); banner != "" {
				fmt.Println(banner)
			}
			return nil
		},
	}
}
