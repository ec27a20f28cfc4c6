package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/internal/ui"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// PrintCmd creates the print command
func PrintCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "print [YYYY-MM]",
		Short: "Render the printable monthly duty table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthFromArgs(args)
			if err != nil {
				return err
			}

			view, err := services.BuildMonth(app.Store.Data(), app.Cfg, year, month, nil)
			if err != nil {
				return err
			}

			fmt.Println(ui.RenderPrintTable(view, app.Cfg.DefaultWorkerName))
			return nil
		},
	}
}
