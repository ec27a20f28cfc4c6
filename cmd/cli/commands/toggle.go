package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// ToggleCmd creates the toggle command
func ToggleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <date>",
		Short: "Toggle your signup for a date (queued locally until 'save')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(); err != nil {
				return err
			}

			date := model.NormalizeDateKey(args[0])
			queued, err := services.ToggleSignup(app.Store, app.Logger, date)
			if err != nil {
				return err
			}

			if queued {
				fmt.Printf("✓ 已報名 %s（尚未上傳）\n", date)
			} else {
				fmt.Printf("✓ 已取消 %s 的報名（已抵銷先前的變更）\n", date)
			}
			fmt.Printf("目前共 %d 筆未儲存變更\n", app.Store.PendingLen())
			return nil
		},
	}
}
