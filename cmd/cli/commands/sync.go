package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// reload adopts a fresh backend snapshot, dropping queued actions.
func reload(app *AppContext) error {
	_, err := services.Reload(app.Ctx, app.Store, app.Remote, app.Logger)
	return err
}

// SyncCmd creates the sync command
func SyncCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Discard local changes and reload fresh data from the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store.PendingLen() > 0 {
				if !app.Confirm("您有未儲存的變更，同步將會遺失這些修改。確定要同步嗎？") {
					return nil
				}
			}

			if err := app.beginNetwork(); err != nil {
				return err
			}
			defer app.endNetwork()

			if err := reload(app); err != nil {
				return err
			}

			fmt.Println("✓ 已同步最新資料")
			return nil
		},
	}
}
