package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// InitCloudCmd creates the init-cloud command
func InitCloudCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init-cloud",
		Short: "Overwrite the backend store with the current local snapshot (destructive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireAdmin(); err != nil {
				return err
			}

			if !app.Confirm("這會以目前的本機資料覆寫雲端試算表，確定要初始化嗎？") {
				return nil
			}

			if err := app.beginNetwork(); err != nil {
				return err
			}
			defer app.endNetwork()

			if err := services.InitializeBackend(app.Ctx, app.Store, app.Remote, app.Logger); err != nil {
				return fmt.Errorf("❌ 上傳失敗: %w", err)
			}

			fmt.Println("✅ 初始化成功！資料已上傳至雲端試算表。")
			return nil
		},
	}
}
