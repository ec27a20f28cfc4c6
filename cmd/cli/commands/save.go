package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// SaveCmd creates the save command
func SaveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Upload all queued signup changes to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store.PendingLen() == 0 {
				fmt.Println("沒有未儲存的變更")
				return nil
			}

			if err := app.beginNetwork(); err != nil {
				return err
			}
			defer app.endNetwork()

			result, err := services.Flush(app.Ctx, app.Store, app.Remote, app.Logger, func(done, total int) {
				fmt.Printf("正在儲存 %d / %d 筆變更...\n", done, total)
			})
			if err != nil {
				// Refresh after the uploads failed; queued state is kept.
				return fmt.Errorf("系統錯誤: %w", err)
			}

			if result.AllSucceeded() {
				fmt.Printf("\n✅ 所有變更已成功儲存！(%d 筆)\n\n", result.Succeeded)
				return nil
			}

			fmt.Printf("\n⚠️  儲存發生問題\n\n成功: %d 筆\n失敗: %d 筆\n錯誤原因: %s\n\n已重新載入雲端資料，失敗的變更未被保留。\n\n",
				result.Succeeded, result.Failed, result.LastError)
			return nil
		},
	}
}
