package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [user_id]",
		Short: "Log in as a student (with their user id) or as the administrator (no id)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := model.RoleAdmin
			userID := ""
			if len(args) > 0 {
				role = model.RoleStudent
				userID = args[0]
			}

			if app.Store.PendingLen() > 0 {
				if !app.Confirm("您有未儲存的變更，重新登入將會遺失這些修改。確定嗎？") {
					return nil
				}
			}

			user, err := services.Login(app.Store, app.Logger, role, userID, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Printf("\n✓ 歡迎，%s！(%s)\n\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (plaintext, as stored on the sheet)")

	return cmd
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store.PendingLen() > 0 {
				if !app.Confirm("您有未儲存的變更，登出將會遺失這些修改。確定要登出嗎？") {
					return nil
				}
			}
			app.Store.Logout()
			fmt.Println("👋 已登出")
			return nil
		},
	}
}
