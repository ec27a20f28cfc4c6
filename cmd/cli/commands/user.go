package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// UserCmd creates the user command group for administrative roster
// management.
func UserCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Administrative student management (list / add / edit / delete)",
	}

	cmd.AddCommand(listUsersCmd(app))
	cmd.AddCommand(addUserCmd(app))
	cmd.AddCommand(editUserCmd(app))
	cmd.AddCommand(deleteUserCmd(app))

	return cmd
}

func listUsersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the students on the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students := model.Students(app.Store.Data().Users)
			fmt.Printf("\n共 %d 位工讀生:\n\n", len(students))
			for _, s := range students {
				fmt.Printf("- %s (%s) [%s]\n", s.Name, s.ID, s.Color)
			}
			fmt.Println()
			return nil
		},
	}
}

func addUserCmd(app *AppContext) *cobra.Command {
	var password, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireAdmin(); err != nil {
				return err
			}

			user, err := services.ManageUser(app.Ctx, app.Store, app.Remote, app.Logger, "add", model.User{
				Name:     args[0],
				Password: password,
				Color:    color,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ 已新增 %s (%s)\n", user.Name, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Login password")
	cmd.Flags().StringVarP(&color, "color", "c", "blue", "Display color tag")

	return cmd
}

func editUserCmd(app *AppContext) *cobra.Command {
	var name, password, color string

	cmd := &cobra.Command{
		Use:   "edit <user_id>",
		Short: "Edit a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireAdmin(); err != nil {
				return err
			}

			existing, ok := model.FindUser(app.Store.Data().Users, args[0])
			if !ok {
				return fmt.Errorf("no user with id %q", args[0])
			}
			if name != "" {
				existing.Name = name
			}
			if password != "" {
				existing.Password = password
			}
			if color != "" {
				existing.Color = color
			}

			user, err := services.ManageUser(app.Ctx, app.Store, app.Remote, app.Logger, "edit", existing)
			if err != nil {
				return err
			}

			fmt.Printf("✓ 已更新 %s (%s)\n", user.Name, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Login password")
	cmd.Flags().StringVarP(&color, "color", "c", "", "Display color tag")

	return cmd
}

func deleteUserCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user_id>",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireAdmin(); err != nil {
				return err
			}

			if !app.Confirm(fmt.Sprintf("確定要刪除 %s 嗎？", args[0])) {
				return nil
			}

			if _, err := services.ManageUser(app.Ctx, app.Store, app.Remote, app.Logger, "delete", model.User{ID: args[0]}); err != nil {
				return err
			}

			fmt.Println("✓ 已刪除")
			return nil
		},
	}
}
