package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// SettingsCmd creates the settings command group.
func SettingsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings (admin password, holidays)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.Store.Data().Settings
			fmt.Printf("\n假日共 %d 天\n", len(settings.Holidays))
			for _, h := range settings.Holidays {
				fmt.Printf("  %s\n", h)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.AddCommand(setPasswordCmd(app))
	cmd.AddCommand(holidayCmd(app))

	return cmd
}

func setPasswordCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-password <password>",
		Short: "Change the administrator password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireAdmin(); err != nil {
				return err
			}

			settings := app.Store.Data().Settings
			settings.AdminPassword = args[0]
			if err := services.UpdateSettings(app.Ctx, app.Store, app.Remote, app.Logger, settings); err != nil {
				return err
			}

			fmt.Println("✓ 管理員密碼已更新")
			return nil
		},
	}
}

func holidayCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Add or remove holiday dates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <date>",
		Short: "Add a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateHoliday(app, args[0], true)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <date>",
		Short: "Remove a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateHoliday(app, args[0], false)
		},
	})

	return cmd
}

func updateHoliday(app *AppContext, date string, add bool) error {
	if _, err := app.RequireAdmin(); err != nil {
		return err
	}

	date = model.NormalizeDateKey(date)
	if _, err := model.ParseDate(date); err != nil {
		return err
	}

	settings := app.Store.Data().Settings
	holidays := make([]string, 0, len(settings.Holidays)+1)
	for _, h := range settings.Holidays {
		if h != date {
			holidays = append(holidays, h)
		}
	}
	if add {
		holidays = append(holidays, date)
	}
	settings.Holidays = holidays

	if err := services.UpdateSettings(app.Ctx, app.Store, app.Remote, app.Logger, settings); err != nil {
		return err
	}

	if add {
		fmt.Printf("✓ 已新增假日 %s\n", date)
	} else {
		fmt.Printf("✓ 已移除假日 %s\n", date)
	}
	return nil
}
