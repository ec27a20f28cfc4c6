package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// AssignCmd creates the assign command group for administrative shift
// management.
func AssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Administrative shift assignment (confirm / close / clear)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "confirm <date> <user_id>",
		Short: "Confirm a student as the worker for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(app, services.OpConfirm, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "close <date>",
		Short: "Toggle a date closed (no worker needed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(app, services.OpClose, args[0], "")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear <date>",
		Short: "Clear the confirmed worker and closed flag for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(app, services.OpClear, args[0], "")
		},
	})

	return cmd
}

func runAssign(app *AppContext, op services.ShiftOp, date, userID string) error {
	if _, err := app.RequireAdmin(); err != nil {
		return err
	}

	date = model.NormalizeDateKey(date)
	if err := services.AssignShift(app.Ctx, app.Store, app.Remote, app.Logger, op, date, userID); err != nil {
		return err
	}

	fmt.Printf("✓ %s %s 已更新\n", date, op)
	return nil
}
