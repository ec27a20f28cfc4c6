package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/pkg/clients/gasclient"
	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// ShiftOp names an administrative shift assignment operation.
type ShiftOp string

const (
	OpConfirm ShiftOp = "confirm"
	OpClose   ShiftOp = "close"
	OpClear   ShiftOp = "clear"
)

// AssignShift applies an administrative shift operation: the local snapshot
// is mutated optimistically and the result written straight to the backend,
// bypassing the flush queue. On a failed write the error is surfaced and a
// full reload recovers authoritative state; there is no granular rollback.
func AssignShift(ctx context.Context, store *state.Store, remote RemoteStore, logger *zap.Logger, op ShiftOp, date, userID string) error {
	if _, err := model.ParseDate(date); err != nil {
		return err
	}

	var shift model.ShiftDay
	switch op {
	case OpConfirm:
		if userID == "" {
			return fmt.Errorf("confirm requires a user id")
		}
		shift = store.ConfirmShift(date, userID)
	case OpClose:
		shift = store.ToggleClosed(date)
	case OpClear:
		shift = store.ClearShift(date)
	default:
		return fmt.Errorf("unknown shift operation %q", op)
	}

	logger.Info("Shift assignment applied locally",
		zap.String("op", string(op)),
		zap.String("date", date),
		zap.String("confirmed_user_id", shift.ConfirmedUserID),
		zap.Bool("is_closed", shift.IsClosed))

	err := remote.SendAction(ctx, gasclient.ActionAssignShift, gasclient.AssignPayload{
		Date:            date,
		ConfirmedUserID: shift.ConfirmedUserID,
		IsClosed:        shift.IsClosed,
	})
	if err != nil {
		logger.Error("Shift assignment write failed, reloading", zap.Error(err))
		if _, reloadErr := Reload(ctx, store, remote, logger); reloadErr != nil {
			logger.Error("Recovery reload failed", zap.Error(reloadErr))
		}
		return fmt.Errorf("shift assignment failed: %w", err)
	}

	return nil
}

// ManageUser adds, edits, or deletes a student record. Optimistic local
// mutation, immediate remote write, reload on failure. A new user with no id
// gets one assigned here.
func ManageUser(ctx context.Context, store *state.Store, remote RemoteStore, logger *zap.Logger, changeType string, user model.User) (model.User, error) {
	switch changeType {
	case "add", "edit", "delete":
	default:
		return model.User{}, fmt.Errorf("unknown user change type %q", changeType)
	}

	if changeType == "add" && user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Role = model.RoleStudent

	store.ApplyUserChange(changeType, user)
	logger.Info("User change applied locally",
		zap.String("type", changeType),
		zap.String("user_id", user.ID),
		zap.String("name", user.Name))

	err := remote.SendAction(ctx, gasclient.ActionManageUser, gasclient.ManageUserPayload{
		Type: changeType,
		User: user,
	})
	if err != nil {
		logger.Error("User change write failed, reloading", zap.Error(err))
		if _, reloadErr := Reload(ctx, store, remote, logger); reloadErr != nil {
			logger.Error("Recovery reload failed", zap.Error(reloadErr))
		}
		return model.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

// UpdateSettings replaces the app settings. Same optimistic-write,
// reload-on-failure shape as the other administrative passthroughs.
func UpdateSettings(ctx context.Context, store *state.Store, remote RemoteStore, logger *zap.Logger, settings model.AppSettings) error {
	store.ApplySettings(settings)
	logger.Info("Settings applied locally", zap.Int("holidays", len(settings.Holidays)))

	if err := remote.SendAction(ctx, gasclient.ActionUpdateSettings, settings); err != nil {
		logger.Error("Settings write failed, reloading", zap.Error(err))
		if _, reloadErr := Reload(ctx, store, remote, logger); reloadErr != nil {
			logger.Error("Recovery reload failed", zap.Error(reloadErr))
		}
		return fmt.Errorf("settings update failed: %w", err)
	}

	return nil
}

// InitializeBackend destructively overwrites the backend store with the
// current local snapshot, then reloads to confirm.
func InitializeBackend(ctx context.Context, store *state.Store, remote RemoteStore, logger *zap.Logger) error {
	data := store.Data()
	logger.Info("Initializing backend store",
		zap.Int("users", len(data.Users)),
		zap.Int("shifts", len(data.Shifts)))

	if err := remote.SendAction(ctx, gasclient.ActionInitialize, data); err != nil {
		return fmt.Errorf("backend initialization failed: %w", err)
	}

	if _, err := Reload(ctx, store, remote, logger); err != nil {
		return fmt.Errorf("initialized but reload failed: %w", err)
	}

	return nil
}
