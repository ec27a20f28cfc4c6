package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// ToggleSignup records a student's signup toggle for a date: the local
// snapshot is updated optimistically and the intent queued for the next
// flush. Nothing touches the network here.
func ToggleSignup(store *state.Store, logger *zap.Logger, date string) (queued bool, err error) {
	user, ok := store.CurrentUser()
	if !ok {
		return false, state.ErrNotLoggedIn
	}
	if user.Role != model.RoleStudent {
		return false, fmt.Errorf("only students sign up for shifts")
	}

	if _, err := model.ParseDate(date); err != nil {
		return false, err
	}

	queued, err = store.ToggleSignup(user.ID, date)
	if err != nil {
		return false, err
	}

	logger.Info("Signup toggled locally",
		zap.String("date", date),
		zap.String("user_id", user.ID),
		zap.Bool("queued", queued),
		zap.Int("pending", store.PendingLen()))

	return queued, nil
}
