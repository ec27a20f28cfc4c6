package services

import (
	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// Login authenticates against the loaded snapshot and starts a session. Any
// queued actions from a previous session are dropped.
func Login(store *state.Store, logger *zap.Logger, role model.Role, userID, password string) (model.User, error) {
	user, err := store.Authenticate(role, userID, password)
	if err != nil {
		logger.Warn("Login rejected", zap.String("role", string(role)), zap.String("user_id", userID), zap.Error(err))
		return model.User{}, err
	}

	logger.Info("Logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}
