package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// Reload fetches a fresh authoritative snapshot and adopts it, discarding any
// queued actions. This is the universal recovery path: startup, manual sync,
// and every failed administrative write end up here.
func Reload(ctx context.Context, store *state.Store, remote RemoteStore, logger *zap.Logger) (*model.AppData, error) {
	logger.Debug("Reloading data from backend")

	fresh, err := remote.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}

	store.ReplaceSnapshot(fresh)
	logger.Info("Snapshot replaced",
		zap.Int("users", len(fresh.Users)),
		zap.Int("shifts", len(fresh.Shifts)))

	return fresh, nil
}
