package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/pkg/clients/gasclient"
	"github.com/Penny-Liu/parttime/pkg/core/state"
)

// FlushResult summarizes one batch upload of queued signup toggles.
type FlushResult struct {
	Attempted int
	Succeeded int
	Failed    int
	LastError string
}

// AllSucceeded reports whether every attempted action was accepted.
func (r *FlushResult) AllSucceeded() bool {
	return r.Failed == 0
}

// Flush uploads every queued signup toggle to the backend, strictly one at a
// time in queue order; the backend mutates shared sheet rows and must not
// see concurrent toggles for the same date. A single action's failure does
// not abort the loop; all actions are attempted and failures are counted.
//
// Whatever the per-action outcome, a fresh authoritative snapshot is fetched
// afterwards and adopted wholesale, clearing the queue. Failed actions are
// discarded, not retried; the refresh keeps the client from diverging from
// the backend for longer than one flush cycle. Only the final refetch itself
// failing is returned as an error, in which case the queue is left intact.
//
// progress, when non-nil, is called before each send with the 1-based action
// index and the total.
func Flush(ctx context.Context, store *state.Store, remote RemoteStore, logger *zap.Logger, progress func(done, total int)) (*FlushResult, error) {
	actions := store.Pending()
	result := &FlushResult{Attempted: len(actions)}

	if len(actions) == 0 {
		logger.Debug("Flush requested with empty queue, nothing to do")
		return result, nil
	}

	logger.Info("Flushing queued signup toggles", zap.Int("count", len(actions)))

	for i, action := range actions {
		if progress != nil {
			progress(i+1, len(actions))
		}

		err := remote.SendAction(ctx, gasclient.ActionToggleSignup, gasclient.TogglePayload{
			Date:   action.Date,
			UserID: action.UserID,
		})
		if err != nil {
			result.Failed++
			result.LastError = err.Error()
			logger.Warn("Queued toggle rejected",
				zap.String("date", action.Date),
				zap.String("user_id", action.UserID),
				zap.Error(err))
			continue
		}
		result.Succeeded++
	}

	fresh, err := remote.FetchSnapshot(ctx)
	if err != nil {
		logger.Error("Post-flush refresh failed", zap.Error(err))
		return result, fmt.Errorf("failed to refresh data after saving: %w", err)
	}

	store.ReplaceSnapshot(fresh)

	if result.AllSucceeded() {
		logger.Info("All queued changes saved", zap.Int("count", result.Succeeded))
	} else {
		logger.Warn("Flush completed with failures",
			zap.Int("succeeded", result.Succeeded),
			zap.Int("failed", result.Failed),
			zap.String("last_error", result.LastError))
	}

	return result, nil
}
