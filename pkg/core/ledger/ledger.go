// Package ledger holds the in-memory queue of signup toggles that have not
// been persisted to the backend yet. Toggling the same (date, user) pair a
// second time cancels the first entry out, so the queue always carries the
// net set of un-persisted changes rather than a replay log of clicks.
package ledger

import (
	"github.com/Penny-Liu/parttime/pkg/core/model"
)

// Reduce applies one toggle intent to an ordered action list: if an action
// with the same (date, userId) pair already exists it is removed, otherwise
// the action is appended. The relative order of the remaining entries is
// preserved either way.
func Reduce(actions []model.PendingAction, action model.PendingAction) []model.PendingAction {
	for i, a := range actions {
		if a.Date == action.Date && a.UserID == action.UserID {
			out := make([]model.PendingAction, 0, len(actions)-1)
			out = append(out, actions[:i]...)
			return append(out, actions[i+1:]...)
		}
	}
	return append(append([]model.PendingAction(nil), actions...), action)
}

// Ledger is the ordered pending-change queue.
type Ledger struct {
	actions []model.PendingAction
}

func New() *Ledger {
	return &Ledger{}
}

// Toggle records a signup toggle for the pair, cancelling out an existing
// entry for the same pair. It reports whether an entry was added (true) or an
// earlier one removed (false).
func (l *Ledger) Toggle(date, userID string) bool {
	before := len(l.actions)
	l.actions = Reduce(l.actions, model.PendingAction{Date: date, UserID: userID})
	return len(l.actions) > before
}

// Clear empties the queue.
func (l *Ledger) Clear() {
	l.actions = nil
}

// Len returns the number of queued actions.
func (l *Ledger) Len() int {
	return len(l.actions)
}

// Actions returns a copy of the queued actions in insertion order.
func (l *Ledger) Actions() []model.PendingAction {
	return append([]model.PendingAction(nil), l.actions...)
}

// Dates returns the set of dates with a queued action, for rendering pending
// markers on the calendar.
func (l *Ledger) Dates() map[string]bool {
	dates := make(map[string]bool, len(l.actions))
	for _, a := range l.actions {
		dates[a.Date] = true
	}
	return dates
}
