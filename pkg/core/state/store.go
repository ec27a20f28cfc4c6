// Package state owns the client's working copy of the roster data and the
// pending-change ledger. Every mutation of either goes through the Store;
// views only ever see copies.
package state

import (
	"errors"
	"sync"

	"github.com/Penny-Liu/parttime/pkg/core/ledger"
	"github.com/Penny-Liu/parttime/pkg/core/model"
)

var (
	ErrNoData         = errors.New("no data loaded")
	ErrShiftClosed    = errors.New("shift is closed")
	ErrShiftConfirmed = errors.New("shift already has a confirmed worker")
	ErrUnknownUser    = errors.New("unknown user")
	ErrBadPassword    = errors.New("wrong password")
	ErrNotLoggedIn    = errors.New("not logged in")
)

// Store holds the single authoritative in-memory snapshot plus the pending
// ledger and the login session. The mutex guards against accidental
// cross-goroutine use; control flow is otherwise single threaded.
type Store struct {
	mu      sync.RWMutex
	data    *model.AppData
	pending *ledger.Ledger
	current *model.User
}

func New(data *model.AppData) *Store {
	if data == nil {
		data = model.DefaultData()
	}
	return &Store{data: data, pending: ledger.New()}
}

// Data returns a deep copy of the current snapshot for rendering.
func (s *Store) Data() *model.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// ReplaceSnapshot adopts a freshly fetched authoritative snapshot, discarding
// any queued actions. Last full refresh wins.
func (s *Store) ReplaceSnapshot(data *model.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.pending.Clear()
}

// ToggleSignup applies a student's optimistic signup toggle for a date and
// records the intent in the ledger. Closed or already-confirmed shifts reject
// the toggle without touching the snapshot or the queue. It reports whether
// the toggle added a queue entry (true) or cancelled a previous one out.
func (s *Store) ToggleSignup(userID, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.shiftFor(date)
	if shift.IsClosed {
		return false, ErrShiftClosed
	}
	if shift.ConfirmedUserID != "" {
		return false, ErrShiftConfirmed
	}

	signups := make([]string, 0, len(shift.Signups)+1)
	found := false
	for _, id := range shift.Signups {
		if id == userID {
			found = true
			continue
		}
		signups = append(signups, id)
	}
	if !found {
		signups = append(signups, userID)
	}
	shift.Signups = signups
	s.data.Shifts[date] = shift

	return s.pending.Toggle(date, userID), nil
}

// ConfirmShift sets the confirmed worker for a date and force-clears the
// closed flag. Returns the resulting shift for the remote write payload.
func (s *Store) ConfirmShift(date, userID string) model.ShiftDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.shiftFor(date)
	shift.ConfirmedUserID = userID
	shift.IsClosed = false
	s.data.Shifts[date] = shift
	return shift
}

// ToggleClosed flips the closed flag for a date, clearing the confirmed
// worker when the shift turns closed.
func (s *Store) ToggleClosed(date string) model.ShiftDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.shiftFor(date)
	shift.IsClosed = !shift.IsClosed
	if shift.IsClosed {
		shift.ConfirmedUserID = ""
	}
	s.data.Shifts[date] = shift
	return shift
}

// ClearShift drops the confirmed worker and the closed flag, leaving signups
// untouched.
func (s *Store) ClearShift(date string) model.ShiftDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.shiftFor(date)
	shift.ConfirmedUserID = ""
	shift.IsClosed = false
	s.data.Shifts[date] = shift
	return shift
}

// shiftFor returns the shift record for a date, creating an empty one when
// the date has never been touched. Caller holds the lock.
func (s *Store) shiftFor(date string) model.ShiftDay {
	if shift, ok := s.data.Shifts[date]; ok {
		shift.Date = date
		return shift
	}
	return model.ShiftDay{Date: date, Signups: []string{}}
}

// ApplyUserChange mutates the local user list optimistically for an
// administrative add/edit/delete.
func (s *Store) ApplyUserChange(changeType string, user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch changeType {
	case "add":
		s.data.Users = append(s.data.Users, user)
	case "delete":
		users := make([]model.User, 0, len(s.data.Users))
		for _, u := range s.data.Users {
			if u.ID != user.ID {
				users = append(users, u)
			}
		}
		s.data.Users = users
	case "edit":
		for i, u := range s.data.Users {
			if u.ID == user.ID {
				s.data.Users[i] = user
			}
		}
	}
}

// ApplySettings replaces the settings optimistically.
func (s *Store) ApplySettings(settings model.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Settings = settings
}

// Authenticate validates a login attempt. Admin logins compare against the
// settings admin password (falling back to the built-in default) and
// synthesize the admin identity; student logins look the user up and compare
// the plaintext password when one is set.
func (s *Store) Authenticate(role model.Role, userID, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == model.RoleAdmin {
		adminPass := s.data.Settings.AdminPassword
		if adminPass == "" {
			adminPass = model.DefaultAdminPassword
		}
		if password != adminPass {
			return model.User{}, ErrBadPassword
		}
		admin := model.AdminUser()
		s.current = &admin
		s.pending.Clear()
		return admin, nil
	}

	user, ok := model.FindUser(model.Students(s.data.Users), userID)
	if !ok {
		return model.User{}, ErrUnknownUser
	}
	if user.Password != "" && user.Password != password {
		return model.User{}, ErrBadPassword
	}
	s.current = &user
	s.pending.Clear()
	return user, nil
}

// CurrentUser returns the logged-in user, if any.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// Logout drops the session and any queued actions. The caller is responsible
// for the unsaved-changes prompt before getting here.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.pending.Clear()
}

// Pending returns the queued actions in insertion order.
func (s *Store) Pending() []model.PendingAction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending.Actions()
}

// PendingLen returns the queued action count.
func (s *Store) PendingLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending.Len()
}

// PendingDates returns the set of dates with queued actions.
func (s *Store) PendingDates() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending.Dates()
}

// ClearPending drops queued actions without touching the snapshot.
func (s *Store) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Clear()
}
