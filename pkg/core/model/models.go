package model

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User represents a roster member. Passwords are plaintext by design of the
// backend sheet; only STUDENT users are persisted, the ADMIN user is
// synthesized at login.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Color    string `json:"color,omitempty"`
	Role     Role   `json:"role"`
}

// ShiftDay is a single calendar day's duty-coverage record.
// Date is always the canonical YYYY-MM-DD form and matches the ShiftMap key.
type ShiftDay struct {
	Date            string   `json:"date"`
	Signups         []string `json:"signups"`
	ConfirmedUserID string   `json:"confirmedUserId,omitempty"`
	IsClosed        bool     `json:"isClosed,omitempty"`
}

// ShiftMap maps canonical date keys to shift records.
type ShiftMap map[string]ShiftDay

type AppSettings struct {
	AdminPassword string   `json:"adminPassword,omitempty"`
	Holidays      []string `json:"holidays"`
	SheetURL      string   `json:"googleSheetUrl,omitempty"`
}

// AppData is the aggregate snapshot the whole client renders from.
// It is replaced wholesale on every full reload.
type AppData struct {
	Users    []User      `json:"users"`
	Shifts   ShiftMap    `json:"shifts"`
	Settings AppSettings `json:"settings"`
}

// PendingAction is a queued "toggle signup" intent that has not yet been
// confirmed by the remote store.
type PendingAction struct {
	Date   string `json:"date"`
	UserID string `json:"userId"`
}

// ActiveWorker resolves who actually covers a shift: nobody when the shift is
// closed, the confirmed user when one is set, otherwise the sole signup when
// exactly one student signed up. Multiple unconfirmed signups mean the shift
// is still pending.
func ActiveWorker(s ShiftDay) (string, bool) {
	if s.IsClosed {
		return "", false
	}
	if s.ConfirmedUserID != "" {
		return s.ConfirmedUserID, true
	}
	if len(s.Signups) == 1 {
		return s.Signups[0], true
	}
	return "", false
}

// FindUser looks a user up by id.
func FindUser(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Students filters the STUDENT users, preserving order.
func Students(users []User) []User {
	students := make([]User, 0, len(users))
	for _, u := range users {
		if u.Role == RoleStudent {
			students = append(students, u)
		}
	}
	return students
}

// HasHoliday reports whether the canonical date is in the holiday list.
func (s AppSettings) HasHoliday(date string) bool {
	for _, h := range s.Holidays {
		if h == date {
			return true
		}
	}
	return false
}

// Clone deep-copies the snapshot so callers can render without racing later
// store mutations.
func (d *AppData) Clone() *AppData {
	if d == nil {
		return nil
	}
	out := &AppData{
		Users:    append([]User(nil), d.Users...),
		Shifts:   make(ShiftMap, len(d.Shifts)),
		Settings: d.Settings,
	}
	out.Settings.Holidays = append([]string(nil), d.Settings.Holidays...)
	for k, v := range d.Shifts {
		v.Signups = append([]string(nil), v.Signups...)
		out.Shifts[k] = v
	}
	return out
}
