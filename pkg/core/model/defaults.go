package model

// DefaultAdminPassword is used when the backend settings carry no admin
// password at all.
const DefaultAdminPassword = "admin"

// defaultHolidays seeds the Taiwan public holidays the clinic observes, so a
// fresh (or unreachable) backend still renders a sensible calendar.
var defaultHolidays = []string{
	"2026-01-01",
	"2026-02-16",
	"2026-02-17",
	"2026-02-18",
	"2026-02-19",
	"2026-02-20",
	"2026-02-28",
	"2026-04-04",
	"2026-04-05",
	"2026-05-01",
	"2026-06-19",
	"2026-09-25",
	"2026-10-10",
	"2027-01-01",
	"2027-02-05",
	"2027-02-06",
	"2027-02-07",
	"2027-02-08",
	"2027-02-09",
	"2027-02-28",
	"2027-04-04",
	"2027-04-05",
	"2027-05-01",
	"2027-06-09",
	"2027-09-15",
	"2027-10-10",
}

// DefaultData is the built-in fallback dataset. Fetches that fail soft merge
// whatever the backend returned over this.
func DefaultData() *AppData {
	return &AppData{
		Users: []User{
			{ID: "u1", Name: "昀儒", Color: "blue", Role: RoleStudent, Password: "1234"},
			{ID: "u2", Name: "語晨", Color: "green", Role: RoleStudent, Password: "4321"},
			{ID: "u3", Name: "蘇蘇", Color: "pink", Role: RoleStudent, Password: "0000"},
		},
		Shifts: ShiftMap{},
		Settings: AppSettings{
			AdminPassword: DefaultAdminPassword,
			Holidays:      append([]string(nil), defaultHolidays...),
		},
	}
}

// AdminUser synthesizes the singleton administrator identity. It is never
// persisted to the backend.
func AdminUser() User {
	return User{
		ID:    "admin",
		Name:  "系統管理員",
		Color: "purple",
		Role:  RoleAdmin,
	}
}
