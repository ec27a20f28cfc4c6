package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveWorker(t *testing.T) {
	tests := []struct {
		name     string
		shift    ShiftDay
		wantID   string
		wantBusy bool
	}{
		{
			name:     "confirmed wins over signups",
			shift:    ShiftDay{ConfirmedUserID: "u1", Signups: []string{"u1", "u2"}},
			wantID:   "u1",
			wantBusy: true,
		},
		{
			name:     "single signup auto-assigns",
			shift:    ShiftDay{Signups: []string{"u2"}},
			wantID:   "u2",
			wantBusy: true,
		},
		{
			name:     "multiple unconfirmed signups stay pending",
			shift:    ShiftDay{Signups: []string{"u1", "u2"}},
			wantBusy: false,
		},
		{
			name:     "closed shift has no worker even when confirmed",
			shift:    ShiftDay{IsClosed: true, ConfirmedUserID: "u1"},
			wantBusy: false,
		},
		{
			name:     "empty shift",
			shift:    ShiftDay{},
			wantBusy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ActiveWorker(tt.shift)
			assert.Equal(t, tt.wantBusy, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestStudents_FiltersAdmin(t *testing.T) {
	users := []User{
		{ID: "u1", Role: RoleStudent},
		{ID: "admin", Role: RoleAdmin},
		{ID: "u2", Role: RoleStudent},
	}

	students := Students(users)
	require.Len(t, students, 2)
	assert.Equal(t, "u1", students[0].ID)
	assert.Equal(t, "u2", students[1].ID)
}

func TestClone_IsIndependent(t *testing.T) {
	data := DefaultData()
	data.Shifts["2026-03-05"] = ShiftDay{Date: "2026-03-05", Signups: []string{"u1"}}

	clone := data.Clone()
	clone.Shifts["2026-03-05"] = ShiftDay{Date: "2026-03-05", Signups: []string{"u9"}}
	clone.Users[0].Name = "mutated"
	clone.Settings.Holidays[0] = "mutated"

	assert.Equal(t, []string{"u1"}, data.Shifts["2026-03-05"].Signups)
	assert.NotEqual(t, "mutated", data.Users[0].Name)
	assert.NotEqual(t, "mutated", data.Settings.Holidays[0])
}

func TestHasHoliday(t *testing.T) {
	s := AppSettings{Holidays: []string{"2026-01-01", "2026-10-10"}}
	assert.True(t, s.HasHoliday("2026-10-10"))
	assert.False(t, s.HasHoliday("2026-10-11"))
}
