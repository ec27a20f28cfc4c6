package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penny-Liu/parttime/pkg/core/model"
)

func statsData() *model.AppData {
	return &model.AppData{
		Users: []model.User{
			{ID: "u1", Name: "昀儒", Role: model.RoleStudent},
			{ID: "u2", Name: "語晨", Role: model.RoleStudent},
			{ID: "admin", Name: "系統管理員", Role: model.RoleAdmin},
		},
		Shifts: model.ShiftMap{
			// u1 confirmed.
			"2026-03-02": {Date: "2026-03-02", ConfirmedUserID: "u1", Signups: []string{"u1", "u2"}},
			// u2 auto-assigned as sole signup.
			"2026-03-03": {Date: "2026-03-03", Signups: []string{"u2"}},
			// Pending: two signups, nobody confirmed, counts for no one.
			"2026-03-04": {Date: "2026-03-04", Signups: []string{"u1", "u2"}},
			// Closed: counts for no one even with a confirmation.
			"2026-03-05": {Date: "2026-03-05", ConfirmedUserID: "u1", IsClosed: true},
			// Different month: excluded.
			"2026-04-01": {Date: "2026-04-01", ConfirmedUserID: "u1"},
		},
	}
}

func TestMonthlyStats_CountsActiveWorkersOnly(t *testing.T) {
	stats, total := MonthlyStats(statsData(), 2026, time.March)

	require.Len(t, stats, 2, "admin excluded from stats")
	assert.Equal(t, 2, total)

	counts := map[string]int{}
	for _, s := range stats {
		counts[s.User.ID] = s.Count
	}
	assert.Equal(t, 1, counts["u1"])
	assert.Equal(t, 1, counts["u2"])
}

func TestMonthlyStats_SortedDescending(t *testing.T) {
	data := statsData()
	data.Shifts["2026-03-10"] = model.ShiftDay{Date: "2026-03-10", ConfirmedUserID: "u2"}
	data.Shifts["2026-03-11"] = model.ShiftDay{Date: "2026-03-11", ConfirmedUserID: "u2"}

	stats, total := MonthlyStats(data, 2026, time.March)
	assert.Equal(t, 4, total)
	assert.Equal(t, "u2", stats[0].User.ID)
	assert.Equal(t, 3, stats[0].Count)
}

func TestMonthlyStats_EmptyMonth(t *testing.T) {
	stats, total := MonthlyStats(statsData(), 2026, time.December)
	assert.Equal(t, 0, total)
	for _, s := range stats {
		assert.Equal(t, 0, s.Count)
	}
}

func TestMonthlyStats_MissingWorkerTolerated(t *testing.T) {
	// A confirmed user that no longer exists still counts a shift nobody
	// claims; the roster rows just show zero.
	data := statsData()
	data.Shifts["2026-03-20"] = model.ShiftDay{Date: "2026-03-20", ConfirmedUserID: "ghost"}

	stats, total := MonthlyStats(data, 2026, time.March)
	assert.Equal(t, 2, total, "ghost worker not attributed to any student")
	require.Len(t, stats, 2)
}
