package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penny-Liu/parttime/internal/config"
	"github.com/Penny-Liu/parttime/pkg/core/model"
	"github.com/Penny-Liu/parttime/pkg/core/services"
)

func renderFixture(t *testing.T) *services.MonthView {
	t.Helper()
	data := &model.AppData{
		Users: []model.User{
			{ID: "u1", Name: "昀儒", Color: "blue", Role: model.RoleStudent},
		},
		Shifts: model.ShiftMap{
			"2026-03-02": {Date: "2026-03-02", ConfirmedUserID: "u1"},
			"2026-03-05": {Date: "2026-03-05", IsClosed: true},
		},
		Settings: model.AppSettings{},
	}
	cfg := &config.Config{
		EndpointURL:       "https://example.com/exec",
		DefaultWorkerName: "放射師",
		WeekdayHours:      "10:00-18:00",
		HolidayHours:      "10:00-17:00",
	}
	view, err := services.BuildMonth(data, cfg, 2026, time.March, map[string]bool{"2026-03-09": true})
	require.NoError(t, err)
	return view
}

func TestRenderCalendar(t *testing.T) {
	out := RenderCalendar(renderFixture(t), DefaultTheme())

	assert.Contains(t, out, "2026年3月")
	assert.Contains(t, out, "昀儒")
	assert.Contains(t, out, "休診")
	// Queued marker on the 9th.
	assert.Contains(t, out, "9•")
}

func TestRenderPendingBanner(t *testing.T) {
	assert.Empty(t, RenderPendingBanner(0, DefaultTheme()))
	assert.Contains(t, RenderPendingBanner(3, DefaultTheme()), "3 筆")
}

func TestRenderStats(t *testing.T) {
	stats := []services.StudentStat{
		{User: model.User{ID: "u1", Name: "昀儒", Color: "blue"}, Count: 3},
		{User: model.User{ID: "u2", Name: "語晨", Color: "green"}, Count: 0},
	}

	out := RenderStats(stats, 3, 2026, 3, DefaultTheme())
	assert.Contains(t, out, "3月 排班統計")
	assert.Contains(t, out, "Total: 3 班")
	assert.Contains(t, out, "昀儒")
	assert.Contains(t, out, "語晨")
}

func TestRenderStats_NoStudents(t *testing.T) {
	out := RenderStats(nil, 0, 2026, 3, DefaultTheme())
	assert.Contains(t, out, "無工讀生資料")
}

func TestRenderPrintTable(t *testing.T) {
	out := RenderPrintTable(renderFixture(t), "放射師")

	assert.Contains(t, out, "2026年3月 值班表")
	assert.Contains(t, out, "昀儒")
	assert.Contains(t, out, "休診")
	// Unassigned days fall back to the default worker name.
	assert.Contains(t, out, "放射師")
	assert.Contains(t, out, "10:00-18:00")
}
