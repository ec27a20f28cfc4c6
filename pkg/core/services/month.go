package services

import (
	"fmt"
	"time"

	"github.com/Penny-Liu/parttime/internal/config"
	"github.com/Penny-Liu/parttime/pkg/core/model"
)

// DayCell is one calendar day prepared for rendering. The same cells feed
// the interactive calendar and the printable monthly table, so the
// active-worker resolution is applied exactly once, here.
type DayCell struct {
	Day         int
	Date        string
	WorkerName  string
	WorkerColor string
	Pending     bool // multiple unconfirmed signups, no active worker
	SignupCount int
	Confirmed   bool
	Closed      bool
	Holiday     bool
	Queued      bool // a queued local toggle touches this date
	Hours       string
}

// MonthView is a month laid out as week rows. Cells outside the month are
// nil.
type MonthView struct {
	Year  int
	Month time.Month
	Weeks [][]*DayCell
}

// BuildMonth lays out one month of shifts for rendering. Holidays come from
// the settings holiday list plus the config's recurring closure rules;
// Sundays and holidays get the shortened duty hours.
func BuildMonth(data *model.AppData, cfg *config.Config, year int, month time.Month, queued map[string]bool) (*MonthView, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	closures, err := cfg.ClosureDates(first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to expand recurring closures: %w", err)
	}

	view := &MonthView{Year: year, Month: month}
	week := make([]*DayCell, 7)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		weekday := int(date.Weekday())
		dateStr := date.Format(model.DateLayout)

		shift, hasShift := data.Shifts[dateStr]
		holiday := data.Settings.HasHoliday(dateStr) || closures[dateStr]
		sunday := date.Weekday() == time.Sunday

		cell := &DayCell{
			Day:     day,
			Date:    dateStr,
			Holiday: holiday,
			Queued:  queued[dateStr],
			Hours:   cfg.WeekdayHours,
		}
		if sunday || holiday {
			cell.Hours = cfg.HolidayHours
		}

		if hasShift {
			cell.SignupCount = len(shift.Signups)
			cell.Closed = shift.IsClosed
			if workerID, ok := model.ActiveWorker(shift); ok {
				if worker, found := model.FindUser(data.Users, workerID); found {
					cell.WorkerName = worker.Name
					cell.WorkerColor = worker.Color
					cell.Confirmed = shift.ConfirmedUserID != ""
				}
			} else if !shift.IsClosed && len(shift.Signups) > 1 {
				cell.Pending = true
			}
		}

		week[weekday] = cell
		if weekday == 6 || day == daysInMonth {
			view.Weeks = append(view.Weeks, week)
			week = make([]*DayCell, 7)
		}
	}

	return view, nil
}
