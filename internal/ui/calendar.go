package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Penny-Liu/parttime/pkg/core/services"
)

var weekdayNames = []string{"日", "一", "二", "三", "四", "五", "六"}

const cellWidth = 10

// RenderCalendar draws a month as a weekday-aligned grid. Each cell shows the
// day number (with markers for holidays and queued local changes) and the
// day's coverage: the active worker's name, 休診 for closed days, or a
// pending count when several students are waiting on confirmation.
func RenderCalendar(view *services.MonthView, theme Theme) string {
	styles := theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("%d年%d月 排班表", view.Year, int(view.Month))))
	b.WriteString("\n")

	header := make([]string, len(weekdayNames))
	for i, name := range weekdayNames {
		style := styles.Weekday
		if i == 0 {
			style = styles.Holiday
		}
		header[i] = style.Width(cellWidth).Align(lipgloss.Center).Render(name)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, week := range view.Weeks {
		cells := make([]string, 7)
		for i, cell := range week {
			cells[i] = renderDayCell(cell, styles)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}

func renderDayCell(cell *services.DayCell, styles Styles) string {
	blank := lipgloss.NewStyle().Width(cellWidth)
	if cell == nil {
		return blank.Render(strings.Repeat("\n", 1))
	}

	dayLabel := fmt.Sprintf("%2d", cell.Day)
	dayStyle := styles.Day
	if cell.Holiday {
		dayStyle = styles.Holiday
	}
	if cell.Queued {
		dayLabel += "•"
		dayStyle = styles.Queued
	}

	var content string
	switch {
	case cell.Closed:
		content = styles.Closed.Render("休診")
	case cell.WorkerName != "":
		content = UserStyle(cell.WorkerColor).Render(cell.WorkerName)
	case cell.Pending:
		content = styles.Pending.Render(fmt.Sprintf("%d人待定", cell.SignupCount))
	case cell.Holiday:
		content = styles.Holiday.Render("休假")
	default:
		content = styles.Muted.Render("-")
	}

	top := dayStyle.Width(cellWidth).Render(dayLabel)
	bottom := blank.Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// RenderPendingBanner summarizes unsaved changes under the calendar, mirroring
// the floating save bar of the web app.
func RenderPendingBanner(count int, theme Theme) string {
	if count == 0 {
		return ""
	}
	styles := theme.Styles()
	return styles.Queued.Render(fmt.Sprintf("● 您有 %d 筆排班操作尚未上傳，輸入 save 儲存", count))
}
