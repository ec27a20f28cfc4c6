package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Penny-Liu/parttime/pkg/core/services"
)

// RenderPrintTable draws the unstyled monthly duty table meant for printing
// or pasting elsewhere: every day shows who covers it (falling back to the
// configured default worker name) and the duty hours. Closed days read 休診
// and days with several unconfirmed signups read 待定.
func RenderPrintTable(view *services.MonthView, defaultWorker string) string {
	rows := make([][]string, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		row := make([]string, 7)
		for i, cell := range week {
			row[i] = printCell(cell, defaultWorker)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Width(12).Align(lipgloss.Center)
		}).
		Headers(weekdayNames...).
		Rows(rows...)

	title := fmt.Sprintf("%d年%d月 值班表", view.Year, int(view.Month))
	return title + "\n" + t.Render() + "\n"
}

func printCell(cell *services.DayCell, defaultWorker string) string {
	if cell == nil {
		return ""
	}

	switch {
	case cell.Closed:
		return fmt.Sprintf("%d\n休診", cell.Day)
	case cell.WorkerName != "":
		return fmt.Sprintf("%d\n%s\n%s", cell.Day, cell.WorkerName, cell.Hours)
	case cell.Pending:
		return fmt.Sprintf("%d\n待定\n%s", cell.Day, cell.Hours)
	default:
		return fmt.Sprintf("%d\n%s\n%s", cell.Day, defaultWorker, cell.Hours)
	}
}
