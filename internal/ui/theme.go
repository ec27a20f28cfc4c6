// Package ui renders the calendar, stats panel, and printable table to the
// terminal. Renderers are pure: they read prepared view data and return
// styled strings, never touching the store.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used across the renderers.
type Theme struct {
	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// DefaultTheme matches the soft palette of the original web calendar.
func DefaultTheme() Theme {
	return Theme{
		Text:    "#1f2937",
		Muted:   "#9ca3af",
		Accent:  "#3b82f6",
		Success: "#22c55e",
		Warning: "#f59e0b",
		Danger:  "#ef4444",
	}
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Weekday lipgloss.Style
	Day     lipgloss.Style
	Muted   lipgloss.Style
	Closed  lipgloss.Style
	Holiday lipgloss.Style
	Pending lipgloss.Style
	Queued  lipgloss.Style
	Total   lipgloss.Style
}

// Styles returns the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Weekday: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Muted)),

		Day: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Closed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Faint(true),

		Holiday: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Queued: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),
	}
}
