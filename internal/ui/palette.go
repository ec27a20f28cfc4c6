package ui

import "github.com/charmbracelet/lipgloss"

// userPalette maps the color tags stored on user records to terminal colors.
// Tags come from the backend sheet; unknown tags fall back to gray.
var userPalette = map[string]string{
	"red":    "#f87171",
	"orange": "#fb923c",
	"amber":  "#fbbf24",
	"yellow": "#facc15",
	"lime":   "#a3e635",
	"green":  "#4ade80",
	"teal":   "#2dd4bf",
	"cyan":   "#22d3ee",
	"sky":    "#38bdf8",
	"blue":   "#60a5fa",
	"indigo": "#818cf8",
	"violet": "#a78bfa",
	"purple": "#c084fc",
	"pink":   "#f472b6",
	"rose":   "#fb7185",
}

const fallbackUserColor = "#9ca3af"

// UserStyle returns a style rendering a user's name in their display color.
func UserStyle(colorTag string) lipgloss.Style {
	hex, ok := userPalette[colorTag]
	if !ok {
		hex = fallbackUserColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}
