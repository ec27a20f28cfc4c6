package ui

import (
	"fmt"
	"strings"

	"github.com/Penny-Liu/parttime/pkg/core/services"
)

const statsBarWidth = 16

// RenderStats draws the per-student monthly shift counts, highest first, with
// a proportional bar like the web sidebar.
func RenderStats(stats []services.StudentStat, total int, year int, month int, theme Theme) string {
	styles := theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("%d月 排班統計", month)))
	b.WriteString("\n")
	b.WriteString(styles.Total.Render(fmt.Sprintf("Total: %d 班", total)))
	b.WriteString("\n\n")

	if len(stats) == 0 {
		b.WriteString(styles.Muted.Render("無工讀生資料"))
		b.WriteString("\n")
		return b.String()
	}

	for _, s := range stats {
		bar := ""
		if total > 0 && s.Count > 0 {
			width := s.Count * statsBarWidth / total
			if width == 0 {
				width = 1
			}
			bar = strings.Repeat("█", width)
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			UserStyle(s.User.Color).Width(10).Render(s.User.Name),
			styles.Total.Render(fmt.Sprintf("%2d", s.Count)),
			UserStyle(s.User.Color).Render(bar)))
	}

	return b.String()
}
