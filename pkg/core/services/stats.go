package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Penny-Liu/parttime/pkg/core/model"
)

// StudentStat is one student's shift count for a month.
type StudentStat struct {
	User  model.User
	Count int
}

// MonthlyStats counts, per student, the days in the given month where that
// student is the shift's active worker. Closed shifts count for nobody.
// Results are sorted by count descending; the second return value is the
// total across all students.
func MonthlyStats(data *model.AppData, year int, month time.Month) ([]StudentStat, int) {
	students := model.Students(data.Users)
	prefix := model.MonthPrefix(year, month)

	counts := make(map[string]int, len(students))
	for _, shift := range data.Shifts {
		if !strings.HasPrefix(shift.Date, prefix) {
			continue
		}
		if workerID, ok := model.ActiveWorker(shift); ok {
			counts[workerID]++
		}
	}

	stats := make([]StudentStat, len(students))
	total := 0
	for i, s := range students {
		stats[i] = StudentStat{User: s, Count: counts[s.ID]}
		total += counts[s.ID]
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats, total
}
