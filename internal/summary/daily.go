package summary

import (
	"slices"
	"time"

	"alcyxob/workout-log/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// DailySummary is the number of sessions and their combined volume on one calendar day.
type DailySummary struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	SessionCount int     `json:"sessionCount"`
	Volume       float64 `json:"volume"`
}

// BuildDailySummary groups sessions by calendar day in loc (time.Local when
// nil) and sums their volume. The result is ascending by date.
func BuildDailySummary(sessions []domain.WorkoutSession, loc *time.Location) []DailySummary {
	if loc == nil {
		loc = time.Local
	}

	type bucket struct {
		day     time.Time
		summary DailySummary
	}
	buckets := make(map[string]*bucket)
	for i := range sessions {
		day := StartOfDay(sessions[i].Date.In(loc))
		key := day.Format(dayKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: day, summary: DailySummary{Date: key}}
			buckets[key] = b
		}
		b.summary.SessionCount++
		b.summary.Volume += sessions[i].Volume()
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	slices.SortFunc(ordered, func(a, b *bucket) int {
		return a.day.Compare(b.day)
	})

	days := make([]DailySummary, len(ordered))
	for i, b := range ordered {
		days[i] = b.summary
	}
	return days
}
