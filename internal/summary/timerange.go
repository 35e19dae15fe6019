package summary

import (
	"fmt"
	"time"

	"alcyxob/workout-log/internal/domain"
)

// TimeRange is a named trailing window used to scope dashboard aggregates.
type TimeRange string

const (
	RangeWeek  TimeRange = "week"  // today and the 6 days before it
	RangeMonth TimeRange = "month" // today and the 29 days before it
	RangeAll   TimeRange = "all"
)

// ParseTimeRange accepts "week", "month" or "all". An empty string means week.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case "":
		return RangeWeek, nil
	case RangeWeek, RangeMonth, RangeAll:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// RangeStart returns the inclusive lower bound of the window ending at now,
// or nil for RangeAll. Any other unrecognised value is treated as a month.
// The bound is midnight in now's location.
func RangeStart(r TimeRange, now time.Time) *time.Time {
	var daysBack int
	switch r {
	case RangeAll:
		return nil
	case RangeWeek:
		daysBack = 6
	default:
		daysBack = 29
	}
	start := StartOfDay(now.AddDate(0, 0, -daysBack))
	return &start
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FilterByRange returns the records dated on or after start, preserving
// their order. A nil start keeps every record.
func FilterByRange[T any](records []T, start *time.Time, dateOf func(T) time.Time) []T {
	if start == nil {
		return records
	}
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if !dateOf(r).Before(*start) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterSessions applies FilterByRange to sessions by their date.
func FilterSessions(sessions []domain.WorkoutSession, start *time.Time) []domain.WorkoutSession {
	return FilterByRange(sessions, start, func(s domain.WorkoutSession) time.Time { return s.Date })
}

// FilterRecords applies FilterByRange to InBody records by their report date.
// Records without a report date only pass when start is nil.
func FilterRecords(records []domain.InBodyRecord, start *time.Time) []domain.InBodyRecord {
	return FilterByRange(records, start, func(r domain.InBodyRecord) time.Time { return r.ReportDate })
}
