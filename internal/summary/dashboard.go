package summary

import (
	"slices"
	"strings"
	"time"

	"alcyxob/workout-log/internal/domain"
)

const (
	topExercisesLimit = 5
	frequencyDaysBack = 7
	noCategory        = "None"
)

// Stats are headline numbers computed over the unfiltered collections.
type Stats struct {
	TotalWorkouts       int    `json:"totalWorkouts"`
	TotalInBodyRecords  int    `json:"totalInBodyRecords"`
	WorkoutFrequency    int    `json:"workoutFrequency"` // distinct training days in the last week
	MostTrainedCategory string `json:"mostTrainedCategory"`
}

// ExerciseCount is how many times an exercise name was logged.
type ExerciseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendPoint is one dated value of a body-composition series.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// DashboardInput is everything a dashboard computation needs. Now is read
// once by the caller so the whole computation shares one instant.
type DashboardInput struct {
	Sessions []domain.WorkoutSession
	Records  []domain.InBodyRecord
	Range    TimeRange
	Now      time.Time
	Location *time.Location
}

// Dashboard is the full set of aggregates behind the dashboard view.
type Dashboard struct {
	Range                TimeRange       `json:"range"`
	RangeStart           *time.Time      `json:"rangeStart"`
	GeneratedAt          time.Time       `json:"generatedAt"`
	Summary              Info            `json:"summary"`
	Stats                Stats           `json:"stats"`
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
	TopExercises         []ExerciseCount `json:"topExercises"`
	Daily                []DailySummary  `json:"daily"`
	WeightTrend          []TrendPoint    `json:"weightTrend"`
	BodyFatTrend         []TrendPoint    `json:"bodyFatTrend"`
}

// BuildDashboard computes every dashboard aggregate. Summary and Stats use
// the full collections; the remaining series use the range-filtered ones.
func BuildDashboard(in DashboardInput) Dashboard {
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}
	now := in.Now.In(loc)
	start := RangeStart(in.Range, now)

	sessions := FilterSessions(in.Sessions, start)
	records := FilterRecords(in.Records, start)

	return Dashboard{
		Range:                in.Range,
		RangeStart:           start,
		GeneratedAt:          now,
		Summary:              ComputeInfo(in.Sessions, in.Records),
		Stats:                ComputeStats(in.Sessions, in.Records, now),
		CategoryDistribution: CategoryDistribution(sessions),
		TopExercises:         TopExercises(sessions, topExercisesLimit),
		Daily:                BuildDailySummary(sessions, loc),
		WeightTrend:          Trend(records, (*domain.InBodyRecord).Weight),
		BodyFatTrend:         Trend(records, (*domain.InBodyRecord).PBF),
	}
}

// ComputeStats derives the headline numbers. Calendar days are taken in now's location.
func ComputeStats(sessions []domain.WorkoutSession, records []domain.InBodyRecord, now time.Time) Stats {
	stats := Stats{
		TotalWorkouts:       len(sessions),
		TotalInBodyRecords:  len(records),
		MostTrainedCategory: noCategory,
	}

	since := StartOfDay(now.AddDate(0, 0, -frequencyDaysBack))
	days := make(map[time.Time]struct{})
	for _, s := range sessions {
		day := StartOfDay(s.Date.In(now.Location()))
		if !day.Before(since) {
			days[day] = struct{}{}
		}
	}
	stats.WorkoutFrequency = len(days)

	if dist := CategoryDistribution(sessions); len(dist) > 0 {
		stats.MostTrainedCategory = string(dist[0].Category)
	}
	return stats
}

// TopExercises returns the most frequently logged exercise names, at most
// limit of them, by count descending and then by name.
func TopExercises(sessions []domain.WorkoutSession, limit int) []ExerciseCount {
	counts := make(map[string]int)
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			counts[ex.Name]++
		}
	}

	top := make([]ExerciseCount, 0, len(counts))
	for name, n := range counts {
		top = append(top, ExerciseCount{Name: name, Count: n})
	}
	slices.SortFunc(top, func(a, b ExerciseCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	if limit >= 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

// Trend extracts a value series from records, skipping records without a
// report date or without the value, ascending by report date.
func Trend(records []domain.InBodyRecord, value func(*domain.InBodyRecord) *float64) []TrendPoint {
	points := make([]TrendPoint, 0, len(records))
	for i := range records {
		r := &records[i]
		if !r.HasReportDate() {
			continue
		}
		if v := value(r); v != nil {
			points = append(points, TrendPoint{Date: r.ReportDate, Value: *v})
		}
	}
	slices.SortStableFunc(points, func(a, b TrendPoint) int {
		return a.Date.Compare(b.Date)
	})
	return points
}
