// Package summary derives dashboard statistics from already-loaded workout
// sessions and InBody records. Every function is pure: inputs are never
// mutated, nothing is cached, and missing values come back as nil rather
// than as errors.
package summary

import (
	"bytes"
	"math"
	"slices"
	"time"

	"alcyxob/workout-log/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LatestWorkout describes the most recent session.
type LatestWorkout struct {
	Date *time.Time   `json:"date"`
	Mood *domain.Mood `json:"mood"`
}

// LatestInBody holds the newest measurement and its change from the one before.
type LatestInBody struct {
	Date        *time.Time `json:"date"`
	Weight      *float64   `json:"weight"`
	PBF         *float64   `json:"pbf"`
	SMM         *float64   `json:"smm"`
	WeightDelta *float64   `json:"weightDelta"`
	PBFDelta    *float64   `json:"pbfDelta"`
	SMMDelta    *float64   `json:"smmDelta"`
}

// Info is the "latest value + delta" summary shown on the dashboard cards.
type Info struct {
	LatestWorkout LatestWorkout `json:"latestWorkout"`
	LatestInBody  LatestInBody  `json:"latestInBody"`
}

// ComputeInfo finds the latest session and the two latest InBody records.
// Both inputs should be the full, unfiltered collections.
func ComputeInfo(sessions []domain.WorkoutSession, records []domain.InBodyRecord) Info {
	var info Info

	if latest := LatestSession(sessions); latest != nil {
		date := latest.Date
		info.LatestWorkout.Date = &date
		if latest.Mood != nil {
			mood := *latest.Mood
			info.LatestWorkout.Mood = &mood
		}
	}

	sorted := SortRecordsNewestFirst(records)
	if len(sorted) == 0 {
		return info
	}
	latest := &sorted[0]
	if latest.HasReportDate() {
		date := latest.ReportDate
		info.LatestInBody.Date = &date
	}
	info.LatestInBody.Weight = latest.Weight()
	info.LatestInBody.PBF = latest.PBF()
	info.LatestInBody.SMM = latest.SMM()

	if len(sorted) > 1 {
		prev := &sorted[1]
		info.LatestInBody.WeightDelta = delta(info.LatestInBody.Weight, prev.Weight())
		info.LatestInBody.PBFDelta = delta(info.LatestInBody.PBF, prev.PBF())
		info.LatestInBody.SMMDelta = delta(info.LatestInBody.SMM, prev.SMM())
	}
	return info
}

// LatestSession returns the session with the newest date, or nil when there
// are none. Equal dates are broken by the larger ID.
func LatestSession(sessions []domain.WorkoutSession) *domain.WorkoutSession {
	if len(sessions) == 0 {
		return nil
	}
	latest := &sessions[0]
	for i := 1; i < len(sessions); i++ {
		if compareNewestFirst(sessions[i].Date, sessions[i].ID, latest.Date, latest.ID) < 0 {
			latest = &sessions[i]
		}
	}
	return latest
}

// SortRecordsNewestFirst returns a copy of records ordered by report date
// descending. Records without a report date sort last; equal dates are
// broken by the larger ID first.
func SortRecordsNewestFirst(records []domain.InBodyRecord) []domain.InBodyRecord {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b domain.InBodyRecord) int {
		return compareNewestFirst(a.ReportDate, a.ID, b.ReportDate, b.ID)
	})
	return sorted
}

func compareNewestFirst(aDate time.Time, aID primitive.ObjectID, bDate time.Time, bID primitive.ObjectID) int {
	if c := bDate.Compare(aDate); c != 0 {
		return c
	}
	return bytes.Compare(bID[:], aID[:])
}

// delta is latest - previous rounded to one decimal, or nil unless both are known.
func delta(latest, previous *float64) *float64 {
	if latest == nil || previous == nil {
		return nil
	}
	d := roundOneDecimal(*latest - *previous)
	return &d
}

func roundOneDecimal(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // no -0 in JSON
	}
	return r
}
