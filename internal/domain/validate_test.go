package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func validSession() *WorkoutSession {
	return &WorkoutSession{
		Date: time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC),
		Exercises: []Exercise{
			{ID: "exercise-1", Name: "Barbell Squat", Sets: []WorkoutSet{{ID: "set-1", Reps: 10, Weight: 60}}},
		},
	}
}

func TestWorkoutSession_Validate(t *testing.T) {
	require.NoError(t, validSession().Validate())

	tests := []struct {
		name   string
		mutate func(s *WorkoutSession)
		errMsg string
	}{
		{"missing date", func(s *WorkoutSession) { s.Date = time.Time{} }, "date is required"},
		{"no exercises", func(s *WorkoutSession) { s.Exercises = nil }, "at least one exercise"},
		{"no sets", func(s *WorkoutSession) { s.Exercises[0].Sets = nil }, "at least one set"},
		{"blank name", func(s *WorkoutSession) { s.Exercises[0].Name = "" }, "name is required"},
		{"negative reps", func(s *WorkoutSession) { s.Exercises[0].Sets[0].Reps = -1 }, "reps cannot be negative"},
		{"NaN weight", func(s *WorkoutSession) { s.Exercises[0].Sets[0].Weight = math.NaN() }, "weight must be"},
		{"rpe out of range", func(s *WorkoutSession) { s.Exercises[0].RPE = f64(11) }, "rpe must be between"},
		{"unknown mood", func(s *WorkoutSession) { m := Mood("angry"); s.Mood = &m }, "unknown mood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestInBodyRecord_Validate_WeightOrPBFRequired(t *testing.T) {
	base := InBodyRecord{ReportDate: time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC), ReportTime: "08:00"}

	none := base
	err := none.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either weight or PBF")

	emptyQuantities := base
	emptyQuantities.BodyComposition = &BodyComposition{TotalWeight: &Quantity{Unit: "kg"}, PBF: &Quantity{Unit: "%"}}
	require.Error(t, emptyQuantities.Validate())

	weightOnly := base
	weightOnly.BodyComposition = &BodyComposition{TotalWeight: &Quantity{Value: f64(68), Unit: "kg"}}
	assert.NoError(t, weightOnly.Validate())

	pbfOnly := base
	pbfOnly.BodyComposition = &BodyComposition{PBF: &Quantity{Value: f64(21.2), Unit: "%"}}
	assert.NoError(t, pbfOnly.Validate())
}

func TestInBodyRecord_Validate_Fields(t *testing.T) {
	r := InBodyRecord{
		ReportDate:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ReportTime:      "8:00",
		BodyComposition: &BodyComposition{TotalWeight: &Quantity{Value: f64(68)}},
	}
	assert.ErrorContains(t, r.Validate(), "HH:MM")

	r.ReportTime = "08:00"
	r.BodyComposition.BMI = &Quantity{Value: f64(-1)}
	assert.ErrorContains(t, r.Validate(), "bmi")

	r.BodyComposition.BMI = nil
	r.OverallScore = f64(math.Inf(1))
	assert.ErrorContains(t, r.Validate(), "overallScore")

	r.OverallScore = f64(75)
	r.ReportDate = time.Time{}
	assert.ErrorContains(t, r.Validate(), "reportDate")
}

func TestInBodyRecord_Accessors(t *testing.T) {
	var nilRecord *InBodyRecord
	assert.Nil(t, nilRecord.Weight())
	assert.False(t, nilRecord.HasReportDate())

	r := &InBodyRecord{}
	assert.Nil(t, r.Weight())
	assert.Nil(t, r.PBF())
	assert.Nil(t, r.SMM())

	r.BodyComposition = &BodyComposition{
		TotalWeight:        &Quantity{Value: f64(72)},
		SkeletalMuscleMass: &Quantity{Value: f64(math.NaN())},
		PBF:                &Quantity{},
	}
	require.NotNil(t, r.Weight())
	assert.Equal(t, 72.0, *r.Weight())
	assert.Nil(t, r.SMM(), "non-finite values read as absent")
	assert.Nil(t, r.PBF())
}

func TestWorkoutSession_Volume(t *testing.T) {
	s := WorkoutSession{Exercises: []Exercise{
		{Name: "Squat", Sets: []WorkoutSet{{Reps: 10, Weight: 50}, {Reps: 8, Weight: 0}}},
		{Name: "Plank", Sets: []WorkoutSet{{Reps: 1, Weight: 60}, {Reps: 0, Weight: 20}}},
	}}
	assert.Equal(t, 560.0, s.Volume())
}

func TestExerciseCatalogEntry_Matches(t *testing.T) {
	e := ExerciseCatalogEntry{TitleEn: "Barbell Squat", TitleZh: "杠铃深蹲", Aliases: []string{"Back Squat"}}
	assert.True(t, e.Matches(""))
	assert.True(t, e.Matches("squat"))
	assert.True(t, e.Matches("  BACK "))
	assert.True(t, e.Matches("深蹲"))
	assert.False(t, e.Matches("bench"))
}
