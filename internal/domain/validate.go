package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var reportTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Validate checks the rules a session must satisfy before it is persisted.
func (s *WorkoutSession) Validate() error {
	if s.Date.IsZero() {
		return errors.New("date is required")
	}
	if s.Mood != nil && !s.Mood.IsValid() {
		return fmt.Errorf("unknown mood %q", *s.Mood)
	}
	if len(s.Exercises) == 0 {
		return errors.New("at least one exercise is required")
	}
	for i, ex := range s.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("exercise %d: name is required", i+1)
		}
		if ex.RPE != nil && (!isUsable(*ex.RPE) || *ex.RPE < 1 || *ex.RPE > 10) {
			return fmt.Errorf("exercise %d: rpe must be between 1 and 10", i+1)
		}
		if len(ex.Sets) == 0 {
			return fmt.Errorf("exercise %d: at least one set is required", i+1)
		}
		for j, set := range ex.Sets {
			if set.Reps < 0 {
				return fmt.Errorf("exercise %d set %d: reps cannot be negative", i+1, j+1)
			}
			if !isUsable(set.Weight) || set.Weight < 0 {
				return fmt.Errorf("exercise %d set %d: weight must be a non-negative number", i+1, j+1)
			}
		}
	}
	return nil
}

// Validate checks the rules a body-composition record must satisfy before it
// is persisted. A record needs at least a total weight or a PBF value.
func (r *InBodyRecord) Validate() error {
	if r.ReportDate.IsZero() {
		return errors.New("reportDate is required")
	}
	if !reportTimePattern.MatchString(r.ReportTime) {
		return errors.New("reportTime must be in HH:MM format")
	}
	if r.OverallScore != nil {
		if err := checkNonNegative("overallScore", r.OverallScore); err != nil {
			return err
		}
	}
	if bc := r.BodyComposition; bc != nil {
		fields := []struct {
			name string
			q    *Quantity
		}{
			{"totalWeight", bc.TotalWeight},
			{"skeletalMuscleMass", bc.SkeletalMuscleMass},
			{"bodyFatMass", bc.BodyFatMass},
			{"bmi", bc.BMI},
			{"pbf", bc.PBF},
		}
		for _, f := range fields {
			if f.q == nil {
				continue
			}
			if err := checkNonNegative(f.name, f.q.Value); err != nil {
				return err
			}
		}
	}
	if r.Weight() == nil && r.PBF() == nil {
		return errors.New("either weight or PBF is required")
	}
	return nil
}

func checkNonNegative(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if !isUsable(*v) || *v < 0 {
		return fmt.Errorf("%s must be a non-negative number", field)
	}
	return nil
}
