package service

import (
	"time"

	"alcyxob/workout-log/internal/domain"
)

// Catalog entries referenced by the sample sessions.
var sampleCatalog = []domain.ExerciseCatalogEntry{
	{TitleEn: "Barbell Squat", BodyPart: "legs", Level: "intermediate"},
	{TitleEn: "Leg Press", BodyPart: "legs", Level: "beginner"},
	{TitleEn: "Barbell Bench Press - Medium Grip", BodyPart: "chest", Level: "beginner"},
	{TitleEn: "Dumbbell Flyes", BodyPart: "chest", Level: "beginner"},
	{TitleEn: "Seated Cable Rows", BodyPart: "back", Level: "beginner"},
	{TitleEn: "Wide-Grip Lat Pulldown", BodyPart: "back", Level: "beginner"},
	{TitleEn: "Hanging Leg Raise", BodyPart: "waist", Level: "intermediate"},
	{TitleEn: "Plank", BodyPart: "waist", Level: "beginner"},
}

type sampleExercise struct {
	name string
	rpe  float64
	sets [][2]float64 // reps, weight
}

type sampleSession struct {
	daysAgo   int
	mood      domain.Mood
	notes     string
	exercises []sampleExercise
}

// A week of training ending today.
var sampleSessions = []sampleSession{
	{
		daysAgo: 5,
		mood:    domain.MoodHappy,
		notes:   "Leg day! Focused on deep squats and solid form. Felt a great burn.",
		exercises: []sampleExercise{
			{name: "Barbell Squat", rpe: 8, sets: [][2]float64{{12, 40}, {12, 40}, {10, 45}, {10, 45}}},
			{name: "Leg Press", rpe: 7, sets: [][2]float64{{12, 80}, {12, 80}, {12, 85}, {12, 85}}},
		},
	},
	{
		daysAgo: 3,
		mood:    domain.MoodNeutral,
		notes:   "Chest day. Bench press felt a bit heavy today but pushed through. Flyes were good.",
		exercises: []sampleExercise{
			{name: "Barbell Bench Press - Medium Grip", rpe: 8, sets: [][2]float64{{12, 50}, {10, 50}, {8, 50}, {8, 50}}},
			{name: "Dumbbell Flyes", rpe: 7, sets: [][2]float64{{12, 10}, {12, 10}, {12, 10}, {12, 10}}},
		},
	},
	{
		daysAgo: 1,
		mood:    domain.MoodHappy,
		notes:   "Back day was awesome. Had a great mind-muscle connection on the rows.",
		exercises: []sampleExercise{
			{name: "Seated Cable Rows", rpe: 7, sets: [][2]float64{{12, 45}, {12, 45}, {12, 45}, {12, 45}}},
			{name: "Wide-Grip Lat Pulldown", rpe: 7, sets: [][2]float64{{12, 40}, {10, 45}, {10, 45}, {10, 45}}},
		},
	},
	{
		daysAgo: 0,
		mood:    domain.MoodHappy,
		notes:   "Finished the week with a solid core workout. Planks are killer.",
		exercises: []sampleExercise{
			{name: "Hanging Leg Raise", rpe: 8, sets: [][2]float64{{15, 0}, {15, 0}, {12, 0}}},
			// Plank weight holds the duration in seconds.
			{name: "Plank", rpe: 9, sets: [][2]float64{{1, 60}, {1, 60}}},
		},
	},
}

type sampleRecord struct {
	daysAgo    int
	reportTime string
	score      float64
	weight     float64
	smm        float64
	fatMass    float64
	bmi        float64
	pbf        float64
}

// Two months of roughly fortnightly measurements, the last one today.
var sampleRecords = []sampleRecord{
	{daysAgo: 62, reportTime: "08:00", score: 72, weight: 68, smm: 28, fatMass: 18, bmi: 23.5, pbf: 26.5},
	{daysAgo: 48, reportTime: "08:10", score: 74, weight: 67, smm: 28, fatMass: 17, bmi: 23.1, pbf: 25.4},
	{daysAgo: 31, reportTime: "08:05", score: 75, weight: 67, smm: 29, fatMass: 16, bmi: 23.1, pbf: 23.9},
	{daysAgo: 17, reportTime: "07:55", score: 77, weight: 66, smm: 30, fatMass: 14, bmi: 22.8, pbf: 21.2},
	{daysAgo: 0, reportTime: "08:00", score: 79, weight: 66, smm: 31, fatMass: 13, bmi: 22.8, pbf: 19.7},
}

// buildSampleSessions materialises the sample sessions relative to today.
// catalogIDs maps an exercise title to its catalog ID.
func buildSampleSessions(today time.Time, catalogIDs map[string]string) []domain.WorkoutSession {
	sessions := make([]domain.WorkoutSession, 0, len(sampleSessions))
	for _, s := range sampleSessions {
		mood := s.mood
		session := domain.WorkoutSession{
			Date:  today.AddDate(0, 0, -s.daysAgo),
			Mood:  &mood,
			Notes: s.notes,
		}
		for _, ex := range s.exercises {
			rpe := ex.rpe
			exercise := domain.Exercise{
				ExerciseID: catalogIDs[ex.name],
				Name:       ex.name,
				RPE:        &rpe,
			}
			for _, set := range ex.sets {
				exercise.Sets = append(exercise.Sets, domain.WorkoutSet{Reps: int(set[0]), Weight: set[1]})
			}
			session.Exercises = append(session.Exercises, exercise)
		}
		sessions = append(sessions, session)
	}
	return sessions
}

func buildSampleRecords(today time.Time) []domain.InBodyRecord {
	quantity := func(v float64, unit string) *domain.Quantity {
		return &domain.Quantity{Value: &v, Unit: unit}
	}

	records := make([]domain.InBodyRecord, 0, len(sampleRecords))
	for _, r := range sampleRecords {
		score := r.score
		records = append(records, domain.InBodyRecord{
			ReportDate:   today.AddDate(0, 0, -r.daysAgo),
			ReportTime:   r.reportTime,
			OverallScore: &score,
			BodyComposition: &domain.BodyComposition{
				TotalWeight:        quantity(r.weight, "kg"),
				SkeletalMuscleMass: quantity(r.smm, "kg"),
				BodyFatMass:        quantity(r.fatMass, "kg"),
				BMI:                quantity(r.bmi, "kg/m2"),
				PBF:                quantity(r.pbf, "%"),
			},
		})
	}
	return records
}
