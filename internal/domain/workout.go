package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood is the optional self-reported feeling attached to a session.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// IsValid reports whether m is one of the known moods.
func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	}
	return false
}

// WorkoutSet is one set of an exercise. Unset reps/weight are stored as 0.
type WorkoutSet struct {
	ID     string  `bson:"id" json:"id"`
	Reps   int     `bson:"reps" json:"reps"`
	Weight float64 `bson:"weight" json:"weight"`
}

// Exercise is a logged exercise inside a session. ExerciseID references,
// but does not own, an ExerciseCatalogEntry.
type Exercise struct {
	ID         string       `bson:"id" json:"id"`
	ExerciseID string       `bson:"exerciseId" json:"exerciseId"`
	Name       string       `bson:"name" json:"name"`
	RPE        *float64     `bson:"rpe,omitempty" json:"rpe,omitempty"` // Rate of Perceived Exertion, 1-10
	Sets       []WorkoutSet `bson:"sets" json:"sets"`
}

// WorkoutSession is a full workout for a specific date and time.
// Exercises and their sets are embedded, so deleting the session deletes them too.
type WorkoutSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"uid" json:"uid"`
	Date      time.Time          `bson:"date" json:"date"`
	Mood      *Mood              `bson:"mood,omitempty" json:"mood,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Volume returns the sum of reps x weight across every set of the session.
func (s *WorkoutSession) Volume() float64 {
	var volume float64
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			volume += set.Volume()
		}
	}
	return volume
}

// Volume returns reps x weight. Negative or non-finite inputs count as 0.
func (s WorkoutSet) Volume() float64 {
	if s.Reps <= 0 || !isUsable(s.Weight) || s.Weight <= 0 {
		return 0
	}
	return float64(s.Reps) * s.Weight
}
