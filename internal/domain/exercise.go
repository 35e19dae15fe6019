// internal/domain/exercise.go
package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogEntryType distinguishes built-in catalog entries from user-made ones.
type CatalogEntryType string

const (
	CatalogGlobal CatalogEntryType = "global"
	CatalogCustom CatalogEntryType = "custom"
)

// ExerciseCatalogEntry is read-only reference data used when building a session.
type ExerciseCatalogEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TitleEn          string             `bson:"titleEn" json:"titleEn"`
	TitleZh          string             `bson:"titleZh,omitempty" json:"titleZh,omitempty"`
	Aliases          []string           `bson:"aliases,omitempty" json:"aliases,omitempty"`
	Force            *string            `bson:"force,omitempty" json:"force,omitempty"`
	Level            string             `bson:"level,omitempty" json:"level,omitempty"`
	Mechanic         *string            `bson:"mechanic,omitempty" json:"mechanic,omitempty"`
	BodyPart         string             `bson:"bodyPart,omitempty" json:"bodyPart,omitempty"`
	PrimaryMuscles   []string           `bson:"primaryMuscles,omitempty" json:"primaryMuscles,omitempty"`
	SecondaryMuscles []string           `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`
	Equipment        *string            `bson:"equipment,omitempty" json:"equipment,omitempty"`
	InstructionsEn   []string           `bson:"instructionsEn,omitempty" json:"instructionsEn,omitempty"`
	InstructionsZh   []string           `bson:"instructionsZh,omitempty" json:"instructionsZh,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	ThumbnailURL     string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	IsCardio         bool               `bson:"isCardio" json:"isCardio"`
	Type             CatalogEntryType   `bson:"type" json:"type"`
	CreatedBy        string             `bson:"createdBy" json:"createdBy"` // "system" or a user ID
}

// Matches reports whether the entry's titles or aliases contain query, ignoring case.
func (e *ExerciseCatalogEntry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.TitleEn), q) || strings.Contains(strings.ToLower(e.TitleZh), q) {
		return true
	}
	for _, alias := range e.Aliases {
		if strings.Contains(strings.ToLower(alias), q) {
			return true
		}
	}
	return false
}
