// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty grades a catalog exercise. Ordered: beginner < intermediate < advanced.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyRank returns the ordinal position of a difficulty level.
// Unknown values rank as beginner so malformed catalog rows never outrank
// legitimate ones.
func DifficultyRank(d Difficulty) int {
	switch d {
	case DifficultyAdvanced:
		return 2
	case DifficultyIntermediate:
		return 1
	default:
		return 0
	}
}

// EquipmentBodyweight is implicitly available to every user.
const EquipmentBodyweight = "bodyweight"

// CatalogExercise is a single entry in the exercise catalog. Immutable from
// the engine's perspective; user-added custom exercises are stored in the
// same collection and are indistinguishable once read back.
type CatalogExercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	BodyPart     string             `bson:"bodyPart" json:"bodyPart"`                     // e.g., "chest", "back", "legs"
	Category     string             `bson:"category,omitempty" json:"category,omitempty"` // movement classification, e.g. "push", "hinge"
	Equipment    []string           `bson:"equipment" json:"equipment"`                   // at least one entry; "bodyweight" for unequipped moves
	Difficulty   Difficulty         `bson:"difficulty" json:"difficulty"`
	Instructions []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Custom       bool               `bson:"custom,omitempty" json:"custom,omitempty"` // user-added entry
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PerformableWith reports whether the exercise can be done with the given
// equipment set. Bodyweight exercises always pass.
func (e *CatalogExercise) PerformableWith(available map[string]bool) bool {
	for _, eq := range e.Equipment {
		if eq == EquipmentBodyweight || available[eq] {
			return true
		}
	}
	return false
}
