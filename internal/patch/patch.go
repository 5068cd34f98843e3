// Package patch models plan edits as a closed, tagged union of variants.
// Edit proposals (from the assistant or any other surface) arrive as JSON,
// are validated against a strict schema, and only then applied to a plan.
// Unrecognized variants are rejected outright rather than partially applied.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"

	"alcyxob/fitness-coach/internal/domain"

	"github.com/xeipuuv/gojsonschema"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type tags the patch variant.
type Type string

const (
	TypeReplaceExercise    Type = "replace_exercise"
	TypeAddExercise        Type = "add_exercise"
	TypeRemoveExercise     Type = "remove_exercise"
	TypeChangePrescription Type = "change_prescription"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound    = errors.New("patch targets a week/day not present in the plan")
	ErrPositionOutOfRange = errors.New("patch position is outside the workout's exercise list")
	ErrDuplicateExercise  = errors.New("patch would place the same exercise twice in one workout")
)

// ValidationError carries the schema violations for a rejected payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("patch validation failed: %v", e.Violations)
}

// Patch is one edit to a WorkoutPlan. Week/Day/Position address the slot;
// which other fields are meaningful depends on Type (enforced by the
// schema).
type Patch struct {
	Type     Type   `json:"type"`
	Week     int    `json:"week"`
	Day      string `json:"day"`
	Position int    `json:"position"`

	// replace_exercise / add_exercise
	ExerciseID   string `json:"exerciseId,omitempty"`
	ExerciseName string `json:"exerciseName,omitempty"`
	BodyPart     string `json:"bodyPart,omitempty"`

	// change_prescription (also honored on add/replace)
	Sets *domain.SetScheme `json:"sets,omitempty"`
}

// Parse validates raw JSON (a single array of patches) against the schema
// and unmarshals it. Payloads containing any unknown variant fail
// validation as a whole.
func Parse(raw []byte) ([]Patch, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(patchListSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("could not validate patch payload: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Violations = append(verr.Violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, verr
	}

	var patches []Patch
	if err := json.Unmarshal(raw, &patches); err != nil {
		return nil, err
	}
	return patches, nil
}

// Apply applies patches to the plan in order. The plan is mutated in place;
// on the first failing patch an error is returned and later patches are not
// applied. Applying a patch can never break the unique-exercise-per-workout
// invariant.
func Apply(plan *domain.WorkoutPlan, patches []Patch) error {
	for i, p := range patches {
		if err := applyOne(plan, p); err != nil {
			return fmt.Errorf("patch %d (%s): %w", i, p.Type, err)
		}
	}
	return nil
}

func applyOne(plan *domain.WorkoutPlan, p Patch) error {
	workout := plan.Workout(p.Week, p.Day)
	if workout == nil {
		return ErrWorkoutNotFound
	}

	switch p.Type {
	case TypeReplaceExercise:
		if p.Position < 0 || p.Position >= len(workout.Exercises) {
			return ErrPositionOutOfRange
		}
		id, err := primitive.ObjectIDFromHex(p.ExerciseID)
		if err != nil {
			return fmt.Errorf("invalid exercise id %q: %w", p.ExerciseID, err)
		}
		for pos, ex := range workout.Exercises {
			if pos != p.Position && ex.ExerciseID == id {
				return ErrDuplicateExercise
			}
		}
		target := &workout.Exercises[p.Position]
		target.ExerciseID = id
		target.ExerciseName = p.ExerciseName
		if p.BodyPart != "" {
			target.BodyPart = p.BodyPart
		}
		if p.Sets != nil {
			target.Sets = *p.Sets
		}
		return nil

	case TypeAddExercise:
		id, err := primitive.ObjectIDFromHex(p.ExerciseID)
		if err != nil {
			return fmt.Errorf("invalid exercise id %q: %w", p.ExerciseID, err)
		}
		if workout.HasExercise(id) {
			return ErrDuplicateExercise
		}
		added := domain.ExercisePrescription{
			ExerciseID:   id,
			ExerciseName: p.ExerciseName,
			BodyPart:     p.BodyPart,
		}
		if p.Sets != nil {
			added.Sets = *p.Sets
		}
		// Position beyond the end appends.
		pos := p.Position
		if pos < 0 || pos > len(workout.Exercises) {
			pos = len(workout.Exercises)
		}
		workout.Exercises = append(workout.Exercises, domain.ExercisePrescription{})
		copy(workout.Exercises[pos+1:], workout.Exercises[pos:])
		workout.Exercises[pos] = added
		return nil

	case TypeRemoveExercise:
		if p.Position < 0 || p.Position >= len(workout.Exercises) {
			return ErrPositionOutOfRange
		}
		workout.Exercises = append(workout.Exercises[:p.Position], workout.Exercises[p.Position+1:]...)
		return nil

	case TypeChangePrescription:
		if p.Position < 0 || p.Position >= len(workout.Exercises) {
			return ErrPositionOutOfRange
		}
		if p.Sets == nil {
			return errors.New("change_prescription requires sets")
		}
		workout.Exercises[p.Position].Sets = *p.Sets
		return nil

	default:
		// Parse rejects unknown types; this guards direct construction.
		return fmt.Errorf("unrecognized patch type %q", p.Type)
	}
}
