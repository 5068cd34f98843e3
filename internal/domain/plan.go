// internal/domain/plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanOrigin records which surface produced a plan.
type PlanOrigin string

const (
	PlanByCoach  PlanOrigin = "coach"
	PlanByAI     PlanOrigin = "ai"
	PlanByManual PlanOrigin = "manual"
)

// RepsRange is an inclusive rep window for non-beginner prescriptions.
type RepsRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// SetScheme describes how an exercise is to be performed.
// Exactly one of Reps or RepsRange is set.
type SetScheme struct {
	Count       int        `bson:"count" json:"count"`
	Reps        int        `bson:"reps,omitempty" json:"reps,omitempty"`
	RepsRange   *RepsRange `bson:"repsRange,omitempty" json:"repsRange,omitempty"`
	WeightKG    *float64   `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	RestSeconds int        `bson:"restSeconds,omitempty" json:"restSeconds,omitempty"`
	RPE         *float64   `bson:"rpe,omitempty" json:"rpe,omitempty"`
	Notes       string     `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ExercisePrescription places one catalog exercise into a workout with its
// set scheme.
type ExercisePrescription struct {
	ExerciseID   primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"` // denormalized for display
	BodyPart     string             `bson:"bodyPart" json:"bodyPart"`
	Sets         SetScheme          `bson:"sets" json:"sets"`
}

// PlanWorkout is a single training day within a week.
// Invariant: no two prescriptions share an ExerciseID.
type PlanWorkout struct {
	DayLabel  string                 `bson:"dayLabel" json:"dayLabel"` // weekday name, e.g. "monday"
	Exercises []ExercisePrescription `bson:"exercises" json:"exercises"`
	Notes     string                 `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PlanWeek groups the workouts of one calendar week of the program.
type PlanWeek struct {
	WeekNumber int           `bson:"weekNumber" json:"weekNumber"` // 1-based
	Workouts   []PlanWorkout `bson:"workouts" json:"workouts"`
}

// WorkoutPlan is a complete multi-week program. Weeks are stored embedded so
// a plan is a single document.
type WorkoutPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID   primitive.ObjectID `bson:"profileId" json:"profileId"`
	Name        string             `bson:"name" json:"name"`
	GeneratedBy PlanOrigin         `bson:"generatedBy" json:"generatedBy"`
	GoalID      string             `bson:"goalId,omitempty" json:"goalId,omitempty"`
	Weeks       []PlanWeek         `bson:"weeks" json:"weeks"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Workout returns the workout for (week, dayLabel), or nil.
func (p *WorkoutPlan) Workout(week int, dayLabel string) *PlanWorkout {
	for wi := range p.Weeks {
		if p.Weeks[wi].WeekNumber != week {
			continue
		}
		for di := range p.Weeks[wi].Workouts {
			if p.Weeks[wi].Workouts[di].DayLabel == dayLabel {
				return &p.Weeks[wi].Workouts[di]
			}
		}
	}
	return nil
}

// HasExercise reports whether the workout already contains the exercise.
func (w *PlanWorkout) HasExercise(id primitive.ObjectID) bool {
	for i := range w.Exercises {
		if w.Exercises[i].ExerciseID == id {
			return true
		}
	}
	return false
}

// ExerciseIDs returns the ids of every exercise in the workout, in order.
func (w *PlanWorkout) ExerciseIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(w.Exercises))
	for i := range w.Exercises {
		ids = append(ids, w.Exercises[i].ExerciseID)
	}
	return ids
}
