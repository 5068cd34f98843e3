package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sex as recorded on the profile. Only used by the energy calculations.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel maps to a fixed TDEE multiplier in the coach package.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ExperienceLevel bounds exercise difficulty and prescription style.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// GoalType drives calorie adjustment and set/rep prescription.
type GoalType string

const (
	GoalStrength       GoalType = "strength"
	GoalHypertrophy    GoalType = "hypertrophy"
	GoalFatLoss        GoalType = "fat_loss"
	GoalEndurance      GoalType = "endurance"
	GoalGeneralFitness GoalType = "general_fitness"
)

// Goal is one entry in a profile's ordered goal list.
// Higher Priority wins when no explicit goal is requested.
type Goal struct {
	ID         string     `bson:"id" json:"id"` // UUID minted on creation
	Type       GoalType   `bson:"type" json:"type"`
	Priority   int        `bson:"priority" json:"priority"`
	TargetDate *time.Time `bson:"targetDate,omitempty" json:"targetDate,omitempty"`
}

// MacroSplit is an optional per-profile override of the default 30/40/30
// calorie allocation. Fractions must sum to 1.
type MacroSplit struct {
	Protein float64 `bson:"protein" json:"protein"`
	Carbs   float64 `bson:"carbs" json:"carbs"`
	Fat     float64 `bson:"fat" json:"fat"`
}

// Profile holds everything the coaching engine needs about a user.
// Biometrics are stored metric (kg, cm); unit display is a UI concern.
type Profile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Age           int                `bson:"age" json:"age"`
	Sex           Sex                `bson:"sex" json:"sex"`
	HeightCM      float64            `bson:"heightCm" json:"heightCm"`
	WeightKG      float64            `bson:"weightKg" json:"weightKg"`
	ActivityLevel ActivityLevel      `bson:"activityLevel" json:"activityLevel"`
	Experience    ExperienceLevel    `bson:"experience" json:"experience"`
	Goals         []Goal             `bson:"goals" json:"goals"`

	// Equipment the user has access to. "bodyweight" is always implicitly
	// available and does not need to be listed.
	Equipment []string `bson:"equipment,omitempty" json:"equipment,omitempty"`

	// Schedule maps lowercase weekday names ("monday".."sunday") to
	// whether the user trains that day.
	Schedule map[string]bool `bson:"schedule" json:"schedule"`

	// Limitations are advisory injury notes. Selection logic does not
	// currently enforce them.
	Limitations string `bson:"limitations,omitempty" json:"limitations,omitempty"`

	MacroSplit *MacroSplit `bson:"macroSplit,omitempty" json:"macroSplit,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Weekdays in schedule order. Generation iterates the schedule in this
// order so plans come out stable regardless of map iteration.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ScheduledDays returns the active weekdays in Monday-first order.
func (p *Profile) ScheduledDays() []string {
	var days []string
	for _, d := range Weekdays {
		if p.Schedule[d] {
			days = append(days, d)
		}
	}
	return days
}

// SelectedGoal resolves the goal to train for: the explicit id when given,
// otherwise the highest-priority goal. Returns nil when the profile has no
// goals (or the id is unknown).
func (p *Profile) SelectedGoal(goalID string) *Goal {
	if goalID != "" {
		for i := range p.Goals {
			if p.Goals[i].ID == goalID {
				return &p.Goals[i]
			}
		}
		return nil
	}
	var best *Goal
	for i := range p.Goals {
		if best == nil || p.Goals[i].Priority > best.Priority {
			best = &p.Goals[i]
		}
	}
	return best
}
