package coach

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/fitness-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNoGoal          = errors.New("profile has no goals to train for")
	ErrGoalNotFound    = errors.New("requested goal not found on profile")
	ErrNoScheduledDays = errors.New("profile has no scheduled training days")
	ErrCatalogEmpty    = errors.New("exercise catalog is empty")
)

// DefaultWeeks is the program length when the caller does not override it.
const DefaultWeeks = 4

// SlotWarning records a slot the generator could not fill. The day is still
// returned with the slots that succeeded.
type SlotWarning struct {
	Week     int    `json:"week"`
	Day      string `json:"day"`
	BodyPart string `json:"bodyPart"`
}

func (w SlotWarning) String() string {
	return fmt.Sprintf("week %d, %s: no %s exercise available for your equipment", w.Week, w.Day, w.BodyPart)
}

// GenerationResult bundles the plan with its display targets and any
// partial-generation warnings.
type GenerationResult struct {
	Plan     *domain.WorkoutPlan `json:"plan"`
	Energy   EnergyTargets       `json:"energy"`
	Macros   MacroTargets        `json:"macros"`
	Warnings []SlotWarning       `json:"warnings,omitempty"`
}

// Generator synthesizes a multi-week workout program from a profile, a goal
// and a catalog snapshot. Deterministic: the same profile and snapshot always
// produce the same plan, timestamps aside.
type Generator struct {
	selector *Selector
	analyzer *Analyzer
	macros   *MacroPlanner
	weeks    int
	now      func() time.Time
}

// NewGenerator creates a Generator over a catalog snapshot. weeks <= 0 falls
// back to DefaultWeeks.
func NewGenerator(selector *Selector, weeks int) *Generator {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	return &Generator{
		selector: selector,
		analyzer: NewAnalyzer(),
		macros:   NewMacroPlanner(),
		weeks:    weeks,
		now:      time.Now,
	}
}

// WithClock overrides the timestamp source. Used by tests and by callers
// that need reproducible plan documents.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate builds the full program.
//
// Validation (goal, schedule, biometrics) runs before any catalog work so
// the user gets an actionable message without wasted computation. Per-slot
// selection failures never abort the plan; they surface as SlotWarnings and
// the day keeps the slots that succeeded.
func (g *Generator) Generate(profile *domain.Profile, goalID string) (*GenerationResult, error) {
	goal := profile.SelectedGoal(goalID)
	if goal == nil {
		if goalID != "" {
			return nil, ErrGoalNotFound
		}
		return nil, ErrNoGoal
	}

	days := profile.ScheduledDays()
	if len(days) == 0 {
		return nil, ErrNoScheduledDays
	}

	energy, err := g.analyzer.CalculateEnergy(profile)
	if err != nil {
		return nil, err
	}
	macros := g.macros.CalculateTargets(profile, goal.Type, energy.TDEE)

	if g.selector.Size() == 0 {
		return nil, ErrCatalogEmpty
	}

	equipment := EquipmentSet(profile.Equipment)
	ceiling := DifficultyCeilingFor(profile.Experience)
	templates := templatesFor(len(days), goal.Type)

	now := g.now().UTC()
	plan := &domain.WorkoutPlan{
		ProfileID:   profile.ID,
		Name:        fmt.Sprintf("%d-Week %s Program", g.weeks, goalTitle(goal.Type)),
		GeneratedBy: domain.PlanByCoach,
		GoalID:      goal.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var warnings []SlotWarning
	for week := 1; week <= g.weeks; week++ {
		planWeek := domain.PlanWeek{WeekNumber: week}
		for di, day := range days {
			tmpl := templates[di]
			workout := domain.PlanWorkout{DayLabel: day}

			// Exercises already placed today; enforces the no-duplicate
			// invariant within a single workout.
			used := make(map[primitive.ObjectID]bool)

			for _, slot := range tmpl.Slots {
				ex := g.selector.Select(SelectionConstraints{
					BodyPart:   slot.BodyPart,
					Equipment:  equipment,
					Ceiling:    ceiling,
					ExcludeIDs: used,
				})
				if ex == nil {
					warnings = append(warnings, SlotWarning{Week: week, Day: day, BodyPart: slot.BodyPart})
					continue
				}
				used[ex.ID] = true
				workout.Exercises = append(workout.Exercises, domain.ExercisePrescription{
					ExerciseID:   ex.ID,
					ExerciseName: ex.Name,
					BodyPart:     ex.BodyPart,
					Sets:         prescribe(goal.Type, profile.Experience, week, g.weeks),
				})
			}

			if isDeloadWeek(week, g.weeks) {
				workout.Notes = "Deload: reduce load and focus on technique."
			}
			planWeek.Workouts = append(planWeek.Workouts, workout)
		}
		plan.Weeks = append(plan.Weeks, planWeek)
	}

	return &GenerationResult{
		Plan:     plan,
		Energy:   energy,
		Macros:   macros,
		Warnings: warnings,
	}, nil
}

// isDeloadWeek: the final week of any program of three or more weeks is a
// lighter deload week.
func isDeloadWeek(week, totalWeeks int) bool {
	return totalWeeks >= 3 && week == totalWeeks
}

// prescribe builds the set scheme for one slot.
//
// Progression rule (documented assumption, see DESIGN.md): each non-deload
// week adds one rep over the previous week and a quarter point of RPE
// (capped at 9). The deload week drops one set and returns to the base rep
// scheme. Beginners get fixed reps at the midpoint of the goal's range;
// intermediate and advanced users get the range itself.
func prescribe(goal domain.GoalType, exp domain.ExperienceLevel, week, totalWeeks int) domain.SetScheme {
	base, ok := goalPrescriptions[goal]
	if !ok {
		base = goalPrescriptions[domain.GoalGeneralFitness]
	}

	sets := base.Sets
	repAdd := week - 1
	rpe := base.RPE + 0.25*float64(week-1)
	if rpe > 9 {
		rpe = 9
	}
	if isDeloadWeek(week, totalWeeks) {
		sets--
		if sets < 2 {
			sets = 2
		}
		repAdd = 0
		rpe = base.RPE - 1
	}

	scheme := domain.SetScheme{
		Count:       sets,
		RestSeconds: base.RestSeconds,
		RPE:         &rpe,
	}
	if exp == domain.ExperienceBeginner {
		scheme.Reps = (base.RepsMin+base.RepsMax)/2 + repAdd
	} else {
		scheme.RepsRange = &domain.RepsRange{
			Min: base.RepsMin + repAdd,
			Max: base.RepsMax + repAdd,
		}
	}
	return scheme
}

// goalTitle renders a goal type for plan names, e.g. "fat_loss" -> "Fat Loss".
func goalTitle(goal domain.GoalType) string {
	parts := strings.Split(string(goal), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
