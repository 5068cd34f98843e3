package coach

import "alcyxob/fitness-coach/internal/domain"

// Slot is one exercise position within a day template: the body part the
// generator must fill, plus an optional movement category hint for display.
type Slot struct {
	BodyPart string
	Category string
}

// DayTemplate is an ordered list of slots plus the name shown to the user.
type DayTemplate struct {
	Name  string
	Slots []Slot
}

// Split templates, keyed off training frequency:
//
//	<=3 days  full-body every session
//	4 days    upper/lower alternation
//	5-6 days  push/pull/legs rotation
//
// Goal type nudges slot emphasis (extra leg/core volume for endurance and
// fat loss, an extra arms slot for hypertrophy).
var (
	fullBodyTemplate = DayTemplate{
		Name: "Full Body",
		Slots: []Slot{
			{BodyPart: "legs", Category: "squat"},
			{BodyPart: "chest", Category: "push"},
			{BodyPart: "back", Category: "pull"},
			{BodyPart: "shoulders", Category: "push"},
			{BodyPart: "core", Category: "core"},
		},
	}
	upperTemplate = DayTemplate{
		Name: "Upper Body",
		Slots: []Slot{
			{BodyPart: "chest", Category: "push"},
			{BodyPart: "back", Category: "pull"},
			{BodyPart: "shoulders", Category: "push"},
			{BodyPart: "arms", Category: "isolation"},
		},
	}
	lowerTemplate = DayTemplate{
		Name: "Lower Body",
		Slots: []Slot{
			{BodyPart: "legs", Category: "squat"},
			{BodyPart: "legs", Category: "hinge"},
			{BodyPart: "glutes", Category: "hinge"},
			{BodyPart: "core", Category: "core"},
		},
	}
	pushTemplate = DayTemplate{
		Name: "Push",
		Slots: []Slot{
			{BodyPart: "chest", Category: "push"},
			{BodyPart: "shoulders", Category: "push"},
			{BodyPart: "arms", Category: "isolation"},
		},
	}
	pullTemplate = DayTemplate{
		Name: "Pull",
		Slots: []Slot{
			{BodyPart: "back", Category: "pull"},
			{BodyPart: "arms", Category: "isolation"},
			{BodyPart: "core", Category: "core"},
		},
	}
	legsTemplate = DayTemplate{
		Name: "Legs",
		Slots: []Slot{
			{BodyPart: "legs", Category: "squat"},
			{BodyPart: "glutes", Category: "hinge"},
			{BodyPart: "core", Category: "core"},
		},
	}
)

// TemplateBodyParts returns the distinct body parts any split template can
// ask for, in stable order. Callers use it to materialize catalog snapshots
// that cover every slot the generator might fill.
func TemplateBodyParts() []string {
	return []string{"arms", "back", "chest", "core", "glutes", "legs", "shoulders"}
}

// templatesFor returns one DayTemplate per scheduled day.
func templatesFor(daysPerWeek int, goal domain.GoalType) []DayTemplate {
	var rotation []DayTemplate
	switch {
	case daysPerWeek <= 3:
		for i := 0; i < daysPerWeek; i++ {
			rotation = append(rotation, emphasize(fullBodyTemplate, goal))
		}
	case daysPerWeek == 4:
		rotation = []DayTemplate{
			emphasize(upperTemplate, goal),
			emphasize(lowerTemplate, goal),
			emphasize(upperTemplate, goal),
			emphasize(lowerTemplate, goal),
		}
	default: // 5-6 days
		ppl := []DayTemplate{pushTemplate, pullTemplate, legsTemplate}
		for i := 0; i < daysPerWeek; i++ {
			rotation = append(rotation, emphasize(ppl[i%len(ppl)], goal))
		}
	}
	return rotation
}

// emphasize appends a goal-specific slot to a copy of the template.
func emphasize(t DayTemplate, goal domain.GoalType) DayTemplate {
	out := DayTemplate{Name: t.Name, Slots: make([]Slot, len(t.Slots))}
	copy(out.Slots, t.Slots)
	switch goal {
	case domain.GoalEndurance, domain.GoalFatLoss:
		out.Slots = append(out.Slots, Slot{BodyPart: "core", Category: "conditioning"})
	case domain.GoalHypertrophy:
		out.Slots = append(out.Slots, Slot{BodyPart: "arms", Category: "isolation"})
	}
	return out
}

// prescription holds the base set scheme for a goal before experience and
// weekly progression are applied.
type prescription struct {
	Sets        int
	RepsMin     int
	RepsMax     int
	RestSeconds int
	RPE         float64
}

// Base prescriptions per goal: low reps and long rest for strength, moderate
// for hypertrophy, high reps and short rest for endurance.
var goalPrescriptions = map[domain.GoalType]prescription{
	domain.GoalStrength:       {Sets: 5, RepsMin: 3, RepsMax: 5, RestSeconds: 180, RPE: 8},
	domain.GoalHypertrophy:    {Sets: 4, RepsMin: 8, RepsMax: 12, RestSeconds: 90, RPE: 7.5},
	domain.GoalFatLoss:        {Sets: 3, RepsMin: 10, RepsMax: 15, RestSeconds: 60, RPE: 7},
	domain.GoalEndurance:      {Sets: 3, RepsMin: 15, RepsMax: 20, RestSeconds: 45, RPE: 6.5},
	domain.GoalGeneralFitness: {Sets: 3, RepsMin: 8, RepsMax: 12, RestSeconds: 75, RPE: 7},
}

// DifficultyCeilingFor maps experience level to the selector's ceiling.
func DifficultyCeilingFor(exp domain.ExperienceLevel) domain.Difficulty {
	switch exp {
	case domain.ExperienceAdvanced:
		return domain.DifficultyAdvanced
	case domain.ExperienceIntermediate:
		return domain.DifficultyIntermediate
	default:
		return domain.DifficultyBeginner
	}
}
