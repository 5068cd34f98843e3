package coach

import (
	"math"

	"alcyxob/fitness-coach/internal/domain"
)

// Calorie adjustment applied to TDEE per goal type. Goals not listed train
// at maintenance.
var goalCalorieMultipliers = map[domain.GoalType]float64{
	domain.GoalFatLoss:     0.80,
	domain.GoalHypertrophy: 1.10,
}

// defaultSplit is the calorie allocation used when the profile carries no
// custom macro split: 30% protein / 40% carbs / 30% fat.
var defaultSplit = domain.MacroSplit{Protein: 0.30, Carbs: 0.40, Fat: 0.30}

// Energy density per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// MacroTargets are daily nutrition targets for display.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// MacroPlanner converts energy expenditure and a goal into calorie and
// macro-gram targets. Pure; safe to share.
type MacroPlanner struct{}

// NewMacroPlanner creates a new MacroPlanner.
func NewMacroPlanner() *MacroPlanner {
	return &MacroPlanner{}
}

// CalculateTargets adjusts tdee by the goal multiplier and splits the result
// into grams. Protein and carb grams are rounded from the split directly;
// fat grams absorb the rounding residual so that
// proteinG*4 + carbsG*4 + fatG*9 always lands within 4.5 kcal of Calories.
func (m *MacroPlanner) CalculateTargets(profile *domain.Profile, goal domain.GoalType, tdee float64) MacroTargets {
	mult, ok := goalCalorieMultipliers[goal]
	if !ok {
		mult = 1.0
	}
	calories := math.Round(tdee * mult)

	split := defaultSplit
	if profile.MacroSplit != nil {
		split = *profile.MacroSplit
	}

	proteinG := math.Round(calories * split.Protein / kcalPerGramProtein)
	carbsG := math.Round(calories * split.Carbs / kcalPerGramCarbs)
	fatG := math.Round((calories - proteinG*kcalPerGramProtein - carbsG*kcalPerGramCarbs) / kcalPerGramFat)

	return MacroTargets{
		Calories: int(calories),
		ProteinG: int(proteinG),
		CarbsG:   int(carbsG),
		FatG:     int(fatG),
	}
}
