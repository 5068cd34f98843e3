package coach

import (
	"fmt"

	"alcyxob/fitness-coach/internal/domain"
)

// activityFactors is the fixed TDEE multiplier table.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// MissingBiometricError reports which required profile field is absent or
// non-positive, so the UI can point the user at the exact gap.
type MissingBiometricError struct {
	Field string
}

func (e *MissingBiometricError) Error() string {
	return fmt.Sprintf("missing or invalid biometric data: %s", e.Field)
}

// EnergyTargets is the output of the energy calculation, in kcal/day.
type EnergyTargets struct {
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
}

// Analyzer computes basal and total daily energy expenditure from profile
// biometrics. Pure; safe to share.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// CalculateEnergy computes BMR via Mifflin-St Jeor and scales it by the
// activity factor. The sex offset is +5 (male), -161 (female), or their
// average -78 for "other".
func (a *Analyzer) CalculateEnergy(profile *domain.Profile) (EnergyTargets, error) {
	if profile.Age <= 0 {
		return EnergyTargets{}, &MissingBiometricError{Field: "age"}
	}
	if profile.HeightCM <= 0 {
		return EnergyTargets{}, &MissingBiometricError{Field: "height"}
	}
	if profile.WeightKG <= 0 {
		return EnergyTargets{}, &MissingBiometricError{Field: "weight"}
	}

	bmr := 10*profile.WeightKG + 6.25*profile.HeightCM - 5*float64(profile.Age)
	switch profile.Sex {
	case domain.SexMale:
		bmr += 5
	case domain.SexFemale:
		bmr -= 161
	default:
		bmr -= 78 // midpoint of the male/female offsets
	}

	factor, ok := activityFactors[profile.ActivityLevel]
	if !ok {
		// Unset or unrecognized levels fall back to sedentary rather than
		// overstating the budget.
		factor = activityFactors[domain.ActivitySedentary]
	}

	return EnergyTargets{BMR: bmr, TDEE: bmr * factor}, nil
}
