package nutrition

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// ErrInvalidProfile is returned by ComputeTargets when a biometric value is
// not positive.
var ErrInvalidProfile = errors.New("invalid profile")

// Below these the targets are still returned but logged as unrealistic.
const (
	lowProteinG         = 30
	lowCarbsG           = 50
	lowFatG             = 20
	lowActivityCalories = 200

	macroSumTolerance    = 0.10
	macroSumToleranceMin = 50
)

// ComputeTargets runs the full pipeline: BMR, TDEE, goal adjustment, macro
// split and activity target. Only positivity of height, weight and age is
// checked; the first violation is reported.
func ComputeTargets(p Profile) (Targets, error) {
	if err := validate(p); err != nil {
		return Targets{}, err
	}

	bmr := BMR(p.WeightKG, p.HeightCM, p.Age, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)
	calories := AdjustForGoal(tdee, p.Goal, p.Gender)
	split := splitMacros(calories, p.WeightKG, p.Goal, p.LocalFoodStyle)
	macros := split.rounded()
	activity := ActivityTarget(p.Goal, p.ActivityLevel)

	t := Targets{
		Calories:         calories,
		ProteinG:         macros.ProteinG,
		CarbsG:           macros.CarbsG,
		FatG:             macros.FatG,
		ActivityCalories: activity,
		BMR:              bmr,
		TDEE:             tdee,
		Details: Details{
			BMR:      describeBMR(p, bmr),
			TDEE:     describeTDEE(bmr, p.ActivityLevel, tdee),
			Goal:     describeGoal(tdee, p.Goal, p.Gender, calories),
			Macros:   split.describe(p.WeightKG),
			Activity: describeActivity(p.Goal, p.ActivityLevel, activity),
		},
	}
	warnUnrealistic(t)
	return t, nil
}

func validate(p Profile) error {
	switch {
	case p.HeightCM <= 0 || math.IsNaN(p.HeightCM):
		return fmt.Errorf("%w: height_cm must be positive, got %v", ErrInvalidProfile, p.HeightCM)
	case p.WeightKG <= 0 || math.IsNaN(p.WeightKG):
		return fmt.Errorf("%w: weight_kg must be positive, got %v", ErrInvalidProfile, p.WeightKG)
	case p.Age <= 0:
		return fmt.Errorf("%w: age must be positive, got %d", ErrInvalidProfile, p.Age)
	}
	return nil
}

// MacroSumDrift is the gap between the calorie target and the energy of the
// gram split. The targets are considered consistent while it stays within
// max(10% of the target, 50 kcal).
func MacroSumDrift(t Targets) (drift int, ok bool) {
	m := Macros{ProteinG: t.ProteinG, CarbsG: t.CarbsG, FatG: t.FatG}
	drift = abs(t.Calories - m.Calories())
	tolerance := max(float64(t.Calories)*macroSumTolerance, macroSumToleranceMin)
	return drift, float64(drift) <= tolerance
}

func warnUnrealistic(t Targets) {
	if drift, ok := MacroSumDrift(t); !ok {
		log.Printf("[ComputeTargets] WARNING: macros drift %d kcal from the %d kcal target (protein=%dg carbs=%dg fat=%dg)",
			drift, t.Calories, t.ProteinG, t.CarbsG, t.FatG)
	}
	if t.ProteinG < lowProteinG || t.CarbsG < lowCarbsG || t.FatG < lowFatG {
		log.Printf("[ComputeTargets] WARNING: unrealistically low macro targets (protein=%dg carbs=%dg fat=%dg)",
			t.ProteinG, t.CarbsG, t.FatG)
	}
	if t.ActivityCalories < lowActivityCalories {
		log.Printf("[ComputeTargets] WARNING: activity target %d kcal is below %d kcal", t.ActivityCalories, lowActivityCalories)
	}
}
