package nutrition

import (
	"fmt"
	"math"
)

// BMR computes basal metabolic rate via Mifflin-St Jeor. Only male uses the
// +5 constant; female, other and prefer_not_say all use -161.
func BMR(weightKG, heightCM float64, age int, gender Gender) int {
	return int(math.Round(bmrRaw(weightKG, heightCM, age, gender)))
}

func bmrRaw(weightKG, heightCM float64, age int, gender Gender) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE multiplies BMR by the activity multiplier. Unknown levels use the
// sedentary multiplier.
func TDEE(bmr int, level ActivityLevel) int {
	return int(math.Round(float64(bmr) * multiplierFor(level)))
}

func multiplierFor(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultMultiplier
}

// MinCalories is the floor for a goal-adjusted calorie target.
func MinCalories(gender Gender) int {
	if gender == GenderMale {
		return minCaloriesMale
	}
	return minCaloriesOther
}

// AdjustForGoal applies the goal delta to TDEE and then the gender floor.
// The floor always wins, so a small TDEE on weight_loss may end up with a
// deficit below 500 kcal or none at all.
func AdjustForGoal(tdee int, goal FitnessGoal, gender Gender) int {
	return max(tdee+goalAdjustments[goal], MinCalories(gender))
}

// ActivityTarget interpolates inside the goal's kcal range by activity level.
// Unmatched levels sit at the midpoint; unmatched goals use the stay_fit range.
func ActivityTarget(goal FitnessGoal, level ActivityLevel) int {
	r := rangeFor(goal)
	return int(math.Round(float64(r.min) + float64(r.max-r.min)*weightFor(level)))
}

func rangeFor(goal FitnessGoal) kcalRange {
	if r, ok := activityRanges[goal]; ok {
		return r
	}
	return activityRanges[StayFit]
}

func weightFor(level ActivityLevel) float64 {
	if w, ok := activityWeights[level]; ok {
		return w
	}
	return defaultActivityWeight
}

/* ─── Derivation lines ───────────────────────────────────────────────── */

func describeBMR(p Profile, bmr int) string {
	formula := "10 x %.1f + 6.25 x %.1f - 5 x %d - 161"
	if p.Gender == GenderMale {
		formula = "10 x %.1f + 6.25 x %.1f - 5 x %d + 5"
	}
	return fmt.Sprintf("BMR (Mifflin-St Jeor, %s): "+formula+" = %d kcal",
		genderLabel(p.Gender), p.WeightKG, p.HeightCM, p.Age, bmr)
}

func describeTDEE(bmr int, level ActivityLevel, tdee int) string {
	return fmt.Sprintf("TDEE: %d x %g (%s) = %d kcal", bmr, multiplierFor(level), levelLabel(level), tdee)
}

func describeGoal(tdee int, goal FitnessGoal, gender Gender, adjusted int) string {
	delta := goalAdjustments[goal]
	sign := "+"
	if delta < 0 {
		sign = "-"
	}
	line := fmt.Sprintf("Goal (%s): %d %s %d = %d kcal", goalLabel(goal), tdee, sign, abs(delta), tdee+delta)
	if adjusted != tdee+delta {
		line += fmt.Sprintf(", raised to the %s minimum of %d kcal", genderLabel(gender), adjusted)
	}
	return line
}

func describeActivity(goal FitnessGoal, level ActivityLevel, target int) string {
	r := rangeFor(goal)
	return fmt.Sprintf("Activity (%s, %s): %d-%d kcal at %.0f%% = %d kcal",
		goalLabel(goal), levelLabel(level), r.min, r.max, weightFor(level)*100, target)
}

func genderLabel(g Gender) string {
	if g == "" {
		return "unspecified"
	}
	return string(g)
}

func levelLabel(l ActivityLevel) string {
	if !l.Valid() {
		return "unknown level"
	}
	return string(l)
}

func goalLabel(g FitnessGoal) string {
	if !g.Valid() {
		return "unknown goal"
	}
	return string(g)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
