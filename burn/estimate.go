package burn

import (
	"fmt"
	"log"
	"math"
)

const (
	minCalories = 1
	maxCalories = 2000
)

// Estimate computes calories as MET x intensity modifier x body weight x
// hours, rounded and clamped to [1, 2000]. It never fails: a clamped result
// carries "(capped)" in its method string and an upper clamp is logged.
func Estimate(e ExerciseLog) Result {
	baseMET, match := ResolveMET(e.Name, e.Type)
	level, modifier := ClassifyIntensity(e)
	hours := EstimateDuration(e)

	met := baseMET * modifier
	raw := met * e.UserWeightKG * hours
	calories, capped := clampCalories(raw)
	if raw > maxCalories {
		log.Printf("[Estimate] WARNING: raw estimate %.0f kcal clamped to %d (name=%q type=%s met=%.2f match=%s weight=%.1fkg hours=%.2f)",
			raw, maxCalories, e.Name, e.Type, met, match.Kind, e.UserWeightKG, hours)
	}

	method := fmt.Sprintf("%.2f MET (%s) x %.1f kg x %.2f h = %d kcal", met, level, e.UserWeightKG, hours, calories)
	if capped {
		method += " (capped)"
	}
	return Result{
		EstimatedCalories: calories,
		METValue:          math.Round(met*100) / 100,
		Intensity:         level,
		CalculationMethod: method,
	}
}

// clampCalories rounds a raw estimate into [1, 2000] and reports whether the
// bounds were applied. NaN from a garbage weight counts as the lower bound.
func clampCalories(raw float64) (int, bool) {
	switch {
	case math.IsNaN(raw) || raw < minCalories:
		return minCalories, true
	case raw > maxCalories:
		return maxCalories, true
	}
	return int(math.Round(raw)), false
}
