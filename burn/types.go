// Package burn estimates calories burned by a logged exercise from a MET
// table, an intensity classifier and a duration estimator. Estimates never
// fail; out-of-range inputs are clamped.
package burn

// ExerciseType selects the MET fallback, the intensity rules and the default
// duration.
type ExerciseType string

const (
	Cardio      ExerciseType = "cardio"
	Strength    ExerciseType = "strength"
	Flexibility ExerciseType = "flexibility"
	Other       ExerciseType = "other"
)

// Valid reports whether t is one of the known exercise types.
func (t ExerciseType) Valid() bool {
	switch t {
	case Cardio, Strength, Flexibility, Other:
		return true
	}
	return false
}

// ExerciseLog is a single exercise entry. Nil pointers mean the value was not
// provided. LoadKG is the weight lifted, not the user's body weight.
type ExerciseLog struct {
	Name         string       `json:"exercise_name"`
	Type         ExerciseType `json:"exercise_type"`
	DurationMin  *float64     `json:"duration_min,omitempty"`
	Sets         *int         `json:"sets,omitempty"`
	Reps         *int         `json:"reps,omitempty"`
	LoadKG       *float64     `json:"weight_kg,omitempty"`
	UserWeightKG float64      `json:"user_weight_kg"`
	Notes        string       `json:"notes,omitempty"`
}

// Intensity is the effort level inferred for an exercise.
type Intensity string

const (
	Low      Intensity = "Low"
	Moderate Intensity = "Moderate"
	High     Intensity = "High"
	VeryHigh Intensity = "Very High"
)

// Result is the outcome of Estimate. METValue is the MET after the intensity
// modifier was applied.
type Result struct {
	EstimatedCalories int       `json:"estimated_calories"`
	METValue          float64   `json:"met_value"`
	Intensity         Intensity `json:"intensity"`
	CalculationMethod string    `json:"calculation_method"`
}
