// Package nutrition turns a biometric profile into daily calorie, macro and
// activity targets. Every function is pure; the lookup tables are read-only.
package nutrition

// Gender selects the Mifflin-St Jeor constant and the calorie floor.
type Gender string

const (
	GenderMale         Gender = "male"
	GenderFemale       Gender = "female"
	GenderOther        Gender = "other"
	GenderPreferNotSay Gender = "prefer_not_say"
)

// ActivityLevel is the self-reported daily activity used for the TDEE multiplier.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtraActive      ActivityLevel = "extra_active"
)

// FitnessGoal drives the calorie delta, the macro split and the activity target.
type FitnessGoal string

const (
	WeightLoss     FitnessGoal = "weight_loss"
	WeightGain     FitnessGoal = "weight_gain"
	MuscleBuilding FitnessGoal = "muscle_building"
	Recomposition  FitnessGoal = "recomposition"
	StayFit        FitnessGoal = "stay_fit"
)

// Profile is the biometric input to ComputeTargets. Units are fixed:
// centimeters, kilograms and whole years.
type Profile struct {
	HeightCM        float64       `json:"height_cm"`
	WeightKG        float64       `json:"weight_kg"`
	Age             int           `json:"age"`
	Gender          Gender        `json:"sex"`
	ActivityLevel   ActivityLevel `json:"activity_level"`
	Goal            FitnessGoal   `json:"fitness_goal"`
	FoodPreferences string        `json:"food_preferences,omitempty"`
	LocalFoodStyle  string        `json:"local_food_style,omitempty"`
}

// Targets is produced fresh by every ComputeTargets call; callers decide
// whether to persist it.
type Targets struct {
	Calories         int     `json:"target_calories"`
	ProteinG         int     `json:"target_protein_g"`
	CarbsG           int     `json:"target_carbs_g"`
	FatG             int     `json:"target_fat_g"`
	ActivityCalories int     `json:"target_activity_calories"`
	BMR              int     `json:"bmr"`
	TDEE             int     `json:"tdee"`
	Details          Details `json:"calculation_details"`
}

// Details holds one human-readable derivation line per pipeline stage.
type Details struct {
	BMR      string `json:"bmr"`
	TDEE     string `json:"tdee"`
	Goal     string `json:"goal"`
	Macros   string `json:"macros"`
	Activity string `json:"activity"`
}

// Lines returns the derivation lines in pipeline order.
func (d Details) Lines() []string {
	return []string{d.BMR, d.TDEE, d.Goal, d.Macros, d.Activity}
}

// Macros is the gram split of a calorie target.
type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Calories returns the energy of the split at 4/4/9 kcal per gram.
func (m Macros) Calories() int {
	return m.ProteinG*kcalPerGramProtein + m.CarbsG*kcalPerGramCarbs + m.FatG*kcalPerGramFat
}

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotSay:
		return true
	}
	return false
}

// Valid reports whether l has an entry in the multiplier table.
func (l ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[l]
	return ok
}

// Valid reports whether g has an entry in the goal adjustment table.
func (g FitnessGoal) Valid() bool {
	_, ok := goalAdjustments[g]
	return ok
}
