package nutrition

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	minCaloriesMale  = 1500
	minCaloriesOther = 1200

	// Protein calories are kept inside this share of the calorie target.
	minProteinShare = 0.20
	maxProteinShare = 0.35

	defaultMultiplier     = 1.2
	defaultProteinPerKG   = 1.8
	defaultFatShare       = 0.28
	defaultActivityWeight = 0.5
)

// activityMultipliers maps activity levels to their TDEE multiplier. Also the
// source of truth for ActivityLevel.Valid.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// goalAdjustments is the kcal delta applied to TDEE for each goal.
var goalAdjustments = map[FitnessGoal]int{
	WeightLoss:     -500,
	WeightGain:     400,
	MuscleBuilding: 350,
	Recomposition:  0,
	StayFit:        -250,
}

var proteinPerKG = map[FitnessGoal]float64{
	MuscleBuilding: 2.2,
	Recomposition:  2.2,
	WeightLoss:     2.0,
	WeightGain:     1.8,
	StayFit:        1.8,
}

var fatShare = map[FitnessGoal]float64{
	WeightLoss:     0.25,
	MuscleBuilding: 0.30,
	WeightGain:     0.30,
	Recomposition:  0.28,
	StayFit:        0.28,
}

type kcalRange struct {
	min, max int
}

// activityRanges is the kcal window a user should burn through exercise.
var activityRanges = map[FitnessGoal]kcalRange{
	WeightLoss:     {300, 500},
	WeightGain:     {200, 400},
	MuscleBuilding: {300, 500},
	Recomposition:  {250, 450},
	StayFit:        {200, 400},
}

// activityWeights positions the activity target inside its goal range.
var activityWeights = map[ActivityLevel]float64{
	Sedentary:        0,
	LightlyActive:    0.25,
	ModeratelyActive: 0.5,
	VeryActive:       0.75,
	ExtraActive:      1,
}

// foodStyleRule nudges the fat share when the local food style mentions any
// of its keywords. Rules are evaluated top to bottom and the first match wins.
type foodStyleRule struct {
	name     string
	keywords []string
	delta    float64
	limit    float64 // floor for negative deltas, ceiling for positive ones
}

var foodStyleRules = []foodStyleRule{
	{name: "south indian", keywords: []string{"south indian", "tamil", "kerala"}, delta: -0.03, limit: 0.20},
	{name: "mediterranean/keto", keywords: []string{"mediterranean", "keto"}, delta: 0.05, limit: 0.35},
}
