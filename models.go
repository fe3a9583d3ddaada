package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/fittrack-go-api/burn"
	"lg/fittrack-go-api/nutrition"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan date columns into
// DateOnly. NULL zeroes the time so *DateOnly fields come back nil.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// calorieLogItem maps to calorie_log_items. Exercise rows store burned
// calories as a positive number; the type column gives the direction.
type calorieLogItem struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	ItemName  string     `json:"item_name" db:"item_name"`
	Type      string     `json:"type" db:"type"`
	Qty       *float64   `json:"qty" db:"qty"`
	Uom       *string    `json:"uom" db:"uom"`
	Calories  int        `json:"calories" db:"calories"`
	ProteinG  *float64   `json:"protein_g" db:"protein_g"`
	CarbsG    *float64   `json:"carbs_g" db:"carbs_g"`
	FatG      *float64   `json:"fat_g" db:"fat_g"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// userProfile maps to user_profiles. Biometric fields are nullable so a
// freshly created user has a row before setup is finished. The target
// columns hold the last persisted targets, either typed in by the user or
// written by the target engine when budget_auto is on.
type userProfile struct {
	UserID          int       `json:"user_id"          db:"user_id"`
	Sex             *string   `json:"sex"              db:"sex"`
	DateOfBirth     *DateOnly `json:"date_of_birth"    db:"date_of_birth"`
	HeightCM        *float64  `json:"height_cm"        db:"height_cm"`
	WeightKG        *float64  `json:"weight_kg"        db:"weight_kg"`
	ActivityLevel   *string   `json:"activity_level"   db:"activity_level"`
	FitnessGoal     *string   `json:"fitness_goal"     db:"fitness_goal"`
	FoodPreferences *string   `json:"food_preferences" db:"food_preferences"`
	LocalFoodStyle  *string   `json:"local_food_style" db:"local_food_style"`

	BudgetAuto             bool `json:"budget_auto"              db:"budget_auto"`
	CalorieBudget          int  `json:"calorie_budget"           db:"calorie_budget"`
	ProteinTargetG         int  `json:"protein_target_g"         db:"protein_target_g"`
	CarbsTargetG           int  `json:"carbs_target_g"           db:"carbs_target_g"`
	FatTargetG             int  `json:"fat_target_g"             db:"fat_target_g"`
	ExerciseTargetCalories int  `json:"exercise_target_calories" db:"exercise_target_calories"`

	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`

	// Populated server-side from the profile; not stored.
	Age          *int `json:"age,omitempty"           db:"-"`
	ComputedBMR  *int `json:"computed_bmr,omitempty"  db:"-"`
	ComputedTDEE *int `json:"computed_tdee,omitempty" db:"-"`
}

// weightEntry maps to weight_log. One row per user per date.
type weightEntry struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	WeightKG  float64    `json:"weight_kg" db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

/* ─── Responses ──────────────────────────────────────────────────────── */

// dailySummary is the response shape for GET /calorie-log/daily.
type dailySummary struct {
	Date                 string           `json:"date"`
	CalorieBudget        int              `json:"calorie_budget"`
	CaloriesFood         int              `json:"calories_food"`
	CaloriesExercise     int              `json:"calories_exercise"`
	NetCalories          int              `json:"net_calories"`
	CaloriesLeft         int              `json:"calories_left"`
	ProteinG             float64          `json:"protein_g"`
	CarbsG               float64          `json:"carbs_g"`
	FatG                 float64          `json:"fat_g"`
	ProteinTargetG       int              `json:"protein_target_g"`
	CarbsTargetG         int              `json:"carbs_target_g"`
	FatTargetG           int              `json:"fat_target_g"`
	ExerciseTarget       int              `json:"exercise_target_calories"`
	ExerciseCaloriesLeft int              `json:"exercise_calories_left"`
	HasData              bool             `json:"has_data"`
	Items                []calorieLogItem `json:"items"`
}

// progressStats aggregates the tracked days of a range. Averages are integer
// kcal over tracked days only.
type progressStats struct {
	DaysTracked         int `json:"days_tracked"`
	DaysOnBudget        int `json:"days_on_budget"`
	DaysExerciseMet     int `json:"days_exercise_target_met"`
	AvgCaloriesFood     int `json:"avg_calories_food"`
	AvgCaloriesExercise int `json:"avg_calories_exercise"`
	AvgNetCalories      int `json:"avg_net_calories"`
	TotalCaloriesLeft   int `json:"total_calories_left"`
}

// progressResponse is the response shape for GET /calorie-log/progress.
type progressResponse struct {
	Days  []dailySummary `json:"days"`
	Stats progressStats  `json:"stats"`
}

// targetsResponse pairs computed targets with the engine input that produced them.
type targetsResponse struct {
	Profile nutrition.Profile `json:"profile"`
	Targets nutrition.Targets `json:"targets"`
}

// exerciseLogResponse is returned by POST /api/calorie-log/exercise.
type exerciseLogResponse struct {
	Item     calorieLogItem `json:"item"`
	Estimate burn.Result    `json:"estimate"`
}

/* ─── Requests ───────────────────────────────────────────────────────── */

// createCalorieLogItemRequest is the request body for POST /api/calorie-log/items.
type createCalorieLogItemRequest struct {
	Date     string   `json:"date"`
	ItemName string   `json:"item_name"`
	Type     string   `json:"type"`
	Qty      *float64 `json:"qty"`
	Uom      *string  `json:"uom"`
	Calories int      `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// patchCalorieLogItemRequest is the request body for PUT
// /api/calorie-log/items/:id. Nil fields keep their stored value.
type patchCalorieLogItemRequest struct {
	Date     *string  `json:"date"`
	ItemName *string  `json:"item_name"`
	Type     *string  `json:"type"`
	Qty      *float64 `json:"qty"`
	Uom      *string  `json:"uom"`
	Calories *int     `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// patchProfileRequest is the request body for PATCH /api/profile. All fields
// are pointers; only non-nil fields get written.
type patchProfileRequest struct {
	Sex                    *string  `json:"sex"`
	DateOfBirth            *string  `json:"date_of_birth"` // YYYY-MM-DD
	HeightCM               *float64 `json:"height_cm"`
	WeightKG               *float64 `json:"weight_kg"`
	ActivityLevel          *string  `json:"activity_level"`
	FitnessGoal            *string  `json:"fitness_goal"`
	FoodPreferences        *string  `json:"food_preferences"`
	LocalFoodStyle         *string  `json:"local_food_style"`
	BudgetAuto             *bool    `json:"budget_auto"`
	CalorieBudget          *int     `json:"calorie_budget"`
	ProteinTargetG         *int     `json:"protein_target_g"`
	CarbsTargetG           *int     `json:"carbs_target_g"`
	FatTargetG             *int     `json:"fat_target_g"`
	ExerciseTargetCalories *int     `json:"exercise_target_calories"`
}

// logExerciseRequest is the body for POST /api/calorie-log/exercise. The
// user's weight is optional here and looked up when omitted.
type logExerciseRequest struct {
	Date         string            `json:"date"`
	Name         string            `json:"exercise_name"`
	Type         burn.ExerciseType `json:"exercise_type"`
	DurationMin  *float64          `json:"duration_min"`
	Sets         *int              `json:"sets"`
	Reps         *int              `json:"reps"`
	LoadKG       *float64          `json:"weight_kg"`
	UserWeightKG *float64          `json:"user_weight_kg"`
	Notes        string            `json:"notes"`
}
