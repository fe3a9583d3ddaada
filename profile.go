package main

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/fittrack-go-api/nutrition"
)

// errProfileIncomplete means a required biometric field is still unset.
var errProfileIncomplete = errors.New("profile incomplete")

// ageOn returns the whole years between dob and now.
func ageOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// engineProfile converts a stored profile into target engine input. Age is
// derived from date_of_birth at call time. Returns errProfileIncomplete when
// sex, date of birth, height, weight, activity level or goal is missing.
func engineProfile(p userProfile, now time.Time) (nutrition.Profile, error) {
	if p.Sex == nil || p.DateOfBirth == nil || p.HeightCM == nil ||
		p.WeightKG == nil || p.ActivityLevel == nil || p.FitnessGoal == nil {
		return nutrition.Profile{}, errProfileIncomplete
	}
	in := nutrition.Profile{
		HeightCM:      *p.HeightCM,
		WeightKG:      *p.WeightKG,
		Age:           ageOn(p.DateOfBirth.Time, now),
		Gender:        nutrition.Gender(*p.Sex),
		ActivityLevel: nutrition.ActivityLevel(*p.ActivityLevel),
		Goal:          nutrition.FitnessGoal(*p.FitnessGoal),
	}
	if p.FoodPreferences != nil {
		in.FoodPreferences = *p.FoodPreferences
	}
	if p.LocalFoodStyle != nil {
		in.LocalFoodStyle = *p.LocalFoodStyle
	}
	return in, nil
}

// populateComputed fills age, BMR and TDEE when the profile is complete and
// valid. Leaves them nil otherwise.
func populateComputed(p *userProfile, now time.Time) {
	in, err := engineProfile(*p, now)
	if err != nil {
		return
	}
	age := in.Age
	p.Age = &age
	t, err := nutrition.ComputeTargets(in)
	if err != nil {
		return
	}
	p.ComputedBMR = &t.BMR
	p.ComputedTDEE = &t.TDEE
}

// validateProfilePatch checks enum and range fields before anything is
// written. An unknown enum would silently break every later target computation.
func validateProfilePatch(body patchProfileRequest) string {
	if body.Sex != nil && !nutrition.Gender(*body.Sex).Valid() {
		return "sex must be one of: male, female, other, prefer_not_say"
	}
	if body.ActivityLevel != nil && !nutrition.ActivityLevel(*body.ActivityLevel).Valid() {
		return "activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extra_active"
	}
	if body.FitnessGoal != nil && !nutrition.FitnessGoal(*body.FitnessGoal).Valid() {
		return "fitness_goal must be one of: weight_loss, weight_gain, muscle_building, recomposition, stay_fit"
	}
	if body.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return "invalid date_of_birth, expected YYYY-MM-DD"
		}
		if age := ageOn(dob, time.Now()); age <= 0 || age > 130 {
			return "date_of_birth must give an age between 1 and 130"
		}
	}
	if body.HeightCM != nil && (*body.HeightCM <= 0 || *body.HeightCM > 300) {
		return "height_cm must be between 0 and 300"
	}
	if body.WeightKG != nil && (*body.WeightKG <= 0 || *body.WeightKG > 700) {
		return "weight_kg must be between 0 and 700"
	}
	return ""
}

// getProfile returns the authenticated user's profile with computed fields.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := h.loadProfile(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}

	populateComputed(&p, time.Now())
	c.JSON(http.StatusOK, p)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. When budget_auto is on after the update and the profile
// is complete, targets are recomputed and persisted, overwriting any manual
// target sent in the same request.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfilePatch(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	setClauses, args := profileSetClauses(body)
	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	args["userID"] = userID

	query := "UPDATE user_profiles SET " +
		strings.Join(setClauses, ", ") +
		", updated_at = now() WHERE user_id = @userID RETURNING *"

	p, err := queryOne[userProfile](h.db, c, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	if p.BudgetAuto {
		p = h.applyComputedTargets(c, p)
	}

	populateComputed(&p, time.Now())
	c.JSON(http.StatusOK, p)
}

// profileSetClauses builds the dynamic SET clause from the non-nil fields.
func profileSetClauses(body patchProfileRequest) ([]string, pgx.NamedArgs) {
	setClauses := []string{}
	args := pgx.NamedArgs{}

	add := func(column, arg string, value any) {
		setClauses = append(setClauses, column+" = @"+arg)
		args[arg] = value
	}
	if body.Sex != nil {
		add("sex", "sex", *body.Sex)
	}
	if body.DateOfBirth != nil {
		add("date_of_birth", "dateOfBirth", *body.DateOfBirth)
	}
	if body.HeightCM != nil {
		add("height_cm", "heightCM", *body.HeightCM)
	}
	if body.WeightKG != nil {
		add("weight_kg", "weightKG", *body.WeightKG)
	}
	if body.ActivityLevel != nil {
		add("activity_level", "activityLevel", *body.ActivityLevel)
	}
	if body.FitnessGoal != nil {
		add("fitness_goal", "fitnessGoal", *body.FitnessGoal)
	}
	if body.FoodPreferences != nil {
		add("food_preferences", "foodPreferences", *body.FoodPreferences)
	}
	if body.LocalFoodStyle != nil {
		add("local_food_style", "localFoodStyle", *body.LocalFoodStyle)
	}
	if body.BudgetAuto != nil {
		add("budget_auto", "budgetAuto", *body.BudgetAuto)
	}
	if body.CalorieBudget != nil {
		add("calorie_budget", "calorieBudget", *body.CalorieBudget)
	}
	if body.ProteinTargetG != nil {
		add("protein_target_g", "proteinTargetG", *body.ProteinTargetG)
	}
	if body.CarbsTargetG != nil {
		add("carbs_target_g", "carbsTargetG", *body.CarbsTargetG)
	}
	if body.FatTargetG != nil {
		add("fat_target_g", "fatTargetG", *body.FatTargetG)
	}
	if body.ExerciseTargetCalories != nil {
		add("exercise_target_calories", "exerciseTargetCalories", *body.ExerciseTargetCalories)
	}
	return setClauses, args
}

// applyComputedTargets runs the target engine over p and persists the result.
// On an incomplete profile or a failed write the original row is returned
// unchanged.
func (h *Handler) applyComputedTargets(c *gin.Context, p userProfile) userProfile {
	in, err := engineProfile(p, time.Now())
	if err != nil {
		return p
	}
	t, err := nutrition.ComputeTargets(in)
	if err != nil {
		log.Printf("[applyComputedTargets] user %d: %v", p.UserID, err)
		return p
	}

	updated, err := queryOne[userProfile](h.db, c,
		`UPDATE user_profiles SET
			calorie_budget = @calories,
			protein_target_g = @protein,
			carbs_target_g = @carbs,
			fat_target_g = @fat,
			exercise_target_calories = @activity
		 WHERE user_id = @userID RETURNING *`,
		pgx.NamedArgs{
			"calories": t.Calories, "protein": t.ProteinG, "carbs": t.CarbsG,
			"fat": t.FatG, "activity": t.ActivityCalories, "userID": p.UserID,
		})
	if err != nil {
		log.Printf("[applyComputedTargets] auto-target update failed for user %d: %v", p.UserID, err)
		return p
	}
	return updated
}

// loadProfile fetches the stored profile row for a user.
func (h *Handler) loadProfile(c *gin.Context, userID int) (userProfile, error) {
	return queryOne[userProfile](h.db, c,
		"SELECT * FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}
