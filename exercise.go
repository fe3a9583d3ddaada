package main

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/fittrack-go-api/burn"
	"lg/fittrack-go-api/internal/ptr"
)

// errNoBodyWeight means neither the request, the weight log nor the profile
// has a body weight for the user.
var errNoBodyWeight = errors.New("no body weight on record")

// validateExercise checks what the HTTP boundary requires before the burn
// engine runs. The engine itself clamps everything else.
func validateExercise(name string, t burn.ExerciseType) string {
	if strings.TrimSpace(name) == "" {
		return "exercise_name is required"
	}
	if !t.Valid() {
		return "exercise_type must be one of: cardio, strength, flexibility, other"
	}
	return ""
}

// estimateExercise returns a calorie burn estimate without saving it.
// POST /api/exercise/estimate.
func (h *Handler) estimateExercise(c *gin.Context) {
	var body burn.ExerciseLog
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateExercise(body.Name, body.Type); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body.UserWeightKG <= 0 {
		apiError(c, http.StatusBadRequest, "user_weight_kg must be positive")
		return
	}

	c.JSON(http.StatusOK, burn.Estimate(body))
}

// logExercise estimates a burn and saves it as an exercise calorie log item.
// POST /api/calorie-log/exercise. When user_weight_kg is omitted the latest
// weight log entry is used, then the profile weight.
func (h *Handler) logExercise(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body logExerciseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateExercise(body.Name, body.Type); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body.UserWeightKG != nil && *body.UserWeightKG <= 0 {
		apiError(c, http.StatusBadRequest, "user_weight_kg must be positive")
		return
	}
	date, ok := logDate(body.Date)
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	weightKG, err := h.resolveBodyWeight(c, userID, body.UserWeightKG)
	if err != nil {
		if errors.Is(err, errNoBodyWeight) {
			apiError(c, http.StatusUnprocessableEntity, "user_weight_kg is required until a weight is logged")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to look up body weight")
		}
		return
	}

	entry := burn.ExerciseLog{
		Name:         body.Name,
		Type:         body.Type,
		DurationMin:  body.DurationMin,
		Sets:         body.Sets,
		Reps:         body.Reps,
		LoadKG:       body.LoadKG,
		UserWeightKG: weightKG,
		Notes:        body.Notes,
	}
	est := burn.Estimate(entry)
	qty, uom := exerciseQuantity(entry)

	item, err := h.insertLogItem(c, userID, createCalorieLogItemRequest{
		Date:     date,
		ItemName: body.Name,
		Type:     "exercise",
		Qty:      qty,
		Uom:      uom,
		Calories: est.EstimatedCalories,
	})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, exerciseLogResponse{Item: item, Estimate: est})
}

// exerciseQuantity picks what to show in the log's qty/uom columns: the
// duration actually used for the estimate in minutes, or the set count when
// the duration came from sets and reps.
func exerciseQuantity(e burn.ExerciseLog) (*float64, *string) {
	if e.DurationMin == nil || *e.DurationMin <= 0 {
		if e.Type == burn.Strength && e.Sets != nil && e.Reps != nil {
			return ptr.Ref(float64(*e.Sets)), ptr.Ref(fmt.Sprintf("sets x %d", *e.Reps))
		}
	}
	minutes := burn.EstimateDuration(e) * 60
	return ptr.Ref(math.Round(minutes*10) / 10), ptr.Ref("minutes")
}

// resolveBodyWeight returns the explicit weight when given, otherwise the
// latest weight log entry, otherwise the profile weight.
func (h *Handler) resolveBodyWeight(c *gin.Context, userID int, explicit *float64) (float64, error) {
	if explicit != nil {
		return *explicit, nil
	}

	latest, err := h.latestWeight(c, userID)
	if err == nil {
		return latest.WeightKG, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	p, err := h.loadProfile(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errNoBodyWeight
		}
		return 0, err
	}
	if p.WeightKG == nil || *p.WeightKG <= 0 {
		return 0, errNoBodyWeight
	}
	return *p.WeightKG, nil
}
