package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/fittrack-go-api/nutrition"
)

// previewTargets computes targets for an arbitrary profile without touching
// the database. POST /api/targets/preview.
func (h *Handler) previewTargets(c *gin.Context) {
	var in nutrition.Profile
	if err := c.ShouldBindJSON(&in); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateEnums(in); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	t, err := nutrition.ComputeTargets(in)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, targetsResponse{Profile: in, Targets: t})
}

// validateEnums rejects unknown enum values. The engine would quietly fall
// back to defaults for them.
func validateEnums(in nutrition.Profile) string {
	switch {
	case !in.Gender.Valid():
		return "sex must be one of: male, female, other, prefer_not_say"
	case !in.ActivityLevel.Valid():
		return "activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extra_active"
	case !in.Goal.Valid():
		return "fitness_goal must be one of: weight_loss, weight_gain, muscle_building, recomposition, stay_fit"
	}
	return ""
}

// getTargets computes targets from the authenticated user's stored profile.
// GET /api/targets. Returns 422 while the profile is incomplete.
func (h *Handler) getTargets(c *gin.Context) {
	resp, ok := h.storedTargets(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// storedTargets loads the caller's profile and runs the target engine. On
// failure it writes the error response and returns ok=false.
func (h *Handler) storedTargets(c *gin.Context) (targetsResponse, bool) {
	userID := c.GetInt("user_id")

	p, err := h.loadProfile(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return targetsResponse{}, false
	}

	in, err := engineProfile(p, time.Now())
	if err != nil {
		apiError(c, http.StatusUnprocessableEntity, "profile is incomplete: sex, date_of_birth, height_cm, weight_kg, activity_level and fitness_goal are required")
		return targetsResponse{}, false
	}
	t, err := nutrition.ComputeTargets(in)
	if err != nil {
		apiError(c, http.StatusUnprocessableEntity, err.Error())
		return targetsResponse{}, false
	}
	return targetsResponse{Profile: in, Targets: t}, true
}
