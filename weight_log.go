package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const maxWeightKG = 700

// getWeightLog returns weight entries for the authenticated user within [start, end].
// GET /api/weight-log?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
func (h *Handler) getWeightLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	entries, err := queryMany[weightEntry](h.db, c,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch weight log")
		return
	}
	if entries == nil {
		entries = []weightEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// parseDateRange reads and validates the start/end query params. On failure
// it writes a 400 and returns ok=false.
func parseDateRange(c *gin.Context) (start, end string, ok bool) {
	start = c.Query("start")
	end = c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return "", "", false
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return "", "", false
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return "", "", false
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return "", "", false
	}
	return start, end, true
}

// upsertWeightEntry records the weight for a date, replacing any earlier
// value for that date. POST /api/weight-log, body {"date", "weight_kg"};
// date defaults to today. The newest entry also becomes the profile weight.
func (h *Handler) upsertWeightEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Date     string  `json:"date"`
		WeightKG float64 `json:"weight_kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	date, ok := logDate(body.Date)
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.WeightKG <= 0 || body.WeightKG > maxWeightKG {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 0 and 700")
		return
	}

	entry, err := queryOne[weightEntry](h.db, c,
		`INSERT INTO weight_log (user_id, date, weight_kg)
		 VALUES (@userID, @date, @weightKG)
		 ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "date": date, "weightKG": body.WeightKG})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to upsert weight entry")
		return
	}

	h.syncProfileWeight(c, userID, entry)
	c.JSON(http.StatusCreated, entry)
}

// syncProfileWeight copies entry's weight onto the profile when it is the
// newest entry, then recomputes targets for budget_auto profiles. Failures
// are logged; the weight entry itself is already saved.
func (h *Handler) syncProfileWeight(c *gin.Context, userID int, entry weightEntry) {
	p, err := queryOne[userProfile](h.db, c,
		`UPDATE user_profiles SET weight_kg = @weightKG, updated_at = now()
		 WHERE user_id = @userID
		   AND NOT EXISTS (SELECT 1 FROM weight_log WHERE user_id = @userID AND date > @date)
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "weightKG": entry.WeightKG, "date": entry.Date.Time})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("[syncProfileWeight] user %d: %v", userID, err)
		}
		return
	}
	if p.BudgetAuto {
		h.applyComputedTargets(c, p)
	}
}

// deleteWeightEntry removes a weight log entry by ID. Ownership is enforced
// by matching both id and user_id. DELETE /api/weight-log/:id.
func (h *Handler) deleteWeightEntry(c *gin.Context) {
	tag, err := h.db.Exec(c,
		"DELETE FROM weight_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": c.Param("id"), "userID": c.GetInt("user_id")})
	switch {
	case err != nil:
		apiError(c, http.StatusInternalServerError, "failed to delete weight entry")
	case tag.RowsAffected() == 0:
		apiError(c, http.StatusNotFound, "weight entry not found")
	default:
		c.Status(http.StatusNoContent)
	}
}

// latestWeight returns the most recent weight log entry. pgx.ErrNoRows when
// the user has none.
func (h *Handler) latestWeight(c *gin.Context, userID int) (weightEntry, error) {
	return queryOne[weightEntry](h.db, c,
		"SELECT * FROM weight_log WHERE user_id = @userID ORDER BY date DESC LIMIT 1",
		pgx.NamedArgs{"userID": userID})
}
