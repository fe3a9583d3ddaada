package main

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/fittrack-go-api/internal/ptr"
)

// validItemTypes mirrors the calorie_log_item_type enum so bad input gets a
// 400 instead of a database error.
var validItemTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true, "exercise": true,
}

// getDailySummary returns one day of entries measured against the stored
// targets. GET /api/calorie-log/daily?date=YYYY-MM-DD, today when omitted.
func (h *Handler) getDailySummary(c *gin.Context) {
	userID := c.GetInt("user_id")
	date, ok := logDate(c.Query("date"))
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	items, err := queryMany[calorieLogItem](h.db, c,
		`SELECT * FROM calorie_log_items
		 WHERE date = @date AND user_id = @userID
		 ORDER BY created_at, id`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch day")
		return
	}

	p, err := h.loadProfile(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, summarizeDay(date, items, p))
}

// summarizeDay totals a day's entries. Food counts toward intake and
// exercise toward burn; only the item type decides which.
func summarizeDay(date string, items []calorieLogItem, p userProfile) dailySummary {
	s := dailySummary{
		Date:           date,
		CalorieBudget:  p.CalorieBudget,
		ProteinTargetG: p.ProteinTargetG,
		CarbsTargetG:   p.CarbsTargetG,
		FatTargetG:     p.FatTargetG,
		ExerciseTarget: p.ExerciseTargetCalories,
		Items:          []calorieLogItem{},
	}
	if items != nil {
		s.Items = items
	}
	for _, it := range s.Items {
		if it.Type == "exercise" {
			s.CaloriesExercise += it.Calories
			continue
		}
		s.CaloriesFood += it.Calories
		s.ProteinG += ptr.Deref(it.ProteinG, 0)
		s.CarbsG += ptr.Deref(it.CarbsG, 0)
		s.FatG += ptr.Deref(it.FatG, 0)
	}
	s.NetCalories = s.CaloriesFood - s.CaloriesExercise
	s.CaloriesLeft = s.CalorieBudget - s.NetCalories
	s.ExerciseCaloriesLeft = max(0, s.ExerciseTarget-s.CaloriesExercise)
	s.HasData = len(s.Items) > 0
	return s
}

/* ─── Ranges ─────────────────────────────────────────────────────────── */

// itemsInRange fetches the caller's entries for [start, end] grouped by date.
func (h *Handler) itemsInRange(c *gin.Context, userID int, start, end string) (map[string][]calorieLogItem, error) {
	items, err := queryMany[calorieLogItem](h.db, c,
		`SELECT * FROM calorie_log_items
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date, created_at, id`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		return nil, err
	}
	return groupByDate(items), nil
}

func groupByDate(items []calorieLogItem) map[string][]calorieLogItem {
	byDate := make(map[string][]calorieLogItem)
	for _, it := range items {
		d := it.Date.Format("2006-01-02")
		byDate[d] = append(byDate[d], it)
	}
	return byDate
}

// mondayOf returns the Monday starting t's week, at midnight.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekDays builds seven summaries from weekStart. Days without entries are
// included with has_data=false.
func weekDays(weekStart time.Time, byDate map[string][]calorieLogItem, p userProfile) []dailySummary {
	days := make([]dailySummary, 7)
	for i := range days {
		date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		days[i] = summarizeDay(date, byDate[date], p)
	}
	return days
}

// getWeekSummary returns the Monday to Sunday week containing week_start.
// GET /api/calorie-log/week-summary?week_start=YYYY-MM-DD, current week when
// omitted. A week_start that is not a Monday snaps back to its Monday.
func (h *Handler) getWeekSummary(c *gin.Context) {
	userID := c.GetInt("user_id")

	ref := time.Now()
	if s := c.Query("week_start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD")
			return
		}
		ref = t
	}
	weekStart := mondayOf(ref)

	byDate, err := h.itemsInRange(c, userID,
		weekStart.Format("2006-01-02"), weekStart.AddDate(0, 0, 6).Format("2006-01-02"))
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch week")
		return
	}
	p, err := h.loadProfile(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, weekDays(weekStart, byDate, p))
}

// summarizeProgress returns one summary per tracked day, in date order, plus
// stats against the stored budget and exercise target.
func summarizeProgress(byDate map[string][]calorieLogItem, p userProfile) progressResponse {
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	resp := progressResponse{Days: make([]dailySummary, 0, len(dates))}
	st := &resp.Stats
	for _, d := range dates {
		day := summarizeDay(d, byDate[d], p)
		resp.Days = append(resp.Days, day)

		st.DaysTracked++
		if day.NetCalories <= day.CalorieBudget {
			st.DaysOnBudget++
		}
		if day.CaloriesExercise >= day.ExerciseTarget {
			st.DaysExerciseMet++
		}
		st.AvgCaloriesFood += day.CaloriesFood
		st.AvgCaloriesExercise += day.CaloriesExercise
		st.AvgNetCalories += day.NetCalories
		st.TotalCaloriesLeft += day.CaloriesLeft
	}
	if n := st.DaysTracked; n > 0 {
		st.AvgCaloriesFood /= n
		st.AvgCaloriesExercise /= n
		st.AvgNetCalories /= n
	}
	return resp
}

// getProgress returns tracked days and aggregate stats for a date range.
// GET /api/calorie-log/progress?start=YYYY-MM-DD&end=YYYY-MM-DD. Days with no
// entries are left out; clients fill gaps.
func (h *Handler) getProgress(c *gin.Context) {
	userID := c.GetInt("user_id")
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	byDate, err := h.itemsInRange(c, userID, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch progress")
		return
	}
	p, err := h.loadProfile(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, summarizeProgress(byDate, p))
}

// getEarliestLogDate returns {"date": "YYYY-MM-DD"} for the caller's first
// entry, or {"date": null} when nothing is logged yet.
// GET /api/calorie-log/earliest-date.
func (h *Handler) getEarliestLogDate(c *gin.Context) {
	row, err := queryOne[struct {
		Date *DateOnly `db:"date"`
	}](h.db, c,
		"SELECT MIN(date) AS date FROM calorie_log_items WHERE user_id = @userID",
		pgx.NamedArgs{"userID": c.GetInt("user_id")})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch earliest date")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": row.Date})
}

/* ─── Item CRUD ──────────────────────────────────────────────────────── */

// logDate defaults an empty date to today and rejects anything that is not
// YYYY-MM-DD.
func logDate(s string) (string, bool) {
	if s == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", false
	}
	return s, true
}

// validateNewItem checks a create body; an empty string means valid.
func validateNewItem(body createCalorieLogItemRequest) string {
	switch {
	case strings.TrimSpace(body.ItemName) == "":
		return "item_name is required"
	case !validItemTypes[body.Type]:
		return itemTypeMessage
	case body.Calories < 0:
		return "calories must not be negative"
	}
	return ""
}

const itemTypeMessage = "type must be one of: breakfast, lunch, dinner, snack, exercise"

// insertLogItem writes one calorie log row. Shared by manual entries and
// estimated exercise entries.
func (h *Handler) insertLogItem(c *gin.Context, userID int, body createCalorieLogItemRequest) (calorieLogItem, error) {
	return queryOne[calorieLogItem](h.db, c,
		`INSERT INTO calorie_log_items (user_id, date, item_name, type, qty, uom, calories, protein_g, carbs_g, fat_g)
		 VALUES (@userID, @date, @itemName, @type, @qty, @uom, @calories, @proteinG, @carbsG, @fatG)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":   userID,
			"date":     body.Date,
			"itemName": strings.TrimSpace(body.ItemName),
			"type":     body.Type,
			"qty":      body.Qty,
			"uom":      body.Uom,
			"calories": body.Calories,
			"proteinG": body.ProteinG,
			"carbsG":   body.CarbsG,
			"fatG":     body.FatG,
		})
}

// createCalorieLogItem adds a food or manually counted exercise entry.
// POST /api/calorie-log/items.
func (h *Handler) createCalorieLogItem(c *gin.Context) {
	var body createCalorieLogItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateNewItem(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	date, ok := logDate(body.Date)
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	body.Date = date

	item, err := h.insertLogItem(c, c.GetInt("user_id"), body)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// itemSetClauses builds the dynamic SET clause for a partial item update.
// Returns a validation message instead when a provided field is invalid.
func itemSetClauses(body patchCalorieLogItemRequest) ([]string, pgx.NamedArgs, string) {
	setClauses := []string{}
	args := pgx.NamedArgs{}
	add := func(column, arg string, value any) {
		setClauses = append(setClauses, column+" = @"+arg)
		args[arg] = value
	}

	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			return nil, nil, "invalid date, expected YYYY-MM-DD"
		}
		add("date", "date", *body.Date)
	}
	if body.ItemName != nil {
		name := strings.TrimSpace(*body.ItemName)
		if name == "" {
			return nil, nil, "item_name must not be blank"
		}
		add("item_name", "itemName", name)
	}
	if body.Type != nil {
		if !validItemTypes[*body.Type] {
			return nil, nil, itemTypeMessage
		}
		add("type", "type", *body.Type)
	}
	if body.Calories != nil {
		if *body.Calories < 0 {
			return nil, nil, "calories must not be negative"
		}
		add("calories", "calories", *body.Calories)
	}
	if body.Qty != nil {
		add("qty", "qty", *body.Qty)
	}
	if body.Uom != nil {
		add("uom", "uom", *body.Uom)
	}
	if body.ProteinG != nil {
		add("protein_g", "proteinG", *body.ProteinG)
	}
	if body.CarbsG != nil {
		add("carbs_g", "carbsG", *body.CarbsG)
	}
	if body.FatG != nil {
		add("fat_g", "fatG", *body.FatG)
	}
	return setClauses, args, ""
}

// updateCalorieLogItem changes only the provided fields of an entry.
// PUT /api/calorie-log/items/:id.
func (h *Handler) updateCalorieLogItem(c *gin.Context) {
	var body patchCalorieLogItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	setClauses, args, msg := itemSetClauses(body)
	if msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	args["id"] = c.Param("id")
	args["userID"] = c.GetInt("user_id")

	item, err := queryOne[calorieLogItem](h.db, c,
		"UPDATE calorie_log_items SET "+strings.Join(setClauses, ", ")+
			", updated_at = now() WHERE id = @id AND user_id = @userID RETURNING *",
		args)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusNotFound, "item not found")
	case err != nil:
		apiError(c, http.StatusInternalServerError, "failed to update item")
	default:
		c.JSON(http.StatusOK, item)
	}
}

// deleteCalorieLogItem removes one of the caller's entries.
// DELETE /api/calorie-log/items/:id. Responds 204, or 404 when nothing matched.
func (h *Handler) deleteCalorieLogItem(c *gin.Context) {
	tag, err := h.db.Exec(c,
		"DELETE FROM calorie_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": c.Param("id"), "userID": c.GetInt("user_id")})
	switch {
	case err != nil:
		apiError(c, http.StatusInternalServerError, "failed to delete item")
	case tag.RowsAffected() == 0:
		apiError(c, http.StatusNotFound, "item not found")
	default:
		c.Status(http.StatusNoContent)
	}
}
