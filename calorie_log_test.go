package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"lg/fittrack-go-api/internal/ptr"
)

// TestSummarizeDay checks food and exercise totals against stored targets.
func TestSummarizeDay(t *testing.T) {
	p := userProfile{CalorieBudget: 2000, ProteinTargetG: 150, CarbsTargetG: 200, FatTargetG: 60, ExerciseTargetCalories: 400}
	items := []calorieLogItem{
		{ItemName: "Oats", Type: "breakfast", Calories: 350, ProteinG: ptr.Ref(12.0), CarbsG: ptr.Ref(60.0), FatG: ptr.Ref(6.0)},
		{ItemName: "Dosa", Type: "lunch", Calories: 500, ProteinG: ptr.Ref(10.5), CarbsG: ptr.Ref(80.0)},
		{ItemName: "Running", Type: "exercise", Calories: 294},
	}

	got := summarizeDay("2026-10-18", items, p)
	want := dailySummary{
		Date:                 "2026-10-18",
		CalorieBudget:        2000,
		CaloriesFood:         850,
		CaloriesExercise:     294,
		NetCalories:          556,
		CaloriesLeft:         1444,
		ProteinG:             22.5,
		CarbsG:               140,
		FatG:                 6,
		ProteinTargetG:       150,
		CarbsTargetG:         200,
		FatTargetG:           60,
		ExerciseTarget:       400,
		ExerciseCaloriesLeft: 106,
		HasData:              true,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(dailySummary{}, "Items")); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

// TestSummarizeDay_Empty verifies no items yields an empty array and the full
// exercise target still to burn.
func TestSummarizeDay_Empty(t *testing.T) {
	got := summarizeDay("2026-10-18", nil, userProfile{CalorieBudget: 1800, ExerciseTargetCalories: 300})
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %v", got.Items)
	}
	if got.CaloriesLeft != 1800 || got.ExerciseCaloriesLeft != 300 {
		t.Errorf("unexpected totals: %+v", got)
	}
}

// TestSummarizeDay_ExerciseTargetMet verifies remaining exercise never goes negative.
func TestSummarizeDay_ExerciseTargetMet(t *testing.T) {
	items := []calorieLogItem{{Type: "exercise", Calories: 900}}
	got := summarizeDay("2026-10-18", items, userProfile{ExerciseTargetCalories: 300})
	if got.ExerciseCaloriesLeft != 0 {
		t.Errorf("expected 0 exercise calories left, got %d", got.ExerciseCaloriesLeft)
	}
}

// TestCreateCalorieLogItem_BadRequest verifies validation before any insert.
func TestCreateCalorieLogItem_BadRequest(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"type":"lunch","calories":400}`},
		{"bad type", `{"item_name":"Rice","type":"brunch","calories":400}`},
		{"negative calories", `{"item_name":"Rice","type":"lunch","calories":-5}`},
		{"bad date", `{"item_name":"Rice","type":"lunch","calories":400,"date":"yesterday"}`},
	}
	h := Handler{}
	router := setupTestRouter(http.MethodPost, "/api/calorie-log/items", h.createCalorieLogItem)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/calorie-log/items", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

// TestGetDailySummary_InvalidDate verifies the date is checked before querying.
func TestGetDailySummary_InvalidDate(t *testing.T) {
	h := Handler{}
	router := setupTestRouter(http.MethodGet, "/api/calorie-log/daily", h.getDailySummary)
	w := doRequest(router, http.MethodGet, "/api/calorie-log/daily?date=2026-13-01", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

/* ─── Partial updates ────────────────────────────────────────────────── */

// TestItemSetClauses verifies provided fields become clauses and invalid ones
// are reported before any SQL is built.
func TestItemSetClauses(t *testing.T) {
	clauses, args, msg := itemSetClauses(patchCalorieLogItemRequest{
		ItemName: ptr.Ref("  Idli  "),
		Calories: ptr.Ref(180),
		FatG:     ptr.Ref(1.5),
	})
	if msg != "" {
		t.Fatalf("unexpected validation message %q", msg)
	}
	want := []string{"item_name = @itemName", "calories = @calories", "fat_g = @fatG"}
	if diff := cmp.Diff(want, clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
	if args["itemName"] != "Idli" || args["calories"] != 180 {
		t.Errorf("unexpected args: %v", args)
	}

	invalid := []struct {
		name string
		body patchCalorieLogItemRequest
	}{
		{"bad type", patchCalorieLogItemRequest{Type: ptr.Ref("brunch")}},
		{"blank name", patchCalorieLogItemRequest{ItemName: ptr.Ref("   ")}},
		{"negative calories", patchCalorieLogItemRequest{Calories: ptr.Ref(-1)}},
		{"bad date", patchCalorieLogItemRequest{Date: ptr.Ref("18-10-2026")}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, msg := itemSetClauses(tc.body); msg == "" {
				t.Error("expected a validation message")
			}
		})
	}
}

// TestUpdateCalorieLogItem_BadRequest verifies empty and invalid bodies are
// rejected without touching the database.
func TestUpdateCalorieLogItem_BadRequest(t *testing.T) {
	h := Handler{}
	router := setupTestRouter(http.MethodPut, "/api/calorie-log/items/:id", h.updateCalorieLogItem)
	for _, body := range []string{`{}`, `{"type":"brunch"}`, `not json`} {
		w := doRequest(router, http.MethodPut, "/api/calorie-log/items/7", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestLogDate(t *testing.T) {
	if got, ok := logDate("2026-10-18"); !ok || got != "2026-10-18" {
		t.Errorf("logDate(valid) = %q, %v", got, ok)
	}
	if got, ok := logDate(""); !ok || got == "" {
		t.Errorf("logDate(empty) = %q, %v; want today", got, ok)
	}
	if _, ok := logDate("2026-02-30"); ok {
		t.Error("expected invalid calendar date to be rejected")
	}
}

/* ─── Week and progress ──────────────────────────────────────────────── */

// logItem builds a stored entry for the given date.
func logItem(date, typ string, calories int) calorieLogItem {
	d, _ := time.Parse("2006-01-02", date)
	return calorieLogItem{Date: DateOnly{d}, ItemName: typ, Type: typ, Calories: calories}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-10-12", "2026-10-12"}, // Monday
		{"2026-10-15", "2026-10-12"}, // Thursday
		{"2026-10-18", "2026-10-12"}, // Sunday
		{"2026-11-01", "2026-10-26"}, // Sunday across a month boundary
	}
	for _, tc := range cases {
		d, _ := time.Parse("2006-01-02", tc.in)
		if got := mondayOf(d).Format("2006-01-02"); got != tc.want {
			t.Errorf("mondayOf(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

// TestWeekDays verifies all seven days come back and empty days are flagged.
func TestWeekDays(t *testing.T) {
	p := userProfile{CalorieBudget: 2000, ExerciseTargetCalories: 300}
	byDate := groupByDate([]calorieLogItem{
		logItem("2026-10-12", "lunch", 700),
		logItem("2026-10-12", "exercise", 250),
		logItem("2026-10-14", "dinner", 900),
	})
	weekStart := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	days := weekDays(weekStart, byDate, p)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Date != "2026-10-12" || days[6].Date != "2026-10-18" {
		t.Errorf("unexpected range %s..%s", days[0].Date, days[6].Date)
	}
	if !days[0].HasData || days[0].NetCalories != 450 || days[0].ExerciseCaloriesLeft != 50 {
		t.Errorf("unexpected Monday: %+v", days[0])
	}
	if days[1].HasData || days[1].CaloriesLeft != 2000 || days[1].Items == nil {
		t.Errorf("expected empty Tuesday with full budget, got %+v", days[1])
	}
	if !days[2].HasData || days[2].CaloriesFood != 900 {
		t.Errorf("unexpected Wednesday: %+v", days[2])
	}
}

// TestSummarizeProgress checks ordering and stats against budget and
// exercise target.
func TestSummarizeProgress(t *testing.T) {
	p := userProfile{CalorieBudget: 2000, ExerciseTargetCalories: 300}
	byDate := groupByDate([]calorieLogItem{
		logItem("2026-10-03", "dinner", 2500),
		logItem("2026-10-01", "lunch", 1800),
		logItem("2026-10-01", "exercise", 400),
		logItem("2026-10-02", "breakfast", 1900),
		logItem("2026-10-02", "exercise", 100),
	})

	got := summarizeProgress(byDate, p)

	var dates []string
	for _, d := range got.Days {
		dates = append(dates, d.Date)
	}
	if diff := cmp.Diff([]string{"2026-10-01", "2026-10-02", "2026-10-03"}, dates); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}
	// net: 1400, 1800, 2500; left: 600, 200, -500
	want := progressStats{
		DaysTracked:         3,
		DaysOnBudget:        2,
		DaysExerciseMet:     1,
		AvgCaloriesFood:     2066,
		AvgCaloriesExercise: 166,
		AvgNetCalories:      1900,
		TotalCaloriesLeft:   300,
	}
	if diff := cmp.Diff(want, got.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

// TestSummarizeProgress_Empty verifies an empty range gives an empty array
// and zero stats.
func TestSummarizeProgress_Empty(t *testing.T) {
	got := summarizeProgress(map[string][]calorieLogItem{}, userProfile{CalorieBudget: 2000})
	if got.Days == nil || len(got.Days) != 0 || got.Stats != (progressStats{}) {
		t.Errorf("unexpected empty progress: %+v", got)
	}
}

// TestRangeHandlers_BadRequest verifies query params are validated before
// querying.
func TestRangeHandlers_BadRequest(t *testing.T) {
	h := Handler{}
	week := setupTestRouter(http.MethodGet, "/api/calorie-log/week-summary", h.getWeekSummary)
	if w := doRequest(week, http.MethodGet, "/api/calorie-log/week-summary?week_start=next-week", ""); w.Code != http.StatusBadRequest {
		t.Errorf("week-summary: expected 400, got %d", w.Code)
	}

	progress := setupTestRouter(http.MethodGet, "/api/calorie-log/progress", h.getProgress)
	for _, q := range []string{"", "?start=2026-10-01", "?start=2026-10-18&end=2026-10-01"} {
		if w := doRequest(progress, http.MethodGet, "/api/calorie-log/progress"+q, ""); w.Code != http.StatusBadRequest {
			t.Errorf("progress%s: expected 400, got %d", q, w.Code)
		}
	}
}
