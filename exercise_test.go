package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lg/fittrack-go-api/burn"
	"lg/fittrack-go-api/internal/ptr"
)

/* ─── Stateless estimate ─────────────────────────────────────────────── */

// TestEstimateExercise_Success checks the endpoint returns the engine result
// unchanged.
func TestEstimateExercise_Success(t *testing.T) {
	h := Handler{}
	router := setupTestRouter(http.MethodPost, "/api/exercise/estimate", h.estimateExercise)

	w := doRequest(router, http.MethodPost, "/api/exercise/estimate",
		`{"exercise_name":"Bodyweight Squats","exercise_type":"strength","sets":3,"reps":15,"user_weight_kg":70}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got burn.Result
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	want := burn.Result{
		EstimatedCalories: 23,
		METValue:          4.0,
		Intensity:         burn.Low,
		CalculationMethod: "4.00 MET (Low) x 70.0 kg x 0.08 h = 23 kcal",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

// TestEstimateExercise_BadRequest covers the checks made before the engine runs.
func TestEstimateExercise_BadRequest(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed JSON", `{`, "invalid request body"},
		{"blank name", `{"exercise_name":"  ","exercise_type":"cardio","user_weight_kg":70}`, "exercise_name is required"},
		{"unknown type", `{"exercise_name":"rowing","exercise_type":"water","user_weight_kg":70}`, "exercise_type"},
		{"missing weight", `{"exercise_name":"rowing","exercise_type":"cardio"}`, "user_weight_kg"},
		{"negative weight", `{"exercise_name":"rowing","exercise_type":"cardio","user_weight_kg":-70}`, "user_weight_kg"},
	}
	h := Handler{}
	router := setupTestRouter(http.MethodPost, "/api/exercise/estimate", h.estimateExercise)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/exercise/estimate", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if msg := errorMessage(t, w); !strings.Contains(msg, tc.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

/* ─── Logged exercise ────────────────────────────────────────────────── */

// TestLogExercise_BadRequest verifies validation runs before any DB lookup.
func TestLogExercise_BadRequest(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"blank name", `{"exercise_type":"cardio"}`, "exercise_name is required"},
		{"bad date", `{"exercise_name":"yoga","exercise_type":"flexibility","date":"18/10/2026"}`, "invalid date"},
		{"zero weight", `{"exercise_name":"yoga","exercise_type":"flexibility","user_weight_kg":0}`, "user_weight_kg must be positive"},
	}
	h := Handler{}
	router := setupTestRouter(http.MethodPost, "/api/calorie-log/exercise", h.logExercise)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/calorie-log/exercise", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if msg := errorMessage(t, w); !strings.Contains(msg, tc.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

// TestExerciseQuantity checks the qty/uom stored with a logged exercise.
func TestExerciseQuantity(t *testing.T) {
	cases := []struct {
		name    string
		log     burn.ExerciseLog
		wantQty float64
		wantUom string
	}{
		{"explicit minutes", burn.ExerciseLog{Type: burn.Cardio, DurationMin: ptr.Ref(42.0)}, 42, "minutes"},
		{"capped minutes", burn.ExerciseLog{Type: burn.Cardio, DurationMin: ptr.Ref(400.0)}, 180, "minutes"},
		{"sets and reps", burn.ExerciseLog{Type: burn.Strength, Sets: ptr.Ref(4), Reps: ptr.Ref(8)}, 4, "sets x 8"},
		{"type default", burn.ExerciseLog{Type: burn.Flexibility}, 10, "minutes"},
		{"fractional minutes round to a tenth", burn.ExerciseLog{Type: burn.Cardio, DurationMin: ptr.Ref(12.36)}, 12.4, "minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qty, uom := exerciseQuantity(tc.log)
			if *qty != tc.wantQty || *uom != tc.wantUom {
				t.Errorf("exerciseQuantity = (%v, %q), want (%v, %q)", *qty, *uom, tc.wantQty, tc.wantUom)
			}
		})
	}
}
