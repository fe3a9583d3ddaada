package burn

import (
	"math"
	"testing"

	"lg/fittrack-go-api/internal/ptr"
)

// TestEstimateDuration covers explicit durations, the sets/reps estimate and
// the per-type defaults.
func TestEstimateDuration(t *testing.T) {
	cases := []struct {
		name string
		log  ExerciseLog
		want float64
	}{
		{"explicit minutes", ExerciseLog{Type: Cardio, DurationMin: ptr.Ref(45.0)}, 0.75},
		{"duration capped at 180 min", ExerciseLog{Type: Cardio, DurationMin: ptr.Ref(600.0)}, 3},
		{"duration wins over sets", ExerciseLog{Type: Strength, DurationMin: ptr.Ref(30.0), Sets: ptr.Ref(3), Reps: ptr.Ref(10)}, 0.5},
		{"zero duration falls through", ExerciseLog{Type: Cardio, DurationMin: ptr.Ref(0.0)}, 0.5},
		{"sets and reps", ExerciseLog{Type: Strength, Sets: ptr.Ref(3), Reps: ptr.Ref(15)}, 292.5 / 3600},
		{"single set has no rest", ExerciseLog{Type: Strength, Sets: ptr.Ref(1), Reps: ptr.Ref(10)}, 25.0 / 3600},
		{"sets and reps clamped", ExerciseLog{Type: Strength, Sets: ptr.Ref(50), Reps: ptr.Ref(200)}, 6710.0 / 3600},
		{"negative sets and reps raised to 1", ExerciseLog{Type: Strength, Sets: ptr.Ref(-4), Reps: ptr.Ref(0)}, 2.5 / 3600},
		{"sets without reps", ExerciseLog{Type: Strength, Sets: ptr.Ref(4)}, 0.25},
		{"sets ignored for cardio", ExerciseLog{Type: Cardio, Sets: ptr.Ref(4), Reps: ptr.Ref(10)}, 0.5},
		{"flexibility default", ExerciseLog{Type: Flexibility}, 10.0 / 60},
		{"other default", ExerciseLog{Type: Other}, 0.25},
		{"unknown type default", ExerciseLog{Type: "dance"}, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateDuration(tc.log); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("EstimateDuration = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestEstimateDuration_Bounds checks the (0, 3] hour range over a grid of
// strength inputs and durations.
func TestEstimateDuration_Bounds(t *testing.T) {
	for _, sets := range []int{-10, 0, 1, 5, 20, 500} {
		for _, reps := range []int{-1, 0, 1, 12, 100, 10000} {
			h := EstimateDuration(ExerciseLog{Type: Strength, Sets: ptr.Ref(sets), Reps: ptr.Ref(reps)})
			if h <= 0 || h > maxHours {
				t.Errorf("sets=%d reps=%d: hours %v outside (0, 3]", sets, reps, h)
			}
		}
	}
	for _, d := range []float64{-5, 0, 0.01, 90, 180, 1e9} {
		h := EstimateDuration(ExerciseLog{Type: Cardio, DurationMin: ptr.Ref(d)})
		if h <= 0 || h > maxHours {
			t.Errorf("duration=%v: hours %v outside (0, 3]", d, h)
		}
	}
}
