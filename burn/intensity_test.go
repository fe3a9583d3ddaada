package burn

import (
	"testing"

	"lg/fittrack-go-api/internal/ptr"
)

// TestClassifyIntensity walks the rule list in priority order.
func TestClassifyIntensity(t *testing.T) {
	cases := []struct {
		name     string
		log      ExerciseLog
		want     Intensity
		modifier float64
	}{
		{"max effort beats reps", ExerciseLog{Type: Strength, Reps: ptr.Ref(20), Notes: "Max effort set"}, VeryHigh, 1.5},
		{"explosive", ExerciseLog{Type: Cardio, Notes: "explosive sprints"}, VeryHigh, 1.5},
		{"high intensity beats light", ExerciseLog{Type: Cardio, Notes: "light warmup then high intensity"}, VeryHigh, 1.5},
		{"heavy", ExerciseLog{Type: Strength, Reps: ptr.Ref(15), Notes: "heavy"}, High, 1.3},
		{"negation is ignored", ExerciseLog{Type: Strength, Notes: "not heavy at all"}, High, 1.3},
		{"intense beats easy", ExerciseLog{Type: Flexibility, Notes: "easy start, intense finish"}, High, 1.3},
		{"warm", ExerciseLog{Type: Cardio, Notes: "Warm-up jog"}, Low, 0.8},
		{"low reps", ExerciseLog{Type: Strength, Reps: ptr.Ref(6)}, High, 1.3},
		{"moderate reps", ExerciseLog{Type: Strength, Reps: ptr.Ref(12)}, Moderate, 1.0},
		{"high reps", ExerciseLog{Type: Strength, Reps: ptr.Ref(13)}, Low, 0.8},
		{"strength without reps", ExerciseLog{Type: Strength, Sets: ptr.Ref(3)}, Moderate, 1.0},
		{"reps ignored for cardio", ExerciseLog{Type: Cardio, Reps: ptr.Ref(3)}, Moderate, 1.0},
		{"flexibility default", ExerciseLog{Type: Flexibility}, Moderate, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, mod := ClassifyIntensity(tc.log)
			if got != tc.want || mod != tc.modifier {
				t.Errorf("ClassifyIntensity = (%s, %v), want (%s, %v)", got, mod, tc.want, tc.modifier)
			}
		})
	}
}

func TestIntensityModifier_Unknown(t *testing.T) {
	if m := Intensity("Extreme").Modifier(); m != 1.0 {
		t.Errorf("expected 1.0 for unknown intensity, got %v", m)
	}
}
