package burn

import "strings"

var intensityModifiers = map[Intensity]float64{
	Low:      0.8,
	Moderate: 1.0,
	High:     1.3,
	VeryHigh: 1.5,
}

// Modifier returns the MET multiplier for an intensity level. Unknown levels
// count as Moderate.
func (i Intensity) Modifier() float64 {
	if m, ok := intensityModifiers[i]; ok {
		return m
	}
	return 1.0
}

// intensityRule pairs a predicate over the log with the level it assigns.
type intensityRule struct {
	name  string
	match func(e ExerciseLog, notes string) bool
	level func(e ExerciseLog) Intensity
}

func fixed(i Intensity) func(ExerciseLog) Intensity {
	return func(ExerciseLog) Intensity { return i }
}

func notesContain(keywords ...string) func(ExerciseLog, string) bool {
	return func(_ ExerciseLog, notes string) bool {
		for _, k := range keywords {
			if strings.Contains(notes, k) {
				return true
			}
		}
		return false
	}
}

// intensityRules are evaluated top to bottom; the first match wins. Keyword
// checks are plain substrings, so "not heavy" still reads as heavy.
var intensityRules = []intensityRule{
	{name: "very high notes", match: notesContain("high intensity", "explosive", "max effort"), level: fixed(VeryHigh)},
	{name: "high notes", match: notesContain("heavy", "intense"), level: fixed(High)},
	{name: "low notes", match: notesContain("light", "easy", "warm"), level: fixed(Low)},
	{
		name:  "strength reps",
		match: func(e ExerciseLog, _ string) bool { return e.Type == Strength && e.Reps != nil },
		level: func(e ExerciseLog) Intensity {
			switch reps := *e.Reps; {
			case reps <= 6:
				return High
			case reps <= 12:
				return Moderate
			default:
				return Low
			}
		},
	},
	{name: "cardio", match: func(e ExerciseLog, _ string) bool { return e.Type == Cardio }, level: fixed(Moderate)},
}

// ClassifyIntensity picks an intensity level for the log and returns it with
// its MET modifier. Logs no rule matches are Moderate.
func ClassifyIntensity(e ExerciseLog) (Intensity, float64) {
	level, _ := classify(e)
	return level, level.Modifier()
}

func classify(e ExerciseLog) (Intensity, string) {
	notes := strings.ToLower(e.Notes)
	for _, r := range intensityRules {
		if r.match(e, notes) {
			return r.level(e), r.name
		}
	}
	return Moderate, "default"
}
