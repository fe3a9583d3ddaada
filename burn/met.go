package burn

import "strings"

type metEntry struct {
	key string
	met float64
}

// metTable is searched in order by the fuzzy matcher, so entry order decides
// which key wins when several overlap with a query.
var metTable = []metEntry{
	// Cardio
	{"running", 9.8},
	{"jogging", 7.0},
	{"walking", 3.5},
	{"brisk walking", 4.3},
	{"cycling", 7.5},
	{"stationary bike", 6.8},
	{"spinning", 8.5},
	{"swimming", 8.0},
	{"rowing", 7.0},
	{"elliptical", 5.0},
	{"stair climbing", 8.8},
	{"hiking", 6.0},
	{"jump rope", 12.3},
	{"jumping jacks", 8.0},
	{"dancing", 5.0},
	{"aerobics", 6.5},
	{"kickboxing", 7.5},
	{"boxing", 7.8},
	{"treadmill", 8.0},
	{"skating", 7.0},
	{"skiing", 7.0},

	// Sports
	{"tennis", 7.3},
	{"basketball", 6.5},
	{"football", 8.0},
	{"soccer", 7.0},
	{"badminton", 5.5},
	{"cricket", 4.8},
	{"volleyball", 4.0},
	{"kabaddi", 6.0},

	// Strength: chest and back
	{"bench press", 6.0},
	{"push ups", 3.8},
	{"pushups", 3.8},
	{"chest fly", 5.0},
	{"dips", 5.0},
	{"pull ups", 8.0},
	{"pullups", 8.0},
	{"lat pulldown", 5.0},
	{"bent over row", 5.0},
	{"seated row", 5.0},
	{"deadlifts", 7.0},
	{"deadlift", 7.0},

	// Strength: shoulders and arms
	{"shoulder press", 5.0},
	{"overhead press", 5.0},
	{"lateral raises", 3.5},
	{"front raises", 3.5},
	{"bicep curls", 3.5},
	{"hammer curls", 3.5},
	{"tricep extensions", 3.5},
	{"tricep dips", 4.0},
	{"skull crushers", 3.5},

	// Strength: legs
	{"squats", 5.0},
	{"lunges", 4.0},
	{"leg press", 5.0},
	{"leg extensions", 3.5},
	{"leg curls", 3.5},
	{"calf raises", 3.0},
	{"hip thrusts", 4.5},
	{"glute bridges", 3.5},
	{"step ups", 5.0},

	// Core
	{"crunches", 3.8},
	{"sit ups", 3.8},
	{"plank", 3.0},
	{"russian twists", 4.0},
	{"leg raises", 3.5},
	{"mountain climbers", 8.0},

	// Olympic and general lifting
	{"weight lifting", 5.0},
	{"weightlifting", 6.0},
	{"kettlebell swings", 9.8},
	{"power clean", 8.0},

	// Flexibility
	{"yoga", 2.5},
	{"power yoga", 4.0},
	{"hatha yoga", 2.5},
	{"pilates", 3.0},
	{"stretching", 2.3},
	{"tai chi", 3.0},
	{"foam rolling", 2.0},
	{"meditation", 1.0},
	{"mobility", 2.5},

	// Compound and HIIT
	{"hiit", 8.0},
	{"circuit training", 8.0},
	{"crossfit", 9.0},
	{"burpees", 8.0},
	{"tabata", 9.0},
	{"bootcamp", 8.0},
	{"battle ropes", 10.0},
	{"box jumps", 8.0},
	{"sled push", 9.0},
	{"farmers walk", 6.0},
}

var metIndex = func() map[string]float64 {
	m := make(map[string]float64, len(metTable))
	for _, e := range metTable {
		m[e.key] = e.met
	}
	return m
}()

var typeFallbackMET = map[ExerciseType]float64{
	Cardio:      6.0,
	Strength:    5.0,
	Flexibility: 2.5,
	Other:       4.0,
}

const defaultMET = 4.0

// Match says how ResolveMET found its value.
type Match struct {
	Kind MatchKind
	Key  string // table key for exact and fuzzy matches
}

// MatchKind names the lookup stage that produced a MET value.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchFuzzy    MatchKind = "fuzzy"
	MatchFallback MatchKind = "fallback"
)

// ResolveMET maps an exercise name to a base MET value. It tries an exact key
// first, then the first table entry in order where either string contains
// the other, and finally the per-type fallback. A blank name goes straight to
// the fallback.
func ResolveMET(name string, t ExerciseType) (float64, Match) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q != "" {
		if met, ok := metIndex[q]; ok {
			return met, Match{Kind: MatchExact, Key: q}
		}
		for _, e := range metTable {
			if strings.Contains(q, e.key) || strings.Contains(e.key, q) {
				return e.met, Match{Kind: MatchFuzzy, Key: e.key}
			}
		}
	}
	if met, ok := typeFallbackMET[t]; ok {
		return met, Match{Kind: MatchFallback}
	}
	return defaultMET, Match{Kind: MatchFallback}
}
