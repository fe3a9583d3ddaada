package burn

const (
	maxDurationMin = 180
	maxHours       = 3.0

	minSets, maxSets = 1, 20
	minReps, maxReps = 1, 100

	secondsPerRep  = 2.5
	restBetweenSet = 90
)

// Default session length when neither a duration nor sets and reps are given.
var fallbackHours = map[ExerciseType]float64{
	Cardio:      0.5,
	Strength:    0.25,
	Flexibility: 10.0 / 60,
	Other:       0.25,
}

const defaultHours = 0.25

// EstimateDuration returns the session length in hours, always in (0, 3].
// An explicit duration wins. Strength logs with sets and reps are timed at
// 2.5 s per rep plus 90 s rest between sets. Everything else gets the
// per-type default.
func EstimateDuration(e ExerciseLog) float64 {
	if e.DurationMin != nil && *e.DurationMin > 0 {
		return min(*e.DurationMin, maxDurationMin) / 60
	}
	if e.Type == Strength && e.Sets != nil && e.Reps != nil {
		sets := clampInt(*e.Sets, minSets, maxSets)
		reps := clampInt(*e.Reps, minReps, maxReps)
		seconds := float64(sets*reps)*secondsPerRep + float64((sets-1)*restBetweenSet)
		return min(seconds/3600, maxHours)
	}
	if h, ok := fallbackHours[e.Type]; ok {
		return h
	}
	return defaultHours
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
