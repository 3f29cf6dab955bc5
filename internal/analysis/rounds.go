package analysis

import "math"

// A competitive round plus rest fits in 4 minutes at minimum; a video shorter
// than that cannot plausibly contain more rounds than this allows.
const minutesPerRound = 4

const (
	defaultFightRounds = 3
	maxFightRounds     = 12
)

// DeriveMaxRounds returns the maximum plausible round count for a video of
// the given duration, and whether the duration was usable. Missing or
// non-positive durations yield (1, false).
func DeriveMaxRounds(durationSeconds float64) (int, bool) {
	if durationSeconds <= 0 {
		return 1, false
	}
	minutes := durationSeconds / 60
	maxRounds := int(math.Ceil(minutes / minutesPerRound))
	if maxRounds < 1 {
		maxRounds = 1
	}
	return maxRounds, true
}

// EffectiveVideoRounds clamps the caller's claimed round count to the
// duration-derived maximum. The result governs observed-performance array
// sizes and the prompt's round instructions: the model is never asked to
// fabricate rounds the video could not physically contain.
func EffectiveVideoRounds(claimed int, durationSeconds float64) int {
	maxRounds, _ := DeriveMaxRounds(durationSeconds)
	if claimed < 1 {
		claimed = 1
	}
	if claimed > maxRounds {
		claimed = maxRounds
	}
	return claimed
}

// FightRounds returns the user's stated upcoming-fight round count, defaulted
// and bounded. It governs game-plan array sizes.
func FightRounds(declared int) int {
	if declared < 1 {
		return defaultFightRounds
	}
	if declared > maxFightRounds {
		return maxFightRounds
	}
	return declared
}
