package game

// SpeedPolicy maps a score to a scroll speed tier. Thresholds is the
// ascending list of scores at which the tier ratchets up; Moves holds
// the per-tick advance of each tier and has the same length.
type SpeedPolicy struct {
	Thresholds []int
	Moves      []float64
}

func DefaultSpeedPolicy() SpeedPolicy {
	return SpeedPolicy{
		Thresholds: []int{10, 25, 45, 75, 110},
		Moves:      []float64{2, 3, 5, 10, 15},
	}
}

// LevelFor returns the speed tier for score. Tiers only move up: a
// score below the next threshold keeps the current tier, and scores
// past the last threshold clamp to the top tier.
func (p SpeedPolicy) LevelFor(score, current int) int {
	for i := 0; i < len(p.Thresholds)-1; i++ {
		if score >= p.Thresholds[i] && score < p.Thresholds[i+1] {
			return i + 1
		}
	}
	if len(p.Thresholds) > 0 && score >= p.Thresholds[len(p.Thresholds)-1] {
		return len(p.Thresholds) - 1
	}
	return current
}

// Move returns the per-tick advance for a tier.
func (p SpeedPolicy) Move(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level >= len(p.Moves) {
		level = len(p.Moves) - 1
	}
	return p.Moves[level]
}
