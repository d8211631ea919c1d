package mastery

// Band groups weights for display on the scoreboard.
type Band int

const (
	BandMastered Band = iota
	BandLearning
	BandRetry
)

// String returns the band label.
func (b Band) String() string {
	switch b {
	case BandMastered:
		return "mastered"
	case BandLearning:
		return "learning"
	case BandRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// BandFor classifies a weight. Weights at or below zero are mastered,
// up to StartWeight are still being learned, anything higher needs retry.
func BandFor(w int) Band {
	switch {
	case w <= 0:
		return BandMastered
	case w <= StartWeight:
		return BandLearning
	default:
		return BandRetry
	}
}
