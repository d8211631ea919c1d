package mastery

// Weight constants for the adaptive drill.
const (
	// StartWeight is the weight every fact begins a run with.
	StartWeight = 2
	// CorrectDelta is applied after a correct answer.
	CorrectDelta = -2
	// MissDelta is applied after an incorrect answer or a timeout.
	MissDelta = 4
)

// Tracker holds one non-negative weight per fact, index-aligned with the
// fact list of a run. A weight of 0 means the fact is mastered.
type Tracker struct {
	weights []int
}

// NewTracker returns a tracker with n facts at StartWeight.
func NewTracker(n int) *Tracker {
	w := make([]int, n)
	for i := range w {
		w[i] = StartWeight
	}
	return &Tracker{weights: w}
}

// Len returns the number of tracked facts.
func (t *Tracker) Len() int {
	if t == nil {
		return 0
	}
	return len(t.weights)
}

// Weight returns the weight at index i.
func (t *Tracker) Weight(i int) int {
	return t.weights[i]
}

// Adjust adds delta to the weight at i, clamping at 0, and returns the
// new weight.
func (t *Tracker) Adjust(i, delta int) int {
	w := max(t.weights[i]+delta, 0)
	t.weights[i] = w
	return w
}

// Total returns the sum of positive weights.
func (t *Tracker) Total() int {
	if t == nil {
		return 0
	}
	total := 0
	for _, w := range t.weights {
		if w > 0 {
			total += w
		}
	}
	return total
}

// Weights returns a copy of the weights.
func (t *Tracker) Weights() []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t.weights))
	copy(out, t.weights)
	return out
}

// MasteredCount returns how many facts sit at weight 0.
func (t *Tracker) MasteredCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, w := range t.weights {
		if w <= 0 {
			n++
		}
	}
	return n
}

// Complete reports whether the run has facts and every one is mastered.
func (t *Tracker) Complete() bool {
	return t.Len() > 0 && t.Total() <= 0
}
