// Package selection draws the next fact to quiz, favouring heavier weights.
package selection

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// Picker performs weight-proportional draws over a weight slice.
type Picker struct {
	src Source
}

// NewPicker returns a picker drawing from src.
func NewPicker(src Source) *Picker {
	return &Picker{src: src}
}

// Pick returns an index with probability w[i]/total. Indices with a weight
// of zero or less are never returned. When no weight is positive the run is
// complete and Pick returns (-1, false).
func (p *Picker) Pick(weights []int) (int, bool) {
	total := 0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if total <= 0 {
		return -1, false
	}

	r := p.src.Float64() * float64(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		r -= float64(w)
		if r <= 0 {
			return i, true
		}
	}
	// Float rounding can leave r slightly positive after the last weight.
	return last, true
}

// lockedSource guards a rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// FixedSource replays scripted draws in order, wrapping around at the end.
// An empty script always draws 0.
type FixedSource struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

// NewFixedSource returns a source that yields draws in order.
func NewFixedSource(draws ...float64) *FixedSource {
	return &FixedSource{draws: draws}
}

// Float64 returns the next scripted draw.
func (s *FixedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.draws) == 0 {
		return 0
	}
	d := s.draws[s.next%len(s.draws)]
	s.next++
	return d
}
