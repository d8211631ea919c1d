package mastery

import (
	"reflect"
	"testing"
)

func TestNewTrackerStartsAtStartWeight(t *testing.T) {
	tr := NewTracker(3)
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	if !reflect.DeepEqual(tr.Weights(), []int{2, 2, 2}) {
		t.Errorf("Weights() = %v", tr.Weights())
	}
	if tr.Total() != 6 {
		t.Errorf("Total() = %d, want 6", tr.Total())
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"correct from start", 2, CorrectDelta, 0},
		{"correct at zero clamps", 0, CorrectDelta, 0},
		{"miss from start", 2, MissDelta, 6},
		{"miss after mastery", 0, MissDelta, 4},
		{"correct from retry", 6, CorrectDelta, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := &Tracker{weights: []int{tc.start}}
			if got := tr.Adjust(0, tc.delta); got != tc.want {
				t.Errorf("Adjust = %d, want %d", got, tc.want)
			}
			if tr.Weight(0) != tc.want {
				t.Errorf("Weight(0) = %d, want %d", tr.Weight(0), tc.want)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	tr := NewTracker(2)
	if tr.Complete() {
		t.Fatal("fresh tracker should not be complete")
	}
	tr.Adjust(0, CorrectDelta)
	if tr.MasteredCount() != 1 || tr.Complete() {
		t.Fatalf("after one correct: mastered=%d complete=%v", tr.MasteredCount(), tr.Complete())
	}
	tr.Adjust(1, CorrectDelta)
	if !tr.Complete() || tr.Total() != 0 {
		t.Errorf("after two corrects: complete=%v total=%d", tr.Complete(), tr.Total())
	}
}

func TestEmptyTrackerNeverComplete(t *testing.T) {
	if NewTracker(0).Complete() {
		t.Error("empty tracker reported complete")
	}
	var nilTracker *Tracker
	if nilTracker.Complete() || nilTracker.Len() != 0 || nilTracker.Weights() != nil {
		t.Error("nil tracker should behave as empty")
	}
}

func TestWeightsIsCopy(t *testing.T) {
	tr := NewTracker(1)
	w := tr.Weights()
	w[0] = 99
	if tr.Weight(0) != StartWeight {
		t.Error("Weights() exposed internal slice")
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		weight int
		want   Band
	}{
		{-1, BandMastered},
		{0, BandMastered},
		{1, BandLearning},
		{2, BandLearning},
		{3, BandRetry},
		{6, BandRetry},
	}
	for _, tc := range tests {
		if got := BandFor(tc.weight); got != tc.want {
			t.Errorf("BandFor(%d) = %s, want %s", tc.weight, got, tc.want)
		}
	}
}
