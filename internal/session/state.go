package session

import (
	"fmt"
	"time"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/factgen"
)

// Phase represents where the controller is in the drill lifecycle.
type Phase int

const (
	PhaseIdle           Phase = iota // No unit selected
	PhaseUnitSelected                // Unit chosen, no run in progress
	PhaseRunning                     // Transient: a selection is being made
	PhaseAwaitingAnswer              // A fact is on screen and the countdown runs
	PhaseScoring                     // Feedback shown, next selection queued
	PhaseCompleted                   // Every fact mastered (or the unit was empty)
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUnitSelected:
		return "unit-selected"
	case PhaseRunning:
		return "running"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseScoring:
		return "scoring"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// InRun reports whether the phase belongs to an active practice run.
func (p Phase) InRun() bool {
	return p == PhaseRunning || p == PhaseAwaitingAnswer || p == PhaseScoring
}

// Outcome is the result of the most recently scored question.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeTimeout
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// Status lines shown to the learner.
const (
	StatusUnitSelected = "Start practice to launch the board."
	StatusReady        = "Scoreboard ready! Answer each fact before time runs out."
	StatusAsking       = "Type the answer and press Enter."
	StatusInvalid      = "Type a number to check your answer."
	StatusCorrect      = "Nice! That fact cools down on the grid."
	StatusDone         = "Great work! Pick another unit or restart to mix them again."
)

func statusIncorrect(f factgen.Fact) string {
	return fmt.Sprintf("Almost! %s.", f)
}

func statusTimeout(f factgen.Fact) string {
	return fmt.Sprintf("Time! %s.", f)
}

// CompletionRecord describes the first time a unit was completed.
type CompletionRecord struct {
	UnitID      string
	Curriculum  string
	FactCount   int
	CompletedAt time.Time
}

// Snapshot is a read-only copy of the controller state handed to renderers.
type Snapshot struct {
	// Phase is the current lifecycle phase.
	Phase Phase

	// Curriculum is the active curriculum key.
	Curriculum curriculum.Key

	// UnitID and UnitTitle describe the selected unit; empty when none.
	UnitID    string
	UnitTitle string

	// Facts and Weights are index-aligned; both empty outside a run.
	Facts   []factgen.Fact
	Weights []int

	// ActiveIndex is the fact being asked, or -1.
	ActiveIndex int

	// Countdown is the number of seconds left on the current question.
	Countdown int

	// TimerLimit is the configured seconds per question.
	TimerLimit int

	// Status is the learner-facing status line.
	Status string

	// LastFact is the most recently scored fact with its answer.
	LastFact string

	// Outcome is the result of the most recently scored question.
	Outcome Outcome

	// Mastered counts facts at weight 0.
	Mastered int

	// Completed holds every unit completed at least once, keyed by unit id.
	Completed map[string]CompletionRecord

	// RunID identifies the current practice run.
	RunID string

	// Version orders snapshots; a higher version is newer.
	Version uint64
}

// ActiveFact returns the fact being asked.
func (s Snapshot) ActiveFact() (factgen.Fact, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Facts) {
		return factgen.Fact{}, false
	}
	return s.Facts[s.ActiveIndex], true
}

// Progress renders the mastered counter, e.g. "3 / 11 mastered".
func (s Snapshot) Progress() string {
	if len(s.Facts) == 0 {
		return "0 mastered"
	}
	return fmt.Sprintf("%d / %d mastered", s.Mastered, len(s.Facts))
}

// IsCompleted reports whether the unit has been completed at least once.
func (s Snapshot) IsCompleted(unitID string) bool {
	_, ok := s.Completed[unitID]
	return ok
}
