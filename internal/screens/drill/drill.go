package drill

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/factdrill/internal/router"
	"github.com/abhisek/factdrill/internal/screen"
	"github.com/abhisek/factdrill/internal/screens/summary"
	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/ui/components"
	"github.com/abhisek/factdrill/internal/ui/layout"
)

// DrillScreen shows the running practice board for one unit.
type DrillScreen struct {
	ctrl  *session.Controller
	snap  session.Snapshot
	input components.TextInput
}

var _ screen.Screen = (*DrillScreen)(nil)

// New creates a drill screen over the controller's current run.
func New(ctrl *session.Controller) *DrillScreen {
	return &DrillScreen{
		ctrl:  ctrl,
		snap:  ctrl.Snapshot(),
		input: components.NewTextInput("?", true, 3),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *DrillScreen) Title() string {
	if s.snap.UnitTitle == "" {
		return "Practice"
	}
	return s.snap.UnitTitle
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.snap.Phase == session.PhaseCompleted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Units"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Answer"},
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Esc", Description: "Units"},
	}
}

// Snapshot returns the last state the screen rendered from.
func (s *DrillScreen) Snapshot() session.Snapshot {
	return s.snap
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SnapshotMsg:
		s.apply(msg.Snapshot)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// apply adopts a new snapshot. The input is cleared whenever a new
// question goes up and marked when a question is scored. Snapshots
// older than the current one are dropped.
func (s *DrillScreen) apply(next session.Snapshot) {
	prev := s.snap
	if next.Version < prev.Version {
		return
	}
	s.snap = next

	if next.RunID != prev.RunID {
		s.input.Clear()
		return
	}
	switch {
	case next.Phase == session.PhaseAwaitingAnswer && prev.Phase != session.PhaseAwaitingAnswer:
		s.input.Clear()
	case next.Phase == session.PhaseScoring && prev.Phase == session.PhaseAwaitingAnswer:
		s.input.Mark(next.Outcome == session.OutcomeCorrect)
	}
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.ctrl.ReturnToMenu()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "ctrl+r":
		s.ctrl.StartPractice()
		s.apply(s.ctrl.Snapshot())
		return s, nil

	case "enter":
		return s.submit()
	}

	if s.snap.Phase != session.PhaseAwaitingAnswer {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit checks the typed answer, or opens the summary once the unit
// is complete.
func (s *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	switch s.snap.Phase {
	case session.PhaseCompleted:
		next := summary.New(s.ctrl, s.snap)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case session.PhaseAwaitingAnswer:
		_, err := s.ctrl.SubmitAnswer(s.input.Value())
		if errors.Is(err, session.ErrInvalidAnswer) {
			s.input.Clear()
		}
		s.apply(s.ctrl.Snapshot())
	}
	return s, nil
}
