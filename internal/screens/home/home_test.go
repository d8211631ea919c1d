package home

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/router"
	"github.com/abhisek/factdrill/internal/screen"
	"github.com/abhisek/factdrill/internal/screens/drill"
	"github.com/abhisek/factdrill/internal/selection"
	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestHome(t *testing.T, persist session.Persistence) (*HomeScreen, *session.Controller) {
	t.Helper()
	if persist == nil {
		persist = session.NewMemoryPersistence()
	}
	ctrl, err := session.New(context.Background(), session.Options{
		TimerLimit:  10,
		Source:      selection.NewFixedSource(0),
		Scheduler:   session.NewManualScheduler(),
		Persistence: persist,
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return New(ctrl), ctrl
}

func TestHomeScreen_Defaults(t *testing.T) {
	h, _ := newTestHome(t, nil)

	if h.Title() != "Addition Units" {
		t.Errorf("Title = %q, want %q", h.Title(), "Addition Units")
	}
	u, ok := h.SelectedUnit()
	if !ok || u.ID != "add-1" {
		t.Errorf("SelectedUnit = %q, %v; want add-1", u.ID, ok)
	}
	if h.timer.Value() != "10s" {
		t.Errorf("timer = %q, want 10s", h.timer.Value())
	}
}

func TestHomeScreen_TabSwitchesCurriculum(t *testing.T) {
	h, ctrl := newTestHome(t, nil)

	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	if got := ctrl.Snapshot().Curriculum; got != curriculum.KeySubtraction {
		t.Errorf("Curriculum = %q, want subtraction", got)
	}
	if h.Title() != "Subtraction Units" {
		t.Errorf("Title = %q", h.Title())
	}
	u, _ := h.SelectedUnit()
	if u.ID != "sub-1" {
		t.Errorf("SelectedUnit = %q, want sub-1", u.ID)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := ctrl.Snapshot().Curriculum; got != curriculum.KeyAddition {
		t.Errorf("Curriculum = %q, want addition", got)
	}
}

func TestHomeScreen_TimerCycles(t *testing.T) {
	h, ctrl := newTestHome(t, nil)

	h.Update(keyPress('t'))
	if got := ctrl.Snapshot().TimerLimit; got != 15 {
		t.Errorf("TimerLimit = %d, want 15", got)
	}
	for range 3 {
		h.Update(keyPress('t'))
	}
	if got := ctrl.Snapshot().TimerLimit; got != 5 {
		t.Errorf("TimerLimit = %d after wrap, want 5", got)
	}
}

func TestHomeScreen_RejectedTimerKeepsSelection(t *testing.T) {
	h, ctrl := newTestHome(t, nil)
	h.timers = []int{10, 0}
	h.timer = components.NewSelector("Timer", []string{"10s", "0s"}, 0)
	h.timer.NextKeys = []string{"t"}

	h.Update(keyPress('t'))
	if h.timer.Selected != 0 {
		t.Errorf("timer.Selected = %d, want 0 after rejected limit", h.timer.Selected)
	}
	if got := ctrl.Snapshot().TimerLimit; got != 10 {
		t.Errorf("TimerLimit = %d, want 10", got)
	}
}

func TestHomeScreen_EnterStartsPractice(t *testing.T) {
	h, ctrl := newTestHome(t, nil)

	h.Update(keyPress('j'))
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (push)")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*drill.DrillScreen); !ok {
		t.Errorf("expected drill screen, got %T", msg.Screen)
	}

	snap := ctrl.Snapshot()
	if snap.UnitID != "add-2" {
		t.Errorf("UnitID = %q, want add-2", snap.UnitID)
	}
	if snap.Phase != session.PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want awaiting-answer", snap.Phase)
	}
}

func TestHomeScreen_CompletedMarks(t *testing.T) {
	persist := session.NewMemoryPersistence()
	persist.SaveCompletedUnits(context.Background(), map[string]session.CompletionRecord{
		"add-1": {UnitID: "add-1", Curriculum: "addition", FactCount: 11, CompletedAt: time.Now()},
	})
	h, _ := newTestHome(t, persist)

	if !h.menu.Items[0].Checked {
		t.Error("completed unit should be checked")
	}
	if h.menu.Items[1].Checked {
		t.Error("unfinished unit should not be checked")
	}
	if got := h.completedInCurriculum(); got != 1 {
		t.Errorf("completedInCurriculum = %d, want 1", got)
	}
}

func TestHomeScreen_SnapshotRefreshesMarks(t *testing.T) {
	h, ctrl := newTestHome(t, nil)

	snap := ctrl.Snapshot()
	snap.Version++
	snap.Completed = map[string]session.CompletionRecord{"add-3": {UnitID: "add-3"}}
	h.Update(screen.SnapshotMsg{Snapshot: snap})

	if !h.menu.Items[2].Checked {
		t.Error("expected add-3 to be checked after a snapshot")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h, _ := newTestHome(t, nil)
	view := h.View(80, 40)
	if !strings.Contains(view, "Adding One and Two") {
		t.Error("expected the first unit title in the view")
	}
}

func TestTimerOptions(t *testing.T) {
	if got := timerOptions(10); !slices.Equal(got, TimerChoices) {
		t.Errorf("timerOptions(10) = %v", got)
	}
	if got := timerOptions(12); !slices.Equal(got, []int{5, 10, 12, 15, 20, 30}) {
		t.Errorf("timerOptions(12) = %v", got)
	}
}
