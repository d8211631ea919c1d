package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/factdrill/internal/factgen"
	"github.com/abhisek/factdrill/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{11, 4},
		{66, 9},
	}
	for _, tt := range tests {
		if got := Columns(tt.n); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		weight int
		want   any
	}{
		{0, theme.ScoreMastered},
		{1, theme.ScoreLearning},
		{2, theme.ScoreLearning},
		{3, theme.ScoreRetry},
		{6, theme.ScoreRetry},
	}
	for _, tt := range tests {
		if got := TileColor(tt.weight); got != tt.want {
			t.Errorf("TileColor(%d) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestScoreboard_Placeholder(t *testing.T) {
	view := Scoreboard{Active: -1}.View()
	if !strings.Contains(view, ScoreboardPlaceholder) {
		t.Errorf("empty scoreboard should show placeholder, got %q", view)
	}
}

func TestScoreboard_RendersEveryFact(t *testing.T) {
	facts := []factgen.Fact{
		factgen.NewFact(1, 2, factgen.Add),
		factgen.NewFact(3, 4, factgen.Add),
		factgen.NewFact(9, 4, factgen.Subtract),
	}
	view := ansi.Strip(Scoreboard{Facts: facts, Weights: []int{0, 2, 6}, Active: 1, Width: 80}.View())
	for _, f := range facts {
		if !strings.Contains(view, f.Prompt()) {
			t.Errorf("scoreboard missing tile %q", f.Prompt())
		}
	}
	if rows := strings.Count(view, "\n") + 1; rows != 2 {
		t.Errorf("3 tiles should fill 2 rows, got %d", rows)
	}
}

func TestMenu_NavigationSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "one"},
		{Label: "two", Disabled: true},
		{Label: "three"},
	})
	m, _ = m.Update(keyPress('j'))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(keyPress('k'))
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		called = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !called {
		t.Error("expected Enter to run the selected action")
	}
}

func TestMenu_CheckedMark(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "done", Checked: true}, {Label: "todo"}})
	lines := strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
	if !strings.Contains(lines[0], "✓") {
		t.Errorf("checked item should carry a mark: %q", lines[0])
	}
	if strings.Contains(lines[1], "✓") {
		t.Errorf("unchecked item should not carry a mark: %q", lines[1])
	}
}

func TestSelector_Cycles(t *testing.T) {
	s := NewSelector("Timer", []string{"5s", "10s", "15s"}, 1)
	s.NextKeys = []string{"t"}

	s, changed := s.Update(keyPress('t'))
	if !changed || s.Value() != "15s" {
		t.Errorf("after t: Value = %q changed=%v", s.Value(), changed)
	}
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Value() != "5s" {
		t.Errorf("right should wrap to first option, got %q", s.Value())
	}
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Value() != "15s" {
		t.Errorf("left should wrap to last option, got %q", s.Value())
	}
	_, changed = s.Update(keyPress('x'))
	if changed {
		t.Error("unrelated key should not change the selection")
	}
}

func TestSelector_OutOfRangeDefault(t *testing.T) {
	s := NewSelector("", []string{"a", "b"}, 7)
	if s.Value() != "a" {
		t.Errorf("Value = %q, want a", s.Value())
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("answer", true, 4)
	ti, _ = ti.Update(keyPress('1'))
	ti, _ = ti.Update(keyPress('x'))
	ti, _ = ti.Update(keyPress('2'))
	if ti.Value() != "12" {
		t.Errorf("Value = %q, want 12", ti.Value())
	}
	ti.Clear()
	if ti.Value() != "" {
		t.Errorf("Clear left %q", ti.Value())
	}
}

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{3, 12, 0.25},
		{12, 12, 1},
		{20, 12, 1},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.done, tt.total, 40)
		if got := p.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}
