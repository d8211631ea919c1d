package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/router"
	"github.com/abhisek/factdrill/internal/screen"
	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/ui/layout"
	"github.com/abhisek/factdrill/internal/ui/theme"
)

// Returner is the part of the controller the summary needs.
type Returner interface {
	ReturnToMenu()
	Catalog() *curriculum.Catalog
}

// SummaryScreen congratulates the learner after a unit is completed.
type SummaryScreen struct {
	ctrl Returner
	snap session.Snapshot
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary for the completed run in snap.
func New(ctrl Returner, snap session.Snapshot) *SummaryScreen {
	return &SummaryScreen{ctrl: ctrl, snap: snap}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Unit Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Units"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SnapshotMsg:
		// Keep the completion map current; the run itself is frozen.
		if msg.Snapshot.Version >= s.snap.Version {
			s.snap.Completed = msg.Snapshot.Completed
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			s.ctrl.ReturnToMenu()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Unit complete!")))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body.Render(s.snap.UnitTitle)))
	b.WriteString("\n")
	b.WriteString(center(theme.Correct.Render("You mastered every fact!")))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Facts: %d        Mastered: %d", len(s.snap.Facts), s.snap.Mastered)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine)))
	b.WriteString("\n")
	if rec, ok := s.snap.Completed[s.snap.UnitID]; ok {
		b.WriteString(center(theme.Hint.Render(
			"First completed " + rec.CompletedAt.Local().Format("Jan 2, 2006 15:04"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Curriculum progress.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		curriculum.DisplayName(s.snap.Curriculum))))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n")

	for _, line := range s.unitLines() {
		b.WriteString(center(line))
		b.WriteString("\n")
	}

	return b.String()
}

// unitLines lists every unit of the run's curriculum with a completion mark.
func (s *SummaryScreen) unitLines() []string {
	cur, ok := s.ctrl.Catalog().Curriculum(s.snap.Curriculum)
	if !ok {
		return nil
	}
	lines := make([]string, 0, len(cur.Units))
	for _, u := range cur.Units {
		if s.snap.IsCompleted(u.ID) {
			lines = append(lines, theme.Completed.Render("✓ "+u.Title))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+u.Title))
	}
	return lines
}

// CompletedCount returns how many units of the run's curriculum are done.
func (s *SummaryScreen) CompletedCount() int {
	cur, ok := s.ctrl.Catalog().Curriculum(s.snap.Curriculum)
	if !ok {
		return 0
	}
	n := 0
	for _, u := range cur.Units {
		if s.snap.IsCompleted(u.ID) {
			n++
		}
	}
	return n
}
