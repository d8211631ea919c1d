package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/factdrill/internal/ui/theme"
)

// Selector is a horizontal single-choice row, cycled with left/right.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	// Keys cycling forward in addition to right/l.
	NextKeys []string
}

// NewSelector creates a selector with the given option pre-selected.
func NewSelector(label string, options []string, selected int) Selector {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Selector{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Value returns the selected option, or "" when there are none.
func (s Selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Selected]
}

// Update moves the selection. changed reports whether it moved.
func (s Selector) Update(msg tea.Msg) (sel Selector, changed bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return s, false
	}

	key := kmsg.String()
	prev := s.Selected
	switch {
	case key == "right" || key == "l" || slices.Contains(s.NextKeys, key):
		s.Selected = (s.Selected + 1) % len(s.Options)
	case key == "left" || key == "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	}
	return s, s.Selected != prev
}

// View renders the options on one line, highlighting the selection.
func (s Selector) View() string {
	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		if i == s.Selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Padding(0, 1).
				Render(opt))
			continue
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Padding(0, 1).
			Render(opt))
	}

	row := strings.Join(parts, " ")
	if s.Label == "" {
		return row
	}
	return theme.Hint.Render(s.Label+":") + " " + row
}
