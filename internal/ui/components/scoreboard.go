package components

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/factdrill/internal/factgen"
	"github.com/abhisek/factdrill/internal/mastery"
	"github.com/abhisek/factdrill/internal/ui/theme"
)

// ScoreboardPlaceholder is shown when there are no tiles to draw.
const ScoreboardPlaceholder = "Choose a unit and start practice to see progress tiles."

const tileGap = 1

// Scoreboard renders one tile per fact, colored by its mastery band.
type Scoreboard struct {
	Facts   []factgen.Fact
	Weights []int
	// Active is the index of the fact being asked, or -1.
	Active int
	Width  int
}

// Columns returns the grid width for n tiles: the smallest square that fits.
func Columns(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// TileColor returns the background color for a weight.
func TileColor(w int) color.Color {
	switch mastery.BandFor(w) {
	case mastery.BandMastered:
		return theme.ScoreMastered
	case mastery.BandLearning:
		return theme.ScoreLearning
	default:
		return theme.ScoreRetry
	}
}

// View renders the grid.
func (s Scoreboard) View() string {
	if len(s.Facts) == 0 || len(s.Weights) != len(s.Facts) {
		return theme.Hint.Render(ScoreboardPlaceholder)
	}

	cols := Columns(len(s.Facts))
	tileWidth := 0
	for _, f := range s.Facts {
		tileWidth = max(tileWidth, lipgloss.Width(f.Prompt()))
	}
	tileWidth += 2

	// Shrink the grid when the terminal cannot fit the square layout.
	if s.Width > 0 {
		for cols > 1 && cols*(tileWidth+tileGap) > s.Width {
			cols--
		}
	}

	rows := make([]string, 0, len(s.Facts)/cols+1)
	for start := 0; start < len(s.Facts); start += cols {
		end := min(start+cols, len(s.Facts))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, s.tile(i, tileWidth))
		}
		rows = append(rows, strings.Join(tiles, strings.Repeat(" ", tileGap)))
	}
	return strings.Join(rows, "\n")
}

func (s Scoreboard) tile(i, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.BgDark).
		Background(TileColor(s.Weights[i]))
	if i == s.Active {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(s.Facts[i].Prompt())
}
