package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/ui/theme"
)

const titleFull = `┌─┐┌─┐┌─┐┌┬┐  ┌┬┐┬─┐┬┬  ┬
├┤ ├─┤│   │    ││├┬┘││  │
└  ┴ ┴└─┘ ┴   ─┴┘┴└─┴┴─┘┴─┘`

const titleCompact = "F · A · C · T   D · R · I · L · L"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar shows how many units of the curriculum are completed.
func renderStatsBar(completed, total, cw int) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.ScoreMastered).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := doneStyle.Render(fmt.Sprintf("✓ %d", completed)) +
		dimStyle.Render(fmt.Sprintf(" of %d units completed", total))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(stats)
}

// renderUnitDetail describes the highlighted unit.
func renderUnitDetail(u curriculum.Unit, completed bool, cw int) string {
	focus := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(u.Focus)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %d facts", u.Description, len(u.Facts())))

	body := focus + "\n" + desc
	if completed {
		body += "\n" + theme.Completed.Render("Completed")
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(body)
}
