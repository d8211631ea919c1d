package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/ui/components"
	"github.com/abhisek/factdrill/internal/ui/theme"
)

// completionPrompt replaces the question once every fact is mastered.
const completionPrompt = "You mastered every fact!"

// idlePrompt is shown between questions.
const idlePrompt = "Ready when you are!"

func (s *DrillScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.snap

	var b strings.Builder

	// Info line: progress on the left, countdown on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(snap.Progress())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("⏱ " + CountdownText(snap))
	gap := max(cw-lipgloss.Width(infoLeft)-lipgloss.Width(infoRight), 1)
	b.WriteString(infoLeft + strings.Repeat(" ", gap) + infoRight)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", snap.Mastered, len(snap.Facts), cw).View())
	b.WriteString("\n\n")

	// Question.
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Prompt.Render(PromptText(snap))))
	b.WriteString("\n\n")

	if snap.Phase == session.PhaseAwaitingAnswer || snap.Phase == session.PhaseScoring {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
		b.WriteString("\n\n")
	}

	// Status and last fact.
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(statusStyle(snap).Render(snap.Status)))
	if snap.LastFact != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(theme.Hint.Render("Last: " + snap.LastFact)))
	}
	b.WriteString("\n\n")

	board := components.Scoreboard{
		Facts:   snap.Facts,
		Weights: snap.Weights,
		Active:  snap.ActiveIndex,
		Width:   cw,
	}
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, board.View()))

	return components.Centered(b.String(), width, height)
}

// PromptText is the large line in the middle of the board.
func PromptText(snap session.Snapshot) string {
	if snap.Phase == session.PhaseCompleted && len(snap.Facts) > 0 {
		return completionPrompt
	}
	if f, ok := snap.ActiveFact(); ok {
		return f.Prompt() + " = ?"
	}
	return idlePrompt
}

// CountdownText renders the seconds left: "7s" while a question is up,
// "Done" after completion and "-" otherwise.
func CountdownText(snap session.Snapshot) string {
	switch snap.Phase {
	case session.PhaseAwaitingAnswer:
		return fmt.Sprintf("%ds", max(snap.Countdown, 0))
	case session.PhaseCompleted:
		return "Done"
	default:
		return "-"
	}
}

func statusStyle(snap session.Snapshot) lipgloss.Style {
	if snap.Phase == session.PhaseCompleted {
		return theme.Correct
	}
	switch snap.Outcome {
	case session.OutcomeCorrect:
		if snap.Phase == session.PhaseScoring {
			return theme.Correct
		}
	case session.OutcomeIncorrect, session.OutcomeTimeout:
		if snap.Phase == session.PhaseScoring {
			return theme.Incorrect
		}
	}
	return theme.Body
}
