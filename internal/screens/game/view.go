package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/ui/components"
	"github.com/abhisek/timesninja/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.loading {
		return s.renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the live question, and doubles as the feedback
// view once the grid is revealed.
func (s *GameScreen) renderQuestion(width int) string {
	e := s.engine

	var b strings.Builder

	// Status line: progress, score, lives, streak.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", e.QuestionIndex()+1, e.SessionLength()))

	hearts := strings.Repeat("♥", e.Lives())
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("score %d  ", e.Score())) +
		lipgloss.NewStyle().Foreground(theme.Error).Render(hearts)
	if e.Streak() >= 2 {
		right += lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("  %d in a row", e.Streak()))
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Countdown bar.
	total := e.Level().TimePerQuestion
	percent := 0.0
	if total > 0 {
		percent = float64(e.TimeRemaining()) / float64(total)
	}
	bar := components.NewProgressBar(fmt.Sprintf("%2ds", e.TimeRemaining()), percent, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(e.Current().Prompt()))
	b.WriteString("\n\n")

	// Answer options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.grid.View()))
	b.WriteString("\n")

	if s.engine.Phase() == engine.PhaseAnswered {
		b.WriteString(s.renderFeedbackBanner(width))
	}

	return b.String()
}

// renderFeedbackBanner renders the verdict under the revealed grid.
func (s *GameScreen) renderFeedbackBanner(width int) string {
	out, ok := s.engine.LastOutcome()
	if !ok {
		return ""
	}

	var b strings.Builder

	switch out.Outcome {
	case engine.OutcomeCorrect:
		text := fmt.Sprintf("Correct!  +%d", engine.PointsPerCorrect)
		if s.engine.Streak() > 0 && s.engine.Streak()%engine.StreakForExtraLife == 0 {
			text += "   extra life!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(text))
	case engine.OutcomeTimeout:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Time's up!  %d × %d = %d", out.A, out.B, out.CorrectAnswer)))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Not quite — it's %d", out.CorrectAnswer)))
	}

	if !out.Correct && s.engine.Current().Hint != "" {
		b.WriteString("\n")
		hint := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(s.engine.Current().Hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	}

	return b.String()
}

// renderQuitConfirm renders the abandon-game dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this game?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("An unfinished game is not recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))

	return b.String()
}

// renderLoading renders the question-fetch state.
func (s *GameScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n%s Forging your questions...", s.spin.View()))
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
