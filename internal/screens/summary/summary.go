package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/screen"
	"github.com/abhisek/timesninja/internal/ui/layout"
	"github.com/abhisek/timesninja/internal/ui/theme"
)

// SummaryScreen displays the result of a finished game.
type SummaryScreen struct {
	summary game.Summary
	replay  func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. replay builds a fresh game screen at the
// same level for the play-again action.
func New(summary game.Summary, replay func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, replay: replay}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "P", Description: "Play again"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "p", "P":
			if s.replay != nil {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.replay()}
				}
			}
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")

	// Verdict.
	verdict := "Game complete!"
	verdictColor := theme.Primary
	if sum.LivesRemaining <= 0 {
		verdict = "Out of lives!"
		verdictColor = theme.Error
	} else if sum.Accuracy == 100 && sum.TotalQuestions > 0 {
		verdict = "Flawless run!"
		verdictColor = theme.ArcadeYellow
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(verdictColor).
		Bold(true).
		Render(verdict))
	b.WriteString("\n\n")

	// Score, front and center.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("SCORE  %d", sum.Score)))
	b.WriteString("\n\n")

	if lvl, ok := game.LevelByKey(sum.Level); ok {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Level: %s (%ds per question)", lvl.Label, lvl.TimePerQuestion)))
		b.WriteString("\n\n")
	}

	statsLine := fmt.Sprintf("Correct: %d/%d        Accuracy: %d%%        Lives left: %d",
		sum.CorrectCount, sum.TotalQuestions, sum.Accuracy, sum.LivesRemaining)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[P] Play again        [Enter] Home"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
