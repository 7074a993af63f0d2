package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/screen"
	"github.com/abhisek/timesninja/internal/store"
	"github.com/abhisek/timesninja/internal/ui/layout"
	"github.com/abhisek/timesninja/internal/ui/theme"
)

// How many entries count as the leaderboard proper.
const topGames = 5

type historyLoadedMsg struct {
	Games []store.GameRecord
	Err   error
}

// HistoryScreen displays past games ranked by score.
type HistoryScreen struct {
	eventRepo store.EventRepo
	games     []store.GameRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		games, err := s.eventRepo.ListGames(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Games: games}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.games = msg.Games
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.games) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Go play one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render("BEST GAMES")))
	b.WriteString("\n\n")

	for i, g := range s.games {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderGameLine(i, g)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, line := range missedFactLines(g) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
				b.WriteString("\n")
			}
		}

		// Divider between the leaderboard and the rest.
		if i == topGames-1 && len(s.games) > topGames {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Border).
					Render(strings.Repeat("─", min(width-8, 50)))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderGameLine(i int, g store.GameRecord) string {
	dateStr := g.Timestamp.Format("Jan 02, 2006")

	levelLabel := g.Level
	if lvl, ok := game.LevelByKey(g.Level); ok {
		levelLabel = lvl.Label
	}

	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}

	line := fmt.Sprintf("%s#%-2d  %4d pts  %-6s  %2d/%d  %3d%%  %s",
		prefix, i+1, g.Score, levelLabel, g.CorrectCount, g.TotalQuestions, g.Accuracy, dateStr)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i < topGames {
		style = style.Foreground(theme.ArcadeYellow)
	}
	if i == s.selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line)
}

// missedFactLines renders the facts the player got wrong or timed out on.
func missedFactLines(g store.GameRecord) []string {
	var lines []string
	for _, o := range g.Outcomes {
		if o.Correct {
			continue
		}
		var detail string
		if o.UserAnswer != nil {
			detail = fmt.Sprintf("answered %d", *o.UserAnswer)
		} else {
			detail = "ran out of time"
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("    %d × %d = %d  (%s)", o.A, o.B, o.CorrectAnswer, detail)))
	}
	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("    Nothing missed — perfect game"))
	}
	return lines
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
