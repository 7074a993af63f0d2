package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/screen"
	"github.com/abhisek/timesninja/internal/screens/home"
	"github.com/abhisek/timesninja/internal/store"
	"github.com/abhisek/timesninja/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Bank      questionbank.Bank
	EventRepo store.EventRepo

	// Level preselects the difficulty on the home screen.
	Level game.Level

	// Offline is set when no LLM API key was found and the built-in
	// question bank is standing in.
	Offline bool
}

// headerStatsMsg refreshes the games-played and best-score header stats.
type headerStatsMsg struct {
	GamesPlayed int
	BestScore   int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	eventRepo store.EventRepo

	width       int
	height      int
	gamesPlayed int
	bestScore   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	level := opts.Level
	if level.Key == "" {
		level = game.DefaultLevel
	}
	homeScreen := home.New(opts.Bank, opts.EventRepo, level, opts.Offline)
	return AppModel{
		router:    router.New(homeScreen),
		eventRepo: opts.EventRepo,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadHeaderStats()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.gamesPlayed = msg.GamesPlayed
		m.bestScore = msg.BestScore
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation is when stored games can have changed.
		return m, tea.Batch(m.router.Update(msg), m.loadHeaderStats())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.gamesPlayed, m.bestScore, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to stack
// defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadHeaderStats fetches the header's games-played and best-score pair.
func (m AppModel) loadHeaderStats() tea.Cmd {
	if m.eventRepo == nil {
		return nil
	}
	repo := m.eventRepo
	return func() tea.Msg {
		games, err := repo.ListGames(context.Background())
		if err != nil || len(games) == 0 {
			return headerStatsMsg{}
		}
		return headerStatsMsg{GamesPlayed: len(games), BestScore: games[0].Score}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
