package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/screen"
	gamescreen "github.com/abhisek/timesninja/internal/screens/game"
	"github.com/abhisek/timesninja/internal/screens/history"
	"github.com/abhisek/timesninja/internal/store"
	"github.com/abhisek/timesninja/internal/ui/components"
	"github.com/abhisek/timesninja/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	bank      questionbank.Bank
	eventRepo store.EventRepo
	offline   bool

	menu       components.Menu
	menuLabels []string
	levelIdx   int

	bestScore     int
	gamesPlayed   int
	lastAccuracy  int // -1 when no games played yet
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen with level preselected. offline indicates
// the built-in question bank is in use because no LLM API key was found.
func New(bank questionbank.Bank, eventRepo store.EventRepo, level game.Level, offline bool) *HomeScreen {
	h := &HomeScreen{
		bank:         bank,
		eventRepo:    eventRepo,
		offline:      offline,
		lastAccuracy: -1,
	}
	for i, l := range game.Levels {
		if l.Key == level.Key {
			h.levelIdx = i
			break
		}
	}

	// Dashboard stats come straight from stored games.
	if eventRepo != nil {
		ctx := context.Background()
		if games, err := eventRepo.ListGames(ctx); err == nil && len(games) > 0 {
			h.bestScore = games[0].Score
			h.gamesPlayed = len(games)
		}
		if recent, err := eventRepo.RecentGames(ctx, 1); err == nil && len(recent) > 0 {
			last := recent[0]
			h.lastAccuracy = last.Accuracy
			switch {
			case last.LivesRemaining <= 0:
				h.mascotVariant = MascotAlert
			case last.Accuracy == 100 && last.TotalQuestions > 0:
				h.mascotVariant = MascotCelebrating
			}
		}
	}

	h.menuLabels = []string{"START GAME", "HISTORY", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: gamescreen.New(h.bank, h.eventRepo, h.level()),
				}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.eventRepo)}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// level returns the currently selected difficulty.
func (h *HomeScreen) level() game.Level {
	return game.Levels[h.levelIdx]
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "◀ ▶", Description: "Level"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if h.levelIdx > 0 {
				h.levelIdx--
			}
			return h, nil
		case "right", "l":
			if h.levelIdx < len(game.Levels)-1 {
				h.levelIdx++
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderLevelSelect(h.level(), h.levelIdx, cw))

	sections = append(sections, renderStatsBar(
		h.bestScore, h.gamesPlayed, h.lastAccuracy, cw, compact))

	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	if h.offline {
		sections = append(sections, renderOfflineBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
