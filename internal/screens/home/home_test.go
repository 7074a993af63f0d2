package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/abhisek/timesninja/internal/router"
	gamescreen "github.com/abhisek/timesninja/internal/screens/game"
	"github.com/abhisek/timesninja/internal/screens/history"
	"github.com/abhisek/timesninja/internal/store"
)

type mockBank struct{}

func (mockBank) SessionQuestions(_ context.Context, _ []questionbank.HistoryEntry) ([]game.Question, error) {
	return nil, nil
}

type mockEventRepo struct {
	games []store.GameRecord
}

func (m *mockEventRepo) AppendGame(_ context.Context, rec store.GameRecord) error {
	m.games = append(m.games, rec)
	return nil
}
func (m *mockEventRepo) ListGames(_ context.Context) ([]store.GameRecord, error) {
	return m.games, nil
}
func (m *mockEventRepo) RecentGames(_ context.Context, n int) ([]store.GameRecord, error) {
	if n < len(m.games) {
		return m.games[:n], nil
	}
	return m.games, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) DeleteAll(_ context.Context) error { return nil }

func testHome(games ...store.GameRecord) *HomeScreen {
	return New(mockBank{}, &mockEventRepo{games: games}, game.DefaultLevel, false)
}

func TestHomeScreen_Title(t *testing.T) {
	h := testHome()
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_LevelSelect(t *testing.T) {
	h := testHome()
	start := h.levelIdx

	h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if h.levelIdx != start+1 {
		t.Errorf("levelIdx = %d, want %d", h.levelIdx, start+1)
	}

	for i := 0; i < len(game.Levels)+2; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	}
	if h.levelIdx != 0 {
		t.Errorf("levelIdx = %d, want 0 (clamped)", h.levelIdx)
	}

	for i := 0; i < len(game.Levels)+2; i++ {
		h.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	}
	if h.levelIdx != len(game.Levels)-1 {
		t.Errorf("levelIdx = %d, want %d (clamped)", h.levelIdx, len(game.Levels)-1)
	}
}

func TestHomeScreen_PreselectedLevel(t *testing.T) {
	ninja, ok := game.LevelByKey("ninja")
	if !ok {
		t.Fatal("ninja level missing")
	}
	h := New(mockBank{}, &mockEventRepo{}, ninja, false)
	if h.level().Key != "ninja" {
		t.Errorf("level = %q, want ninja", h.level().Key)
	}
}

func TestHomeScreen_StartGame(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from START GAME")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected a push message, got %T", cmd())
	}
	if _, ok := msg.Screen.(*gamescreen.GameScreen); !ok {
		t.Errorf("expected a game screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_HistoryMenuItem(t *testing.T) {
	h := testHome()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from HISTORY")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected a push message, got %T", cmd())
	}
	if _, ok := msg.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected a history screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_StatsFromStoredGames(t *testing.T) {
	h := testHome(store.GameRecord{
		Score: 180, CorrectCount: 18, TotalQuestions: 20,
		Accuracy: 90, LivesRemaining: 3,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if h.bestScore != 180 || h.gamesPlayed != 1 {
		t.Errorf("stats = best %d / played %d, want 180 / 1", h.bestScore, h.gamesPlayed)
	}
	if h.lastAccuracy != 90 {
		t.Errorf("lastAccuracy = %d, want 90", h.lastAccuracy)
	}
}

func TestHomeScreen_MascotReactsToLastGame(t *testing.T) {
	lost := testHome(store.GameRecord{TotalQuestions: 9, Accuracy: 40, LivesRemaining: 0})
	if lost.mascotVariant != MascotAlert {
		t.Errorf("variant = %v, want alert after running out of lives", lost.mascotVariant)
	}

	flawless := testHome(store.GameRecord{TotalQuestions: 20, Accuracy: 100, LivesRemaining: 5})
	if flawless.mascotVariant != MascotCelebrating {
		t.Errorf("variant = %v, want celebrating after a flawless game", flawless.mascotVariant)
	}
}

func TestHomeScreen_OfflineBanner(t *testing.T) {
	h := New(mockBank{}, &mockEventRepo{}, game.DefaultLevel, true)
	if view := h.View(100, 40); !strings.Contains(view, "built-in question bank") {
		t.Error("expected the offline banner in the view")
	}

	online := testHome()
	if view := online.View(100, 40); strings.Contains(view, "built-in question bank") {
		t.Error("did not expect the offline banner when online")
	}
}

func TestHomeScreen_KeyHints(t *testing.T) {
	h := testHome()
	if hints := h.KeyHints(); len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}
