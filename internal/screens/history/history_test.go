package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/store"
)

type mockEventRepo struct {
	games []store.GameRecord
	err   error
}

func (m *mockEventRepo) AppendGame(_ context.Context, rec store.GameRecord) error {
	m.games = append(m.games, rec)
	return nil
}
func (m *mockEventRepo) ListGames(_ context.Context) ([]store.GameRecord, error) {
	return m.games, m.err
}
func (m *mockEventRepo) RecentGames(_ context.Context, _ int) ([]store.GameRecord, error) {
	return m.games, m.err
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

func rankedGames(n int) []store.GameRecord {
	var games []store.GameRecord
	for i := 0; i < n; i++ {
		seven := 7
		games = append(games, store.GameRecord{
			GameID:         "g",
			Level:          "easy",
			Score:          200 - i*10,
			CorrectCount:   20 - i,
			TotalQuestions: 20,
			Accuracy:       (20 - i) * 5,
			Timestamp:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Outcomes: []store.OutcomeData{
				{A: 6, B: 8, CorrectAnswer: 48, UserAnswer: &seven, Correct: false, Outcome: "wrong"},
			},
		})
	}
	return games
}

func loadedScreen(t *testing.T, games []store.GameRecord) *HistoryScreen {
	t.Helper()
	s := New(&mockEventRepo{games: games})
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*HistoryScreen)
}

func TestHistoryScreen_Title(t *testing.T) {
	s := New(&mockEventRepo{})
	if s.Title() != "History" {
		t.Errorf("Title = %q, want %q", s.Title(), "History")
	}
}

func TestHistoryScreen_LoadsGamesOnInit(t *testing.T) {
	s := loadedScreen(t, rankedGames(3))
	if len(s.games) != 3 {
		t.Errorf("games = %d, want 3", len(s.games))
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "BEST GAMES") {
		t.Error("expected the leaderboard header")
	}
	if !strings.Contains(view, "200 pts") {
		t.Error("expected the top score in the view")
	}
}

func TestHistoryScreen_LoadError(t *testing.T) {
	s := New(&mockEventRepo{err: errors.New("disk gone")})
	msg := s.Init()()
	scr, _ := s.Update(msg)
	view := scr.(*HistoryScreen).View(80, 24)
	if !strings.Contains(view, "disk gone") {
		t.Error("expected the load error in the view")
	}
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	s := loadedScreen(t, nil)
	if view := s.View(80, 24); !strings.Contains(view, "No games yet") {
		t.Error("expected the empty state message")
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := loadedScreen(t, rankedGames(3))

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0 (clamped)", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2 (clamped at last)", s.selected)
	}
}

func TestHistoryScreen_ExpandShowsMissedFacts(t *testing.T) {
	s := loadedScreen(t, rankedGames(2))

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(80, 24)
	if !strings.Contains(view, "6 × 8 = 48") {
		t.Error("expected the missed fact after expanding")
	}
	if !strings.Contains(view, "answered 7") {
		t.Error("expected the wrong answer detail")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if view := s.View(80, 24); strings.Contains(view, "6 × 8 = 48") {
		t.Error("expected the details to collapse on second enter")
	}
}

func TestHistoryScreen_DividerAfterTopFive(t *testing.T) {
	s := loadedScreen(t, rankedGames(7))
	view := s.View(80, 30)
	if !strings.Contains(view, "─") {
		t.Error("expected a divider after the leaderboard")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := loadedScreen(t, rankedGames(1))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message on esc")
	}
}
