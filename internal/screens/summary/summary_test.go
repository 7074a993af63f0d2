package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/screen"
)

func testSummary() game.Summary {
	return game.Summary{
		GameID:         "test-game",
		Level:          "medium",
		Score:          140,
		CorrectCount:   14,
		TotalQuestions: 20,
		Accuracy:       70,
		LivesRemaining: 2,
	}
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                            { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                     { return "" }
func (stubScreen) Title() string                            { return "stub" }

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "140") {
		t.Error("expected the score in the view")
	}
	if !strings.Contains(view, "14/20") {
		t.Error("expected the correct count in the view")
	}
}

func TestSummaryScreen_Verdicts(t *testing.T) {
	outOfLives := testSummary()
	outOfLives.LivesRemaining = 0
	if v := New(outOfLives, nil).View(80, 24); !strings.Contains(v, "Out of lives!") {
		t.Error("expected out-of-lives verdict")
	}

	flawless := testSummary()
	flawless.CorrectCount = 20
	flawless.Accuracy = 100
	if v := New(flawless, nil).View(80, 24); !strings.Contains(v, "Flawless run!") {
		t.Error("expected flawless verdict")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message on Enter")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} })
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if cmd == nil {
		t.Fatal("expected a command on P")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a replace message on P")
	}
	if _, ok := msg.Screen.(stubScreen); !ok {
		t.Error("expected the replay factory's screen")
	}
}

func TestSummaryScreen_PlayAgainWithoutFactory(t *testing.T) {
	s := New(testSummary(), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"}); cmd != nil {
		t.Error("expected no command when no replay factory is set")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
