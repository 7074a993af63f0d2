package game

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/abhisek/timesninja/internal/screen"
	"github.com/abhisek/timesninja/internal/store"
)

// mockBank implements questionbank.Bank for testing.
type mockBank struct {
	questions []engine.Question
	err       error
}

func (m *mockBank) SessionQuestions(_ context.Context, _ []questionbank.HistoryEntry) ([]engine.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

// mockEventRepo implements store.EventRepo for testing.
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
func (m *mockEventRepo) RecentGames(_ context.Context, _ int) ([]store.GameRecord, error) {
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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions(n int) []engine.Question {
	var qs []engine.Question
	for i := 0; i < n; i++ {
		qs = append(qs, engine.Question{
			ID:            "q1",
			A:             3,
			B:             4,
			CorrectAnswer: 12,
			WrongAnswers:  []int{11, 13, 7, 16},
			Hint:          "3 + 3 + 3 + 3",
		})
	}
	return qs
}

func testGameScreen(pool []engine.Question) (*GameScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	s := New(&mockBank{questions: pool}, repo, engine.DefaultLevel)
	return s, repo
}

// startGame feeds the pool in, mimicking a completed fetch.
func startGame(t *testing.T, s *GameScreen, pool []engine.Question) {
	t.Helper()
	scr, _ := s.Update(questionsReadyMsg{Questions: pool})
	if scr.(*GameScreen).engine.Phase() != engine.PhaseActive {
		t.Fatal("expected active phase after questions load")
	}
}

// correctKey returns the number key for the correct option.
func correctKey(t *testing.T, s *GameScreen) rune {
	t.Helper()
	correct := s.engine.Current().CorrectAnswer
	for i, opt := range s.grid.Options {
		if opt == correct {
			return rune('1' + i)
		}
	}
	t.Fatal("correct answer not among options")
	return 0
}

func TestGameScreen_Title(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	if s.Title() != "Game" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game")
	}
}

func TestGameScreen_View_Loading(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestGameScreen_View_Error(t *testing.T) {
	s, _ := testGameScreen(nil)
	scr, _ := s.Update(questionsReadyMsg{Err: errors.New("boom")})
	gs := scr.(*GameScreen)
	if gs.errMsg == "" {
		t.Error("expected error message after failed load")
	}
	if view := gs.View(80, 24); view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestGameScreen_EmptyPoolIsAnError(t *testing.T) {
	s, _ := testGameScreen(nil)
	scr, _ := s.Update(questionsReadyMsg{})
	if scr.(*GameScreen).errMsg == "" {
		t.Error("expected error message for an empty pool")
	}
}

func TestGameScreen_CorrectAnswer(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	scr, cmd := s.Update(keyPress(correctKey(t, s)))
	gs := scr.(*GameScreen)

	if gs.engine.Phase() != engine.PhaseAnswered {
		t.Errorf("phase = %v, want answered", gs.engine.Phase())
	}
	out, ok := gs.engine.LastOutcome()
	if !ok || !out.Correct {
		t.Error("expected a correct outcome")
	}
	if cmd == nil {
		t.Error("expected a feedback timer command")
	}
	if !gs.grid.Revealed {
		t.Error("expected the grid to reveal after answering")
	}
}

func TestGameScreen_TimeoutResolvesQuestion(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	var scr screen.Screen = s
	for i := 0; i < engine.DefaultLevel.TimePerQuestion; i++ {
		scr, _ = scr.Update(timerTickMsg{})
	}
	gs := scr.(*GameScreen)

	out, ok := gs.engine.LastOutcome()
	if !ok || out.Outcome != engine.OutcomeTimeout {
		t.Errorf("expected timeout outcome, got %+v", out)
	}
	if !gs.grid.Revealed {
		t.Error("expected the grid to reveal on timeout")
	}
}

func TestGameScreen_FeedbackAdvances(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	s.Update(keyPress(correctKey(t, s)))
	scr, cmd := s.Update(feedbackDoneMsg{})
	gs := scr.(*GameScreen)

	if gs.engine.Phase() != engine.PhaseActive {
		t.Errorf("phase = %v, want active", gs.engine.Phase())
	}
	if gs.grid.Revealed {
		t.Error("expected a fresh grid for the next question")
	}
	if cmd == nil {
		t.Error("expected the countdown to restart")
	}
}

func TestGameScreen_QuitConfirm(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	gs := scr.(*GameScreen)
	if !gs.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = gs.Update(keyPress('n'))
	gs = scr.(*GameScreen)
	if gs.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestGameScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestGameScreen_QuitConfirmPausesCountdown(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	s.Update(specialKey(tea.KeyEscape))
	before := s.engine.TimeRemaining()
	s.Update(timerTickMsg{})
	if s.engine.TimeRemaining() != before {
		t.Error("expected the countdown to pause during the quit dialog")
	}
}

func TestGameScreen_FinishPersistsGame(t *testing.T) {
	pool := testQuestions(1) // session length 1: one answer ends the game
	s, repo := testGameScreen(pool)
	startGame(t, s, pool)

	s.Update(keyPress(correctKey(t, s)))
	_, cmd := s.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected finish commands")
	}

	// Drain the batch so the save command runs.
	drain(cmd)

	if len(repo.games) != 1 {
		t.Fatalf("persisted games = %d, want 1", len(repo.games))
	}
	rec := repo.games[0]
	if rec.Score != engine.PointsPerCorrect || rec.CorrectCount != 1 || rec.TotalQuestions != 1 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Accuracy != 100 {
		t.Errorf("accuracy = %d, want 100", rec.Accuracy)
	}
	if len(rec.Outcomes) != 1 || !rec.Outcomes[0].Correct {
		t.Errorf("unexpected outcomes: %+v", rec.Outcomes)
	}
}

func TestGameScreen_StaleKeysIgnoredDuringFeedback(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	startGame(t, s, testQuestions(3))

	s.Update(keyPress(correctKey(t, s)))
	scoreBefore := s.engine.Score()
	s.Update(keyPress('1'))
	if s.engine.Score() != scoreBefore {
		t.Error("expected input to be ignored while feedback is showing")
	}
}

func TestGameScreen_KeyHints(t *testing.T) {
	s, _ := testGameScreen(testQuestions(3))
	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}

// drain executes a command tree, discarding produced messages.
func drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(c)
		}
	}
}
