package game

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/abhisek/timesninja/internal/router"
	"github.com/abhisek/timesninja/internal/screen"
	"github.com/abhisek/timesninja/internal/screens/summary"
	"github.com/abhisek/timesninja/internal/store"
	"github.com/abhisek/timesninja/internal/ui/components"
	"github.com/abhisek/timesninja/internal/ui/layout"
)

const (
	// How long the feedback overlay stays up before auto-advancing.
	feedbackCorrectDelay = 700 * time.Millisecond
	feedbackMissDelay    = 900 * time.Millisecond

	// Upper bound on waiting for the question bank, retries included.
	fetchTimeout = 45 * time.Second
)

// GameScreen runs one game from question fetch to the summary push.
type GameScreen struct {
	bank      questionbank.Bank
	eventRepo store.EventRepo
	level     engine.Level

	engine  *engine.Engine
	grid    components.AnswerGrid
	spin    components.Spinner
	loading bool

	showingQuitConfirm bool
	saved              bool
	errMsg             string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a GameScreen for the given level.
func New(bank questionbank.Bank, eventRepo store.EventRepo, level engine.Level) *GameScreen {
	return &GameScreen{
		bank:      bank,
		eventRepo: eventRepo,
		level:     level,
		engine:    engine.NewEngine(),
		spin:      components.NewSpinner(),
		loading:   true,
	}
}

func (s *GameScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadQuestions(),
		s.spin.Init(),
	)
}

func (s *GameScreen) Title() string {
	return "Game"
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	if s.loading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case gameSavedMsg:
		// Persistence is best-effort; a failed save never blocks the summary.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.loading {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}

	return s, nil
}

// loadQuestions fetches a session pool from the bank, feeding it the
// player's recent games so the set adapts to what they struggle with.
func (s *GameScreen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var history []questionbank.HistoryEntry
		if s.eventRepo != nil {
			games, err := s.eventRepo.RecentGames(ctx, questionbank.MaxHistoryGames)
			if err == nil {
				history = questionbank.HistoryFromGames(games, questionbank.MaxHistoryGames)
			}
		}

		questions, err := s.bank.SessionQuestions(ctx, history)
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		return questionsReadyMsg{Questions: questions}
	}
}

func (s *GameScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.loading = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	if err := s.engine.Start(s.level, msg.Questions); err != nil {
		s.loading = false
		s.errMsg = err.Error()
		return s, nil
	}

	s.loading = false
	s.resetGrid()
	return s, tickCmd()
}

func (s *GameScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.engine.Phase() != engine.PhaseActive {
		return s, nil
	}

	// The countdown pauses while the quit dialog is up.
	if s.showingQuitConfirm {
		return s, tickCmd()
	}

	s.engine.Tick()
	if s.engine.Phase() == engine.PhaseAnswered {
		s.grid.Reveal()
		return s, s.feedbackCmd()
	}
	return s, tickCmd()
}

func (s *GameScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.engine.Advance()

	switch s.engine.Phase() {
	case engine.PhaseActive:
		s.resetGrid()
		return s, tickCmd()
	case engine.PhaseFinished:
		return s.finishGame()
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.loading {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.engine.Phase() != engine.PhaseActive {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "up", "k":
		s.grid.MoveUp()
		return s, nil
	case "down", "j":
		s.grid.MoveDown()
		return s, nil
	case "enter":
		return s.chooseOption(s.grid.Selected)
	case "1", "2", "3", "4", "5":
		return s.chooseOption(int(key[0] - '1'))
	}

	return s, nil
}

// chooseOption locks in the option at index and submits it.
func (s *GameScreen) chooseOption(index int) (screen.Screen, tea.Cmd) {
	value, ok := s.grid.Choose(index)
	if !ok {
		return s, nil
	}
	s.engine.Submit(value)
	return s, s.feedbackCmd()
}

// finishGame persists the outcome and pushes the summary screen.
func (s *GameScreen) finishGame() (screen.Screen, tea.Cmd) {
	sum := s.engine.Summary()

	// Replace rather than push so backing out of the summary lands on
	// home, not on a finished game.
	cmds := []tea.Cmd{
		func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(sum, s.replay),
			}
		},
	}

	if s.eventRepo != nil && !s.saved {
		s.saved = true
		log := s.engine.Log()
		cmds = append(cmds, func() tea.Msg {
			return gameSavedMsg{Err: s.eventRepo.AppendGame(context.Background(), gameRecord(sum, log))}
		})
	}

	return s, tea.Batch(cmds...)
}

// replay builds a fresh game screen at the same level, used by the
// summary screen's play-again action.
func (s *GameScreen) replay() screen.Screen {
	return New(s.bank, s.eventRepo, s.level)
}

func (s *GameScreen) resetGrid() {
	s.grid = components.NewAnswerGrid(s.engine.Options(), s.engine.Current().CorrectAnswer)
}

// feedbackCmd schedules the auto-advance after an answer resolves.
// Misses linger a little longer so the correct answer registers.
func (s *GameScreen) feedbackCmd() tea.Cmd {
	delay := feedbackMissDelay
	if out, ok := s.engine.LastOutcome(); ok && out.Correct {
		delay = feedbackCorrectDelay
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// gameRecord converts a finished game into its stored form.
func gameRecord(sum engine.Summary, log []engine.QuestionOutcome) store.GameRecord {
	outcomes := make([]store.OutcomeData, 0, len(log))
	for _, o := range log {
		outcomes = append(outcomes, store.OutcomeData{
			QuestionID:    o.QuestionID,
			A:             o.A,
			B:             o.B,
			CorrectAnswer: o.CorrectAnswer,
			UserAnswer:    o.UserAnswer,
			Correct:       o.Correct,
			TimeTaken:     o.TimeTaken,
			Outcome:       o.Outcome,
		})
	}
	return store.GameRecord{
		GameID:         sum.GameID,
		Level:          sum.Level,
		Score:          sum.Score,
		CorrectCount:   sum.CorrectCount,
		TotalQuestions: sum.TotalQuestions,
		Accuracy:       sum.Accuracy,
		LivesRemaining: sum.LivesRemaining,
		Outcomes:       outcomes,
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
