package game

import (
	"math/rand/v2"
	"testing"
	"time"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(
		WithRand(testRand()),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
}

func testPool(n int) []Question {
	pool := make([]Question, n)
	for i := range pool {
		a, b := i%12+1, (i*7)%12+1
		pool[i] = Question{
			ID:            string(rune('a' + i%26)),
			A:             a,
			B:             b,
			CorrectAnswer: a * b,
			WrongAnswers:  []int{a*b + 1, a*b - 1, a*b + 10, a*b + 2},
			Hint:          "count it out",
		}
	}
	return pool
}

func mustStart(t *testing.T, e *Engine, level Level, pool []Question) {
	t.Helper()
	if err := e.Start(level, pool); err != nil {
		t.Fatalf("start: %v", err)
	}
}

func TestStartEmptyPool(t *testing.T) {
	e := testEngine(t)
	if err := e.Start(Levels[0], nil); err != ErrNoQuestions {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
}

func TestStartInitialState(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[1], testPool(30))

	if e.Phase() != PhaseActive {
		t.Errorf("phase = %v, want active", e.Phase())
	}
	if e.Score() != 0 || e.Streak() != 0 {
		t.Errorf("score/streak = %d/%d, want 0/0", e.Score(), e.Streak())
	}
	if e.Lives() != InitialLives {
		t.Errorf("lives = %d, want %d", e.Lives(), InitialLives)
	}
	if e.SessionLength() != QuestionsPerGame {
		t.Errorf("session length = %d, want %d", e.SessionLength(), QuestionsPerGame)
	}
	if e.TimeRemaining() != 6 {
		t.Errorf("time remaining = %d, want 6 (medium)", e.TimeRemaining())
	}
	if e.GameID() == "" {
		t.Error("expected a game ID")
	}
}

func TestSmallPoolCapsSession(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(7))
	if e.SessionLength() != 7 {
		t.Errorf("session length = %d, want 7", e.SessionLength())
	}
}

func TestSubmitCorrect(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(10))

	if ok := e.Submit(e.Current().CorrectAnswer); !ok {
		t.Fatal("submit rejected in active phase")
	}
	if e.Phase() != PhaseAnswered {
		t.Errorf("phase = %v, want answered", e.Phase())
	}
	if e.Score() != PointsPerCorrect {
		t.Errorf("score = %d, want %d", e.Score(), PointsPerCorrect)
	}
	if e.Streak() != 1 {
		t.Errorf("streak = %d, want 1", e.Streak())
	}
	if e.Lives() != InitialLives {
		t.Errorf("lives = %d, want %d", e.Lives(), InitialLives)
	}

	out, ok := e.LastOutcome()
	if !ok || out.Outcome != OutcomeCorrect || !out.Correct {
		t.Errorf("outcome = %+v, want correct", out)
	}
	if out.UserAnswer == nil || *out.UserAnswer != e.Current().CorrectAnswer {
		t.Errorf("user answer = %v", out.UserAnswer)
	}
}

func TestSubmitWrong(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(10))

	e.Submit(e.Current().CorrectAnswer + 1)
	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
	if e.Lives() != InitialLives-1 {
		t.Errorf("lives = %d, want %d", e.Lives(), InitialLives-1)
	}
	if e.Streak() != 0 {
		t.Errorf("streak = %d, want 0", e.Streak())
	}
	out, _ := e.LastOutcome()
	if out.Outcome != OutcomeWrong {
		t.Errorf("outcome = %q, want wrong", out.Outcome)
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(10))

	for i := 0; i < 3; i++ {
		e.Submit(e.Current().CorrectAnswer)
		e.Advance()
	}
	if e.Streak() != 3 {
		t.Fatalf("streak = %d, want 3", e.Streak())
	}
	e.Submit(e.Current().CorrectAnswer + 1)
	if e.Streak() != 0 {
		t.Errorf("streak = %d, want 0 after miss", e.Streak())
	}
}

func TestTimeoutResolvesQuestion(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[2], testPool(10)) // ninja: 4s

	for i := 0; i < 4; i++ {
		if e.Phase() != PhaseActive {
			t.Fatalf("tick %d: phase = %v, want active", i, e.Phase())
		}
		e.Tick()
	}

	if e.Phase() != PhaseAnswered {
		t.Fatalf("phase = %v, want answered after countdown", e.Phase())
	}
	if e.Lives() != InitialLives-1 {
		t.Errorf("lives = %d, want %d", e.Lives(), InitialLives-1)
	}
	out, _ := e.LastOutcome()
	if out.Outcome != OutcomeTimeout {
		t.Errorf("outcome = %q, want timeout", out.Outcome)
	}
	if out.UserAnswer != nil {
		t.Errorf("user answer = %v, want nil on timeout", out.UserAnswer)
	}
}

func TestStaleInputIsNoOp(t *testing.T) {
	e := testEngine(t)

	// Before start.
	if e.Submit(42) {
		t.Error("submit accepted while idle")
	}
	e.Tick()
	e.Advance()
	if e.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", e.Phase())
	}

	mustStart(t, e, Levels[0], testPool(10))
	e.Submit(e.Current().CorrectAnswer)

	// Duplicate submit and stray tick while showing feedback.
	score := e.Score()
	if e.Submit(e.Current().CorrectAnswer) {
		t.Error("submit accepted in answered phase")
	}
	e.Tick()
	if e.Score() != score {
		t.Errorf("score changed by stale input: %d != %d", e.Score(), score)
	}
	if len(e.Log()) != 1 {
		t.Errorf("log length = %d, want 1", len(e.Log()))
	}
}

func TestStreakAwardsExtraLife(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(10))

	for i := 0; i < StreakForExtraLife; i++ {
		e.Submit(e.Current().CorrectAnswer)
		if i < StreakForExtraLife-1 {
			e.Advance()
		}
	}
	if e.Lives() != InitialLives+1 {
		t.Errorf("lives = %d, want %d after %d-streak", e.Lives(), InitialLives+1, StreakForExtraLife)
	}
}

func TestPerfectGame(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(40))

	for e.Phase() != PhaseFinished {
		if e.Phase() != PhaseActive {
			t.Fatalf("unexpected phase %v", e.Phase())
		}
		e.Submit(e.Current().CorrectAnswer)
		e.Advance()
	}

	s := e.Summary()
	if s.Score != QuestionsPerGame*PointsPerCorrect {
		t.Errorf("score = %d, want %d", s.Score, QuestionsPerGame*PointsPerCorrect)
	}
	if s.CorrectCount != QuestionsPerGame || s.TotalQuestions != QuestionsPerGame {
		t.Errorf("correct/total = %d/%d, want 20/20", s.CorrectCount, s.TotalQuestions)
	}
	if s.Accuracy != 100 {
		t.Errorf("accuracy = %d, want 100", s.Accuracy)
	}
	// 20-streak passes the threshold four times.
	if s.LivesRemaining < InitialLives {
		t.Errorf("lives = %d, want >= %d", s.LivesRemaining, InitialLives)
	}
	if s.LivesRemaining != InitialLives+4 {
		t.Errorf("lives = %d, want %d", s.LivesRemaining, InitialLives+4)
	}
}

func TestAllTimeoutsEndsGame(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[2], testPool(40)) // ninja

	for e.Phase() != PhaseFinished {
		for e.Phase() == PhaseActive {
			e.Tick()
		}
		e.Advance()
	}

	s := e.Summary()
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.LivesRemaining != 0 {
		t.Errorf("lives = %d, want 0", s.LivesRemaining)
	}
	// One timeout per starting life.
	if s.TotalQuestions != InitialLives {
		t.Errorf("questions played = %d, want %d", s.TotalQuestions, InitialLives)
	}
	if s.Accuracy != 0 {
		t.Errorf("accuracy = %d, want 0", s.Accuracy)
	}
}

func TestAccuracyRounding(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(3))

	// 2 correct out of 3: round(66.66) = 67.
	e.Submit(e.Current().CorrectAnswer)
	e.Advance()
	e.Submit(e.Current().CorrectAnswer)
	e.Advance()
	e.Submit(e.Current().CorrectAnswer + 1)
	e.Advance()

	s := e.Summary()
	if s.Accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", s.Accuracy)
	}
	if e.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", e.Phase())
	}
}

func TestSummaryBeforeStart(t *testing.T) {
	e := testEngine(t)
	s := e.Summary()
	if s.Accuracy != 0 || s.TotalQuestions != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestRestartSupersedesRunningGame(t *testing.T) {
	e := testEngine(t)
	mustStart(t, e, Levels[0], testPool(10))
	e.Submit(e.Current().CorrectAnswer)
	firstID := e.GameID()

	mustStart(t, e, Levels[2], testPool(10))
	if e.GameID() == firstID {
		t.Error("restart kept the old game ID")
	}
	if e.Score() != 0 || len(e.Log()) != 0 {
		t.Errorf("restart kept old progress: score=%d log=%d", e.Score(), len(e.Log()))
	}
	if e.Level().Key != "ninja" {
		t.Errorf("level = %q, want ninja", e.Level().Key)
	}
}

func TestTimedOutcomeDuration(t *testing.T) {
	now := time.Unix(1700000000, 0)
	e := NewEngine(
		WithRand(testRand()),
		WithClock(func() time.Time { return now }),
	)
	mustStart(t, e, Levels[0], testPool(5))

	now = now.Add(2500 * time.Millisecond)
	e.Submit(e.Current().CorrectAnswer)

	out, _ := e.LastOutcome()
	if out.TimeTaken != 2.5 {
		t.Errorf("time taken = %v, want 2.5", out.TimeTaken)
	}
}
