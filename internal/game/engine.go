package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Game rules.
const (
	QuestionsPerGame   = 20
	InitialLives       = 5
	StreakForExtraLife = 5
	PointsPerCorrect   = 10
)

// ErrNoQuestions is returned by Start when the pool is empty.
var ErrNoQuestions = errors.New("no questions available")

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseAnswered
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome classifies how a question was resolved.
const (
	OutcomeCorrect = "correct"
	OutcomeWrong   = "wrong"
	OutcomeTimeout = "timeout"
)

// QuestionOutcome records how one question went.
// UserAnswer is nil on timeout.
type QuestionOutcome struct {
	QuestionID    string
	A             int
	B             int
	CorrectAnswer int
	UserAnswer    *int
	Correct       bool
	TimeTaken     float64 // seconds from shown to resolved
	Outcome       string
}

// Summary is the final state of a game, computed from the outcome log.
type Summary struct {
	GameID         string
	Level          string
	Score          int
	CorrectCount   int
	TotalQuestions int
	Accuracy       int // rounded percentage, 0 when nothing was answered
	LivesRemaining int
}

// Engine runs one round of the game. It is a pure state machine: time
// advances only through Tick, and randomness comes from the injected
// source, so every transition is deterministic under test.
//
// Phases: Idle → Active → Answered → Active ... → Finished. Submit is
// only honored in Active; Advance only in Answered. Everything else is
// a silent no-op, which makes stale UI messages harmless.
type Engine struct {
	rng *rand.Rand
	now func() time.Time

	phase         Phase
	level         Level
	pool          []Question
	sessionLength int
	questionIndex int
	gameID        string

	current       Question
	options       []int
	timeRemaining int
	questionStart time.Time

	score  int
	lives  int
	streak int
	log    []QuestionOutcome
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for question draws and option
// shuffles.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithClock sets the time source used for per-question timing.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an idle engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a new game at the given level, drawing from pool.
// A start supersedes any game in progress. The session is capped at
// QuestionsPerGame but never exceeds what the pool can offer; draws
// are independent, so facts may repeat within a session.
func (e *Engine) Start(level Level, pool []Question) error {
	if len(pool) == 0 {
		return ErrNoQuestions
	}

	e.level = level
	e.pool = pool
	e.sessionLength = min(QuestionsPerGame, len(pool))
	e.questionIndex = 0
	e.gameID = uuid.NewString()
	e.score = 0
	e.lives = InitialLives
	e.streak = 0
	e.log = nil
	e.phase = PhaseActive
	e.nextQuestion()
	return nil
}

// Submit resolves the current question with the player's answer.
// Returns false without effect when no question is awaiting an answer.
func (e *Engine) Submit(value int) bool {
	if e.phase != PhaseActive {
		return false
	}
	e.resolve(&value)
	return true
}

// Tick advances the countdown by one second. At zero the question
// resolves as a timeout. No-op outside Active.
func (e *Engine) Tick() {
	if e.phase != PhaseActive {
		return
	}
	e.timeRemaining--
	if e.timeRemaining <= 0 {
		e.resolve(nil)
	}
}

// Advance moves past the feedback state: to the next question, or to
// Finished when lives are gone or the session is complete. No-op
// outside Answered.
func (e *Engine) Advance() {
	if e.phase != PhaseAnswered {
		return
	}
	e.questionIndex++
	if e.lives <= 0 || e.questionIndex >= e.sessionLength {
		e.phase = PhaseFinished
		return
	}
	e.phase = PhaseActive
	e.nextQuestion()
}

func (e *Engine) nextQuestion() {
	e.current = e.pool[e.rng.IntN(len(e.pool))]
	e.options = e.current.ShuffledOptions(e.rng)
	e.timeRemaining = e.level.TimePerQuestion
	e.questionStart = e.now()
}

func (e *Engine) resolve(answer *int) {
	correct := answer != nil && *answer == e.current.CorrectAnswer

	outcome := OutcomeTimeout
	if answer != nil {
		outcome = OutcomeWrong
		if correct {
			outcome = OutcomeCorrect
		}
	}

	if correct {
		e.score += PointsPerCorrect
		e.streak++
		if e.streak%StreakForExtraLife == 0 {
			e.lives++
		}
	} else {
		e.lives--
		e.streak = 0
	}

	e.log = append(e.log, QuestionOutcome{
		QuestionID:    e.current.ID,
		A:             e.current.A,
		B:             e.current.B,
		CorrectAnswer: e.current.CorrectAnswer,
		UserAnswer:    answer,
		Correct:       correct,
		TimeTaken:     e.now().Sub(e.questionStart).Seconds(),
		Outcome:       outcome,
	})
	e.phase = PhaseAnswered
}

// Summary computes the final tallies from the outcome log.
func (e *Engine) Summary() Summary {
	correct := 0
	for _, o := range e.log {
		if o.Correct {
			correct++
		}
	}
	accuracy := 0
	if len(e.log) > 0 {
		accuracy = int(math.Round(float64(correct) / float64(len(e.log)) * 100))
	}
	return Summary{
		GameID:         e.gameID,
		Level:          e.level.Key,
		Score:          e.score,
		CorrectCount:   correct,
		TotalQuestions: len(e.log),
		Accuracy:       accuracy,
		LivesRemaining: e.lives,
	}
}

// Phase returns the current lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// GameID returns the UUID of the current game.
func (e *Engine) GameID() string { return e.gameID }

// Level returns the level the game was started with.
func (e *Engine) Level() Level { return e.level }

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Streak returns the current run of consecutive correct answers.
func (e *Engine) Streak() int { return e.streak }

// QuestionIndex returns the zero-based index of the current question.
func (e *Engine) QuestionIndex() int { return e.questionIndex }

// SessionLength returns how many questions this game runs at most.
func (e *Engine) SessionLength() int { return e.sessionLength }

// TimeRemaining returns the seconds left on the current question.
func (e *Engine) TimeRemaining() int { return e.timeRemaining }

// Current returns the question being asked.
func (e *Engine) Current() Question { return e.current }

// Options returns the shuffled answer choices for the current question.
func (e *Engine) Options() []int { return e.options }

// Log returns the outcome log, in play order.
func (e *Engine) Log() []QuestionOutcome { return e.log }

// LastOutcome returns the most recent resolution, if any.
func (e *Engine) LastOutcome() (QuestionOutcome, bool) {
	if len(e.log) == 0 {
		return QuestionOutcome{}, false
	}
	return e.log[len(e.log)-1], true
}
