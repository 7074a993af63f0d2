package questionbank

import (
	"context"
	"errors"

	"github.com/abhisek/timesninja/internal/game"
)

// Bank supplies the question pool for a game session.
type Bank interface {
	// SessionQuestions produces the pool for the next game, tailored to
	// the player's past results. The result holds at most one session's
	// worth of questions and at least one; an unusable generator result
	// is an error, never an empty slice.
	SessionQuestions(ctx context.Context, history []HistoryEntry) ([]game.Question, error)
}

// ErrEmptySession indicates the generator produced no usable questions.
var ErrEmptySession = errors.New("generator produced no usable questions")
