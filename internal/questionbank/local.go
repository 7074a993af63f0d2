package questionbank

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/timesninja/internal/game"
)

// LocalBank implements Bank without a provider: a deterministic local
// generator used under --offline and when no API key is configured.
// It follows the same progression idea as the LLM prompt: repeat
// recently-missed facts, widen the factor range as history grows, and
// keep distractors plausible.
type LocalBank struct {
	rng         *rand.Rand
	sessionSize int
}

// LocalOption configures a LocalBank.
type LocalOption func(*LocalBank)

// WithLocalRand sets the random source, for deterministic tests.
func WithLocalRand(rng *rand.Rand) LocalOption {
	return func(b *LocalBank) { b.rng = rng }
}

// WithSessionSize overrides the number of questions per session.
func WithSessionSize(n int) LocalOption {
	return func(b *LocalBank) { b.sessionSize = n }
}

// NewLocalBank creates an offline bank.
func NewLocalBank(opts ...LocalOption) *LocalBank {
	b := &LocalBank{
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sessionSize: game.QuestionsPerGame,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type fact struct{ a, b int }

// SessionQuestions builds the next session locally. Roughly a third of
// the slots revisit facts the player recently missed; the rest are
// drawn from a factor range that widens with experience.
func (b *LocalBank) SessionQuestions(_ context.Context, history []HistoryEntry) ([]game.Question, error) {
	missed := missedFacts(history)
	maxFactor := factorCeiling(len(history))

	questions := make([]game.Question, 0, b.sessionSize)
	for i := 0; i < b.sessionSize; i++ {
		var f fact
		if len(missed) > 0 && i%3 == 0 {
			f = missed[b.rng.IntN(len(missed))]
		} else {
			f = fact{b.rng.IntN(maxFactor) + 1, b.rng.IntN(maxFactor) + 1}
		}
		questions = append(questions, b.buildQuestion(f, i))
	}
	return questions, nil
}

// missedFacts collects the distinct facts the player got wrong, most
// recent miss first.
func missedFacts(history []HistoryEntry) []fact {
	seen := make(map[fact]bool)
	var out []fact
	for i := len(history) - 1; i >= 0; i-- {
		e := history[i]
		if e.IsCorrect {
			continue
		}
		f := fact{e.A, e.B}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// factorCeiling widens the factor range as the player answers more
// questions: confidence building first, the full table later.
func factorCeiling(answered int) int {
	switch {
	case answered < 20:
		return 3
	case answered < 60:
		return 6
	case answered < 120:
		return 9
	default:
		return 12
	}
}

func (b *LocalBank) buildQuestion(f fact, index int) game.Question {
	correct := f.a * f.b
	return game.Question{
		ID:            fmt.Sprintf("local-q%d", index+1),
		A:             f.a,
		B:             f.b,
		CorrectAnswer: correct,
		WrongAnswers:  b.distractors(f),
		QuestionText:  fmt.Sprintf("What is %d × %d?", f.a, f.b),
		Hint:          additionHint(f.a, f.b),
	}
}

// distractors picks four distinct near-miss values: off-by-one-factor
// products and off-by-a-bit sums, the mistakes kids actually make.
func (b *LocalBank) distractors(f fact) []int {
	correct := f.a * f.b
	candidates := []int{
		f.a * (f.b + 1),
		f.a * (f.b - 1),
		(f.a + 1) * f.b,
		(f.a - 1) * f.b,
		correct + 1,
		correct - 1,
		f.a + f.b,
		correct + f.a,
	}
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	seen := map[int]bool{correct: true}
	out := make([]int, 0, 4)
	for _, c := range candidates {
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) == 4 {
			break
		}
	}
	// Tiny facts like 1×1 exhaust the plausible pool; pad upward.
	for next := correct + 2; len(out) < 4; next++ {
		if !seen[next] {
			seen[next] = true
			out = append(out, next)
		}
	}
	return out
}

// additionHint phrases the fact as repeated addition, the way the
// game explains multiplication to kids.
func additionHint(a, b int) string {
	if b > 6 {
		return fmt.Sprintf("%d × %d means skip counting by %d, %d times.", a, b, a, b)
	}
	terms := make([]string, b)
	for i := range terms {
		terms[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%d × %d means %s = %d.", a, b, strings.Join(terms, " + "), a*b)
}
