package game

import (
	"fmt"
	"math/rand/v2"
)

// Question is a single multiplication fact with prepared distractors.
// Questions are immutable once built; the engine never mutates them.
type Question struct {
	ID            string
	A             int
	B             int
	CorrectAnswer int
	WrongAnswers  []int
	QuestionText  string
	Hint          string
}

// Prompt returns the display text for the question, falling back to
// the bare fact when the generator supplied none.
func (q Question) Prompt() string {
	if q.QuestionText != "" {
		return q.QuestionText
	}
	return fmt.Sprintf("%d × %d = ?", q.A, q.B)
}

// ShuffledOptions derives the answer choices: the correct answer plus
// the distractors, deduplicated preserving first occurrence, then
// shuffled with rng. Exactly one option equals CorrectAnswer.
// Distractors that collide with the correct answer (or each other)
// collapse, so the result may hold fewer than five values.
func (q Question) ShuffledOptions(rng *rand.Rand) []int {
	seen := make(map[int]bool, len(q.WrongAnswers)+1)
	options := make([]int, 0, len(q.WrongAnswers)+1)

	for _, v := range append([]int{q.CorrectAnswer}, q.WrongAnswers...) {
		if seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
