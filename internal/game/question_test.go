package game

import (
	"testing"
)

func TestQuestionPrompt(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{
			name: "generator text wins",
			q:    Question{A: 6, B: 7, QuestionText: "What is 6 times 7?"},
			want: "What is 6 times 7?",
		},
		{
			name: "fallback to bare fact",
			q:    Question{A: 6, B: 7},
			want: "6 × 7 = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Prompt(); got != tt.want {
				t.Errorf("Prompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShuffledOptionsContainsCorrectOnce(t *testing.T) {
	q := Question{
		A: 6, B: 7, CorrectAnswer: 42,
		WrongAnswers: []int{40, 44, 36, 48},
	}
	opts := q.ShuffledOptions(testRand())

	if len(opts) != 5 {
		t.Fatalf("options = %d, want 5", len(opts))
	}
	count := 0
	for _, v := range opts {
		if v == 42 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("correct answer appears %d times, want 1", count)
	}
}

func TestShuffledOptionsCollapsesCollisions(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want int // option count after dedupe
	}{
		{
			name: "distractor equals correct",
			q:    Question{CorrectAnswer: 42, WrongAnswers: []int{42, 40, 44, 36}},
			want: 4,
		},
		{
			name: "duplicate distractors",
			q:    Question{CorrectAnswer: 42, WrongAnswers: []int{40, 40, 40, 44}},
			want: 3,
		},
		{
			name: "everything collides",
			q:    Question{CorrectAnswer: 42, WrongAnswers: []int{42, 42, 42, 42}},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.q.ShuffledOptions(testRand())
			if len(opts) != tt.want {
				t.Errorf("options = %d, want %d", len(opts), tt.want)
			}
			found := false
			for _, v := range opts {
				if v == tt.q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Error("correct answer missing from options")
			}
		})
	}
}

func TestLevelByKey(t *testing.T) {
	l, ok := LevelByKey("ninja")
	if !ok {
		t.Fatal("ninja level not found")
	}
	if l.TimePerQuestion != 4 {
		t.Errorf("ninja time = %d, want 4", l.TimePerQuestion)
	}

	if _, ok := LevelByKey("impossible"); ok {
		t.Error("expected miss for unknown key")
	}
}
