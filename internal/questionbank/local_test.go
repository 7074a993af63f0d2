package questionbank

import (
	"context"
	"math/rand/v2"
	"testing"
)

func testLocalBank() *LocalBank {
	return NewLocalBank(WithLocalRand(rand.New(rand.NewPCG(7, 7))))
}

func TestLocalBank_ProducesFullSession(t *testing.T) {
	bank := testLocalBank()

	qs, err := bank.SessionQuestions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 20 {
		t.Fatalf("questions = %d, want 20", len(qs))
	}

	for i, q := range qs {
		if q.A <= 0 || q.B <= 0 {
			t.Errorf("q%d: non-positive factors %d, %d", i, q.A, q.B)
		}
		if q.CorrectAnswer != q.A*q.B {
			t.Errorf("q%d: answer %d != %d*%d", i, q.CorrectAnswer, q.A, q.B)
		}
		if len(q.WrongAnswers) != 4 {
			t.Errorf("q%d: distractors = %d, want 4", i, len(q.WrongAnswers))
		}
		seen := map[int]bool{q.CorrectAnswer: true}
		for _, w := range q.WrongAnswers {
			if seen[w] {
				t.Errorf("q%d: duplicate or correct-colliding distractor %d", i, w)
			}
			seen[w] = true
		}
		if q.Hint == "" || q.QuestionText == "" {
			t.Errorf("q%d: missing hint or text", i)
		}
	}
}

func TestLocalBank_EasyStartWithoutHistory(t *testing.T) {
	bank := testLocalBank()

	qs, err := bank.SessionQuestions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range qs {
		if q.A > 3 || q.B > 3 {
			t.Errorf("q%d: factors %dx%d exceed the confidence band", i, q.A, q.B)
		}
	}
}

func TestLocalBank_RepeatsMissedFacts(t *testing.T) {
	bank := testLocalBank()

	// A long history unlocks bigger factors, with one persistent miss.
	var history []HistoryEntry
	for i := 0; i < 130; i++ {
		history = append(history, HistoryEntry{A: 2, B: 2, CorrectAnswer: 4, IsCorrect: true})
	}
	history = append(history, HistoryEntry{A: 7, B: 8, CorrectAnswer: 56, IsCorrect: false})

	qs, err := bank.SessionQuestions(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, q := range qs {
		if q.A == 7 && q.B == 8 {
			found = true
		}
	}
	if !found {
		t.Error("expected the missed fact 7x8 to come back")
	}
}

func TestFactorCeiling(t *testing.T) {
	tests := []struct {
		answered int
		want     int
	}{
		{0, 3},
		{19, 3},
		{20, 6},
		{59, 6},
		{60, 9},
		{119, 9},
		{120, 12},
		{500, 12},
	}
	for _, tt := range tests {
		if got := factorCeiling(tt.answered); got != tt.want {
			t.Errorf("factorCeiling(%d) = %d, want %d", tt.answered, got, tt.want)
		}
	}
}

func TestLocalBank_TinyFactPadsDistractors(t *testing.T) {
	bank := testLocalBank()
	q := bank.buildQuestion(fact{1, 1}, 0)
	if len(q.WrongAnswers) != 4 {
		t.Fatalf("distractors = %d, want 4", len(q.WrongAnswers))
	}
	for _, w := range q.WrongAnswers {
		if w <= 0 || w == 1 {
			t.Errorf("bad distractor %d for 1x1", w)
		}
	}
}
