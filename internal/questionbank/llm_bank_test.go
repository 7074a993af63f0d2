package questionbank

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/timesninja/internal/llm"
)

func rawQ(id string, a, b int) map[string]any {
	return map[string]any{
		"id":            id,
		"a":             a,
		"b":             b,
		"questionText":  "What is it?",
		"correctAnswer": a * b,
		"wrongAnswers":  []int{a*b + 1, a*b - 1, a*b + 2, a*b + 3},
		"hint":          "add it up",
	}
}

func sessionJSON(t *testing.T, questions ...map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

func TestLLMBank_SessionQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, rawQ("q1", 2, 3), rawQ("q2", 4, 5)),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	qs, err := bank.SessionQuestions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[0].ID != "q1" || qs[0].A != 2 || qs[0].B != 3 || qs[0].CorrectAnswer != 6 {
		t.Errorf("q1 = %+v", qs[0])
	}
	if len(qs[0].WrongAnswers) != 4 {
		t.Errorf("q1 distractors = %d, want 4", len(qs[0].WrongAnswers))
	}
}

func TestLLMBank_SendsHistoryAndSessionSize(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, rawQ("q1", 2, 3)),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	four := 4
	history := []HistoryEntry{
		{A: 2, B: 3, CorrectAnswer: 6, UserAnswer: &four, IsCorrect: false},
	}
	if _, err := bank.SessionQuestions(context.Background(), history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != SessionSchema {
		t.Error("expected the session schema on the request")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}

	var sent sessionRequest
	if err := json.Unmarshal([]byte(req.Messages[0].Content), &sent); err != nil {
		t.Fatalf("user message is not JSON: %v", err)
	}
	if sent.SessionSize != 20 {
		t.Errorf("sessionSize = %d, want 20", sent.SessionSize)
	}
	if len(sent.History) != 1 || sent.History[0].A != 2 || sent.History[0].IsCorrect {
		t.Errorf("history = %+v", sent.History)
	}
	if sent.History[0].UserAnswer == nil || *sent.History[0].UserAnswer != 4 {
		t.Errorf("userAnswer = %v, want 4", sent.History[0].UserAnswer)
	}
}

func TestLLMBank_EmptyHistoryMarshalsAsArray(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, rawQ("q1", 1, 1)),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	if _, err := bank.SessionQuestions(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, `"history":[]`) {
		t.Errorf("expected empty array history, got %s", mock.Calls[0].Messages[0].Content)
	}
}

func TestLLMBank_SkipsDamagedRecords(t *testing.T) {
	damaged := []map[string]any{
		rawQ("ok", 3, 4),
		{
			// Product mismatch.
			"id": "bad-product", "a": 2, "b": 3, "questionText": "x",
			"correctAnswer": 7, "wrongAnswers": []int{1, 2, 3, 4}, "hint": "",
		},
		{
			// Non-positive factor.
			"id": "bad-factor", "a": 0, "b": 3, "questionText": "x",
			"correctAnswer": 0, "wrongAnswers": []int{1, 2, 3, 4}, "hint": "",
		},
		{
			// No distractors.
			"id": "bad-empty", "a": 2, "b": 3, "questionText": "x",
			"correctAnswer": 6, "wrongAnswers": []int{}, "hint": "",
		},
	}
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, damaged...),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	qs, err := bank.SessionQuestions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 || qs[0].ID != "ok" {
		t.Fatalf("questions = %+v, want just 'ok'", qs)
	}
}

func TestLLMBank_CollidingDistractorsSurvive(t *testing.T) {
	q := rawQ("collide", 6, 7)
	q["wrongAnswers"] = []int{42, 42, 40, 44} // collisions collapse later, not here
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, q),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	qs, err := bank.SessionQuestions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1", len(qs))
	}
}

func TestLLMBank_AllRecordsRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, map[string]any{
			"id": "bad", "a": 2, "b": 3, "questionText": "x",
			"correctAnswer": 99, "wrongAnswers": []int{1, 2, 3, 4}, "hint": "",
		}),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	_, err := bank.SessionQuestions(context.Background(), nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
}

func TestLLMBank_EmptyQuestionList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[]}`),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	_, err := bank.SessionQuestions(context.Background(), nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
}

func TestLLMBank_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	bank := NewLLMBank(mock, DefaultConfig())

	_, err := bank.SessionQuestions(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestLLMBank_CapsAtSessionSize(t *testing.T) {
	var many []map[string]any
	for i := 0; i < 25; i++ {
		many = append(many, rawQ("q", 2, 3))
	}
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, many...),
	})
	bank := NewLLMBank(mock, DefaultConfig())

	qs, err := bank.SessionQuestions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 20 {
		t.Fatalf("questions = %d, want 20", len(qs))
	}
}

func TestNormalizeQuestion_DefaultsID(t *testing.T) {
	q, err := normalizeQuestion(rawQuestion{
		A: 2, B: 3, CorrectAnswer: 6, WrongAnswers: []int{5},
	}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "q5" {
		t.Errorf("id = %q, want q5", q.ID)
	}
}
