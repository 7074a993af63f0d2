package questionbank

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/llm"
)

// Config controls the behavior of the LLM-backed bank.
type Config struct {
	// SessionSize is how many questions to request per session.
	SessionSize int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		SessionSize: game.QuestionsPerGame,
		MaxTokens:   1200,
		Temperature: 0.4,
	}
}

// LLMBank implements Bank using an LLM provider.
type LLMBank struct {
	provider llm.Provider
	config   Config
}

// NewLLMBank creates a bank backed by the given provider.
func NewLLMBank(provider llm.Provider, cfg Config) *LLMBank {
	return &LLMBank{provider: provider, config: cfg}
}

// rawQuestion is one generated question before boundary validation.
type rawQuestion struct {
	ID            string `json:"id"`
	A             int    `json:"a"`
	B             int    `json:"b"`
	QuestionText  string `json:"questionText"`
	CorrectAnswer int    `json:"correctAnswer"`
	WrongAnswers  []int  `json:"wrongAnswers"`
	Hint          string `json:"hint"`
}

// sessionRequest is the user message payload.
type sessionRequest struct {
	History     []HistoryEntry `json:"history"`
	SessionSize int            `json:"sessionSize"`
}

// sessionOutput is the raw LLM response before validation.
type sessionOutput struct {
	Questions []rawQuestion `json:"questions"`
}

// SessionQuestions asks the provider for the next session's questions.
// Structurally damaged records are dropped at this boundary; the game
// engine only ever sees well-formed questions.
func (b *LLMBank) SessionQuestions(ctx context.Context, history []HistoryEntry) ([]game.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if history == nil {
		history = []HistoryEntry{}
	}
	userMsg, err := json.Marshal(sessionRequest{
		History:     history,
		SessionSize: b.config.SessionSize,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session request: %w", err)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(userMsg)},
		},
		Schema:      SessionSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	}

	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out sessionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, ErrEmptySession
	}

	questions := make([]game.Question, 0, len(out.Questions))
	for i, raw := range out.Questions {
		q, err := normalizeQuestion(raw, i)
		if err != nil {
			// Damaged record; the rest of the batch is still usable.
			continue
		}
		questions = append(questions, q)
		if len(questions) == b.config.SessionSize {
			break
		}
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: all %d records rejected", ErrEmptySession, len(out.Questions))
	}
	return questions, nil
}

// normalizeQuestion converts a raw record to a game question, rejecting
// structural damage: non-positive factors, a product mismatch, or no
// distractors at all. Distractors that collide with the correct answer
// survive here; they collapse during option derivation instead.
func normalizeQuestion(raw rawQuestion, index int) (game.Question, error) {
	if raw.A <= 0 || raw.B <= 0 {
		return game.Question{}, fmt.Errorf("question %d: non-positive factors %d, %d", index, raw.A, raw.B)
	}
	if raw.CorrectAnswer != raw.A*raw.B {
		return game.Question{}, fmt.Errorf("question %d: answer %d does not equal %d*%d", index, raw.CorrectAnswer, raw.A, raw.B)
	}
	if len(raw.WrongAnswers) == 0 {
		return game.Question{}, fmt.Errorf("question %d: no distractors", index)
	}

	id := raw.ID
	if id == "" {
		id = fmt.Sprintf("q%d", index+1)
	}

	return game.Question{
		ID:            id,
		A:             raw.A,
		B:             raw.B,
		CorrectAnswer: raw.CorrectAnswer,
		WrongAnswers:  raw.WrongAnswers,
		QuestionText:  raw.QuestionText,
		Hint:          raw.Hint,
	}, nil
}
