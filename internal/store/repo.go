package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	After    int64  // sequence > After
	Provider string // filter by provider name
	Purpose  string // filter by purpose label
}

// OutcomeData captures one question's outcome inside a finished game.
// UserAnswer is nil when the question timed out.
type OutcomeData struct {
	QuestionID    string
	A             int
	B             int
	CorrectAnswer int
	UserAnswer    *int
	Correct       bool
	TimeTaken     float64 // seconds from question shown to resolution
	Outcome       string  // "correct", "wrong", "timeout"
}

// GameRecord is a finished game as stored and retrieved.
type GameRecord struct {
	GameID         string
	Level          string
	Score          int
	CorrectCount   int
	TotalQuestions int
	Accuracy       int
	LivesRemaining int
	Timestamp      time.Time
	Outcomes       []OutcomeData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event with its envelope.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates LLM usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token counts for one model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendGame records a finished game.
	AppendGame(ctx context.Context, rec GameRecord) error

	// ListGames returns all stored games ordered by score descending.
	// Ties break newest-first.
	ListGames(ctx context.Context) ([]GameRecord, error)

	// RecentGames returns the n most recently played games, newest first.
	RecentGames(ctx context.Context, n int) ([]GameRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns stored LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM request event by row ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates call counts and token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates call counts and token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// DeleteAll wipes every stored event.
	DeleteAll(ctx context.Context) error
}
