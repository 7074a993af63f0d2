package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func intPtr(n int) *int { return &n }

func sampleGame(id string, score int) GameRecord {
	return GameRecord{
		GameID:         id,
		Level:          "medium",
		Score:          score,
		CorrectCount:   score / 10,
		TotalQuestions: 20,
		Accuracy:       score / 2,
		LivesRemaining: 3,
		Outcomes: []OutcomeData{
			{QuestionID: "q1", A: 6, B: 7, CorrectAnswer: 42, UserAnswer: intPtr(42), Correct: true, TimeTaken: 2.5, Outcome: "correct"},
			{QuestionID: "q2", A: 8, B: 9, CorrectAnswer: 72, UserAnswer: nil, Correct: false, TimeTaken: 6, Outcome: "timeout"},
		},
	}
}

func TestAppendAndListGames(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Empty store lists empty, not error.
	games, err := repo.ListGames(ctx)
	if err != nil {
		t.Fatalf("list (empty): %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}

	for _, g := range []GameRecord{
		sampleGame("game-a", 120),
		sampleGame("game-b", 180),
		sampleGame("game-c", 60),
	} {
		if err := repo.AppendGame(ctx, g); err != nil {
			t.Fatalf("append %s: %v", g.GameID, err)
		}
	}

	games, err = repo.ListGames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("games = %d, want 3", len(games))
	}

	// Score descending.
	wantOrder := []string{"game-b", "game-a", "game-c"}
	for i, want := range wantOrder {
		if games[i].GameID != want {
			t.Errorf("games[%d] = %s, want %s", i, games[i].GameID, want)
		}
	}
}

func TestListGamesTiesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendGame(ctx, sampleGame("older", 100)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendGame(ctx, sampleGame("newer", 100)); err != nil {
		t.Fatalf("append: %v", err)
	}

	games, err := repo.ListGames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if games[0].GameID != "newer" {
		t.Errorf("tie broken wrong: first = %s, want newer", games[0].GameID)
	}
}

func TestRecentGames(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"first", "second", "third"} {
		if err := repo.AppendGame(ctx, sampleGame(id, 50+i)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	games, err := repo.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("recent games = %d, want 2", len(games))
	}
	if games[0].GameID != "third" || games[1].GameID != "second" {
		t.Errorf("order = %s, %s; want third, second", games[0].GameID, games[1].GameID)
	}
}

func TestGameOutcomeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendGame(ctx, sampleGame("game-x", 90)); err != nil {
		t.Fatalf("append: %v", err)
	}

	games, err := repo.RecentGames(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	got := games[0]
	if len(got.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(got.Outcomes))
	}
	first := got.Outcomes[0]
	if first.A != 6 || first.B != 7 || first.CorrectAnswer != 42 {
		t.Errorf("outcome fact = %dx%d=%d, want 6x7=42", first.A, first.B, first.CorrectAnswer)
	}
	if first.UserAnswer == nil || *first.UserAnswer != 42 {
		t.Errorf("user answer = %v, want 42", first.UserAnswer)
	}
	second := got.Outcomes[1]
	if second.UserAnswer != nil {
		t.Errorf("timeout user answer = %v, want nil", second.UserAnswer)
	}
	if second.Outcome != "timeout" {
		t.Errorf("outcome = %q, want timeout", second.Outcome)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "question-gen",
		InputTokens:  900,
		OutputTokens: 400,
		LatencyMs:    1200,
		Success:      true,
		RequestBody:  `{"history":[],"sessionSize":20}`,
		ResponseBody: `{"questions":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "question-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Success {
		t.Error("expected the failed (newer) event first")
	}
	if events[1].InputTokens != 900 {
		t.Errorf("input tokens = %d, want 900", events[1].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ResponseBody != `{"questions":[]}` {
		t.Errorf("response body = %q", got.ResponseBody)
	}

	if _, err := repo.GetLLMEvent(ctx, 99999); err == nil {
		t.Error("expected error for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "question-gen", InputTokens: 800, OutputTokens: 300, LatencyMs: 1000, Success: true},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "question-gen", InputTokens: 1200, OutputTokens: 500, LatencyMs: 2000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 500, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("purposes = %d, want 1", len(stats))
	}
	st := stats[0]
	if st.Purpose != "question-gen" || st.Calls != 3 {
		t.Errorf("stat = %+v, want question-gen with 3 calls", st)
	}
	if st.InputTokens != 2100 || st.OutputTokens != 850 {
		t.Errorf("tokens = %d/%d, want 2100/850", st.InputTokens, st.OutputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	totals := map[string]int{}
	for _, mu := range byModel {
		totals[mu.Model] = mu.InputTokens
	}
	if totals["llama-3.3-70b-versatile"] != 2000 || totals["gpt-4o-mini"] != 100 {
		t.Errorf("per-model input tokens = %v", totals)
	}
}

func TestDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendGame(ctx, sampleGame("doomed", 80)); err != nil {
		t.Fatalf("append game: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "question-gen", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	games, err := repo.ListGames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("games after delete = %d, want 0", len(games))
	}
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events after delete = %d, want 0", len(events))
	}
}
