package cmd

import (
	"strings"
	"testing"

	"github.com/abhisek/timesninja/internal/store"
)

func levelGame(level string, score, correct, total int) store.GameRecord {
	return store.GameRecord{
		Level:          level,
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
	}
}

func TestPrintLevelStats_OneRowPerLevel(t *testing.T) {
	var out strings.Builder
	printLevelStats(&out, []store.GameRecord{
		levelGame("easy", 120, 12, 20),
		levelGame("easy", 180, 18, 20),
		levelGame("ninja", 60, 6, 20),
	})

	got := out.String()
	if n := strings.Count(got, "easy"); n != 1 {
		t.Errorf("easy rows = %d, want 1\n%s", n, got)
	}
	if n := strings.Count(got, "ninja"); n != 1 {
		t.Errorf("ninja rows = %d, want 1\n%s", n, got)
	}
	// 3 games = header + 2 level rows.
	if lines := strings.Count(strings.TrimRight(got, "\n"), "\n") + 1; lines != 3 {
		t.Errorf("lines = %d, want 3\n%s", lines, got)
	}
}

func TestPrintLevelStats_Aggregates(t *testing.T) {
	var out strings.Builder
	printLevelStats(&out, []store.GameRecord{
		levelGame("medium", 120, 12, 20),
		levelGame("medium", 180, 18, 20),
	})

	got := out.String()
	// 2 games, best 180, 30/40 = 75% accuracy.
	if !strings.Contains(got, "2") || !strings.Contains(got, "180") {
		t.Errorf("missing games/best columns:\n%s", got)
	}
	if !strings.Contains(got, "75%") {
		t.Errorf("accuracy not aggregated across games:\n%s", got)
	}
}

func TestPrintHardestFacts_RanksByMisses(t *testing.T) {
	seven := 7
	games := []store.GameRecord{
		{
			Level: "easy",
			Outcomes: []store.OutcomeData{
				{A: 6, B: 8, CorrectAnswer: 48, UserAnswer: &seven, Correct: false, Outcome: "wrong"},
				{A: 6, B: 8, CorrectAnswer: 48, UserAnswer: nil, Correct: false, Outcome: "timeout"},
				{A: 3, B: 4, CorrectAnswer: 12, UserAnswer: &seven, Correct: false, Outcome: "wrong"},
				{A: 2, B: 2, CorrectAnswer: 4, UserAnswer: nil, Correct: true, Outcome: "correct"},
			},
		},
	}

	var out strings.Builder
	printHardestFacts(&out, games)
	got := out.String()

	if !strings.Contains(got, "6 ×") {
		t.Fatalf("expected the twice-missed fact:\n%s", got)
	}
	if strings.Index(got, "6 ×") > strings.Index(got, "3 ×") {
		t.Errorf("expected 6 × 8 (2 misses) ranked above 3 × 4 (1 miss):\n%s", got)
	}
	if strings.Contains(got, "2 ×") {
		t.Errorf("correct-only facts should not be listed:\n%s", got)
	}
}

func TestPrintHardestFacts_NothingMissed(t *testing.T) {
	games := []store.GameRecord{
		{Outcomes: []store.OutcomeData{{A: 2, B: 3, CorrectAnswer: 6, Correct: true, Outcome: "correct"}}},
	}

	var out strings.Builder
	printHardestFacts(&out, games)
	if !strings.Contains(out.String(), "No missed facts") {
		t.Errorf("expected the empty state line, got:\n%s", out.String())
	}
}
