package questionbank

import (
	"testing"

	"github.com/abhisek/timesninja/internal/store"
)

func gameWithFacts(id string, facts ...[2]int) store.GameRecord {
	rec := store.GameRecord{GameID: id}
	for _, f := range facts {
		rec.Outcomes = append(rec.Outcomes, store.OutcomeData{
			A: f[0], B: f[1], CorrectAnswer: f[0] * f[1], Correct: true,
		})
	}
	return rec
}

func TestHistoryFromGames_ChronologicalOrder(t *testing.T) {
	// RecentGames returns newest first.
	games := []store.GameRecord{
		gameWithFacts("newest", [2]int{3, 3}),
		gameWithFacts("oldest", [2]int{1, 1}, [2]int{2, 2}),
	}

	entries := HistoryFromGames(games, MaxHistoryGames)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// Oldest game's outcomes come first, in play order.
	if entries[0].A != 1 || entries[1].A != 2 || entries[2].A != 3 {
		t.Errorf("order = %d, %d, %d; want 1, 2, 3", entries[0].A, entries[1].A, entries[2].A)
	}
}

func TestHistoryFromGames_TrimsOldGames(t *testing.T) {
	var games []store.GameRecord
	for i := 0; i < 15; i++ {
		games = append(games, gameWithFacts("g", [2]int{i + 1, 1}))
	}

	entries := HistoryFromGames(games, 10)
	if len(entries) != 10 {
		t.Fatalf("entries = %d, want 10", len(entries))
	}
	// games[0] is newest; the 10 newest survive, oldest-first output.
	if entries[0].A != 10 || entries[9].A != 1 {
		t.Errorf("window = %d..%d, want 10..1", entries[0].A, entries[9].A)
	}
}

func TestHistoryFromGames_Empty(t *testing.T) {
	if entries := HistoryFromGames(nil, 10); len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}
