package questionbank

import (
	"github.com/abhisek/timesninja/internal/store"
)

// MaxHistoryGames bounds how many past games feed the generator.
const MaxHistoryGames = 10

// HistoryEntry is one past question outcome, trimmed to the fields the
// generator needs. UserAnswer is nil when the question timed out.
type HistoryEntry struct {
	A             int  `json:"a"`
	B             int  `json:"b"`
	CorrectAnswer int  `json:"correctAnswer"`
	UserAnswer    *int `json:"userAnswer"`
	IsCorrect     bool `json:"isCorrect"`
}

// HistoryFromGames flattens stored games (newest first, as returned by
// RecentGames) into generator history. Only the most recent maxGames
// games contribute; entries come out in chronological play order.
func HistoryFromGames(games []store.GameRecord, maxGames int) []HistoryEntry {
	if maxGames > 0 && len(games) > maxGames {
		games = games[:maxGames]
	}

	var entries []HistoryEntry
	// Oldest game first.
	for i := len(games) - 1; i >= 0; i-- {
		for _, o := range games[i].Outcomes {
			entries = append(entries, HistoryEntry{
				A:             o.A,
				B:             o.B,
				CorrectAnswer: o.CorrectAnswer,
				UserAnswer:    o.UserAnswer,
				IsCorrect:     o.Correct,
			})
		}
	}
	return entries
}
