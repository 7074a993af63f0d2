package store

import (
	"context"
	"fmt"

	"github.com/abhisek/timesninja/ent"
	"github.com/abhisek/timesninja/ent/gameevent"
	entschema "github.com/abhisek/timesninja/ent/schema"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendGame(ctx context.Context, rec GameRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	outcomes := make([]entschema.OutcomeRecord, 0, len(rec.Outcomes))
	for _, o := range rec.Outcomes {
		outcomes = append(outcomes, entschema.OutcomeRecord{
			QuestionID:    o.QuestionID,
			A:             o.A,
			B:             o.B,
			CorrectAnswer: o.CorrectAnswer,
			UserAnswer:    o.UserAnswer,
			Correct:       o.Correct,
			TimeTaken:     o.TimeTaken,
			Outcome:       o.Outcome,
		})
	}

	builder := r.client.GameEvent.Create().
		SetSequence(seqNum).
		SetGameID(rec.GameID).
		SetLevel(rec.Level).
		SetScore(rec.Score).
		SetCorrectCount(rec.CorrectCount).
		SetTotalQuestions(rec.TotalQuestions).
		SetAccuracy(rec.Accuracy).
		SetLivesRemaining(rec.LivesRemaining)

	if len(outcomes) > 0 {
		builder = builder.SetOutcomes(outcomes)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListGames(ctx context.Context) ([]GameRecord, error) {
	rows, err := r.client.GameEvent.Query().
		Order(
			ent.Desc(gameevent.FieldScore),
			ent.Desc(gameevent.FieldSequence),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	return toGameRecords(rows), nil
}

func (r *eventRepo) RecentGames(ctx context.Context, n int) ([]GameRecord, error) {
	q := r.client.GameEvent.Query().
		Order(ent.Desc(gameevent.FieldSequence))
	if n > 0 {
		q = q.Limit(n)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	return toGameRecords(rows), nil
}

func (r *eventRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.GameEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete game events: %w", err)
	}
	if _, err := r.client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete LLM request events: %w", err)
	}
	return nil
}

func toGameRecords(rows []*ent.GameEvent) []GameRecord {
	recs := make([]GameRecord, 0, len(rows))
	for _, row := range rows {
		outcomes := make([]OutcomeData, 0, len(row.Outcomes))
		for _, o := range row.Outcomes {
			outcomes = append(outcomes, OutcomeData{
				QuestionID:    o.QuestionID,
				A:             o.A,
				B:             o.B,
				CorrectAnswer: o.CorrectAnswer,
				UserAnswer:    o.UserAnswer,
				Correct:       o.Correct,
				TimeTaken:     o.TimeTaken,
				Outcome:       o.Outcome,
			})
		}
		recs = append(recs, GameRecord{
			GameID:         row.GameID,
			Level:          row.Level,
			Score:          row.Score,
			CorrectCount:   row.CorrectCount,
			TotalQuestions: row.TotalQuestions,
			Accuracy:       row.Accuracy,
			LivesRemaining: row.LivesRemaining,
			Timestamp:      row.Timestamp,
			Outcomes:       outcomes,
		})
	}
	return recs
}
