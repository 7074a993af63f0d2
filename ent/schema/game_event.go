package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent records one finished game: the summary plus the full
// question-by-question log.
type GameEvent struct {
	ent.Schema
}

func (GameEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// OutcomeRecord is the serialized form of a single question outcome.
type OutcomeRecord struct {
	QuestionID    string  `json:"question_id"`
	A             int     `json:"a"`
	B             int     `json:"b"`
	CorrectAnswer int     `json:"correct_answer"`
	UserAnswer    *int    `json:"user_answer"`
	Correct       bool    `json:"correct"`
	TimeTaken     float64 `json:"time_taken"`
	Outcome       string  `json:"outcome"`
}

func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("game_id").
			NotEmpty().
			Unique().
			Comment("UUID of the game"),
		field.String("level").
			NotEmpty().
			Comment("Difficulty key: easy, medium, ninja"),
		field.Int("score").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Int("accuracy").
			Default(0).
			Comment("Rounded percentage, 0-100"),
		field.Int("lives_remaining").
			Default(0),
		field.JSON("outcomes", []OutcomeRecord{}).
			Optional().
			Comment("Per-question log, in play order"),
	}
}

func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id"),
		index.Fields("score"),
	}
}
