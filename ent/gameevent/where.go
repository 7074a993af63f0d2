// Code generated by ent, DO NOT EDIT.

package gameevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/timesninja/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GameID applies equality check predicate on the "game_id" field. It's identical to GameIDEQ.
func GameID(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldGameID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldLevel, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldScore, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldAccuracy, v))
}

// LivesRemaining applies equality check predicate on the "lives_remaining" field. It's identical to LivesRemainingEQ.
func LivesRemaining(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldLivesRemaining, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GameIDEQ applies the EQ predicate on the "game_id" field.
func GameIDEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldGameID, v))
}

// GameIDNEQ applies the NEQ predicate on the "game_id" field.
func GameIDNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldGameID, v))
}

// GameIDIn applies the In predicate on the "game_id" field.
func GameIDIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldGameID, vs...))
}

// GameIDNotIn applies the NotIn predicate on the "game_id" field.
func GameIDNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldGameID, vs...))
}

// GameIDGT applies the GT predicate on the "game_id" field.
func GameIDGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldGameID, v))
}

// GameIDGTE applies the GTE predicate on the "game_id" field.
func GameIDGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldGameID, v))
}

// GameIDLT applies the LT predicate on the "game_id" field.
func GameIDLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldGameID, v))
}

// GameIDLTE applies the LTE predicate on the "game_id" field.
func GameIDLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldGameID, v))
}

// GameIDContains applies the Contains predicate on the "game_id" field.
func GameIDContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldGameID, v))
}

// GameIDHasPrefix applies the HasPrefix predicate on the "game_id" field.
func GameIDHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldGameID, v))
}

// GameIDHasSuffix applies the HasSuffix predicate on the "game_id" field.
func GameIDHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldGameID, v))
}

// GameIDEqualFold applies the EqualFold predicate on the "game_id" field.
func GameIDEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldGameID, v))
}

// GameIDContainsFold applies the ContainsFold predicate on the "game_id" field.
func GameIDContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldGameID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldLevel, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldScore, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTotalQuestions, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldAccuracy, v))
}

// LivesRemainingEQ applies the EQ predicate on the "lives_remaining" field.
func LivesRemainingEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldLivesRemaining, v))
}

// LivesRemainingNEQ applies the NEQ predicate on the "lives_remaining" field.
func LivesRemainingNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldLivesRemaining, v))
}

// LivesRemainingIn applies the In predicate on the "lives_remaining" field.
func LivesRemainingIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldLivesRemaining, vs...))
}

// LivesRemainingNotIn applies the NotIn predicate on the "lives_remaining" field.
func LivesRemainingNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldLivesRemaining, vs...))
}

// LivesRemainingGT applies the GT predicate on the "lives_remaining" field.
func LivesRemainingGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldLivesRemaining, v))
}

// LivesRemainingGTE applies the GTE predicate on the "lives_remaining" field.
func LivesRemainingGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldLivesRemaining, v))
}

// LivesRemainingLT applies the LT predicate on the "lives_remaining" field.
func LivesRemainingLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldLivesRemaining, v))
}

// LivesRemainingLTE applies the LTE predicate on the "lives_remaining" field.
func LivesRemainingLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldLivesRemaining, v))
}

// OutcomesIsNil applies the IsNil predicate on the "outcomes" field.
func OutcomesIsNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIsNull(FieldOutcomes))
}

// OutcomesNotNil applies the NotNil predicate on the "outcomes" field.
func OutcomesNotNil() predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotNull(FieldOutcomes))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.NotPredicates(p))
}
