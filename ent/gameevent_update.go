// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/timesninja/ent/gameevent"
	"github.com/abhisek/timesninja/ent/predicate"
	"github.com/abhisek/timesninja/ent/schema"
)

// GameEventUpdate is the builder for updating GameEvent entities.
type GameEventUpdate struct {
	config
	hooks    []Hook
	mutation *GameEventMutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdate) Where(ps ...predicate.GameEvent) *GameEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *GameEventUpdate) SetGameID(v string) *GameEventUpdate {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableGameID(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *GameEventUpdate) SetLevel(v string) *GameEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableLevel(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GameEventUpdate) SetScore(v int) *GameEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableScore(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameEventUpdate) AddScore(v int) *GameEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *GameEventUpdate) SetCorrectCount(v int) *GameEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableCorrectCount(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *GameEventUpdate) AddCorrectCount(v int) *GameEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *GameEventUpdate) SetTotalQuestions(v int) *GameEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableTotalQuestions(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *GameEventUpdate) AddTotalQuestions(v int) *GameEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *GameEventUpdate) SetAccuracy(v int) *GameEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableAccuracy(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *GameEventUpdate) AddAccuracy(v int) *GameEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetLivesRemaining sets the "lives_remaining" field.
func (_u *GameEventUpdate) SetLivesRemaining(v int) *GameEventUpdate {
	_u.mutation.ResetLivesRemaining()
	_u.mutation.SetLivesRemaining(v)
	return _u
}

// SetNillableLivesRemaining sets the "lives_remaining" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableLivesRemaining(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetLivesRemaining(*v)
	}
	return _u
}

// AddLivesRemaining adds value to the "lives_remaining" field.
func (_u *GameEventUpdate) AddLivesRemaining(v int) *GameEventUpdate {
	_u.mutation.AddLivesRemaining(v)
	return _u
}

// SetOutcomes sets the "outcomes" field.
func (_u *GameEventUpdate) SetOutcomes(v []schema.OutcomeRecord) *GameEventUpdate {
	_u.mutation.SetOutcomes(v)
	return _u
}

// AppendOutcomes appends value to the "outcomes" field.
func (_u *GameEventUpdate) AppendOutcomes(v []schema.OutcomeRecord) *GameEventUpdate {
	_u.mutation.AppendOutcomes(v)
	return _u
}

// ClearOutcomes clears the value of the "outcomes" field.
func (_u *GameEventUpdate) ClearOutcomes() *GameEventUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdate) Mutation() *GameEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdate) check() error {
	if v, ok := _u.mutation.GameID(); ok {
		if err := gameevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := gameevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GameEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(gameevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(gameevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(gameevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(gameevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(gameevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(gameevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(gameevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(gameevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LivesRemaining(); ok {
		_spec.SetField(gameevent.FieldLivesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLivesRemaining(); ok {
		_spec.AddField(gameevent.FieldLivesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcomes(); ok {
		_spec.SetField(gameevent.FieldOutcomes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutcomes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldOutcomes, value)
		})
	}
	if _u.mutation.OutcomesCleared() {
		_spec.ClearField(gameevent.FieldOutcomes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameEventUpdateOne is the builder for updating a single GameEvent entity.
type GameEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameEventMutation
}

// SetGameID sets the "game_id" field.
func (_u *GameEventUpdateOne) SetGameID(v string) *GameEventUpdateOne {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableGameID(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *GameEventUpdateOne) SetLevel(v string) *GameEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableLevel(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GameEventUpdateOne) SetScore(v int) *GameEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableScore(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameEventUpdateOne) AddScore(v int) *GameEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *GameEventUpdateOne) SetCorrectCount(v int) *GameEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableCorrectCount(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *GameEventUpdateOne) AddCorrectCount(v int) *GameEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *GameEventUpdateOne) SetTotalQuestions(v int) *GameEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableTotalQuestions(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *GameEventUpdateOne) AddTotalQuestions(v int) *GameEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *GameEventUpdateOne) SetAccuracy(v int) *GameEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableAccuracy(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *GameEventUpdateOne) AddAccuracy(v int) *GameEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetLivesRemaining sets the "lives_remaining" field.
func (_u *GameEventUpdateOne) SetLivesRemaining(v int) *GameEventUpdateOne {
	_u.mutation.ResetLivesRemaining()
	_u.mutation.SetLivesRemaining(v)
	return _u
}

// SetNillableLivesRemaining sets the "lives_remaining" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableLivesRemaining(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetLivesRemaining(*v)
	}
	return _u
}

// AddLivesRemaining adds value to the "lives_remaining" field.
func (_u *GameEventUpdateOne) AddLivesRemaining(v int) *GameEventUpdateOne {
	_u.mutation.AddLivesRemaining(v)
	return _u
}

// SetOutcomes sets the "outcomes" field.
func (_u *GameEventUpdateOne) SetOutcomes(v []schema.OutcomeRecord) *GameEventUpdateOne {
	_u.mutation.SetOutcomes(v)
	return _u
}

// AppendOutcomes appends value to the "outcomes" field.
func (_u *GameEventUpdateOne) AppendOutcomes(v []schema.OutcomeRecord) *GameEventUpdateOne {
	_u.mutation.AppendOutcomes(v)
	return _u
}

// ClearOutcomes clears the value of the "outcomes" field.
func (_u *GameEventUpdateOne) ClearOutcomes() *GameEventUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdateOne) Mutation() *GameEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdateOne) Where(ps ...predicate.GameEvent) *GameEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameEventUpdateOne) Select(field string, fields ...string) *GameEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameEvent entity.
func (_u *GameEventUpdateOne) Save(ctx context.Context) (*GameEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdateOne) SaveX(ctx context.Context) *GameEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdateOne) check() error {
	if v, ok := _u.mutation.GameID(); ok {
		if err := gameevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := gameevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GameEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdateOne) sqlSave(ctx context.Context) (_node *GameEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameevent.FieldID)
		for _, f := range fields {
			if !gameevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(gameevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(gameevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(gameevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(gameevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(gameevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(gameevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(gameevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(gameevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LivesRemaining(); ok {
		_spec.SetField(gameevent.FieldLivesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLivesRemaining(); ok {
		_spec.AddField(gameevent.FieldLivesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcomes(); ok {
		_spec.SetField(gameevent.FieldOutcomes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutcomes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gameevent.FieldOutcomes, value)
		})
	}
	if _u.mutation.OutcomesCleared() {
		_spec.ClearField(gameevent.FieldOutcomes, field.TypeJSON)
	}
	_node = &GameEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
