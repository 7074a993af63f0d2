// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/timesninja/ent/gameevent"
	"github.com/abhisek/timesninja/ent/schema"
)

// GameEventCreate is the builder for creating a GameEvent entity.
type GameEventCreate struct {
	config
	mutation *GameEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GameEventCreate) SetSequence(v int64) *GameEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GameEventCreate) SetTimestamp(v time.Time) *GameEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTimestamp(v *time.Time) *GameEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGameID sets the "game_id" field.
func (_c *GameEventCreate) SetGameID(v string) *GameEventCreate {
	_c.mutation.SetGameID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *GameEventCreate) SetLevel(v string) *GameEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GameEventCreate) SetScore(v int) *GameEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableScore(v *int) *GameEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *GameEventCreate) SetCorrectCount(v int) *GameEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableCorrectCount(v *int) *GameEventCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *GameEventCreate) SetTotalQuestions(v int) *GameEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTotalQuestions(v *int) *GameEventCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *GameEventCreate) SetAccuracy(v int) *GameEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableAccuracy(v *int) *GameEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetLivesRemaining sets the "lives_remaining" field.
func (_c *GameEventCreate) SetLivesRemaining(v int) *GameEventCreate {
	_c.mutation.SetLivesRemaining(v)
	return _c
}

// SetNillableLivesRemaining sets the "lives_remaining" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableLivesRemaining(v *int) *GameEventCreate {
	if v != nil {
		_c.SetLivesRemaining(*v)
	}
	return _c
}

// SetOutcomes sets the "outcomes" field.
func (_c *GameEventCreate) SetOutcomes(v []schema.OutcomeRecord) *GameEventCreate {
	_c.mutation.SetOutcomes(v)
	return _c
}

// Mutation returns the GameEventMutation object of the builder.
func (_c *GameEventCreate) Mutation() *GameEventMutation {
	return _c.mutation
}

// Save creates the GameEvent in the database.
func (_c *GameEventCreate) Save(ctx context.Context) (*GameEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameEventCreate) SaveX(ctx context.Context) *GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gameevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := gameevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := gameevent.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := gameevent.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := gameevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.LivesRemaining(); !ok {
		v := gameevent.DefaultLivesRemaining
		_c.mutation.SetLivesRemaining(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GameEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GameEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GameID(); !ok {
		return &ValidationError{Name: "game_id", err: errors.New(`ent: missing required field "GameEvent.game_id"`)}
	}
	if v, ok := _c.mutation.GameID(); ok {
		if err := gameevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "GameEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := gameevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GameEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GameEvent.score"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "GameEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "GameEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "GameEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.LivesRemaining(); !ok {
		return &ValidationError{Name: "lives_remaining", err: errors.New(`ent: missing required field "GameEvent.lives_remaining"`)}
	}
	return nil
}

func (_c *GameEventCreate) sqlSave(ctx context.Context) (*GameEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameEventCreate) createSpec() (*GameEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GameEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gameevent.Table, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gameevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GameID(); ok {
		_spec.SetField(gameevent.FieldGameID, field.TypeString, value)
		_node.GameID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(gameevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gameevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(gameevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(gameevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(gameevent.FieldAccuracy, field.TypeInt, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.LivesRemaining(); ok {
		_spec.SetField(gameevent.FieldLivesRemaining, field.TypeInt, value)
		_node.LivesRemaining = value
	}
	if value, ok := _c.mutation.Outcomes(); ok {
		_spec.SetField(gameevent.FieldOutcomes, field.TypeJSON, value)
		_node.Outcomes = value
	}
	return _node, _spec
}

// GameEventCreateBulk is the builder for creating many GameEvent entities in bulk.
type GameEventCreateBulk struct {
	config
	err      error
	builders []*GameEventCreate
}

// Save creates the GameEvent entities in the database.
func (_c *GameEventCreateBulk) Save(ctx context.Context) ([]*GameEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameEventCreateBulk) SaveX(ctx context.Context) []*GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
