// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GameEventsColumns holds the columns for the "game_events" table.
	GameEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "game_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeInt, Default: 0},
		{Name: "lives_remaining", Type: field.TypeInt, Default: 0},
		{Name: "outcomes", Type: field.TypeJSON, Nullable: true},
	}
	// GameEventsTable holds the schema information for the "game_events" table.
	GameEventsTable = &schema.Table{
		Name:       "game_events",
		Columns:    GameEventsColumns,
		PrimaryKey: []*schema.Column{GameEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gameevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[1]},
			},
			{
				Name:    "gameevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[2]},
			},
			{
				Name:    "gameevent_game_id",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[3]},
			},
			{
				Name:    "gameevent_score",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GameEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
