// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillsColumns holds the columns for the "drills" table.
	DrillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "drill_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "default_duration_min", Type: field.TypeInt},
	}
	// DrillsTable holds the schema information for the "drills" table.
	DrillsTable = &schema.Table{
		Name:       "drills",
		Columns:    DrillsColumns,
		PrimaryKey: []*schema.Column{DrillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drill_category",
				Unique:  false,
				Columns: []*schema.Column{DrillsColumns[3]},
			},
			{
				Name:    "drill_difficulty",
				Unique:  false,
				Columns: []*schema.Column{DrillsColumns[4]},
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
	// ProgramsColumns holds the columns for the "programs" table.
	ProgramsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "program_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "assigned_by", Type: field.TypeString},
		{Name: "assigned_to", Type: field.TypeString},
		{Name: "sessions", Type: field.TypeJSON},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProgramsTable holds the schema information for the "programs" table.
	ProgramsTable = &schema.Table{
		Name:       "programs",
		Columns:    ProgramsColumns,
		PrimaryKey: []*schema.Column{ProgramsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "program_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{ProgramsColumns[5]},
			},
			{
				Name:    "program_status",
				Unique:  false,
				Columns: []*schema.Column{ProgramsColumns[8]},
			},
		},
	}
	// SessionLogsColumns holds the columns for the "session_logs" table.
	SessionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "player_id", Type: field.TypeString},
		{Name: "program_id", Type: field.TypeString, Default: ""},
		{Name: "date_completed", Type: field.TypeTime},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "rpe", Type: field.TypeInt},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "performance", Type: field.TypeJSON},
	}
	// SessionLogsTable holds the schema information for the "session_logs" table.
	SessionLogsTable = &schema.Table{
		Name:       "session_logs",
		Columns:    SessionLogsColumns,
		PrimaryKey: []*schema.Column{SessionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionlog_player_id",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[2]},
			},
			{
				Name:    "sessionlog_date_completed",
				Unique:  false,
				Columns: []*schema.Column{SessionLogsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillsTable,
		LlmRequestEventsTable,
		ProgramsTable,
		SessionLogsTable,
	}
)

func init() {
}
