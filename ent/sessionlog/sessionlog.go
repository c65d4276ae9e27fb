// Code generated by ent, DO NOT EDIT.

package sessionlog

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionlog type in the database.
	Label = "session_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLogID holds the string denoting the log_id field in the database.
	FieldLogID = "log_id"
	// FieldPlayerID holds the string denoting the player_id field in the database.
	FieldPlayerID = "player_id"
	// FieldProgramID holds the string denoting the program_id field in the database.
	FieldProgramID = "program_id"
	// FieldDateCompleted holds the string denoting the date_completed field in the database.
	FieldDateCompleted = "date_completed"
	// FieldDurationMin holds the string denoting the duration_min field in the database.
	FieldDurationMin = "duration_min"
	// FieldRpe holds the string denoting the rpe field in the database.
	FieldRpe = "rpe"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldPerformance holds the string denoting the performance field in the database.
	FieldPerformance = "performance"
	// Table holds the table name of the sessionlog in the database.
	Table = "session_logs"
)

// Columns holds all SQL columns for sessionlog fields.
var Columns = []string{
	FieldID,
	FieldLogID,
	FieldPlayerID,
	FieldProgramID,
	FieldDateCompleted,
	FieldDurationMin,
	FieldRpe,
	FieldNotes,
	FieldPerformance,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultProgramID holds the default value on creation for the "program_id" field.
	DefaultProgramID string
	// DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	DurationMinValidator func(int) error
	// RpeValidator is a validator for the "rpe" field. It is called by the builders before save.
	RpeValidator func(int) error
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
)

// OrderOption defines the ordering options for the SessionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLogID orders the results by the log_id field.
func ByLogID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogID, opts...).ToFunc()
}

// ByPlayerID orders the results by the player_id field.
func ByPlayerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerID, opts...).ToFunc()
}

// ByProgramID orders the results by the program_id field.
func ByProgramID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgramID, opts...).ToFunc()
}

// ByDateCompleted orders the results by the date_completed field.
func ByDateCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateCompleted, opts...).ToFunc()
}

// ByDurationMin orders the results by the duration_min field.
func ByDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMin, opts...).ToFunc()
}

// ByRpe orders the results by the rpe field.
func ByRpe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRpe, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
