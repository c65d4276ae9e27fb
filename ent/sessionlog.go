// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/topspinhq/topspin/ent/sessionlog"
)

// SessionLog is the model entity for the SessionLog schema.
type SessionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LogID holds the value of the "log_id" field.
	LogID string `json:"log_id,omitempty"`
	// PlayerID holds the value of the "player_id" field.
	PlayerID string `json:"player_id,omitempty"`
	// Empty for ad-hoc sessions outside a program
	ProgramID string `json:"program_id,omitempty"`
	// DateCompleted holds the value of the "date_completed" field.
	DateCompleted time.Time `json:"date_completed,omitempty"`
	// DurationMin holds the value of the "duration_min" field.
	DurationMin int `json:"duration_min,omitempty"`
	// Rate of perceived exertion, 0-10
	Rpe int `json:"rpe,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// DrillPerformance array: drillId + success/fail outcome
	Performance  json.RawMessage `json:"performance,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldPerformance:
			values[i] = new([]byte)
		case sessionlog.FieldID, sessionlog.FieldDurationMin, sessionlog.FieldRpe:
			values[i] = new(sql.NullInt64)
		case sessionlog.FieldLogID, sessionlog.FieldPlayerID, sessionlog.FieldProgramID, sessionlog.FieldNotes:
			values[i] = new(sql.NullString)
		case sessionlog.FieldDateCompleted:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionLog fields.
func (_m *SessionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionlog.FieldLogID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field log_id", values[i])
			} else if value.Valid {
				_m.LogID = value.String
			}
		case sessionlog.FieldPlayerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field player_id", values[i])
			} else if value.Valid {
				_m.PlayerID = value.String
			}
		case sessionlog.FieldProgramID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program_id", values[i])
			} else if value.Valid {
				_m.ProgramID = value.String
			}
		case sessionlog.FieldDateCompleted:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_completed", values[i])
			} else if value.Valid {
				_m.DateCompleted = value.Time
			}
		case sessionlog.FieldDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_min", values[i])
			} else if value.Valid {
				_m.DurationMin = int(value.Int64)
			}
		case sessionlog.FieldRpe:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rpe", values[i])
			} else if value.Valid {
				_m.Rpe = int(value.Int64)
			}
		case sessionlog.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case sessionlog.FieldPerformance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field performance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Performance); err != nil {
					return fmt.Errorf("unmarshal field performance: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionLog.
// This includes values selected through modifiers, order, etc.
func (_m *SessionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionLog.
// Note that you need to call SessionLog.Unwrap() before calling this method if this SessionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionLog) Update() *SessionLogUpdateOne {
	return NewSessionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionLog) Unwrap() *SessionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionLog) String() string {
	var builder strings.Builder
	builder.WriteString("SessionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("log_id=")
	builder.WriteString(_m.LogID)
	builder.WriteString(", ")
	builder.WriteString("player_id=")
	builder.WriteString(_m.PlayerID)
	builder.WriteString(", ")
	builder.WriteString("program_id=")
	builder.WriteString(_m.ProgramID)
	builder.WriteString(", ")
	builder.WriteString("date_completed=")
	builder.WriteString(_m.DateCompleted.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMin))
	builder.WriteString(", ")
	builder.WriteString("rpe=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rpe))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Performance))
	builder.WriteByte(')')
	return builder.String()
}

// SessionLogs is a parsable slice of SessionLog.
type SessionLogs []*SessionLog
