// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/topspinhq/topspin/ent/drill"
)

// Drill is the model entity for the Drill schema.
type Drill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable catalog identifier, e.g. d3
	DrillID string `json:"drill_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Warmup, Serve, Forehand, Backhand, Volley, Footwork, Strategy, Fitness
	Category string `json:"category,omitempty"`
	// Beginner, Intermediate, Advanced
	Difficulty string `json:"difficulty,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// DefaultDurationMin holds the value of the "default_duration_min" field.
	DefaultDurationMin int `json:"default_duration_min,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Drill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drill.FieldID, drill.FieldDefaultDurationMin:
			values[i] = new(sql.NullInt64)
		case drill.FieldDrillID, drill.FieldName, drill.FieldCategory, drill.FieldDifficulty, drill.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Drill fields.
func (_m *Drill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drill.FieldDrillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_id", values[i])
			} else if value.Valid {
				_m.DrillID = value.String
			}
		case drill.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case drill.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case drill.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case drill.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case drill.FieldDefaultDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_duration_min", values[i])
			} else if value.Valid {
				_m.DefaultDurationMin = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Drill.
// This includes values selected through modifiers, order, etc.
func (_m *Drill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Drill.
// Note that you need to call Drill.Unwrap() before calling this method if this Drill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Drill) Update() *DrillUpdateOne {
	return NewDrillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Drill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Drill) Unwrap() *Drill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Drill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Drill) String() string {
	var builder strings.Builder
	builder.WriteString("Drill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("drill_id=")
	builder.WriteString(_m.DrillID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("default_duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultDurationMin))
	builder.WriteByte(')')
	return builder.String()
}

// Drills is a parsable slice of Drill.
type Drills []*Drill
