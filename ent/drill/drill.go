// Code generated by ent, DO NOT EDIT.

package drill

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drill type in the database.
	Label = "drill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDrillID holds the string denoting the drill_id field in the database.
	FieldDrillID = "drill_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDefaultDurationMin holds the string denoting the default_duration_min field in the database.
	FieldDefaultDurationMin = "default_duration_min"
	// Table holds the table name of the drill in the database.
	Table = "drills"
)

// Columns holds all SQL columns for drill fields.
var Columns = []string{
	FieldID,
	FieldDrillID,
	FieldName,
	FieldCategory,
	FieldDifficulty,
	FieldDescription,
	FieldDefaultDurationMin,
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
	// DefaultDurationMinValidator is a validator for the "default_duration_min" field. It is called by the builders before save.
	DefaultDurationMinValidator func(int) error
)

// OrderOption defines the ordering options for the Drill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDrillID orders the results by the drill_id field.
func ByDrillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDefaultDurationMin orders the results by the default_duration_min field.
func ByDefaultDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultDurationMin, opts...).ToFunc()
}
