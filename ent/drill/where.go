// Code generated by ent, DO NOT EDIT.

package drill

import (
	"entgo.io/ent/dialect/sql"
	"github.com/topspinhq/topspin/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldID, id))
}

// DrillID applies equality check predicate on the "drill_id" field. It's identical to DrillIDEQ.
func DrillID(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDrillID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDifficulty, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDescription, v))
}

// DefaultDurationMin applies equality check predicate on the "default_duration_min" field. It's identical to DefaultDurationMinEQ.
func DefaultDurationMin(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DrillIDEQ applies the EQ predicate on the "drill_id" field.
func DrillIDEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDrillID, v))
}

// DrillIDNEQ applies the NEQ predicate on the "drill_id" field.
func DrillIDNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDrillID, v))
}

// DrillIDIn applies the In predicate on the "drill_id" field.
func DrillIDIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDrillID, vs...))
}

// DrillIDNotIn applies the NotIn predicate on the "drill_id" field.
func DrillIDNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDrillID, vs...))
}

// DrillIDGT applies the GT predicate on the "drill_id" field.
func DrillIDGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDrillID, v))
}

// DrillIDGTE applies the GTE predicate on the "drill_id" field.
func DrillIDGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDrillID, v))
}

// DrillIDLT applies the LT predicate on the "drill_id" field.
func DrillIDLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDrillID, v))
}

// DrillIDLTE applies the LTE predicate on the "drill_id" field.
func DrillIDLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDrillID, v))
}

// DrillIDContains applies the Contains predicate on the "drill_id" field.
func DrillIDContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldDrillID, v))
}

// DrillIDHasPrefix applies the HasPrefix predicate on the "drill_id" field.
func DrillIDHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldDrillID, v))
}

// DrillIDHasSuffix applies the HasSuffix predicate on the "drill_id" field.
func DrillIDHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldDrillID, v))
}

// DrillIDEqualFold applies the EqualFold predicate on the "drill_id" field.
func DrillIDEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldDrillID, v))
}

// DrillIDContainsFold applies the ContainsFold predicate on the "drill_id" field.
func DrillIDContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldDrillID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldDifficulty, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Drill {
	return predicate.Drill(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Drill {
	return predicate.Drill(sql.FieldContainsFold(FieldDescription, v))
}

// DefaultDurationMinEQ applies the EQ predicate on the "default_duration_min" field.
func DefaultDurationMinEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinNEQ applies the NEQ predicate on the "default_duration_min" field.
func DefaultDurationMinNEQ(v int) predicate.Drill {
	return predicate.Drill(sql.FieldNEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinIn applies the In predicate on the "default_duration_min" field.
func DefaultDurationMinIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinNotIn applies the NotIn predicate on the "default_duration_min" field.
func DefaultDurationMinNotIn(vs ...int) predicate.Drill {
	return predicate.Drill(sql.FieldNotIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinGT applies the GT predicate on the "default_duration_min" field.
func DefaultDurationMinGT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinGTE applies the GTE predicate on the "default_duration_min" field.
func DefaultDurationMinGTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldGTE(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLT applies the LT predicate on the "default_duration_min" field.
func DefaultDurationMinLT(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLTE applies the LTE predicate on the "default_duration_min" field.
func DefaultDurationMinLTE(v int) predicate.Drill {
	return predicate.Drill(sql.FieldLTE(FieldDefaultDurationMin, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Drill) predicate.Drill {
	return predicate.Drill(sql.NotPredicates(p))
}
