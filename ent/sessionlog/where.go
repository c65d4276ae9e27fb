// Code generated by ent, DO NOT EDIT.

package sessionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/topspinhq/topspin/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldID, id))
}

// LogID applies equality check predicate on the "log_id" field. It's identical to LogIDEQ.
func LogID(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldLogID, v))
}

// PlayerID applies equality check predicate on the "player_id" field. It's identical to PlayerIDEQ.
func PlayerID(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldPlayerID, v))
}

// ProgramID applies equality check predicate on the "program_id" field. It's identical to ProgramIDEQ.
func ProgramID(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldProgramID, v))
}

// DateCompleted applies equality check predicate on the "date_completed" field. It's identical to DateCompletedEQ.
func DateCompleted(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldDateCompleted, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldDurationMin, v))
}

// Rpe applies equality check predicate on the "rpe" field. It's identical to RpeEQ.
func Rpe(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldRpe, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldNotes, v))
}

// LogIDEQ applies the EQ predicate on the "log_id" field.
func LogIDEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldLogID, v))
}

// LogIDNEQ applies the NEQ predicate on the "log_id" field.
func LogIDNEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldLogID, v))
}

// LogIDIn applies the In predicate on the "log_id" field.
func LogIDIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldLogID, vs...))
}

// LogIDNotIn applies the NotIn predicate on the "log_id" field.
func LogIDNotIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldLogID, vs...))
}

// LogIDGT applies the GT predicate on the "log_id" field.
func LogIDGT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldLogID, v))
}

// LogIDGTE applies the GTE predicate on the "log_id" field.
func LogIDGTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldLogID, v))
}

// LogIDLT applies the LT predicate on the "log_id" field.
func LogIDLT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldLogID, v))
}

// LogIDLTE applies the LTE predicate on the "log_id" field.
func LogIDLTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldLogID, v))
}

// LogIDContains applies the Contains predicate on the "log_id" field.
func LogIDContains(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContains(FieldLogID, v))
}

// LogIDHasPrefix applies the HasPrefix predicate on the "log_id" field.
func LogIDHasPrefix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasPrefix(FieldLogID, v))
}

// LogIDHasSuffix applies the HasSuffix predicate on the "log_id" field.
func LogIDHasSuffix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasSuffix(FieldLogID, v))
}

// LogIDEqualFold applies the EqualFold predicate on the "log_id" field.
func LogIDEqualFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEqualFold(FieldLogID, v))
}

// LogIDContainsFold applies the ContainsFold predicate on the "log_id" field.
func LogIDContainsFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContainsFold(FieldLogID, v))
}

// PlayerIDEQ applies the EQ predicate on the "player_id" field.
func PlayerIDEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerIDNEQ applies the NEQ predicate on the "player_id" field.
func PlayerIDNEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldPlayerID, v))
}

// PlayerIDIn applies the In predicate on the "player_id" field.
func PlayerIDIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldPlayerID, vs...))
}

// PlayerIDNotIn applies the NotIn predicate on the "player_id" field.
func PlayerIDNotIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldPlayerID, vs...))
}

// PlayerIDGT applies the GT predicate on the "player_id" field.
func PlayerIDGT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldPlayerID, v))
}

// PlayerIDGTE applies the GTE predicate on the "player_id" field.
func PlayerIDGTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldPlayerID, v))
}

// PlayerIDLT applies the LT predicate on the "player_id" field.
func PlayerIDLT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldPlayerID, v))
}

// PlayerIDLTE applies the LTE predicate on the "player_id" field.
func PlayerIDLTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldPlayerID, v))
}

// PlayerIDContains applies the Contains predicate on the "player_id" field.
func PlayerIDContains(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContains(FieldPlayerID, v))
}

// PlayerIDHasPrefix applies the HasPrefix predicate on the "player_id" field.
func PlayerIDHasPrefix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasPrefix(FieldPlayerID, v))
}

// PlayerIDHasSuffix applies the HasSuffix predicate on the "player_id" field.
func PlayerIDHasSuffix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasSuffix(FieldPlayerID, v))
}

// PlayerIDEqualFold applies the EqualFold predicate on the "player_id" field.
func PlayerIDEqualFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEqualFold(FieldPlayerID, v))
}

// PlayerIDContainsFold applies the ContainsFold predicate on the "player_id" field.
func PlayerIDContainsFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContainsFold(FieldPlayerID, v))
}

// ProgramIDEQ applies the EQ predicate on the "program_id" field.
func ProgramIDEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldProgramID, v))
}

// ProgramIDNEQ applies the NEQ predicate on the "program_id" field.
func ProgramIDNEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldProgramID, v))
}

// ProgramIDIn applies the In predicate on the "program_id" field.
func ProgramIDIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldProgramID, vs...))
}

// ProgramIDNotIn applies the NotIn predicate on the "program_id" field.
func ProgramIDNotIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldProgramID, vs...))
}

// ProgramIDGT applies the GT predicate on the "program_id" field.
func ProgramIDGT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldProgramID, v))
}

// ProgramIDGTE applies the GTE predicate on the "program_id" field.
func ProgramIDGTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldProgramID, v))
}

// ProgramIDLT applies the LT predicate on the "program_id" field.
func ProgramIDLT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldProgramID, v))
}

// ProgramIDLTE applies the LTE predicate on the "program_id" field.
func ProgramIDLTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldProgramID, v))
}

// ProgramIDContains applies the Contains predicate on the "program_id" field.
func ProgramIDContains(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContains(FieldProgramID, v))
}

// ProgramIDHasPrefix applies the HasPrefix predicate on the "program_id" field.
func ProgramIDHasPrefix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasPrefix(FieldProgramID, v))
}

// ProgramIDHasSuffix applies the HasSuffix predicate on the "program_id" field.
func ProgramIDHasSuffix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasSuffix(FieldProgramID, v))
}

// ProgramIDEqualFold applies the EqualFold predicate on the "program_id" field.
func ProgramIDEqualFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEqualFold(FieldProgramID, v))
}

// ProgramIDContainsFold applies the ContainsFold predicate on the "program_id" field.
func ProgramIDContainsFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContainsFold(FieldProgramID, v))
}

// DateCompletedEQ applies the EQ predicate on the "date_completed" field.
func DateCompletedEQ(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldDateCompleted, v))
}

// DateCompletedNEQ applies the NEQ predicate on the "date_completed" field.
func DateCompletedNEQ(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldDateCompleted, v))
}

// DateCompletedIn applies the In predicate on the "date_completed" field.
func DateCompletedIn(vs ...time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldDateCompleted, vs...))
}

// DateCompletedNotIn applies the NotIn predicate on the "date_completed" field.
func DateCompletedNotIn(vs ...time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldDateCompleted, vs...))
}

// DateCompletedGT applies the GT predicate on the "date_completed" field.
func DateCompletedGT(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldDateCompleted, v))
}

// DateCompletedGTE applies the GTE predicate on the "date_completed" field.
func DateCompletedGTE(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldDateCompleted, v))
}

// DateCompletedLT applies the LT predicate on the "date_completed" field.
func DateCompletedLT(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldDateCompleted, v))
}

// DateCompletedLTE applies the LTE predicate on the "date_completed" field.
func DateCompletedLTE(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldDateCompleted, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldDurationMin, v))
}

// RpeEQ applies the EQ predicate on the "rpe" field.
func RpeEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldRpe, v))
}

// RpeNEQ applies the NEQ predicate on the "rpe" field.
func RpeNEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldRpe, v))
}

// RpeIn applies the In predicate on the "rpe" field.
func RpeIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldRpe, vs...))
}

// RpeNotIn applies the NotIn predicate on the "rpe" field.
func RpeNotIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldRpe, vs...))
}

// RpeGT applies the GT predicate on the "rpe" field.
func RpeGT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldRpe, v))
}

// RpeGTE applies the GTE predicate on the "rpe" field.
func RpeGTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldRpe, v))
}

// RpeLT applies the LT predicate on the "rpe" field.
func RpeLT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldRpe, v))
}

// RpeLTE applies the LTE predicate on the "rpe" field.
func RpeLTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldRpe, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionLog) predicate.SessionLog {
	return predicate.SessionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionLog) predicate.SessionLog {
	return predicate.SessionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionLog) predicate.SessionLog {
	return predicate.SessionLog(sql.NotPredicates(p))
}
