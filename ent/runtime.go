// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/topspinhq/topspin/ent/drill"
	"github.com/topspinhq/topspin/ent/llmrequestevent"
	"github.com/topspinhq/topspin/ent/program"
	"github.com/topspinhq/topspin/ent/schema"
	"github.com/topspinhq/topspin/ent/sessionlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drillFields := schema.Drill{}.Fields()
	_ = drillFields
	// drillDescDefaultDurationMin is the schema descriptor for default_duration_min field.
	drillDescDefaultDurationMin := drillFields[5].Descriptor()
	// drill.DefaultDurationMinValidator is a validator for the "default_duration_min" field. It is called by the builders before save.
	drill.DefaultDurationMinValidator = drillDescDefaultDurationMin.Validators[0].(func(int) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	programFields := schema.Program{}.Fields()
	_ = programFields
	// programDescStatus is the schema descriptor for status field.
	programDescStatus := programFields[7].Descriptor()
	// program.DefaultStatus holds the default value on creation for the status field.
	program.DefaultStatus = programDescStatus.Default.(string)
	// programDescCompleted is the schema descriptor for completed field.
	programDescCompleted := programFields[8].Descriptor()
	// program.DefaultCompleted holds the default value on creation for the completed field.
	program.DefaultCompleted = programDescCompleted.Default.(bool)
	sessionlogFields := schema.SessionLog{}.Fields()
	_ = sessionlogFields
	// sessionlogDescProgramID is the schema descriptor for program_id field.
	sessionlogDescProgramID := sessionlogFields[2].Descriptor()
	// sessionlog.DefaultProgramID holds the default value on creation for the program_id field.
	sessionlog.DefaultProgramID = sessionlogDescProgramID.Default.(string)
	// sessionlogDescDurationMin is the schema descriptor for duration_min field.
	sessionlogDescDurationMin := sessionlogFields[4].Descriptor()
	// sessionlog.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	sessionlog.DurationMinValidator = sessionlogDescDurationMin.Validators[0].(func(int) error)
	// sessionlogDescRpe is the schema descriptor for rpe field.
	sessionlogDescRpe := sessionlogFields[5].Descriptor()
	// sessionlog.RpeValidator is a validator for the "rpe" field. It is called by the builders before save.
	sessionlog.RpeValidator = sessionlogDescRpe.Validators[0].(func(int) error)
	// sessionlogDescNotes is the schema descriptor for notes field.
	sessionlogDescNotes := sessionlogFields[6].Descriptor()
	// sessionlog.DefaultNotes holds the default value on creation for the notes field.
	sessionlog.DefaultNotes = sessionlogDescNotes.Default.(string)
}
