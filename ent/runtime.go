// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bvarga/petralog/ent/assignmentevent"
	"github.com/bvarga/petralog/ent/attemptevent"
	"github.com/bvarga/petralog/ent/llmrequestevent"
	"github.com/bvarga/petralog/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmenteventMixin := schema.AssignmentEvent{}.Mixin()
	assignmenteventMixinFields0 := assignmenteventMixin[0].Fields()
	_ = assignmenteventMixinFields0
	assignmenteventFields := schema.AssignmentEvent{}.Fields()
	_ = assignmenteventFields
	// assignmenteventDescTimestamp is the schema descriptor for timestamp field.
	assignmenteventDescTimestamp := assignmenteventMixinFields0[1].Descriptor()
	// assignmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assignmentevent.DefaultTimestamp = assignmenteventDescTimestamp.Default.(func() time.Time)
	// assignmenteventDescSetID is the schema descriptor for set_id field.
	assignmenteventDescSetID := assignmenteventFields[0].Descriptor()
	// assignmentevent.SetIDValidator is a validator for the "set_id" field. It is called by the builders before save.
	assignmentevent.SetIDValidator = assignmenteventDescSetID.Validators[0].(func(string) error)
	// assignmenteventDescStudentName is the schema descriptor for student_name field.
	assignmenteventDescStudentName := assignmenteventFields[1].Descriptor()
	// assignmentevent.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	assignmentevent.StudentNameValidator = assignmenteventDescStudentName.Validators[0].(func(string) error)
	// assignmenteventDescStudentCode is the schema descriptor for student_code field.
	assignmenteventDescStudentCode := assignmenteventFields[2].Descriptor()
	// assignmentevent.StudentCodeValidator is a validator for the "student_code" field. It is called by the builders before save.
	assignmentevent.StudentCodeValidator = assignmenteventDescStudentCode.Validators[0].(func(string) error)
	// assignmenteventDescLanguage is the schema descriptor for language field.
	assignmenteventDescLanguage := assignmenteventFields[3].Descriptor()
	// assignmentevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	assignmentevent.LanguageValidator = assignmenteventDescLanguage.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[2].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	// attempteventDescPrompt is the schema descriptor for prompt field.
	attempteventDescPrompt := attempteventFields[3].Descriptor()
	// attemptevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	attemptevent.PromptValidator = attempteventDescPrompt.Validators[0].(func(string) error)
	// attempteventDescAnswer is the schema descriptor for answer field.
	attempteventDescAnswer := attempteventFields[4].Descriptor()
	// attemptevent.DefaultAnswer holds the default value on creation for the answer field.
	attemptevent.DefaultAnswer = attempteventDescAnswer.Default.(string)
	// attempteventDescFeedback is the schema descriptor for feedback field.
	attempteventDescFeedback := attempteventFields[8].Descriptor()
	// attemptevent.DefaultFeedback holds the default value on creation for the feedback field.
	attemptevent.DefaultFeedback = attempteventDescFeedback.Default.(string)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[9].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
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
}
