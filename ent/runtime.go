// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/timesninja/ent/gameevent"
	"github.com/abhisek/timesninja/ent/llmrequestevent"
	"github.com/abhisek/timesninja/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gameeventMixin := schema.GameEvent{}.Mixin()
	gameeventMixinFields0 := gameeventMixin[0].Fields()
	_ = gameeventMixinFields0
	gameeventFields := schema.GameEvent{}.Fields()
	_ = gameeventFields
	// gameeventDescTimestamp is the schema descriptor for timestamp field.
	gameeventDescTimestamp := gameeventMixinFields0[1].Descriptor()
	// gameevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gameevent.DefaultTimestamp = gameeventDescTimestamp.Default.(func() time.Time)
	// gameeventDescGameID is the schema descriptor for game_id field.
	gameeventDescGameID := gameeventFields[0].Descriptor()
	// gameevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	gameevent.GameIDValidator = gameeventDescGameID.Validators[0].(func(string) error)
	// gameeventDescLevel is the schema descriptor for level field.
	gameeventDescLevel := gameeventFields[1].Descriptor()
	// gameevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	gameevent.LevelValidator = gameeventDescLevel.Validators[0].(func(string) error)
	// gameeventDescScore is the schema descriptor for score field.
	gameeventDescScore := gameeventFields[2].Descriptor()
	// gameevent.DefaultScore holds the default value on creation for the score field.
	gameevent.DefaultScore = gameeventDescScore.Default.(int)
	// gameeventDescCorrectCount is the schema descriptor for correct_count field.
	gameeventDescCorrectCount := gameeventFields[3].Descriptor()
	// gameevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	gameevent.DefaultCorrectCount = gameeventDescCorrectCount.Default.(int)
	// gameeventDescTotalQuestions is the schema descriptor for total_questions field.
	gameeventDescTotalQuestions := gameeventFields[4].Descriptor()
	// gameevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	gameevent.DefaultTotalQuestions = gameeventDescTotalQuestions.Default.(int)
	// gameeventDescAccuracy is the schema descriptor for accuracy field.
	gameeventDescAccuracy := gameeventFields[5].Descriptor()
	// gameevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	gameevent.DefaultAccuracy = gameeventDescAccuracy.Default.(int)
	// gameeventDescLivesRemaining is the schema descriptor for lives_remaining field.
	gameeventDescLivesRemaining := gameeventFields[6].Descriptor()
	// gameevent.DefaultLivesRemaining holds the default value on creation for the lives_remaining field.
	gameevent.DefaultLivesRemaining = gameeventDescLivesRemaining.Default.(int)
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
