package game

import (
	"time"

	engine "github.com/abhisek/timesninja/internal/game"
)

// questionsReadyMsg is sent when the session's question pool has loaded.
type questionsReadyMsg struct {
	Questions []engine.Question
	Err       error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{}

// gameSavedMsg is sent after the finished game has been persisted.
type gameSavedMsg struct {
	Err error
}
