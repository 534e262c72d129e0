package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed in the current state
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidSpread is returned for spreads whose positions do not match their card count
	ErrInvalidSpread = errors.New("invalid spread")
	// ErrEmptyReading is returned when the interpreter answers with no text
	ErrEmptyReading = errors.New("interpreter returned an empty reading")
)

// Message ids surfaced to the user
const (
	MsgDrawAllCards  = "errors.drawAllCards"
	MsgReadingFailed = "errors.readingFailed"
)

// ValidationError rejects an action before anything is attempted. The session
// is left unchanged.
type ValidationError struct {
	MessageID string
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InterpretationError wraps a failed interpretation request. Drawn cards are
// kept so the request can be retried.
type InterpretationError struct {
	Err error
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("failed to generate reading: %v", e.Err)
}

func (e *InterpretationError) Unwrap() error {
	return e.Err
}

// Retryable reports that the request may be attempted again
func (e *InterpretationError) Retryable() bool {
	return true
}

// MessageID returns the user-facing message id for the failure
func (e *InterpretationError) MessageID() string {
	return MsgReadingFailed
}
