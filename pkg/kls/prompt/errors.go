package prompt

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrCancelled is returned when the user picks "0. Cancel operation" in a
	// selectable list. CLI entry points treat it as "exit with status 0".
	ErrCancelled = errors.New("operation cancelled")
	// ErrInputClosed is returned when the input stream ends while a prompt is waiting.
	ErrInputClosed = errors.New("input closed")

	// The following kinds are recovered inside the prompt loops and only surface
	// as terminal messages. They are exported so wrapped causes can be inspected.
	ErrValidationFailed   = errors.New("validation failed")
	ErrOutOfBounds        = errors.New("value out of bounds")
	ErrSizeConstraint     = errors.New("size constraint violated")
	ErrUnrecognizedOption = errors.New("option not recognized")

	ErrConstruction = errors.New("invalid prompt definition")
)

// ConstructionError reports an invalid prompt or field definition. It is raised
// while assembling prompts, never during interactive use.
type ConstructionError struct {
	Subject string
	Reason  string
}

func (e *ConstructionError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %s", ErrConstruction, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConstruction, e.Subject, e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

func constructionErrorf(subject, format string, args ...interface{}) error {
	return &ConstructionError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}

// NewConstructionError is used by packages assembling prompts (forms, menus).
func NewConstructionError(subject, format string, args ...interface{}) error {
	return constructionErrorf(subject, format, args...)
}
