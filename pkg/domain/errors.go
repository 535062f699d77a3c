package domain

import (
	"errors"
	"fmt"
)

// ErrMarkup is matched by every *MarkupError.
var ErrMarkup = errors.New("invalid markup")

// ErrInvariant is matched by every *InvariantViolation.
var ErrInvariant = errors.New("invariant violation")

// MarkupError reports malformed markup together with the diagnostic context
// captured at the point of failure.
type MarkupError struct {
	Reason string
	// Path is the pretty-printed tag breadcrumb trail, outermost first.
	Path string
	// Stack is the pretty-printed markup frames, most recent first.
	Stack string
}

func (e *MarkupError) Error() string {
	if e.Path == "" && e.Stack == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s\nRender path: %s\nRender stack:\n%s", e.Reason, e.Path, e.Stack)
}

func (e *MarkupError) Unwrap() error { return ErrMarkup }

// InvariantViolation reports a failed precondition on an accessor or constructor.
type InvariantViolation struct {
	Condition string
	Value     any
}

func (e *InvariantViolation) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("assert failed: %s", e.Condition)
	}
	return fmt.Sprintf("assert failed: %s (got %T)", e.Condition, e.Value)
}

func (e *InvariantViolation) Unwrap() error { return ErrInvariant }

// ErrTableNotFound is returned when a named token table cannot be found in a store.
var ErrTableNotFound = errors.New("token table not found")
