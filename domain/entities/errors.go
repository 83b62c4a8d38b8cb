package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the resolver and interaction layer.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindTimeout     ErrorKind = "timeout"
	KindInteraction ErrorKind = "interaction"
	KindScreenshot  ErrorKind = "screenshot"
)

var (
	ErrNotFound    = errors.New("element not found")
	ErrTimeout     = errors.New("timeout")
	ErrInteraction = errors.New("interaction failed")
	ErrScreenshot  = errors.New("screenshot failed")
)

var kindSentinels = map[ErrorKind]error{
	KindNotFound:    ErrNotFound,
	KindTimeout:     ErrTimeout,
	KindInteraction: ErrInteraction,
	KindScreenshot:  ErrScreenshot,
}

// ActionError wraps a failure of a single UI operation with its kind, the
// operation name and the target it was applied to.
type ActionError struct {
	Kind   ErrorKind
	Op     string
	Target string
	Err    error
}

func (e *ActionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s [%s]: %v", e.Op, e.Target, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s [%s]", e.Op, e.Target, e.Kind)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrNotFound)
// holds for every not-found ActionError.
func (e *ActionError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// NewActionError creates a new ActionError.
func NewActionError(kind ErrorKind, op, target string, err error) *ActionError {
	return &ActionError{Kind: kind, Op: op, Target: target, Err: err}
}

// KindOf returns the kind of err, or an empty kind for foreign errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return ""
}
