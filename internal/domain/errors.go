package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInstructionFormat = errors.New("invalid instruction format")
	ErrUnknownDirection         = errors.New("unknown direction")
	ErrNotFound                 = errors.New("not found")
	ErrInvalidConfig            = errors.New("invalid config")
	ErrExecution                = errors.New("execution error")
	ErrWrongPathCount           = errors.New("wrong number of paths")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInstruction ErrorKind = "invalid_instruction"
	KindUnknownDirection   ErrorKind = "unknown_direction"
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindExecution          ErrorKind = "execution"
	KindInvalidInput       ErrorKind = "invalid_input"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Input string // Optional: offending instruction segment
	Path  string // Optional: relevant file path
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Input != "" || e.Kind == KindInvalidInstruction || e.Kind == KindUnknownDirection {
		base += fmt.Sprintf(" (input=%q)", e.Input)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// IsInvalidInput reports whether err was caused by a malformed instruction.
// Unknown directions are treated the same as grammar failures.
func IsInvalidInput(err error) bool {
	return IsKind(err, KindInvalidInstruction) || IsKind(err, KindUnknownDirection)
}

// OffendingInput returns the instruction segment that made tracing fail.
func OffendingInput(err error) (string, bool) {
	var oe *OpError
	if errors.As(err, &oe) && (oe.Kind == KindInvalidInstruction || oe.Kind == KindUnknownDirection) {
		return oe.Input, true
	}
	return "", false
}
