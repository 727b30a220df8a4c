package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidFormat = errors.New("invalid color format")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidFormat ErrorKind = "invalid_format"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Arg   string // Optional: which argument failed (e.g. "color1")
	Input string // Optional: raw user input
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Arg != "" {
		base += fmt.Sprintf(" (arg=%s)", e.Arg)
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

func invalidFormat(input string) error {
	return &OpError{
		Op:    "color.parse",
		Kind:  KindInvalidFormat,
		Input: input,
		Err: fmt.Errorf("%w: %s. Use hex format (#RRGGBB) or comma-separated RGB values (r,g,b)",
			ErrInvalidFormat, input),
	}
}
