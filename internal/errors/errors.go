// Package errors provides sentinel errors and error types for the chess core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedInput indicates a bad position string: wrong field count,
	// unknown symbol, or non-numeric counters.
	ErrMalformedInput = errors.New("malformed position string")

	// ErrInvalidSymbol indicates an unrecognized piece, file, or rank character.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrIllegalMove indicates a move that is not in the current legal-move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors raised while reading a position string with the
// field that failed and the offending text.
type PositionError struct {
	Err   error  // The underlying error
	Field string // FEN field name ("placement", "turn", ...)
	Value string // The text that could not be read
	FEN   string // The whole position string (if known)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "position error"
	}
	return context
}

// Unwrap returns the underlying errors, enabling errors.Is() and errors.As()
// to see both the cause and ErrMalformedInput through the wrapper.
func (e *PositionError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrMalformedInput) {
		return []error{e.Err}
	}
	return []error{e.Err, ErrMalformedInput}
}

// MoveError records a rejected move with the position it was applied to.
type MoveError struct {
	Err  error  // The underlying error
	Move string // The move in long algebraic form
	FEN  string // The position the move was applied to
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %s", e.Move)
	if e.FEN != "" {
		msg += fmt.Sprintf(" in %q", e.FEN)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
