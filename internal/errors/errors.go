// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the few conditions the engine surfaces as errors and a structured
// error type that preserves position context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidBoardState indicates the host supplied a malformed board,
	// e.g. a colour without exactly one king.
	ErrInvalidBoardState = errors.New("invalid board state")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with position context: the FEN of the board
// and the move being examined. It supports unwrapping via errors.Is() and
// errors.As().
type PositionError struct {
	Err  error  // The underlying error
	FEN  string // Position the error refers to (if known)
	Move string // Move in coordinate form (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "position error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
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
