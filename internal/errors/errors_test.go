package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidBoardState", ErrInvalidBoardState, ErrInvalidBoardState},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidBoardState, ErrInvalidFEN) {
		t.Error("errors.Is(ErrInvalidBoardState, ErrInvalidFEN) = true, want false")
	}
	if errors.Is(ErrIllegalMove, ErrInvalidConfig) {
		t.Error("errors.Is(ErrIllegalMove, ErrInvalidConfig) = true, want false")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("no white king: %w", ErrInvalidBoardState)

	if !errors.Is(wrapped, ErrInvalidBoardState) {
		t.Errorf("errors.Is(wrapped, ErrInvalidBoardState) = false, want true")
	}
}

// TestPositionError_Error verifies the error message format
func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:  ErrIllegalMove,
				FEN:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
				Move: "e1e3",
			},
			contains: []string{"4k3/8", "e1e3", "illegal move"},
		},
		{
			name: "error only",
			err: &PositionError{
				Err: ErrInvalidBoardState,
			},
			contains: []string{"invalid board state"},
		},
		{
			name:     "no context",
			err:      &PositionError{},
			contains: []string{"position error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestPositionError_Unwrap verifies that PositionError properly implements Unwrap
func TestPositionError_Unwrap(t *testing.T) {
	posErr := &PositionError{
		Err: ErrInvalidFEN,
		FEN: "not a fen",
	}

	unwrapped := errors.Unwrap(posErr)
	if !errors.Is(unwrapped, ErrInvalidFEN) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidFEN)
	}

	if !errors.Is(posErr, ErrInvalidFEN) {
		t.Error("errors.Is(posErr, ErrInvalidFEN) = false, want true")
	}
}

// TestPositionError_As verifies that errors.As works with PositionError
func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{
		Err:  ErrIllegalMove,
		Move: "e1g1",
	}

	wrapped := fmt.Errorf("verification failed: %w", posErr)

	var extractedErr *PositionError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extractedErr.Move != "e1g1" {
		t.Errorf("extractedErr.Move = %q, want %q", extractedErr.Move, "e1g1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidBoardState, "%d kings for %s", 2, "White")

	if !errors.Is(wrapped, ErrInvalidBoardState) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "2 kings for White") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
