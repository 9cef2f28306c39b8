package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrMalformedInput", ErrMalformedInput, ErrMalformedInput},
		{"ErrInvalidSymbol", ErrInvalidSymbol, ErrInvalidSymbol},
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

// TestSentinelErrors_Distinct verifies sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrMalformedInput) {
		t.Error("ErrIllegalMove should not match ErrMalformedInput")
	}
	if errors.Is(ErrInvalidSymbol, ErrMalformedInput) {
		t.Error("bare ErrInvalidSymbol should not match ErrMalformedInput")
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
				Err:   ErrInvalidSymbol,
				Field: "placement",
				Value: "rnbqkXnr",
				FEN:   "rnbqkXnr/8/8/8/8/8/8/4K3 w - - 0 1",
			},
			contains: []string{"placement", "rnbqkXnr", "invalid symbol"},
		},
		{
			name:     "error only",
			err:      &PositionError{Err: ErrMalformedInput},
			contains: []string{"malformed position string"},
		},
		{
			name:     "no error",
			err:      &PositionError{Field: "turn", Value: "x"},
			contains: []string{"turn", "\"x\""},
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

// TestPositionError_Is verifies both the cause and ErrMalformedInput are visible
func TestPositionError_Is(t *testing.T) {
	posErr := &PositionError{Err: ErrInvalidSymbol, Field: "placement", Value: "X"}

	if !errors.Is(posErr, ErrInvalidSymbol) {
		t.Error("errors.Is(posErr, ErrInvalidSymbol) = false, want true")
	}
	if !errors.Is(posErr, ErrMalformedInput) {
		t.Error("errors.Is(posErr, ErrMalformedInput) = false, want true")
	}

	plain := &PositionError{Err: ErrMalformedInput, Field: "fields"}
	if !errors.Is(plain, ErrMalformedInput) {
		t.Error("errors.Is(plain, ErrMalformedInput) = false, want true")
	}
}

// TestPositionError_As verifies that errors.As works with PositionError
func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{Err: ErrMalformedInput, Field: "halfmove", Value: "abc"}
	wrapped := fmt.Errorf("loading game: %w", posErr)

	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.Field != "halfmove" {
		t.Errorf("extracted.Field = %q, want %q", extracted.Field, "halfmove")
	}
}

// TestMoveError verifies MoveError formatting and unwrapping
func TestMoveError(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Move: "e2e5", FEN: "8/8/8/8/8/8/4P3/4K2k w - - 0 1"}

	if !errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = false, want true")
	}
	msg := moveErr.Error()
	for _, s := range []string{"e2e5", "illegal move", "4K2k"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMalformedInput, "loading start position")

	if !errors.Is(wrapped, ErrMalformedInput) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
