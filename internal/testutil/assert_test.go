package testutil

import (
	"fmt"
	"testing"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// recorder captures failures so the failing paths can be checked without
// failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions_Pass(t *testing.T) {
	g := chess.StandardGeometry
	var noMove *chess.Move

	AssertEqual(t, []chess.Square{g.Square(0, 4)}, []chess.Square{4})
	AssertEqual(t, chess.W(chess.Queen), chess.MakeColouredPiece(chess.White, chess.Queen), "coloured %s", "queen")
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("load: %w", errors.ErrMalformedInput), errors.ErrMalformedInput)
	AssertContains(t, "best: e2e4", "e2e4")
	AssertNotContains(t, "best: e2e4", "none")
	AssertTrue(t, chess.WhiteInCheck.IsCheck())
	AssertFalse(t, chess.InPlay.IsTerminal())
	AssertNil(t, noMove)
	AssertNil(t, nil)
}

func TestAssertions_Fail(t *testing.T) {
	tests := []struct {
		name   string
		assert func(tb testing.TB)
		want   string
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, chess.Rook, chess.Queen) }, "mismatch (-want +got)"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, errors.ErrIllegalMove, "apply") }, "apply: unexpected error: illegal move"},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, errors.ErrIllegalMove, errors.ErrMalformedInput) }, "is not"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "e2e4", "e7e5") }, `"e2e4" does not contain "e7e5"`},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "e2e4", "e2") }, "should not contain"},
		{"true", func(tb testing.TB) { AssertTrue(tb, false, "move %d", 3) }, "move 3: expected true but got false"},
		{"false", func(tb testing.TB) { AssertFalse(tb, true) }, "expected false but got true"},
		{"nil", func(tb testing.TB) { AssertNil(tb, &chess.Move{}) }, "expected nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("got %d failures, want 1", len(r.failures))
			}
			AssertContains(t, r.failures[0], tt.want)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"perft"}, "perft"},
		{"single value", []interface{}{chess.Knight}, "Knight"},
		{"format", []interface{}{"depth %d from %s", 3, "start"}, "depth 3 from start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
