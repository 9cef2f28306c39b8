package engine

import (
	stderrors "errors"
	"testing"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/testutil"
)

func TestNotation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", InitialFEN, "e2e4", "e4"},
		{"knight move", InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"piece capture", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", "Rxd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "exd6"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", "a8=N"},
		{"promotion with check", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q+"},
		{"capturing promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8q", "axb8=Q+"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"checkmate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2", "d8h4", "Qh4#"},
		{"rank ten", "4k5/10/10/10/10/10/10/10/10/4K5 w - - 0 1", "e1e2", "Ke2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustLoad(tt.fen)
			testutil.AssertEqual(t, Notation(board, mustMove(t, board, tt.move)), tt.want)
		})
	}
}

func TestUCI(t *testing.T) {
	g := chess.Geometry{Ranks: 12, Files: 10}
	tests := []struct {
		name string
		move chess.Move
		want string
	}{
		{
			name: "plain move",
			move: chess.Move{From: g.Square(1, 4), To: g.Square(3, 4), PromotedPiece: chess.Empty},
			want: "e2e4",
		},
		{
			name: "two digit ranks",
			move: chess.Move{From: g.Square(10, 9), To: g.Square(11, 9), PromotedPiece: chess.Empty},
			want: "j11j12",
		},
		{
			name: "promotion",
			move: chess.Move{Class: chess.PawnMoveWithPromotion, From: g.Square(10, 0), To: g.Square(11, 0), PromotedPiece: chess.Rook},
			want: "a11a12r",
		},
		{
			name: "bare descriptor",
			move: chess.Move{From: g.Square(0, 0), To: g.Square(0, 1)},
			want: "a1b1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, UCI(tt.move, g), tt.want)
		})
	}
}

func TestParseUCI(t *testing.T) {
	board := MustLoad("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	m, err := ParseUCI(board, "a7a8b")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.PromotedPiece, chess.Bishop)
	testutil.AssertEqual(t, m.Class, chess.PawnMoveWithPromotion)

	// Uppercase promotion letters are accepted too.
	m, err = ParseUCI(board, "a7a8Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.PromotedPiece, chess.Queen)
}

func TestParseUCI_WideBoard(t *testing.T) {
	board := MustLoad("4k5/10/10/10/10/10/10/10/10/4K5 b - - 0 1")
	m, err := ParseUCI(board, "e10e9")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.From, board.Geometry.Square(9, 4))
	testutil.AssertEqual(t, m.To, board.Geometry.Square(8, 4))
}

func TestParseUCI_Errors(t *testing.T) {
	board := NewInitialBoard()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", errors.ErrInvalidSymbol},
		{"no rank", "ee4", errors.ErrInvalidSymbol},
		{"off board file", "i2i4", errors.ErrInvalidSymbol},
		{"off board rank", "e2e9", errors.ErrInvalidSymbol},
		{"bad promotion letter", "e2e4x", errors.ErrInvalidSymbol},
		{"trailing text", "e2e4qq", errors.ErrInvalidSymbol},
		{"illegal move", "e2e5", errors.ErrIllegalMove},
		{"missing promotion", "e2e4q", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUCI(board, tt.input)
			if !stderrors.Is(err, tt.wantErr) {
				t.Errorf("ParseUCI(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
