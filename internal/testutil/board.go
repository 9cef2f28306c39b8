package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
)

// PlacePieces builds a board of geometry g from a square-to-symbol map such
// as {"e1": 'K', "e8": 'k'}. Only placement and the side to move are set;
// move lists and status are left for the caller to compute.
func PlacePieces(t testing.TB, g chess.Geometry, toMove chess.Colour, pieces map[string]byte) *chess.Board {
	t.Helper()
	board := chess.NewBoard(g)
	board.ToMove = toMove
	for name, symbol := range pieces {
		sq, err := chess.ParseSquare(name, g)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		colour, piece, err := chess.DecodeSymbol(symbol)
		if err != nil {
			t.Fatalf("bad symbol %q on %s: %v", symbol, name, err)
		}
		board.Put(sq, chess.MakeColouredPiece(colour, piece))
	}
	return board
}

// MoveNames returns the moves as sorted long-algebraic strings ("e2e4",
// "a7a8q"), for comparing move lists regardless of generation order.
func MoveNames(moves []chess.Move, g chess.Geometry) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		name := chess.SquareName(m.From, g) + chess.SquareName(m.To, g)
		if m.IsPromotion() {
			name += strings.ToLower(string(m.PromotedPiece.Letter()))
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedStrings returns a sorted copy of s.
func SortedStrings(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}
