package hashing

import (
	"testing"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/testutil"
)

func kingsAndPawn(t *testing.T, pawnSquare string) *chess.Board {
	t.Helper()
	return testutil.PlacePieces(t, chess.StandardGeometry, chess.White, map[string]byte{
		"e1":       'K',
		"e8":       'k',
		pawnSquare: 'P',
	})
}

func TestZobristHashConsistency(t *testing.T) {
	// Two identical boards produce the same hash
	board1 := kingsAndPawn(t, "e2")
	board2 := kingsAndPawn(t, "e2")

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := kingsAndPawn(t, "e2")
	board2 := kingsAndPawn(t, "e4")

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	board1 := kingsAndPawn(t, "e2")
	board2 := kingsAndPawn(t, "e2")
	board2.ToMove = chess.Black

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Side to move should affect the hash")
	}
}

func TestCastlingAndEnPassantAffectHash(t *testing.T) {
	base := kingsAndPawn(t, "e4")

	castling := base.Copy()
	castling.Castling = chess.WhiteKingside
	if GenerateZobristHash(base) == GenerateZobristHash(castling) {
		t.Error("Castling rights should affect the hash")
	}

	g := chess.StandardGeometry
	capturable := kingsAndPawn(t, "e5")
	capturable.Put(g.Square(4, 3), chess.B(chess.Pawn))
	ep := capturable.Copy()
	ep.EnPassant = g.Square(5, 3)
	if GenerateZobristHash(capturable) == GenerateZobristHash(ep) {
		t.Error("A capturable en-passant square should affect the hash")
	}
}

func TestUncapturableEnPassantDoesNotAffectHash(t *testing.T) {
	tests := []struct {
		name   string
		toMove chess.Colour
		pawns  map[string]byte
		target string
	}{
		{"no pawn beside the pushed pawn", chess.Black, map[string]byte{"e4": 'P'}, "e3"},
		{"own pawn beside it", chess.Black, map[string]byte{"e4": 'P', "d4": 'P'}, "e3"},
		{"white pawn too far away", chess.White, map[string]byte{"d5": 'p', "b5": 'P'}, "d6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := map[string]byte{"e1": 'K', "e8": 'k'}
			for sq, p := range tt.pawns {
				pieces[sq] = p
			}
			board := testutil.PlacePieces(t, chess.StandardGeometry, tt.toMove, pieces)
			ep := board.Copy()
			target, err := chess.ParseSquare(tt.target, chess.StandardGeometry)
			testutil.AssertNoError(t, err)
			ep.EnPassant = target

			testutil.AssertEqual(t, GenerateZobristHash(ep), GenerateZobristHash(board))
		})
	}
}

func TestClocksDoNotAffectHash(t *testing.T) {
	board1 := kingsAndPawn(t, "e2")
	board2 := kingsAndPawn(t, "e2")
	board2.HalfmoveClock = 12
	board2.MoveNumber = 40

	testutil.AssertEqual(t, GenerateZobristHash(board2), GenerateZobristHash(board1))
}

func TestNewKeysDeterministic(t *testing.T) {
	g := chess.Geometry{Ranks: 6, Files: 5}
	board := testutil.PlacePieces(t, g, chess.White, map[string]byte{"a1": 'K', "e6": 'k'})

	k1 := NewKeys(g, 7)
	k2 := NewKeys(g, 7)
	k3 := NewKeys(g, 8)

	testutil.AssertEqual(t, k1.Hash(board), k2.Hash(board))
	if k1.Hash(board) == k3.Hash(board) {
		t.Error("Different seeds should give different keys")
	}
}

func TestKeysForCachesPerGeometry(t *testing.T) {
	g := chess.Geometry{Ranks: 10, Files: 12}
	testutil.AssertTrue(t, KeysFor(g) == KeysFor(g), "same geometry should share one table")
	testutil.AssertTrue(t, KeysFor(g) != KeysFor(chess.StandardGeometry), "geometries should not share tables")
}

func TestWeakHashConsistency(t *testing.T) {
	board1 := kingsAndPawn(t, "d3")
	board2 := kingsAndPawn(t, "d3")

	hash1 := WeakHash(board1)
	hash2 := WeakHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
}

func TestRepetitionTracker(t *testing.T) {
	tracker := NewRepetitionTracker()
	board := kingsAndPawn(t, "e2")

	testutil.AssertEqual(t, tracker.Count(board), 0)
	testutil.AssertEqual(t, tracker.Push(board), 1)
	testutil.AssertEqual(t, tracker.Push(board), 2)
	testutil.AssertEqual(t, tracker.Count(board), 2)
	testutil.AssertEqual(t, tracker.Len(), 2)
	testutil.AssertEqual(t, tracker.UniqueCount(), 1)
}

func TestRepetitionTrackerDifferentPositions(t *testing.T) {
	tracker := NewRepetitionTracker()
	board1 := kingsAndPawn(t, "e2")
	board2 := kingsAndPawn(t, "e4")

	testutil.AssertEqual(t, tracker.Push(board1), 1)
	testutil.AssertEqual(t, tracker.Push(board2), 1)
	testutil.AssertEqual(t, tracker.UniqueCount(), 2)
}

func TestRepetitionTrackerPop(t *testing.T) {
	tracker := NewRepetitionTracker()
	board1 := kingsAndPawn(t, "e2")
	board2 := kingsAndPawn(t, "e4")

	tracker.Push(board1)
	tracker.Push(board2)
	tracker.Push(board1)

	testutil.AssertTrue(t, tracker.Pop())
	testutil.AssertEqual(t, tracker.Count(board1), 1)
	testutil.AssertTrue(t, tracker.Pop())
	testutil.AssertEqual(t, tracker.Count(board2), 0)
	testutil.AssertEqual(t, tracker.UniqueCount(), 1)
	testutil.AssertTrue(t, tracker.Pop())
	testutil.AssertFalse(t, tracker.Pop(), "pop on empty tracker")
}

func TestRepetitionTrackerReset(t *testing.T) {
	tracker := NewRepetitionTracker()
	board := kingsAndPawn(t, "e2")

	tracker.Push(board)
	tracker.Push(board)
	tracker.Reset()

	testutil.AssertEqual(t, tracker.Len(), 0)
	testutil.AssertEqual(t, tracker.UniqueCount(), 0)
	testutil.AssertEqual(t, tracker.Count(board), 0)
}
