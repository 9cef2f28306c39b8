package engine

import (
	"fmt"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
)

// Offsets are (rank, file) deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is corrupt and causes a panic.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquares[colour]
	if king == chess.NoSquare {
		panic(fmt.Sprintf("engine: no %s king on board", colour))
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to or
// capture on sq. Pawns attack their forward diagonals whether or not sq is
// occupied.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	g := board.Geometry

	if IsAttackedByPawn(board, sq, byColour) {
		return true
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, ok := g.Offset(sq, off[0], off[1]); ok && board.Squares[from] == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if from, ok := g.Offset(sq, off[0], off[1]); ok && board.Squares[from] == king {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if rayHits(board, sq, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayHits(board, sq, straightDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// rayHits walks each direction from sq and reports whether the first piece
// met is one of the two given sliders.
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	g := board.Geometry
	for _, dir := range dirs {
		cur, ok := g.Offset(sq, dir[0], dir[1])
		for ok {
			piece := board.Squares[cur]
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			cur, ok = g.Offset(cur, dir[0], dir[1])
		}
	}
	return false
}

// IsAttackedByPawn reports whether a byColour pawn attacks sq.
func IsAttackedByPawn(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range []int{-1, 1} {
		if from, ok := board.Geometry.Offset(sq, pawnDir, df); ok && board.Squares[from] == pawn {
			return true
		}
	}
	return false
}
