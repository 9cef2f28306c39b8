package engine

import "github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"

// pawnMoves appends single and double advances, diagonal captures, en-passant
// captures and promotions for the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	g := board.Geometry
	colour := chess.ExtractColour(board.Squares[from])
	dir := chess.ColourOffset(colour)

	// Forward moves
	if to, ok := g.Offset(from, dir, 0); ok && board.Squares[to] == chess.Empty {
		moves = appendPawnMove(board, from, to, moves)

		// Double push from starting rank
		if g.Rank(from) == g.PawnStartRank(colour) {
			if to2, ok := g.Offset(from, 2*dir, 0); ok && board.Squares[to2] == chess.Empty {
				moves = appendPawnMove(board, from, to2, moves)
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to, ok := g.Offset(from, dir, df)
		if !ok {
			continue
		}
		target := board.Squares[to]
		if target != chess.Empty {
			if chess.ExtractColour(target) != colour {
				moves = appendPawnMove(board, from, to, moves)
			}
			continue
		}
		if to == board.EnPassant {
			if m, ok := enPassantMove(board, from, to); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// appendPawnMove appends a pawn advance or capture, expanding it into one
// move per promotion piece when it reaches the last rank.
func appendPawnMove(board *chess.Board, from, to chess.Square, moves []chess.Move) []chess.Move {
	g := board.Geometry
	colour := chess.ExtractColour(board.Squares[from])
	if g.Rank(to) != g.PromotionRank(colour) {
		return append(moves, newMove(board, chess.PawnMove, from, to))
	}
	for _, promoted := range chess.PromotionPieces {
		m := newMove(board, chess.PawnMoveWithPromotion, from, to)
		m.PromotedPiece = promoted
		moves = append(moves, m)
	}
	return moves
}

// enPassantMove builds the capture of the pawn that just passed over to.
// The captured pawn stands beside from, on the destination's file.
func enPassantMove(board *chess.Board, from, to chess.Square) (chess.Move, bool) {
	g := board.Geometry
	colour := chess.ExtractColour(board.Squares[from])
	victimSq := g.Square(g.Rank(from), g.File(to))
	victim := board.Squares[victimSq]
	if victim != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
		return chess.Move{}, false
	}
	m := newMove(board, chess.EnPassantPawnMove, from, to)
	m.CapturedPiece = victim
	m.EPCaptureSquare = victimSq
	return m, true
}

// enPassantTarget returns the square a pawn passed over when m is a double
// advance from its start rank, and NoSquare otherwise.
func enPassantTarget(g chess.Geometry, m chess.Move) chess.Square {
	if m.PieceType() != chess.Pawn {
		return chess.NoSquare
	}
	fromRank, toRank := g.Rank(m.From), g.Rank(m.To)
	if fromRank != g.PawnStartRank(m.Colour()) || toRank-fromRank != 2*chess.ColourOffset(m.Colour()) {
		return chess.NoSquare
	}
	return g.Square((fromRank+toRank)/2, g.File(m.From))
}
