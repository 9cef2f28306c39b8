package engine

import (
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// Transition plays m on a copy of board and returns the resulting position
// with its legal moves and check status computed. board is not modified.
// m must come from board's legal-move list; use ApplyMove for moves of
// unknown origin.
func Transition(board *chess.Board, m chess.Move) *chess.Board {
	next := board.CopyPosition()
	colour := board.ToMove

	// The capture is determined before anything moves.
	capture := m.IsCapture()

	placeMove(next, m)
	updateCastlingRights(next, m)
	next.EnPassant = enPassantTarget(next.Geometry, m)

	if capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	Refresh(next)
	return next
}

// ApplyMove checks m against board's legal moves and returns the position
// after it. An illegal move is rejected with ErrIllegalMove and board is left
// unchanged. Moves are matched by squares and promotion piece, so a caller
// may pass a bare descriptor.
func ApplyMove(board *chess.Board, m chess.Move) (*chess.Board, error) {
	legal, ok := FindLegalMove(board, m)
	if !ok {
		return nil, illegalMove(board, m)
	}
	return Transition(board, legal), nil
}

func illegalMove(board *chess.Board, m chess.Move) error {
	return &errors.MoveError{
		Err:  errors.ErrIllegalMove,
		Move: UCI(m, board.Geometry),
		FEN:  Serialize(board),
	}
}

// FindLegalMove returns the legal move of the side to move matching m's
// squares and promotion piece.
func FindLegalMove(board *chess.Board, m chess.Move) (chess.Move, bool) {
	for _, legal := range board.LegalMoves(board.ToMove) {
		if legal.SameAs(m) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// placeMove relocates the pieces touched by m: the captured piece is taken
// off (beside the destination for en passant), the mover is relocated, a
// castling rook follows the king, and a promoting pawn becomes its new piece.
func placeMove(board *chess.Board, m chess.Move) {
	colour := m.Colour()

	if m.IsEnPassant() {
		board.Remove(m.EPCaptureSquare)
	} else if chess.IsOccupied(board.Squares[m.To]) {
		board.Remove(m.To)
	}

	board.Relocate(m.From, m.To)

	if m.IsCastle() {
		board.Relocate(m.RookFrom, m.RookTo)
	}

	if m.IsPromotion() {
		board.Remove(m.To)
		board.Put(m.To, chess.MakeColouredPiece(colour, m.PromotedPiece))
	}
}
