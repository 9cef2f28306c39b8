package engine

import "github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"

// LegalMoves returns the legal moves of colour: the pseudo-legal moves that
// do not leave colour's own king attacked once played, side effects
// included.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	pseudo := PseudoLegalMoves(board, colour)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if leavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, m := range PseudoLegalMoves(board, colour) {
		if leavesKingSafe(board, m) {
			return true
		}
	}
	return false
}

// leavesKingSafe plays m on a copy of the placement and checks whether the
// mover's king is attacked afterwards.
func leavesKingSafe(board *chess.Board, m chess.Move) bool {
	sim := board.CopyPosition()
	placeMove(sim, m)
	return !IsInCheck(sim, m.Colour())
}

// Refresh recomputes the legal moves of the side to move and the check
// status. The other side's list is cleared.
func Refresh(board *chess.Board) {
	colour := board.ToMove
	board.Moves[colour] = LegalMoves(board, colour)
	board.Moves[colour.Opposite()] = nil
	board.Status = ClassifyStatus(board)
}
