package engine

import "github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.LegalMoves(board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(Transition(board, m), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by its UCI
// string.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, m := range board.LegalMoves(board.ToMove) {
		counts[UCI(m, board.Geometry)] = Perft(Transition(board, m), depth-1)
	}
	return counts
}
