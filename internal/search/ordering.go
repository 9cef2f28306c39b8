package search

import (
	"sort"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/engine"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/eval"
)

type scoredMove struct {
	move  chess.Move
	score float64
}

// orderMoves returns a copy of moves sorted best-first for the side to move:
// the value captured plus the positional gain, less the mover's value when
// an enemy pawn guards the destination. Equal keys keep generation order.
func orderMoves(scorer *eval.Scorer, board *chess.Board, moves []chess.Move) []chess.Move {
	list := make([]scoredMove, len(moves))
	for i, m := range moves {
		list[i] = scoredMove{move: m, score: moveScore(scorer, board, m)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})

	ordered := make([]chess.Move, len(list))
	for i := range list {
		ordered[i] = list[i].move
	}
	return ordered
}

func moveScore(scorer *eval.Scorer, board *chess.Board, m chess.Move) float64 {
	score := scorer.PieceValue(m.CapturedPiece) + scorer.PositionalDelta(board, m)
	if engine.IsAttackedByPawn(board, m.To, m.Colour().Opposite()) {
		score -= scorer.PieceValue(m.Piece)
	}
	return score
}
