package engine

import "github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"

// PseudoLegalMoves returns every move of colour that respects piece
// geometry, blocking and capture rules, without checking whether the mover's
// own king is left attacked. Castling is generated here with its own
// attack checks.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for _, from := range board.PieceSquares[colour] {
		moves = pieceMoves(board, from, moves)
	}
	return moves
}

// pieceMoves appends the pseudo-legal moves of the piece on from.
func pieceMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	piece := board.Squares[from]
	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, from, moves)
	case chess.Knight:
		return stepMoves(board, from, knightOffsets, moves)
	case chess.Bishop:
		return slidingMoves(board, from, diagonalDirs, moves)
	case chess.Rook:
		return slidingMoves(board, from, straightDirs, moves)
	case chess.Queen:
		moves = slidingMoves(board, from, diagonalDirs, moves)
		return slidingMoves(board, from, straightDirs, moves)
	case chess.King:
		moves = stepMoves(board, from, kingOffsets, moves)
		return castlingMoves(board, chess.ExtractColour(piece), moves)
	}
	return moves
}

// stepMoves appends single-step moves (knight, king) to empty or enemy squares.
func stepMoves(board *chess.Board, from chess.Square, offsets [][2]int, moves []chess.Move) []chess.Move {
	colour := chess.ExtractColour(board.Squares[from])
	for _, off := range offsets {
		to, ok := board.Geometry.Offset(from, off[0], off[1])
		if !ok {
			continue
		}
		target := board.Squares[to]
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, newMove(board, chess.PieceMove, from, to))
		}
	}
	return moves
}

// slidingMoves appends ray moves until blocked, including the capture of
// the first enemy piece met.
func slidingMoves(board *chess.Board, from chess.Square, dirs [][2]int, moves []chess.Move) []chess.Move {
	g := board.Geometry
	colour := chess.ExtractColour(board.Squares[from])
	for _, dir := range dirs {
		to, ok := g.Offset(from, dir[0], dir[1])
		for ok {
			target := board.Squares[to]
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, newMove(board, chess.PieceMove, from, to))
				}
				break // Blocked
			}
			moves = append(moves, newMove(board, chess.PieceMove, from, to))
			to, ok = g.Offset(to, dir[0], dir[1])
		}
	}
	return moves
}

// newMove builds a plain move descriptor for the piece on from.
func newMove(board *chess.Board, class chess.MoveClass, from, to chess.Square) chess.Move {
	return chess.Move{
		Class:           class,
		Piece:           board.Squares[from],
		From:            from,
		To:              to,
		CapturedPiece:   board.Squares[to],
		PromotedPiece:   chess.Empty,
		RookFrom:        chess.NoSquare,
		RookTo:          chess.NoSquare,
		EPCaptureSquare: chess.NoSquare,
	}
}
