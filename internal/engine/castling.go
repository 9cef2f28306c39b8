package engine

import "github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"

// castleSide describes one castling option of a colour.
type castleSide struct {
	class chess.MoveClass
	right func(chess.Colour) chess.CastlingRights
	// rookFile returns the corner file of the castling rook.
	rookFile func(g chess.Geometry) int
	step     int
}

var castleSides = []castleSide{
	{
		class:    chess.KingsideCastle,
		right:    chess.Kingside,
		rookFile: func(g chess.Geometry) int { return g.Files - 1 },
		step:     1,
	},
	{
		class:    chess.QueensideCastle,
		right:    chess.Queenside,
		rookFile: func(g chess.Geometry) int { return 0 },
		step:     -1,
	},
}

// castlingMoves appends the castling moves available to colour. The king
// moves two files toward the corner rook, which lands on the square the king
// crossed. Each side is checked in order: right still held, squares between
// king and rook empty, king not attacked, transit and destination not
// attacked.
func castlingMoves(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	g := board.Geometry
	kingSq := board.KingSquares[colour]
	home := g.HomeRank(colour)
	if kingSq == chess.NoSquare || g.Rank(kingSq) != home {
		return moves
	}
	enemy := colour.Opposite()
	kingFile := g.File(kingSq)

	for _, side := range castleSides {
		if !board.Castling.Has(side.right(colour)) {
			continue
		}
		rookFile := side.rookFile(g)
		rookSq := g.Square(home, rookFile)
		if board.Squares[rookSq] != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}
		// The king's destination must lie strictly before the rook.
		destFile := kingFile + 2*side.step
		if side.step*(rookFile-destFile) < 1 {
			continue
		}
		if !isRankClear(board, home, kingFile, rookFile) {
			continue
		}
		if IsSquareAttacked(board, kingSq, enemy) {
			continue
		}
		transit := g.Square(home, kingFile+side.step)
		dest := g.Square(home, destFile)
		if IsSquareAttacked(board, transit, enemy) || IsSquareAttacked(board, dest, enemy) {
			continue
		}
		m := newMove(board, side.class, kingSq, dest)
		m.RookFrom = rookSq
		m.RookTo = transit
		moves = append(moves, m)
	}
	return moves
}

// isRankClear reports whether every square strictly between two files of a
// rank is empty.
func isRankClear(board *chess.Board, rank, fromFile, toFile int) bool {
	step := 1
	if toFile < fromFile {
		step = -1
	}
	for f := fromFile + step; f != toFile; f += step {
		if board.Squares[board.Geometry.Square(rank, f)] != chess.Empty {
			return false
		}
	}
	return true
}

// updateCastlingRights removes the rights lost by m. Rights are only ever
// removed: a king move clears both of its colour's rights, and a rook leaving
// or captured on its corner square clears the matching right.
func updateCastlingRights(board *chess.Board, m chess.Move) {
	colour := m.Colour()
	switch m.PieceType() {
	case chess.King:
		board.Castling &^= chess.Kingside(colour) | chess.Queenside(colour)
	case chess.Rook:
		clearRookRight(board, colour, m.From)
	}
	if chess.ExtractPiece(m.CapturedPiece) == chess.Rook && !m.IsEnPassant() {
		clearRookRight(board, chess.ExtractColour(m.CapturedPiece), m.To)
	}
}

// clearRookRight removes the castling right tied to a rook corner square.
func clearRookRight(board *chess.Board, colour chess.Colour, sq chess.Square) {
	g := board.Geometry
	if g.Rank(sq) != g.HomeRank(colour) {
		return
	}
	for _, side := range castleSides {
		if g.File(sq) == side.rookFile(g) {
			board.Castling &^= side.right(colour)
		}
	}
}
