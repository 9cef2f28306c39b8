package engine

import "github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"

// ClassifyStatus derives the check status of the side to move from its king
// safety and its legal-move list, which must already be computed.
//
//	attacked, no moves   -> checkmate
//	attacked, moves      -> check
//	safe, no moves       -> stalemate
//	safe, moves          -> in play
func ClassifyStatus(board *chess.Board) chess.Status {
	colour := board.ToMove
	attacked := IsInCheck(board, colour)
	hasMoves := len(board.Moves[colour]) > 0

	switch {
	case attacked && !hasMoves:
		if colour == chess.White {
			return chess.WhiteCheckmated
		}
		return chess.BlackCheckmated
	case attacked:
		if colour == chess.White {
			return chess.WhiteInCheck
		}
		return chess.BlackInCheck
	case !hasMoves:
		return chess.Stalemate
	default:
		return chess.InPlay
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return board.Status.IsCheckmate()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return board.Status == chess.Stalemate
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	g := board.Geometry
	var minors [chess.NumColours][]chess.Piece
	var bishopOnLight [chess.NumColours]bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.PieceSquares[colour] {
			pieceType := chess.ExtractPiece(board.Squares[sq])
			switch pieceType {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop:
				bishopOnLight[colour] = (g.Rank(sq)+g.File(sq))%2 == 1
			}
			minors[colour] = append(minors[colour], pieceType)
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}
