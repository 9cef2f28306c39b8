// Package chess holds the board, move and piece types shared by the rules,
// the scorer and the search.
package chess

// Colour is a side: the owner of a piece or the player to move.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of playing colours, used to size per-colour arrays.
const NumColours = 2

func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece is a piece kind, optionally packed with a Colour.
type Piece int

const (
	Off   Piece = iota // Outside the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

var pieceNames = [NumPieceValues]string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (p Piece) String() string {
	if p < 0 || p >= NumPieceValues {
		return "Unknown"
	}
	return pieceNames[p]
}

// Letter is the upper-case symbol of p. Off and Empty have a blank symbol and
// anything else is '?'.
func (p Piece) Letter() byte {
	switch {
	case p == Off || p == Empty:
		return ' '
	case p < 0 || p >= NumPieceValues:
		return '?'
	}
	return "  PNBRQK"[p]
}

// PromotionPieces lists the pieces a pawn may promote to, strongest first.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// MoveClass says how a move changes the board beyond relocating one piece.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// ColourOffset is the rank step of a pawn of the given colour.
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceShift is the number of bits reserved for the colour in a coloured piece.
const PieceShift = 3

// MakeColouredPiece packs a side and a piece kind into one value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W is shorthand for a white coloured piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B is shorthand for a black coloured piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour returns the side that owns a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece strips the colour bits from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupied reports whether a square value holds a coloured piece.
func IsOccupied(p Piece) bool {
	return p != Empty && p != Off
}

// Status is the check classification of a position for the side to move.
type Status int

const (
	InPlay Status = iota
	WhiteInCheck
	BlackInCheck
	WhiteCheckmated
	BlackCheckmated
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case WhiteInCheck:
		return "WhiteInCheck"
	case BlackInCheck:
		return "BlackInCheck"
	case WhiteCheckmated:
		return "WhiteCheckmated"
	case BlackCheckmated:
		return "BlackCheckmated"
	case Stalemate:
		return "Stalemate"
	default:
		return "InPlay"
	}
}

// IsCheck returns true for either check status.
func (s Status) IsCheck() bool {
	return s == WhiteInCheck || s == BlackInCheck
}

// IsCheckmate returns true for either checkmate status.
func (s Status) IsCheckmate() bool {
	return s == WhiteCheckmated || s == BlackCheckmated
}

// IsTerminal returns true when the side to move has no legal moves.
func (s Status) IsTerminal() bool {
	return s.IsCheckmate() || s == Stalemate
}

// CastlingRights is the set of remaining castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has returns true if every right in r is still available.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Kingside returns the kingside right for a colour.
func Kingside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right for a colour.
func Queenside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}
