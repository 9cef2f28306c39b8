package chess

// Move is a value descriptor of a single ply. It is never mutated after
// creation and refers to, but does not own, the piece it moves.
type Move struct {
	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The coloured piece being moved.
	Piece Piece

	// Source and destination squares.
	From Square
	To   Square

	// The coloured piece captured (Empty if no capture). For en passant this
	// is the passed pawn, which does not stand on To.
	CapturedPiece Piece

	// The piece type promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Rook relocation for castling moves (NoSquare otherwise).
	RookFrom Square
	RookTo   Square

	// Square of the pawn removed by an en-passant capture (NoSquare otherwise).
	EPCaptureSquare Square
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.CapturedPiece != Empty || m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Colour returns the colour of the moving side.
func (m Move) Colour() Colour {
	return ExtractColour(m.Piece)
}

// PieceType returns the type of the moving piece.
func (m Move) PieceType() Piece {
	return ExtractPiece(m.Piece)
}

// SameAs reports whether two moves describe the same ply: same squares and
// same promotion choice. A zero PromotedPiece counts as no promotion.
func (m Move) SameAs(o Move) bool {
	return m.From == o.From && m.To == o.To && m.promotion() == o.promotion()
}

func (m Move) promotion() Piece {
	if m.PromotedPiece == Off {
		return Empty
	}
	return m.PromotedPiece
}
