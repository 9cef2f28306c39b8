package chess

// Board represents one position with all state needed for the game.
type Board struct {
	// Fixed shape of the board.
	Geometry Geometry

	// Piece placement, indexed by Square. Length is Ranks*Files.
	Squares []Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling options.
	Castling CastlingRights

	// Square passed over by a pawn that has just advanced two ranks.
	EnPassant Square

	// The half-move clock since the last capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint

	// Occupied squares per colour, kept in ascending square order.
	PieceSquares [NumColours][]Square

	// Keep track of where the two kings are for check detection.
	KingSquares [NumColours]Square

	// Legal moves per colour. Only the side to move has a populated list.
	Moves [NumColours][]Move

	// Check classification of the side to move.
	Status Status
}

// FiftyMoveHalfmoves is the halfmove clock value at which the fifty-move
// rule makes a game drawn.
const FiftyMoveHalfmoves = 100

// NewBoard creates a new empty board of the given geometry.
func NewBoard(g Geometry) *Board {
	b := &Board{
		Geometry:    g,
		Squares:     make([]Piece, g.NumSquares()),
		ToMove:      White,
		EnPassant:   NoSquare,
		MoveNumber:  1,
		KingSquares: [NumColours]Square{NoSquare, NoSquare},
	}
	for i := range b.Squares {
		b.Squares[i] = Empty
	}
	return b
}

// PieceAt returns the coloured piece on a square, Off if the square is not on the board.
func (b *Board) PieceAt(sq Square) Piece {
	if sq < 0 || int(sq) >= len(b.Squares) {
		return Off
	}
	return b.Squares[sq]
}

// KingSquare returns the square of a colour's king.
func (b *Board) KingSquare(colour Colour) Square {
	return b.KingSquares[colour]
}

// LegalMoves returns the legal moves of a colour. The list is only
// authoritative for the side to move.
func (b *Board) LegalMoves(colour Colour) []Move {
	return b.Moves[colour]
}

// PieceCount returns the number of pieces on the board, kings included.
func (b *Board) PieceCount() int {
	return len(b.PieceSquares[White]) + len(b.PieceSquares[Black])
}

// Put places a coloured piece on an empty square and records it.
func (b *Board) Put(sq Square, piece Piece) {
	b.Squares[sq] = piece
	colour := ExtractColour(piece)
	b.PieceSquares[colour] = insertSquare(b.PieceSquares[colour], sq)
	if ExtractPiece(piece) == King {
		b.KingSquares[colour] = sq
	}
}

// Remove clears a square and returns what stood on it.
func (b *Board) Remove(sq Square) Piece {
	piece := b.Squares[sq]
	if !IsOccupied(piece) {
		return piece
	}
	b.Squares[sq] = Empty
	colour := ExtractColour(piece)
	b.PieceSquares[colour] = removeSquare(b.PieceSquares[colour], sq)
	if ExtractPiece(piece) == King && b.KingSquares[colour] == sq {
		b.KingSquares[colour] = NoSquare
	}
	return piece
}

// Relocate moves whatever stands on from to an empty square.
func (b *Board) Relocate(from, to Square) {
	piece := b.Remove(from)
	if IsOccupied(piece) {
		b.Put(to, piece)
	}
}

// Copy creates a deep copy of the board. The copy shares no slices with b.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.Squares = append([]Piece(nil), b.Squares...)
	for c := 0; c < NumColours; c++ {
		newBoard.PieceSquares[c] = append([]Square(nil), b.PieceSquares[c]...)
		newBoard.Moves[c] = append([]Move(nil), b.Moves[c]...)
	}
	return newBoard
}

// CopyPosition copies placement, piece lists, kings, and counters but leaves
// the move lists empty and the status unset, for callers that recompute them.
func (b *Board) CopyPosition() *Board {
	newBoard := &Board{
		Geometry:      b.Geometry,
		Squares:       append([]Piece(nil), b.Squares...),
		ToMove:        b.ToMove,
		Castling:      b.Castling,
		EnPassant:     b.EnPassant,
		HalfmoveClock: b.HalfmoveClock,
		MoveNumber:    b.MoveNumber,
		KingSquares:   b.KingSquares,
	}
	for c := 0; c < NumColours; c++ {
		newBoard.PieceSquares[c] = append([]Square(nil), b.PieceSquares[c]...)
	}
	return newBoard
}

// insertSquare inserts sq keeping the list sorted.
func insertSquare(list []Square, sq Square) []Square {
	i := len(list)
	for i > 0 && list[i-1] > sq {
		i--
	}
	list = append(list, NoSquare)
	copy(list[i+1:], list[i:])
	list[i] = sq
	return list
}

// removeSquare deletes sq from the list, preserving order.
func removeSquare(list []Square, sq Square) []Square {
	for i, s := range list {
		if s == sq {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
