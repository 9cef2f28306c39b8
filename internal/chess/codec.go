package chess

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[Piece]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// EncodeSymbol returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func EncodeSymbol(colour Colour, piece Piece) (byte, error) {
	c, ok := sanPieceChars[piece]
	if !ok {
		return 0, fmt.Errorf("piece %v: %w", piece, errors.ErrInvalidSymbol)
	}
	if colour == Black {
		c = byte(unicode.ToLower(rune(c)))
	}
	return c, nil
}

// DecodeSymbol converts a FEN letter to its colour and piece type.
func DecodeSymbol(c byte) (Colour, Piece, error) {
	var piece Piece
	switch c {
	case 'K', 'k':
		piece = King
	case 'Q', 'q':
		piece = Queen
	case 'R', 'r':
		piece = Rook
	case 'B', 'b':
		piece = Bishop
	case 'N', 'n':
		piece = Knight
	case 'P', 'p':
		piece = Pawn
	default:
		return White, Empty, fmt.Errorf("%q: %w", c, errors.ErrInvalidSymbol)
	}
	if unicode.IsLower(rune(c)) {
		return Black, piece, nil
	}
	return White, piece, nil
}

// ColouredPieceToSymbol returns the FEN letter for a coloured piece.
func ColouredPieceToSymbol(colouredPiece Piece) byte {
	c, err := EncodeSymbol(ExtractColour(colouredPiece), ExtractPiece(colouredPiece))
	if err != nil {
		return '?'
	}
	return c
}

// FileIndex converts a file letter ('a'..) to a zero-based index.
func FileIndex(letter byte) (int, error) {
	if letter < 'a' || letter >= 'a'+MaxFiles {
		return 0, fmt.Errorf("file %q: %w", letter, errors.ErrInvalidSymbol)
	}
	return int(letter - 'a'), nil
}

// FileLetter converts a zero-based file index to its letter.
func FileLetter(index int) byte {
	return byte('a' + index)
}

// RankIndex converts rank digits ("1".."99") to a zero-based index on a
// board with the given number of ranks.
func RankIndex(digits string, ranks int) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > ranks || digits[0] == '0' {
		return 0, fmt.Errorf("rank %q: %w", digits, errors.ErrInvalidSymbol)
	}
	return n - 1, nil
}

// RankDigits converts a zero-based rank index to its digits.
// Indices outside the board render as "?".
func RankDigits(index, ranks int) string {
	if index < 0 || index >= ranks {
		return "?"
	}
	return strconv.Itoa(index + 1)
}

// ParseSquare parses an algebraic square name such as "e3" or "b10".
func ParseSquare(s string, g Geometry) (Square, error) {
	if len(s) < 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSymbol)
	}
	file, err := FileIndex(s[0])
	if err != nil {
		return NoSquare, err
	}
	if file >= g.Files {
		return NoSquare, fmt.Errorf("square %q off board: %w", s, errors.ErrInvalidSymbol)
	}
	rank, err := RankIndex(s[1:], g.Ranks)
	if err != nil {
		return NoSquare, err
	}
	return g.Square(rank, file), nil
}

// SquareName returns the algebraic name of a square.
func SquareName(sq Square, g Geometry) string {
	if sq == NoSquare {
		return "-"
	}
	return string(FileLetter(g.File(sq))) + RankDigits(g.Rank(sq), g.Ranks)
}
