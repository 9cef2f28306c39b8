package engine

import (
	"fmt"
	"strings"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// Notation returns the algebraic text of a legal move played from board,
// with a check or mate suffix taken from the resulting position.
func Notation(board *chess.Board, m chess.Move) string {
	g := board.Geometry
	var sb strings.Builder

	switch m.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		if piece := m.PieceType(); piece != chess.Pawn {
			sb.WriteByte(piece.Letter())
		} else if m.IsCapture() {
			sb.WriteByte(chess.FileLetter(g.File(m.From)))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(chess.SquareName(m.To, g))
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.PromotedPiece.Letter())
		}
	}

	switch next := Transition(board, m); {
	case next.Status.IsCheckmate():
		sb.WriteByte('#')
	case next.Status.IsCheck():
		sb.WriteByte('+')
	}
	return sb.String()
}

// UCI returns the long-algebraic form of a move: origin, destination and a
// lowercase promotion letter, e.g. "e2e4" or "a7a8q".
func UCI(m chess.Move, g chess.Geometry) string {
	s := chess.SquareName(m.From, g) + chess.SquareName(m.To, g)
	if m.PromotedPiece >= chess.Pawn {
		s += strings.ToLower(string(m.PromotedPiece.Letter()))
	}
	return s
}

// ParseUCI resolves a long-algebraic move string against the legal moves of
// the side to move.
func ParseUCI(board *chess.Board, s string) (chess.Move, error) {
	g := board.Geometry
	from, rest, err := splitSquare(s, g)
	if err != nil {
		return chess.Move{}, err
	}
	to, rest, err := splitSquare(rest, g)
	if err != nil {
		return chess.Move{}, err
	}

	want := chess.Move{From: from, To: to, PromotedPiece: chess.Empty}
	switch len(rest) {
	case 0:
	case 1:
		_, piece, err := chess.DecodeSymbol(rest[0])
		if err != nil {
			return chess.Move{}, fmt.Errorf("move %q: %w", s, err)
		}
		want.PromotedPiece = piece
	default:
		return chess.Move{}, fmt.Errorf("move %q: trailing %q: %w", s, rest, errors.ErrInvalidSymbol)
	}

	legal, ok := FindLegalMove(board, want)
	if !ok {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Move: s,
			FEN:  Serialize(board),
		}
	}
	return legal, nil
}

// splitSquare reads one square name (a file letter followed by rank digits)
// from the front of s.
func splitSquare(s string, g chess.Geometry) (chess.Square, string, error) {
	end := 1
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 1 {
		return chess.NoSquare, "", fmt.Errorf("move %q: %w", s, errors.ErrInvalidSymbol)
	}
	sq, err := chess.ParseSquare(s[:end], g)
	if err != nil {
		return chess.NoSquare, "", err
	}
	return sq, s[end:], nil
}
