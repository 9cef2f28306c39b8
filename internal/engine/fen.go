// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// InitialFEN is the standard 8x8 starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a position string.
const fenFields = 6

// Load creates a board from a FEN string. The board geometry is taken from
// the placement field. Legal moves and check status are computed before
// returning.
func Load(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, &errors.PositionError{
			Err:   fmt.Errorf("want %d fields, got %d: %w", fenFields, len(parts), errors.ErrMalformedInput),
			Field: "fields",
			FEN:   fen,
		}
	}

	geom, err := parseGeometry(parts[0])
	if err != nil {
		return nil, positionError(err, "placement", parts[0], fen)
	}
	board := chess.NewBoard(geom)

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, positionError(err, "placement", parts[0], fen)
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, positionError(err, "turn", parts[1], fen)
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, positionError(err, "castling", parts[2], fen)
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, positionError(err, "en passant", parts[3], fen)
	}
	if err := parseClock(&board.HalfmoveClock, parts[4]); err != nil {
		return nil, positionError(err, "halfmove", parts[4], fen)
	}
	if err := parseClock(&board.MoveNumber, parts[5]); err != nil {
		return nil, positionError(err, "fullmove", parts[5], fen)
	}
	if waiting := board.ToMove.Opposite(); IsInCheck(board, waiting) {
		err := fmt.Errorf("%s king can be captured: %w", waiting, errors.ErrMalformedInput)
		return nil, positionError(err, "placement", parts[0], fen)
	}

	Refresh(board)
	return board, nil
}

// MustLoad is like Load but panics on error. It is intended for constant
// positions known to be valid.
func MustLoad(fen string) *chess.Board {
	board, err := Load(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// NewInitialBoard loads InitialFEN.
func NewInitialBoard() *chess.Board {
	return MustLoad(InitialFEN)
}

func positionError(err error, field, value, fen string) error {
	return &errors.PositionError{Err: err, Field: field, Value: value, FEN: fen}
}

// parseGeometry measures the placement field: one group per rank, every group
// covering the same number of files.
func parseGeometry(positions string) (chess.Geometry, error) {
	groups := strings.Split(positions, "/")
	files := -1
	for _, group := range groups {
		width, err := groupWidth(group)
		if err != nil {
			return chess.Geometry{}, err
		}
		if files >= 0 && width != files {
			return chess.Geometry{}, fmt.Errorf("ragged ranks (%d and %d files): %w", files, width, errors.ErrMalformedInput)
		}
		files = width
	}
	geom := chess.Geometry{Ranks: len(groups), Files: files}
	if !geom.Valid() {
		return geom, fmt.Errorf("unsupported board %dx%d: %w", geom.Ranks, geom.Files, errors.ErrMalformedInput)
	}
	return geom, nil
}

// groupWidth counts the squares described by one rank group.
func groupWidth(group string) (int, error) {
	width := 0
	for i := 0; i < len(group); {
		if isDigit(group[i]) {
			n, next := readNumber(group, i)
			if n == 0 {
				return 0, fmt.Errorf("zero empty run: %w", errors.ErrMalformedInput)
			}
			width += n
			i = next
			continue
		}
		if _, _, err := chess.DecodeSymbol(group[i]); err != nil {
			return 0, err
		}
		width++
		i++
	}
	return width, nil
}

// parsePiecePositions fills an empty board from the placement field, top rank
// first. The board geometry must already match the field.
func parsePiecePositions(board *chess.Board, positions string) error {
	g := board.Geometry
	for i, group := range strings.Split(positions, "/") {
		rank := g.Ranks - 1 - i
		file := 0
		for j := 0; j < len(group); {
			if isDigit(group[j]) {
				n, next := readNumber(group, j)
				file += n
				j = next
				continue
			}
			colour, piece, err := chess.DecodeSymbol(group[j])
			if err != nil {
				return err
			}
			sq := g.Square(rank, file)
			if piece == chess.King && board.KingSquares[colour] != chess.NoSquare {
				return fmt.Errorf("two %s kings: %w", colour, errors.ErrMalformedInput)
			}
			board.Put(sq, chess.MakeColouredPiece(colour, piece))
			file++
			j++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if board.KingSquares[colour] == chess.NoSquare {
			return fmt.Errorf("no %s king: %w", colour, errors.ErrMalformedInput)
		}
	}
	return nil
}

// parseSideToMove reads the active colour.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("side to move: %w", errors.ErrInvalidSymbol)
	}
	return nil
}

// castlingLetters lists the castling letters in the order they are written.
var castlingLetters = [...]struct {
	letter byte
	right  chess.CastlingRights
}{
	{'K', chess.WhiteKingside},
	{'Q', chess.WhiteQueenside},
	{'k', chess.BlackKingside},
	{'q', chess.BlackQueenside},
}

// parseCastlingRights reads the third field. Each letter appears at most once
// and in KQkq order, so the field serializes back unchanged.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}
	next := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		j := next
		for j < len(castlingLetters) && castlingLetters[j].letter != c {
			j++
		}
		if j == len(castlingLetters) {
			if strings.IndexByte("KQkq", c) >= 0 {
				return fmt.Errorf("castling right %q repeated or out of order: %w", c, errors.ErrMalformedInput)
			}
			return fmt.Errorf("castling right %q: %w", c, errors.ErrInvalidSymbol)
		}
		board.Castling |= castlingLetters[j].right
		next = j + 1
	}
	return nil
}

// parseEnPassant reads the fourth field against the board's geometry.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field, board.Geometry)
	if err != nil {
		return err
	}
	board.EnPassant = sq
	return nil
}

// parseClock parses a non-negative move counter.
func parseClock(dst *uint, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return fmt.Errorf("counter: %w", errors.ErrMalformedInput)
	}
	*dst = uint(n)
	return nil
}

// Serialize converts a board to a FEN string.
func Serialize(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(chess.SquareName(board.EnPassant, board.Geometry))
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, merging
// each run of empty squares into a single number.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	g := board.Geometry
	for rank := g.Ranks - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < g.Files; file++ {
			piece := board.Squares[g.Square(rank, file)]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.ColouredPieceToSymbol(piece))
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights emits rights in KQkq order, or '-' when none remain.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if board.Castling == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	if board.Castling.Has(chess.WhiteKingside) {
		sb.WriteByte('K')
	}
	if board.Castling.Has(chess.WhiteQueenside) {
		sb.WriteByte('Q')
	}
	if board.Castling.Has(chess.BlackKingside) {
		sb.WriteByte('k')
	}
	if board.Castling.Has(chess.BlackQueenside) {
		sb.WriteByte('q')
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// readNumber reads the decimal number starting at s[i] and returns it with
// the index just past it.
func readNumber(s string, i int) (int, int) {
	n := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, i
}
