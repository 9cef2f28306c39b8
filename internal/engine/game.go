package engine

import (
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/hashing"
)

// Game is a live game: one owned position that moves are applied to in
// place, with the history needed to take them back.
type Game struct {
	board       *chess.Board
	history     []chess.Move
	previous    []*chess.Board
	repetitions *hashing.RepetitionTracker
}

// NewGame starts a game from a FEN position. An empty string starts from
// the initial position.
func NewGame(fen string) (*Game, error) {
	if fen == "" {
		fen = InitialFEN
	}
	board, err := Load(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:       board,
		repetitions: hashing.NewRepetitionTracker(),
	}
	g.repetitions.Push(board)
	return g, nil
}

// Board returns the current position. The caller must not modify it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Apply plays a move on the current position. The move is matched against
// the legal moves by squares and promotion piece; an illegal move leaves the
// game unchanged.
func (g *Game) Apply(m chess.Move) error {
	legal, ok := FindLegalMove(g.board, m)
	if !ok {
		return illegalMove(g.board, m)
	}
	next := Transition(g.board, legal)
	g.previous = append(g.previous, g.board)
	g.history = append(g.history, legal)
	g.board = next
	g.repetitions.Push(next)
	return nil
}

// ApplyUCI parses and plays a long-algebraic move such as "e2e4".
func (g *Game) ApplyUCI(s string) error {
	m, err := ParseUCI(g.board, s)
	if err != nil {
		return err
	}
	return g.Apply(m)
}

// Undo takes back the last move. It returns false when there is nothing to
// take back.
func (g *Game) Undo() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	g.repetitions.Pop()
	g.board = g.previous[n-1]
	g.previous = g.previous[:n-1]
	g.history = g.history[:n-1]
	return true
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// Moves returns the legal moves of the side to move.
func (g *Game) Moves() []chess.Move {
	return g.board.LegalMoves(g.board.ToMove)
}

// RepetitionCount returns how many times the current position has occurred
// in this game.
func (g *Game) RepetitionCount() int {
	return g.repetitions.Count(g.board)
}

// IsDraw reports a draw by stalemate, the fifty-move rule, threefold
// repetition or insufficient material.
func (g *Game) IsDraw() bool {
	return g.board.Status == chess.Stalemate ||
		g.board.HalfmoveClock >= chess.FiftyMoveHalfmoves ||
		g.RepetitionCount() >= 3 ||
		HasInsufficientMaterial(g.board)
}
