// Package eval scores chess positions from White's point of view.
package eval

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/config"
)

// Scorer evaluates boards. It holds no mutable state and may be shared
// between goroutines.
type Scorer struct {
	cfg *config.EvalConfig
}

// NewScorer creates a Scorer. A nil cfg uses config.NewEvalConfig().
func NewScorer(cfg *config.EvalConfig) *Scorer {
	if cfg == nil {
		cfg = config.NewEvalConfig()
	}
	return &Scorer{cfg: cfg}
}

// Config returns the constants the scorer was built with.
func (s *Scorer) Config() *config.EvalConfig {
	return s.cfg
}

// Evaluate returns the score of board. Positive favours White. The board's
// Status must be current, as it is for any board produced by the engine.
//
// Mates score ±MateValue, stalemate and a spent halfmove clock score 0, and
// a side in check concedes CheckBonus.
func (s *Scorer) Evaluate(board *chess.Board) float64 {
	switch board.Status {
	case chess.BlackCheckmated:
		return s.cfg.MateValue
	case chess.WhiteCheckmated:
		return -s.cfg.MateValue
	case chess.Stalemate:
		return 0
	}
	if s.cfg.DrawHalfmoveLimit > 0 && board.HalfmoveClock >= s.cfg.DrawHalfmoveLimit {
		return 0
	}

	phase := s.Phase(board)
	tables := TablesFor(board.Geometry)

	var material, positional [chess.NumColours]float64
	for colour := range board.PieceSquares {
		for _, sq := range board.PieceSquares[colour] {
			piece := board.Squares[sq]
			material[colour] += s.PieceValue(piece)
			positional[colour] += s.bias(tables, piece, sq, phase)
		}
		material[colour] = round(material[colour], s.cfg.Precision)
		positional[colour] = round(positional[colour], s.cfg.Precision)
	}

	materialDiff := material[chess.White] - material[chess.Black]
	score := materialDiff + positional[chess.White] - positional[chess.Black]
	score += s.kingDistance(board, materialDiff)

	switch board.Status {
	case chess.WhiteInCheck:
		score -= s.cfg.CheckBonus
	case chess.BlackInCheck:
		score += s.cfg.CheckBonus
	}
	return round(score, s.cfg.Precision)
}

// PieceValue returns the material value of a coloured piece. Empty and Off
// are worth nothing.
func (s *Scorer) PieceValue(piece chess.Piece) float64 {
	if !chess.IsOccupied(piece) {
		return 0
	}
	return s.cfg.PieceValues[chess.ExtractPiece(piece)]
}

// PositionalDelta returns how much m improves the moving piece's bias, from
// the mover's point of view.
func (s *Scorer) PositionalDelta(board *chess.Board, m chess.Move) float64 {
	tables := TablesFor(board.Geometry)
	phase := s.Phase(board)
	before := s.bias(tables, m.Piece, m.From, phase)
	after := s.bias(tables, m.Piece, m.To, phase)
	return round(after-before, s.cfg.Precision)
}

// Phase returns remaining/starting pieces clamped to [0,1]: 1 at the start
// of the game, falling toward 0 as material comes off.
func (s *Scorer) Phase(board *chess.Board) float64 {
	starting := s.cfg.StartingPieces
	if starting == 0 {
		starting = 4 * board.Geometry.Files
	}
	phase := float64(board.PieceCount()) / float64(starting)
	return round(math.Min(1, math.Max(0, phase)), s.cfg.Precision)
}

func (s *Scorer) bias(tables *BiasTables, piece chess.Piece, sq chess.Square, phase float64) float64 {
	early, late := tables.Value(piece, sq)
	weight := s.cfg.PositionalWeights[chess.ExtractPiece(piece)]
	return round(weight*(phase*early+(1-phase)*late), s.cfg.Precision)
}

// kingDistance rewards the leading side for bringing the kings together
// once few pieces remain.
func (s *Scorer) kingDistance(board *chess.Board, materialDiff float64) float64 {
	if board.PieceCount() >= s.cfg.KingDistanceThreshold || materialDiff == 0 {
		return 0
	}
	wk, bk := board.KingSquare(chess.White), board.KingSquare(chess.Black)
	if wk == chess.NoSquare || bk == chess.NoSquare {
		return 0
	}
	g := board.Geometry
	maxDist := float64(g.MaxDistance())
	closeness := (maxDist - float64(g.Distance(wk, bk))) / maxDist
	sign := 1.0
	if materialDiff < 0 {
		sign = -1
	}
	return round(sign*s.cfg.KingDistanceWeight*closeness, s.cfg.Precision)
}

// round rounds v to places decimal places.
func round[T constraints.Float](v T, places int) T {
	p := math.Pow10(places)
	return T(math.Round(float64(v)*p) / p)
}
