package config

import (
	"fmt"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// EvalConfig holds the constants of the position scorer.
type EvalConfig struct {
	// PieceValues is the material value of each piece type, indexed by chess.Piece.
	PieceValues [chess.NumPieceValues]float64

	// PositionalWeights scales each piece type's bias table.
	PositionalWeights [chess.NumPieceValues]float64

	// MateValue is returned for a checkmated side (negated for White).
	MateValue float64

	// CheckBonus is added toward the side giving check.
	CheckBonus float64

	// DrawHalfmoveLimit forces a draw score once the halfmove clock reaches it.
	DrawHalfmoveLimit uint

	// Endgame king distance term
	KingDistanceThreshold int
	KingDistanceWeight    float64

	// StartingPieces is the piece count of a full board; 0 derives it from
	// the geometry (four ranks of pieces).
	StartingPieces int

	// Precision is the number of decimal places scores are rounded to.
	Precision int
}

// NewEvalConfig creates an EvalConfig with default values.
func NewEvalConfig() *EvalConfig {
	cfg := &EvalConfig{
		MateValue:             1000,
		CheckBonus:            0.5,
		DrawHalfmoveLimit:     chess.FiftyMoveHalfmoves,
		KingDistanceThreshold: 10,
		KingDistanceWeight:    0.5,
		Precision:             3,
	}
	cfg.PieceValues[chess.Pawn] = 1
	cfg.PieceValues[chess.Knight] = 3
	cfg.PieceValues[chess.Bishop] = 3
	cfg.PieceValues[chess.Rook] = 5
	cfg.PieceValues[chess.Queen] = 9

	cfg.PositionalWeights[chess.Pawn] = 0.5
	cfg.PositionalWeights[chess.Knight] = 0.5
	cfg.PositionalWeights[chess.Bishop] = 0.5
	cfg.PositionalWeights[chess.Rook] = 0.25
	cfg.PositionalWeights[chess.Queen] = 0.25
	cfg.PositionalWeights[chess.King] = 0.5
	return cfg
}

// Validate checks that the eval configuration is usable.
func (e *EvalConfig) Validate() error {
	for p := chess.Pawn; p <= chess.King; p++ {
		if e.PieceValues[p] < 0 || e.PositionalWeights[p] < 0 {
			return fmt.Errorf("negative value or weight for %v: %w", p, errors.ErrInvalidConfig)
		}
	}
	if e.MateValue <= 0 {
		return fmt.Errorf("mate value %v <= 0: %w", e.MateValue, errors.ErrInvalidConfig)
	}
	if e.StartingPieces < 0 {
		return fmt.Errorf("starting pieces %d < 0: %w", e.StartingPieces, errors.ErrInvalidConfig)
	}
	if e.Precision < 0 || e.Precision > 9 {
		return fmt.Errorf("precision %d out of range [0,9]: %w", e.Precision, errors.ErrInvalidConfig)
	}
	return nil
}
