package config

import (
	"fmt"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// DefaultSeed seeds the tie-break generator when none is given.
const DefaultSeed uint64 = 0x5eed

// SearchConfig holds settings for the alpha-beta search.
type SearchConfig struct {
	// Depth is the number of plies searched before horizon resolution.
	Depth int

	// Prune enables alpha-beta cutoffs.
	Prune bool

	// TieBreakProbability is the chance an equal-scoring move replaces the
	// current best.
	TieBreakProbability float64

	// Seed for the tie-break generator
	Seed uint64

	// Root fan-out
	Workers           int
	ParallelThreshold int

	// StandPat lets the side at the horizon decline every capture.
	StandPat bool
}

// NewSearchConfig creates a SearchConfig with default values.
// Searches are sequential unless Workers is raised above 1.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:               3,
		Prune:               true,
		TieBreakProbability: 0.2,
		Seed:                DefaultSeed,
		Workers:             1,
		ParallelThreshold:   8,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 {
		return fmt.Errorf("depth %d < 0: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.TieBreakProbability < 0 || s.TieBreakProbability > 1 {
		return fmt.Errorf("tie-break probability %v out of range [0,1]: %w",
			s.TieBreakProbability, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.ParallelThreshold < 0 {
		return fmt.Errorf("parallel threshold %d < 0: %w", s.ParallelThreshold, errors.ErrInvalidConfig)
	}
	return nil
}
