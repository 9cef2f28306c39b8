package search

import (
	"io"

	"golang.org/x/exp/rand"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
)

// Node describes one visited position.
type Node struct {
	Board    *chess.Board
	Move     *chess.Move // Move that led here; nil at the root
	Depth    int         // Remaining depth; 0 at the horizon
	Maximize bool        // Whether the side to move maximizes
	Score    float64
}

// Observer is called once per visited node. With more than one worker it is
// called from several goroutines at once.
type Observer func(Node)

// Option configures an Engine.
type Option func(*Engine)

// WithObserver registers fn to be called for every visited node.
func WithObserver(fn Observer) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// WithLog sends search summaries to w: one line per search at verbosity 1,
// plus one line per root move at verbosity 2.
func WithLog(w io.Writer, verbosity int) Option {
	return func(e *Engine) {
		e.logFile = w
		e.verbosity = verbosity
	}
}

// WithRand replaces the tie-break generator.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}
