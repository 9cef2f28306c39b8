// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/config"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: standard initial position)")
	movesFlag = flag.String("moves", "", "Space-separated moves in long algebraic form (e2e4 e7e5) to play first")

	// Search
	depth     = flag.Int("depth", 3, "Search depth in plies")
	noPrune   = flag.Bool("noprune", false, "Disable alpha-beta pruning")
	workers   = flag.Int("workers", 1, "Number of workers for the root moves")
	threshold = flag.Int("threshold", 8, "Minimum root moves before workers are used")
	seed      = flag.Uint64("seed", config.DefaultSeed, "Seed for choosing between equal moves")
	tieBreak  = flag.Float64("tiebreak", 0.2, "Probability an equal move replaces the current best")
	standPat  = flag.Bool("standpat", false, "Allow declining captures at the search horizon")

	// Modes
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth instead of searching")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	listMoves  = flag.Bool("legal", false, "List the legal moves of the side to move")
	evalOnly   = flag.Bool("eval", false, "Print the static evaluation only")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=per root move")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// options holds the flags that choose what run does, as opposed to how the
// scorer and search are tuned.
type options struct {
	moves     []string
	perft     int
	divide    bool
	listMoves bool
	evalOnly  bool
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.StartFEN = *fenFlag
	}
	cfg.Verbosity = *verbosity

	cfg.Search.Depth = *depth
	cfg.Search.Prune = !*noPrune
	cfg.Search.Workers = *workers
	cfg.Search.ParallelThreshold = *threshold
	cfg.Search.Seed = *seed
	cfg.Search.TieBreakProbability = *tieBreak
	cfg.Search.StandPat = *standPat
}

// flagOptions collects the mode flags.
func flagOptions() options {
	return options{
		moves:     strings.Fields(*movesFlag),
		perft:     *perftDepth,
		divide:    *divide,
		listMoves: *listMoves,
		evalOnly:  *evalOnly,
	}
}
