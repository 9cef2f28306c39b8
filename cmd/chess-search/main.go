// chess-search loads a position, optionally plays moves from it, and reports
// its legal moves, evaluation, best move or perft count.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/config"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/engine"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/eval"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-search version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, flagOptions(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-search [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// run plays opts.moves from the configured start position and writes the
// requested report to out.
func run(cfg *config.Config, opts options, out io.Writer) error {
	game, err := engine.NewGame(cfg.StartFEN)
	if err != nil {
		return err
	}
	for _, m := range opts.moves {
		if err := game.ApplyUCI(m); err != nil {
			return err
		}
	}

	board := game.Board()
	fmt.Fprintf(out, "position: %s\n", engine.Serialize(board))
	fmt.Fprintf(out, "status: %v\n", board.Status)
	if game.IsDraw() {
		fmt.Fprintf(out, "draw: yes\n")
	}
	cfg.Logf(2, "repetitions: %d\n", game.RepetitionCount())

	switch {
	case opts.perft > 0:
		reportPerft(out, board, opts.perft, opts.divide)
	case opts.listMoves:
		reportLegalMoves(out, board)
	case opts.evalOnly:
		fmt.Fprintf(out, "eval: %.3f\n", eval.NewScorer(cfg.Eval).Evaluate(board))
	default:
		reportBestMove(cfg, out, board)
	}
	return nil
}

func reportPerft(out io.Writer, board *chess.Board, depth int, divide bool) {
	if divide {
		counts := engine.Divide(board, depth)
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%s: %d\n", name, counts[name])
		}
	}
	fmt.Fprintf(out, "perft(%d): %d\n", depth, engine.Perft(board, depth))
}

func reportLegalMoves(out io.Writer, board *chess.Board) {
	moves := board.LegalMoves(board.ToMove)
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = engine.Notation(board, m)
	}
	fmt.Fprintf(out, "legal moves (%d): %s\n", len(moves), strings.Join(names, " "))
}

func reportBestMove(cfg *config.Config, out io.Writer, board *chess.Board) {
	scorer := eval.NewScorer(cfg.Eval)
	engineOpts := []search.Option{}
	if cfg.LogFile != nil {
		engineOpts = append(engineOpts, search.WithLog(cfg.LogFile, cfg.Verbosity))
	}
	res := search.New(scorer, cfg.Search, engineOpts...).BestMove(board)

	if res.Move == nil {
		fmt.Fprintf(out, "best: none score %.3f nodes %d\n", res.Score, res.Nodes)
		return
	}
	fmt.Fprintf(out, "best: %s (%s) score %.3f nodes %d\n",
		engine.UCI(*res.Move, board.Geometry), engine.Notation(board, *res.Move), res.Score, res.Nodes)
}
