// Package search picks moves with minimax and alpha-beta pruning.
package search

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/rand"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/config"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/engine"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/eval"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/worker"
)

// Result is the outcome of a search.
type Result struct {
	Score float64
	Move  *chess.Move // nil when the side to move has no legal move
	Nodes uint64
}

// Engine searches positions with one scorer and one tie-break stream.
// An Engine must not run two searches at once.
type Engine struct {
	scorer    *eval.Scorer
	cfg       *config.SearchConfig
	rng       *rand.Rand
	observer  Observer
	logFile   io.Writer
	verbosity int
}

// New creates an Engine. A nil cfg uses config.NewSearchConfig().
func New(scorer *eval.Scorer, cfg *config.SearchConfig, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.NewSearchConfig()
	}
	e := &Engine{
		scorer: scorer,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BestMove searches board to the configured depth for the side to move.
func (e *Engine) BestMove(board *chess.Board) Result {
	return e.Search(board, e.cfg.Depth, board.ToMove == chess.White, e.cfg.Prune)
}

// Search runs minimax from board. maximize tells whether the side to move
// wants the highest score. At depth 0 only the capture replies are resolved
// and no move is returned. The board is not modified.
//
// Equal-scoring moves replace the current best with probability
// TieBreakProbability, so repeated searches with different seeds may return
// different moves of the same score.
func (e *Engine) Search(board *chess.Board, depth int, maximize, prune bool) Result {
	if depth < 0 {
		depth = 0
	}
	moves := board.LegalMoves(board.ToMove)

	var res Result
	if e.cfg.Workers > 1 && depth > 0 && len(moves) > 0 && len(moves) >= e.cfg.ParallelThreshold {
		res = e.searchParallel(board, depth, maximize, prune)
	} else {
		s := e.newSearcher(e.rng)
		score, move := s.minimax(board, nil, depth, math.Inf(-1), math.Inf(1), maximize, prune, e.verbosity >= 2)
		res = Result{Score: score, Move: move, Nodes: s.nodes}
	}

	e.logf(1, "search: depth %d score %.3f move %s nodes %d\n",
		depth, res.Score, moveName(res.Move, board.Geometry), res.Nodes)
	return res
}

// searchParallel gives every root move to a worker with its own board copy,
// generator and alpha-beta window, then reduces the outcomes in root order.
func (e *Engine) searchParallel(board *chess.Board, depth int, maximize, prune bool) Result {
	ordered := orderMoves(e.scorer, board, board.LegalMoves(board.ToMove))
	jobs := make([]worker.Job, len(ordered))
	for i, m := range ordered {
		jobs[i] = worker.Job{
			Board: engine.Transition(board, m),
			Move:  m,
			Index: i,
			Seed:  e.rng.Uint64(),
		}
	}

	searchJob := func(job worker.Job) worker.Outcome {
		s := e.newSearcher(rand.New(rand.NewSource(job.Seed)))
		move := job.Move
		score, _ := s.minimax(job.Board, &move, depth-1, math.Inf(-1), math.Inf(1), !maximize, prune, false)
		return worker.Outcome{Index: job.Index, Move: job.Move, Score: score, Nodes: s.nodes}
	}
	pool := worker.NewPool(searchJob, worker.WithWorkers(e.cfg.Workers), worker.WithBufferSize(len(jobs)))

	s := e.newSearcher(e.rng)
	s.nodes = 1
	best := worst(maximize)
	var bestMove *chess.Move
	for _, r := range pool.Map(jobs) {
		s.nodes += r.Nodes
		e.logf(2, "  %s %.3f (%d nodes)\n", engine.UCI(r.Move, board.Geometry), r.Score, r.Nodes)
		if s.replaces(r.Score, best, bestMove != nil, maximize) {
			best = r.Score
			bestMove = &ordered[r.Index]
		}
	}
	s.observe(Node{Board: board, Depth: depth, Maximize: maximize, Score: best})
	return Result{Score: best, Move: bestMove, Nodes: s.nodes}
}

func (e *Engine) newSearcher(rng *rand.Rand) *searcher {
	return &searcher{scorer: e.scorer, cfg: e.cfg, rng: rng, observer: e.observer, engine: e}
}

func (e *Engine) logf(level int, format string, args ...interface{}) {
	if e.logFile == nil || e.verbosity < level {
		return
	}
	fmt.Fprintf(e.logFile, format, args...)
}

// searcher holds the state of one sequential search.
type searcher struct {
	scorer   *eval.Scorer
	cfg      *config.SearchConfig
	rng      *rand.Rand
	observer Observer
	engine   *Engine
	nodes    uint64
}

func (s *searcher) minimax(board *chess.Board, via *chess.Move, depth int, alpha, beta float64, maximize, prune, logRoot bool) (float64, *chess.Move) {
	s.nodes++
	moves := board.LegalMoves(board.ToMove)

	if len(moves) == 0 {
		score := s.scorer.Evaluate(board)
		s.observe(Node{Board: board, Move: via, Depth: depth, Maximize: maximize, Score: score})
		return score, nil
	}
	if depth == 0 {
		score := s.horizon(board, alpha, beta, maximize, prune)
		s.observe(Node{Board: board, Move: via, Depth: depth, Maximize: maximize, Score: score})
		return score, nil
	}

	ordered := orderMoves(s.scorer, board, moves)
	best := worst(maximize)
	var bestMove *chess.Move
	for i := range ordered {
		child := engine.Transition(board, ordered[i])
		before := s.nodes
		score, _ := s.minimax(child, &ordered[i], depth-1, alpha, beta, !maximize, prune, false)
		if logRoot {
			s.engine.logf(2, "  %s %.3f (%d nodes)\n", engine.UCI(ordered[i], board.Geometry), score, s.nodes-before)
		}

		if s.replaces(score, best, bestMove != nil, maximize) {
			best = score
			bestMove = &ordered[i]
		}
		if prune && s.cutoff(best, &alpha, &beta, maximize) {
			break
		}
	}

	s.observe(Node{Board: board, Move: via, Depth: depth, Maximize: maximize, Score: best})
	return best, bestMove
}

// horizon resolves the capture replies available at depth 0 one ply deep
// and scores everything else statically.
func (s *searcher) horizon(board *chess.Board, alpha, beta float64, maximize, prune bool) float64 {
	var captures []chess.Move
	for _, m := range board.LegalMoves(board.ToMove) {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	if len(captures) == 0 {
		return s.scorer.Evaluate(board)
	}

	best := worst(maximize)
	if s.cfg.StandPat {
		best = s.scorer.Evaluate(board)
	}
	for _, m := range orderMoves(s.scorer, board, captures) {
		child := engine.Transition(board, m)
		s.nodes++
		score := s.scorer.Evaluate(child)
		move := m
		s.observe(Node{Board: child, Move: &move, Depth: 0, Maximize: !maximize, Score: score})

		if better(score, best, maximize) {
			best = score
		}
		if prune && s.cutoff(best, &alpha, &beta, maximize) {
			break
		}
	}
	return best
}

// replaces reports whether score should become the new best. The first
// move always does; a tie does with the configured probability.
func (s *searcher) replaces(score, best float64, haveBest, maximize bool) bool {
	if !haveBest || better(score, best, maximize) {
		return true
	}
	return score == best && s.cfg.TieBreakProbability > 0 && s.rng.Float64() < s.cfg.TieBreakProbability
}

// cutoff narrows the window with best and reports whether the remaining
// siblings can be skipped. Cutoffs are strict.
func (s *searcher) cutoff(best float64, alpha, beta *float64, maximize bool) bool {
	if maximize {
		if best > *beta {
			return true
		}
		*alpha = math.Max(*alpha, best)
		return false
	}
	if best < *alpha {
		return true
	}
	*beta = math.Min(*beta, best)
	return false
}

func (s *searcher) observe(n Node) {
	if s.observer != nil {
		s.observer(n)
	}
}

func better(score, best float64, maximize bool) bool {
	if maximize {
		return score > best
	}
	return score < best
}

func worst(maximize bool) float64 {
	if maximize {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func moveName(m *chess.Move, g chess.Geometry) string {
	if m == nil {
		return "none"
	}
	return engine.UCI(*m, g)
}
