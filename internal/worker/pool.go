// Package worker runs independent root-move searches on a fixed set of
// goroutines.
package worker

import (
	"sort"
	"sync"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/chess"
)

// Job is one root move to search. Board is owned by the worker that
// receives it.
type Job struct {
	Board *chess.Board // Position after Move
	Move  chess.Move
	Index int    // Position of Move in the root ordering
	Seed  uint64 // Seed for the worker's own tie-break stream
}

// Outcome is the score of one root move and the nodes spent on it.
type Outcome struct {
	Index int
	Move  chess.Move
	Score float64
	Nodes uint64
}

// SearchFunc scores the subtree below a Job.
type SearchFunc func(item Job) Outcome

// Pool fans root moves out to a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	outcomes   chan Outcome
	search     SearchFunc
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool returns a pool that runs search on each submitted Job. It has one
// worker and a buffer of 10 unless opts say otherwise.
func NewPool(search SearchFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		search:     search,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.outcomes = make(chan Outcome, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.outcomes <- p.search(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the workers to drain the queue and
// then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.outcomes)
}

// Results delivers outcomes in completion order.
func (p *Pool) Results() <-chan Outcome {
	return p.outcomes
}

// NumWorkers returns the number of goroutines Start launches.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Map starts the pool, searches every job and returns the outcomes in Index
// order. The pool cannot be reused afterwards.
func (p *Pool) Map(jobs []Job) []Outcome {
	p.Start()
	go func() {
		for _, job := range jobs {
			p.Submit(job)
		}
		p.Close()
	}()

	outcomes := make([]Outcome, 0, len(jobs))
	for o := range p.Results() {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Index < outcomes[j].Index
	})
	return outcomes
}
