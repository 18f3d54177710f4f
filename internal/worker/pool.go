// Package worker spreads perft subtree counts over a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Job is one root move whose subtree should be counted.
type Job struct {
	Position chess.Position // position after Move was played
	Move     chess.Move
	Depth    int // remaining depth below Position
	Index    int // slot in the slice returned by Run
}

// Result is the node count for one Job.
type Result struct {
	Move    chess.Move
	Index   int
	Nodes   uint64
	Counted bool // false when the pool was cancelled before the job ran
}

// CountFunc counts the leaf nodes below pos to depth.
type CountFunc func(pos *chess.Position, depth int) uint64

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueue sets the job channel buffer size.
func WithQueue(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.queue = size
		}
	}
}

// Pool runs CountFunc over batches of jobs. A Pool may be reused for
// several Run calls but not for concurrent ones.
type Pool struct {
	workers   int
	queue     int
	count     CountFunc
	cancelled atomic.Bool
	completed atomic.Int64
}

// New creates a pool with one worker and a queue of 16 unless options
// say otherwise.
func New(count CountFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, queue: 16, count: count}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run counts every job and returns the results ordered by Job.Index.
// Jobs still queued after Cancel come back with Counted false.
func (p *Pool) Run(jobs []Job) []Result {
	results := make([]Result, len(jobs))
	queue := make(chan Job, p.queue)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				r := Result{Move: job.Move, Index: job.Index}
				if !p.cancelled.Load() {
					r.Nodes = p.count(&job.Position, job.Depth)
					r.Counted = true
					p.completed.Add(1)
				}
				// Each index is written by exactly one worker.
				results[job.Index] = r
			}
		}()
	}

	for i, job := range jobs {
		job.Index = i
		queue <- job
	}
	close(queue)
	wg.Wait()
	return results
}

// Cancel makes workers skip every job they have not started yet.
func (p *Pool) Cancel() {
	p.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (p *Pool) Cancelled() bool {
	return p.cancelled.Load()
}

// Completed returns how many jobs have been counted across all runs.
func (p *Pool) Completed() int64 {
	return p.completed.Load()
}

// Workers returns the number of worker goroutines used per Run.
func (p *Pool) Workers() int {
	return p.workers
}
