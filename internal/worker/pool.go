// Package worker runs document jobs across a fixed set of goroutines.
// Both pipeline passes use it: scanning fans out per document, and
// rewriting fans out again once the index is frozen.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of per-document work.
type Job func(ctx context.Context) error

// Pool executes jobs on a fixed number of workers. Submit after Wait is
// a programming error; a pool is used for exactly one pass.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool starts workers goroutines that pull jobs until the queue is
// closed or ctx is cancelled.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{jobs: make(chan Job, workers*2)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
	return p
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobs {
		// Keep draining after cancellation so Submit never blocks on a
		// dead pool; the jobs themselves observe ctx and bail out.
		if ctx.Err() != nil {
			p.record(ctx.Err())
			continue
		}
		if err := job(ctx); err != nil {
			p.record(err)
		}
	}
}

func (p *Pool) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

// Submit queues one job. It blocks when all workers are busy and the
// queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Wait closes the queue, waits for every queued job to finish, and
// returns the errors jobs reported, in no particular order.
func (p *Pool) Wait() []error {
	close(p.jobs)
	p.wg.Wait()
	return p.errs
}
