package worker

import (
	"context"
	"sync"
)

type Job interface{}

type ProcessFunc func(ctx context.Context, job Job) error

// Pool is a bounded fan-out used to classify a request's seismic
// events concurrently. Pools are request-scoped: create, submit,
// Stop to wait for completion.
type Pool struct {
	numWorkers int
	jobs       chan Job
	processor  ProcessFunc
	wg         sync.WaitGroup
}

func NewPool(numWorkers int, bufferSize int, processor ProcessFunc) *Pool {
	return &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan Job, bufferSize),
		processor:  processor,
	}
}

func (p *Pool) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.processor(ctx, job)
		}
	}
}

// Submit enqueues a job. It returns the context error instead of
// blocking forever when the workers have already shut down.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop closes the queue and waits for in-flight jobs to drain.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
