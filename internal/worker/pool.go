package worker

import (
	"context"
	"sync"
)

// Pool runs indexed jobs with bounded concurrency. It exists for the page
// fan-out: once the first API page reveals the total page count, the
// remaining pages download in parallel and land in their slots by index.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes fn for every index in [0, jobs). The first error cancels
// the remaining jobs and is returned.
func (p *Pool) Run(ctx context.Context, jobs int, fn func(ctx context.Context, i int) error) error {
	if jobs <= 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	indexes := make(chan int)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	workers := p.workers
	if workers > jobs {
		workers = jobs
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := fn(ctx, i); err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}
			}
		}()
	}

	for i := 0; i < jobs; i++ {
		select {
		case <-ctx.Done():
			i = jobs // stop feeding; workers are draining
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
