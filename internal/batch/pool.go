// Package batch runs a per-document task over many documents on a fixed
// pool of workers.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// Handler processes one document.
type Handler[T any] func(ctx context.Context, path string) (T, error)

// Result is the outcome for one document.
type Result[T any] struct {
	Path  string
	Value T
	Err   error
}

// Config configures a pool.
type Config struct {
	Name   string
	Logger *slog.Logger
	// Workers is the number of worker goroutines (default: runtime.NumCPU()).
	Workers int
}

// Pool runs a handler over documents. All workers pull from a single
// queue.
type Pool[T any] struct {
	logger  *slog.Logger
	workers int
	handler Handler[T]

	inFlight atomic.Int32
}

// New creates a pool running handler.
func New[T any](cfg Config, handler func(ctx context.Context, path string) (T, error)) *Pool[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.Name
	if name == "" {
		name = "batch"
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Pool[T]{
		logger:  logger.With("pool", name, "workers", workers),
		workers: workers,
		handler: handler,
	}
}

// InFlight returns the number of documents being processed.
func (p *Pool[T]) InFlight() int {
	return int(p.inFlight.Load())
}

type unit struct {
	index int
	path  string
}

// Run processes every path and returns the results in input order. Paths
// not started before ctx is cancelled get ctx.Err() as their error.
func (p *Pool[T]) Run(ctx context.Context, paths []string) []Result[T] {
	results := make([]Result[T], len(paths))
	for i, path := range paths {
		results[i] = Result[T]{Path: path}
	}

	queue := make(chan unit, len(paths))
	for i, path := range paths {
		queue <- unit{index: i, path: path}
	}
	close(queue)

	var wg sync.WaitGroup
	for id := range min(p.workers, len(paths)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, id, queue, results)
		}()
	}
	wg.Wait()
	return results
}

// worker drains the shared queue. Each result slot is written by exactly
// one worker.
func (p *Pool[T]) worker(ctx context.Context, id int, queue <-chan unit, results []Result[T]) {
	p.logger.Debug("worker started", "worker_id", id)
	for u := range queue {
		if err := ctx.Err(); err != nil {
			results[u.index].Err = err
			continue
		}

		p.inFlight.Add(1)
		value, err := p.handler(ctx, u.path)
		p.inFlight.Add(-1)

		results[u.index].Value = value
		results[u.index].Err = err
		if err != nil {
			p.logger.Debug("document failed", "worker_id", id, "path", u.path, "error", err)
		} else {
			p.logger.Debug("document done", "worker_id", id, "path", u.path, "in_flight", p.InFlight())
		}
	}
}
