// Copyright 2025 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running
// independent sort trials in parallel.
//
// Each trial owns its data, so the pool only distributes indices; it never
// shares a slice between workers.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(ctx, trials, func(ctx context.Context, i int) error {
//	    return runTrial(ctx, i)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused across calls.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one worker's share of a call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into contiguous chunks, one
// per worker. Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Run calls fn for every index in [0, n), handing indices out one at a
// time so slow trials do not hold up a whole chunk.
//
// The first error stops further indices from being started; it is
// returned once the in-flight calls finish. Cancelling ctx has the same
// effect and returns ctx.Err().
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		nextIdx  atomic.Int64
		errOnce  sync.Once
		firstErr error
	)
	loop := func() {
		for ctx.Err() == nil {
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			if err := fn(ctx, idx); err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		loop()
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			p.workC <- workItem{fn: loop, barrier: &wg}
		}
		wg.Wait()
	}

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
