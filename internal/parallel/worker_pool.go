// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"sync"

	"rulecheck/internal/observability"
	"rulecheck/internal/rule"
)

// Evaluator runs one rule evaluation. Implementations must be safe for
// concurrent use.
type Evaluator interface {
	Evaluate(ctx context.Context, req rule.Request) rule.Result
}

// Job is one evaluation queued on the pool
type Job struct {
	Index   int
	Request rule.Request
}

// Result carries a Job's outcome back with its queue position
type Result struct {
	Index  int
	Result rule.Result
}

// WorkerPool evaluates requests on a fixed number of goroutines
type WorkerPool struct {
	workers   int
	evaluator Evaluator
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	observer  *observability.StandardObserver
}

// NewWorkerPool creates a pool. Fewer than one worker is treated as one.
func NewWorkerPool(workers int, evaluator Evaluator, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		workers:   workers,
		evaluator: evaluator,
		jobs:      make(chan Job, workers*2),
		results:   make(chan Result, workers*2),
		observer:  observer,
	}
}

// Start launches the worker goroutines
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx)
	}
}

// Submit queues a job. It returns false if ctx is done first.
func (wp *WorkerPool) Submit(ctx context.Context, job Job) bool {
	select {
	case wp.jobs <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close stops accepting jobs and closes Results once every worker exits
func (wp *WorkerPool) Close() {
	close(wp.jobs)
	go func() {
		wp.wg.Wait()
		close(wp.results)
	}()
}

// Results returns the results channel
func (wp *WorkerPool) Results() <-chan Result {
	return wp.results
}

func (wp *WorkerPool) worker(ctx context.Context) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		finish := wp.observer.StartTiming("worker_pool", "evaluate", job.Request.Rule.String())
		res := wp.evaluator.Evaluate(ctx, job.Request)
		finish(res.Err == nil, map[string]interface{}{"index": job.Index})

		select {
		case wp.results <- Result{Index: job.Index, Result: res}:
		case <-ctx.Done():
			res.Clear()
			// Drain so Close can finish
			for range wp.jobs {
			}
			return
		}
	}
}

// EvaluateAll runs every request on the pool and returns the results in
// request order. If ctx is cancelled the partial results gathered so far
// are discarded and ctx.Err() is returned.
func EvaluateAll(ctx context.Context, workers int, evaluator Evaluator, observer *observability.StandardObserver, requests []rule.Request) ([]rule.Result, error) {
	pool := NewWorkerPool(workers, evaluator, observer)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, req := range requests {
			if !pool.Submit(ctx, Job{Index: i, Request: req}) {
				return
			}
		}
	}()

	ordered := make([]rule.Result, len(requests))
	received := 0
	for r := range pool.Results() {
		ordered[r.Index] = r.Result
		received++
	}

	if err := ctx.Err(); err != nil || received != len(requests) {
		for i := range ordered {
			ordered[i].Clear()
		}
		if err == nil {
			err = context.Canceled
		}
		return nil, err
	}
	return ordered, nil
}
