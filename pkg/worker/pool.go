/*
Package worker provides a small worker pool used to check several
configuration files concurrently, with optional rate limiting and context
cancellation support.

Basic usage:

	pool, _ := worker.NewPool(worker.Config{Workers: 4})
	pool.Start(ctx)

	pool.Submit(worker.Task{
		ID: 0,
		Execute: func(ctx context.Context) (worker.Result, error) {
			return worker.Result{ID: 0, Data: report}, nil
		},
	})

	results, err := pool.Wait()
	pool.Stop()
*/
package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/time/rate"
)

// Task represents a unit of work to be processed by the pool.
type Task struct {
	// ID identifies the task; results are returned sorted by it.
	ID int

	// Execute performs the actual work.
	Execute func(context.Context) (Result, error)
}

// Result represents the output of a processed task.
type Result struct {
	// ID matches the task ID that produced this result.
	ID int

	// Data holds the actual result data.
	Data interface{}
}

// Config holds the configuration for the worker pool.
type Config struct {
	// Workers is the number of concurrent workers.
	Workers int

	// RateLimit is the maximum number of tasks started per second
	// (0 for unlimited).
	RateLimit int
}

// Pool defines the interface for a worker pool.
type Pool interface {
	// Start launches the workers.
	Start(context.Context) error

	// Submit adds a task to the pool for processing.
	Submit(Task) error

	// Wait blocks until all submitted tasks are processed and returns
	// their results sorted by task ID. Task errors are collected and
	// returned after all tasks have run.
	Wait() ([]Result, error)

	// Stop shuts the pool down. No tasks may be submitted afterwards.
	Stop() error
}

type pool struct {
	config  Config
	tasks   chan Task
	limiter *rate.Limiter

	workers sync.WaitGroup
	pending sync.WaitGroup

	mu      sync.Mutex
	results []Result
	errs    []error
	started bool
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool with the given configuration.
func NewPool(config Config) (Pool, error) {
	if config.Workers <= 0 {
		return nil, fmt.Errorf("number of workers must be positive")
	}
	if config.RateLimit < 0 {
		return nil, fmt.Errorf("rate limit must be non-negative")
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &pool{
		config:  config,
		tasks:   make(chan Task, config.Workers*2),
		limiter: limiter,
	}, nil
}

// Start launches the workers.
func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("pool already started")
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.started = true

	for i := 0; i < p.config.Workers; i++ {
		p.workers.Add(1)
		go p.worker()
	}

	return nil
}

// Submit adds a task to the pool for processing.
func (p *pool) Submit(task Task) error {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("pool not running")
	}
	p.mu.Unlock()

	p.pending.Add(1)

	select {
	case p.tasks <- task:
		return nil
	case <-p.ctx.Done():
		p.pending.Done()
		return p.ctx.Err()
	}
}

// Wait blocks until all submitted tasks are processed.
func (p *pool) Wait() ([]Result, error) {
	p.pending.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	results := make([]Result, len(p.results))
	copy(results, p.results)
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	if len(p.errs) > 0 {
		return results, fmt.Errorf("%d task(s) failed: %w", len(p.errs), p.errs[0])
	}

	return results, nil
}

// Stop shuts the pool down.
func (p *pool) Stop() error {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.mu.Unlock()

	p.cancel()
	close(p.tasks)
	p.workers.Wait()

	return nil
}

func (p *pool) worker() {
	defer p.workers.Done()

	for task := range p.tasks {
		if p.limiter != nil {
			if err := p.limiter.Wait(p.ctx); err != nil {
				p.record(Result{ID: task.ID}, err)
				continue
			}
		}

		select {
		case <-p.ctx.Done():
			p.record(Result{ID: task.ID}, p.ctx.Err())
			continue
		default:
		}

		result, err := task.Execute(p.ctx)
		p.record(result, err)
	}
}

func (p *pool) record(result Result, err error) {
	p.mu.Lock()
	if err != nil {
		p.errs = append(p.errs, err)
	} else {
		p.results = append(p.results, result)
	}
	p.mu.Unlock()
	p.pending.Done()
}
