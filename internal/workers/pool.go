// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
)

type task struct {
	ctx context.Context
	run func()
}

// Pool is a fixed number of goroutines reading from a bounded queue.
// It implements [Worker] and [Offloader].
type Pool struct {
	size  int
	tasks chan task

	mu     sync.RWMutex
	closed bool

	startOnce sync.Once
	wg        sync.WaitGroup

	logger *logger.Logger
}

// NewPool creates a pool with cfg.VerifyPoolSize workers and room for
// cfg.VerifyQueueSize waiting jobs. Workers start on Run.
func NewPool(cfg config.Workers, log *logger.Logger) *Pool {
	size := max(cfg.VerifyPoolSize, 1)
	queue := max(cfg.VerifyQueueSize, 0)

	return &Pool{
		size:   size,
		tasks:  make(chan task, queue),
		logger: log,
	}
}

// Run implements [Worker]. It starts the worker goroutines once; later calls
// are no-ops.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.logger.Info().
			Int("pool_size", p.size).
			Int("queue_size", cap(p.tasks)).
			Msg("starting worker pool")

		p.wg.Add(p.size)
		for range p.size {
			go p.work()
		}
	})
}

// Submit implements [Offloader]. It returns [ErrPoolExhausted] when the queue
// is full and [ErrPoolClosed] after Shutdown.
func (p *Pool) Submit(ctx context.Context, job func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task{ctx: ctx, run: job}:
		return nil
	default:
		logger.FromContext(ctx).Warn().
			Int("queue_size", cap(p.tasks)).
			Msg("worker pool queue is full, rejecting job")
		return ErrPoolExhausted
	}
}

// Shutdown implements [Worker]. It stops accepting jobs, lets the workers
// finish everything already queued and blocks until they exit. Safe to call
// more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	// queued jobs must run even if the pool was never started
	p.Run()
	p.wg.Wait()

	p.logger.Info().Msg("worker pool stopped")
}

func (p *Pool) work() {
	defer p.wg.Done()

	for t := range p.tasks {
		p.execute(t)
	}
}

// execute runs a single job, keeping the worker alive if it panics.
func (p *Pool) execute(t task) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(context.WithoutCancel(t.ctx)).Error().
				Any("panic", r).
				Msg("worker pool job panicked")
		}
	}()

	t.run()
}
