package sched

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/intel/forGoAsync/observe"
	"github.com/intel/forGoAsync/policy"
)

// Option configures a Pool.
type Option func(*options)

type options struct {
	limit int
	obs   observe.Observer
	log   *zap.Logger
}

// WithLimit bounds the number of concurrently executing functions.
// The default is runtime.NumCPU().
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithObserver installs an observer for task lifecycle events.
func WithObserver(obs observe.Observer) Option {
	return func(o *options) { o.obs = obs }
}

// WithLogger installs a logger for worker events. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// A Pool schedules each function onto its own goroutine, with admission
// bounded by a weighted semaphore. Its default execution policy is Par.
type Pool struct {
	sem *semaphore.Weighted
	obs observe.Observer
	log *zap.Logger
	wg  sync.WaitGroup
}

func NewPool(opts ...Option) *Pool {
	o := options{limit: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit <= 0 {
		panic("sched: pool limit must be positive")
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return &Pool{
		sem: semaphore.NewWeighted(int64(o.limit)),
		obs: o.obs,
		log: o.log,
	}
}

// Run schedules f. A panic in f is recovered so the pool stays usable; it
// is reported to the observer and the logger. Work that must surface
// panics to a consumer should convert them before they reach the pool, as
// the algorithm packages do.
func (p *Pool) Run(f func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer p.sem.Release(1)

		if p.obs != nil {
			p.obs.TaskStarted()
		}
		start := time.Now()
		panicked := true
		defer func() {
			d := time.Since(start)
			if panicked {
				r := recover()
				p.log.Error("recovered panic in pool task", zap.Any("panic", r))
			}
			if p.obs != nil {
				p.obs.TaskFinished(d, panicked)
			}
		}()
		f()
		panicked = false
	}()
}

// Wait blocks until every function scheduled so far has finished.
func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) Supports(policy.Policy) bool { return true }

func (p *Pool) DefaultPolicy() policy.Policy { return policy.Par }
