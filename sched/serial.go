package sched

import (
	"sync"
	"time"

	"github.com/intel/forGoAsync/observe"
	"github.com/intel/forGoAsync/policy"
)

// A Serial scheduler runs every function on one dedicated goroutine, in
// FIFO order. If one function blocks, no other can run; the best practice
// is not to block. Serial supports only the Seq and Unseq policies, so
// attaching Par to a serial chain fails at composition time.
type Serial struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
	obs    observe.Observer
}

func NewSerial(opts ...Option) *Serial {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Serial{done: make(chan struct{}), obs: o.obs}
	s.cond = sync.NewCond(&s.mu)
	go s.loop()
	return s
}

func (s *Serial) loop() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		f := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.exec(f)
	}
}

// exec runs f on the loop goroutine. A panic in f is recovered so the
// loop keeps serving the queue.
func (s *Serial) exec(f func()) {
	if s.obs != nil {
		s.obs.TaskStarted()
	}
	start := time.Now()
	panicked := true
	defer func() {
		if panicked {
			_ = recover()
		}
		if s.obs != nil {
			s.obs.TaskFinished(time.Since(start), panicked)
		}
	}()
	f()
	panicked = false
}

// Run enqueues f. It panics if the scheduler has been closed.
func (s *Serial) Run(f func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		panic("sched: Run on closed Serial scheduler")
	}
	s.queue = append(s.queue, f)
	s.mu.Unlock()
	s.cond.Signal()
}

// Close drains the queue and stops the loop goroutine. It blocks until
// everything already enqueued has run.
func (s *Serial) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cond.Signal()
	<-s.done
}

func (s *Serial) Supports(pol policy.Policy) bool {
	return pol == policy.Seq || pol == policy.Unseq
}

func (s *Serial) DefaultPolicy() policy.Policy { return policy.Seq }
