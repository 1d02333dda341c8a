// Package observe defines the hooks schedulers fire as they execute work.
// Implementations backed by Prometheus and zap live in the subpackages;
// custom observers only need the one interface.
package observe

import "time"

// An Observer receives scheduler lifecycle events. Implementations must be
// safe for concurrent use; hooks are called from worker goroutines.
type Observer interface {
	// TaskStarted fires when a scheduled function begins executing.
	TaskStarted()

	// TaskFinished fires when a scheduled function returns, with its
	// execution time and whether it panicked.
	TaskFinished(d time.Duration, panicked bool)
}

// Multi fans events out to several observers in order.
func Multi(obs ...Observer) Observer { return multi(obs) }

type multi []Observer

func (m multi) TaskStarted() {
	for _, o := range m {
		o.TaskStarted()
	}
}

func (m multi) TaskFinished(d time.Duration, panicked bool) {
	for _, o := range m {
		o.TaskFinished(d, panicked)
	}
}
