// Package sched provides schedulers: execution-placement handles that
// implement the sender.Scheduler interface.
//
// Three placements are provided. Inline runs work on the calling goroutine.
// Pool runs work on its own goroutines with bounded concurrency. Serial
// runs work on a single dedicated goroutine in FIFO order, and consequently
// supports only sequential execution policies.
package sched

import "github.com/intel/forGoAsync/policy"

// Inline runs work synchronously on the goroutine that calls Run. It is
// the placement of last resort: useful in tests, and as the implicit
// behavior of senders with no scheduler attached.
type Inline struct{}

func (Inline) Run(f func()) { f() }

func (Inline) Supports(policy.Policy) bool { return true }

func (Inline) DefaultPolicy() policy.Policy { return policy.Seq }
