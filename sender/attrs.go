package sender

import (
	"context"
	"fmt"

	"github.com/intel/forGoAsync/policy"
)

// A Scheduler is an execution-placement handle. Implementations live in
// package sched; anything that can run a function somewhere qualifies.
type Scheduler interface {
	// Run arranges for f to be executed on the scheduler's execution
	// resource. It must not wait for f to finish unless the scheduler
	// runs work inline.
	Run(f func())

	// Supports reports whether the scheduler can honor pol.
	Supports(pol policy.Policy) bool

	// DefaultPolicy returns the policy used when none has been attached
	// explicitly.
	DefaultPolicy() policy.Policy
}

// Env holds the queryable attributes a sender carries: where its work runs
// and what form of parallelism is permitted. Adaptors inherit it from the
// sender they wrap.
type Env struct {
	Scheduler Scheduler
	Policy    policy.Policy
}

// ResolvedPolicy returns the explicitly attached policy, falling back to
// the scheduler's default, and to Seq when no scheduler is attached.
func (e Env) ResolvedPolicy() policy.Policy {
	if e.Policy != policy.Unspecified {
		return e.Policy
	}
	if e.Scheduler != nil {
		return e.Scheduler.DefaultPolicy()
	}
	return policy.Seq
}

func mustSupport(sch Scheduler, pol policy.Policy) {
	if pol == policy.Unspecified {
		return
	}
	if !sch.Supports(pol) {
		panic(fmt.Sprintf("sender: scheduler %T does not support policy %v", sch, pol))
	}
}

// Schedule returns a sender that completes with Unit once the scheduler has
// begun executing work: the source at the leaf of a scheduled chain.
func Schedule(sch Scheduler) Sender[Unit] {
	if sch == nil {
		panic("sender: Schedule requires a scheduler")
	}
	return New(Env{Scheduler: sch}, func(ctx context.Context, rcv Receiver[Unit]) {
		sch.Run(func() {
			if stopRequested(ctx) {
				rcv.Stopped()
				return
			}
			rcv.Value(Unit{})
		})
	})
}

// ScheduleOn is Schedule with an execution policy attached in the same
// step. It panics when the scheduler cannot honor pol.
func ScheduleOn(sch Scheduler, pol policy.Policy) Sender[Unit] {
	s := Schedule(sch)
	mustSupport(sch, pol)
	s.env.Policy = pol
	return s
}

// Transfer returns a sender that delivers the completion of s on sch, and
// rebinds the scheduler attribute for everything downstream. Any explicitly
// attached policy is discarded; the new scheduler/policy pair must be formed
// anew with AttachPolicy.
func Transfer[T any](s Sender[T], sch Scheduler) Sender[T] {
	if sch == nil {
		panic("sender: Transfer requires a scheduler")
	}
	return New(Env{Scheduler: sch}, func(ctx context.Context, rcv Receiver[T]) {
		op := s.Connect(FuncReceiver[T]{
			OnValue:   func(v T) { sch.Run(func() { rcv.Value(v) }) },
			OnError:   func(err error) { sch.Run(func() { rcv.Error(err) }) },
			OnStopped: func() { sch.Run(rcv.Stopped) },
		})
		op.Start(ctx)
	})
}

// TransferOn is Transfer with an execution policy attached in the same step.
func TransferOn[T any](s Sender[T], sch Scheduler, pol policy.Policy) Sender[T] {
	out := Transfer(s, sch)
	mustSupport(sch, pol)
	out.env.Policy = pol
	return out
}

// AttachPolicy returns s with pol as its execution policy. When s carries a
// scheduler that cannot honor pol, AttachPolicy panics immediately: the
// scheduler/policy pair must be mutually satisfiable before any work starts.
func AttachPolicy[T any](s Sender[T], pol policy.Policy) Sender[T] {
	env := s.env
	if env.Scheduler != nil {
		mustSupport(env.Scheduler, pol)
	}
	env.Policy = pol
	return New(env, func(ctx context.Context, rcv Receiver[T]) {
		op := s.Connect(rcv)
		op.Start(ctx)
	})
}

// On places s on sch with policy pol: Transfer and AttachPolicy combined.
func On[T any](sch Scheduler, pol policy.Policy, s Sender[T]) Sender[T] {
	if sch == nil {
		panic("sender: On requires a scheduler")
	}
	mustSupport(sch, pol)
	out := Transfer(s, sch)
	out.env.Policy = pol
	return out
}
