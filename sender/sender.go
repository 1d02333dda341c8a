package sender

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrStopped is returned by Await when a sender completes on its stop
// channel instead of delivering a value or an error.
var ErrStopped = errors.New("sender: stopped")

// Unit is the value type of senders that complete without a meaningful
// value, such as those returned by Schedule.
type Unit struct{}

// A Receiver is the consumer counterpart of a sender. Exactly one of its
// methods is invoked when the connected sender completes.
type Receiver[T any] interface {
	Value(T)
	Error(error)
	Stopped()
}

// FuncReceiver adapts ordinary functions to the Receiver interface.
// Nil fields ignore the corresponding completion.
type FuncReceiver[T any] struct {
	OnValue   func(T)
	OnError   func(error)
	OnStopped func()
}

func (r FuncReceiver[T]) Value(v T) {
	if r.OnValue != nil {
		r.OnValue(v)
	}
}

func (r FuncReceiver[T]) Error(err error) {
	if r.OnError != nil {
		r.OnError(err)
	}
}

func (r FuncReceiver[T]) Stopped() {
	if r.OnStopped != nil {
		r.OnStopped()
	}
}

// A Sender is a one-shot handle to a deferred computation that eventually
// completes with a value of type T, an error, or a stop signal.
//
// Senders are created by New or by the source constructors and adaptors in
// this package and in package async. The zero Sender is invalid.
type Sender[T any] struct {
	env  Env
	run  func(ctx context.Context, rcv Receiver[T])
	used *atomic.Bool
}

// New returns a sender with the given attributes whose work is defined by
// run. When the sender is started, run is invoked with the start context
// and the connected receiver; it must arrange for exactly one completion
// to be delivered.
func New[T any](env Env, run func(ctx context.Context, rcv Receiver[T])) Sender[T] {
	if run == nil {
		panic("sender: New requires a run function")
	}
	return Sender[T]{env: env, run: run, used: new(atomic.Bool)}
}

// Env returns the attributes of s.
func (s Sender[T]) Env() Env { return s.env }

// An Operation is a connected sender/receiver pair, ready to be started.
type Operation struct {
	start func(context.Context)
}

// Start launches the operation. The context serves as the stop token for
// the whole chain: when it is cancelled before a value is produced, the
// completion arrives on the stop channel.
func (o *Operation) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	o.start(ctx)
}

// Connect consumes s and binds it to rcv. Connecting a sender twice panics:
// it would duplicate the side effects of everything upstream. Use Split
// when the same completion is needed more than once.
func (s Sender[T]) Connect(rcv Receiver[T]) *Operation {
	if rcv == nil {
		panic("sender: Connect requires a receiver")
	}
	s.claim()
	return &Operation{start: func(ctx context.Context) { s.run(ctx, rcv) }}
}

func (s Sender[T]) claim() {
	if s.used == nil {
		panic("sender: use of zero-value sender")
	}
	if !s.used.CompareAndSwap(false, true) {
		panic("sender: connected twice; use Split to reuse a sender")
	}
}

type outcome[T any] struct {
	val     T
	err     error
	stopped bool
}

func (o outcome[T]) deliver(rcv Receiver[T]) {
	switch {
	case o.stopped:
		rcv.Stopped()
	case o.err != nil:
		rcv.Error(o.err)
	default:
		rcv.Value(o.val)
	}
}

// Await connects s, starts it, and blocks until it completes: the single
// wait operation of a blocking scheduled call. A stop completion is
// reported as ErrStopped.
//
// Await is the bridge into sequential code: it suspends only the calling
// goroutine, never the scheduler the sender's work runs on.
func (s Sender[T]) Await(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch := make(chan outcome[T], 1)
	op := s.Connect(FuncReceiver[T]{
		OnValue:   func(v T) { ch <- outcome[T]{val: v} },
		OnError:   func(err error) { ch <- outcome[T]{err: err} },
		OnStopped: func() { ch <- outcome[T]{stopped: true} },
	})
	op.Start(ctx)
	o := <-ch
	if o.stopped {
		var zero T
		return zero, ErrStopped
	}
	if o.err != nil {
		var zero T
		return zero, o.err
	}
	return o.val, nil
}

// Just returns a sender that completes immediately with v. It carries no
// scheduler; attach one with Transfer or On if downstream work needs
// placement.
func Just[T any](v T) Sender[T] {
	return New(Env{}, func(ctx context.Context, rcv Receiver[T]) {
		if stopRequested(ctx) {
			rcv.Stopped()
			return
		}
		rcv.Value(v)
	})
}

// JustErr returns a sender that completes immediately on its error channel.
func JustErr[T any](err error) Sender[T] {
	if err == nil {
		panic("sender: JustErr requires a non-nil error")
	}
	return New(Env{}, func(ctx context.Context, rcv Receiver[T]) {
		if stopRequested(ctx) {
			rcv.Stopped()
			return
		}
		rcv.Error(err)
	})
}

// JustStopped returns a sender that completes immediately on its stop
// channel.
func JustStopped[T any]() Sender[T] {
	return New(Env{}, func(ctx context.Context, rcv Receiver[T]) {
		rcv.Stopped()
	})
}

func stopRequested(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
