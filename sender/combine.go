package sender

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/intel/forGoAsync/gsync"
)

func firstScheduled(envs ...Env) Env {
	for _, e := range envs {
		if e.Scheduler != nil {
			return e
		}
	}
	return Env{}
}

// Join2 returns a sender that starts a and b concurrently and completes
// with both values once both have completed. The first error or stop wins
// and cancels the other side. This is the fan-out form: within a single
// chain each stage is sequenced after its predecessor, and parallelism
// across stages exists only through an explicit joint wait like this one.
func Join2[A, B any](a Sender[A], b Sender[B]) Sender[Pair[A, B]] {
	env := firstScheduled(a.Env(), b.Env())
	return New(env, func(ctx context.Context, rcv Receiver[Pair[A, B]]) {
		g, gctx := errgroup.WithContext(ctx)
		var av A
		var bv B
		g.Go(func() error {
			v, err := a.Await(gctx)
			if err != nil {
				return err
			}
			av = v
			return nil
		})
		g.Go(func() error {
			v, err := b.Await(gctx)
			if err != nil {
				return err
			}
			bv = v
			return nil
		})
		if err := g.Wait(); err != nil {
			if errors.Is(err, ErrStopped) {
				rcv.Stopped()
				return
			}
			rcv.Error(err)
			return
		}
		rcv.Value(Pair[A, B]{First: av, Second: bv})
	})
}

// JoinAll is Join2 for any number of same-typed senders; the completion
// value preserves input order.
func JoinAll[T any](ss ...Sender[T]) Sender[[]T] {
	envs := make([]Env, len(ss))
	for i, s := range ss {
		envs[i] = s.Env()
	}
	env := firstScheduled(envs...)
	return New(env, func(ctx context.Context, rcv Receiver[[]T]) {
		g, gctx := errgroup.WithContext(ctx)
		out := make([]T, len(ss))
		for i, s := range ss {
			i, s := i, s
			g.Go(func() error {
				v, err := s.Await(gctx)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			if errors.Is(err, ErrStopped) {
				rcv.Stopped()
				return
			}
			rcv.Error(err)
			return
		}
		rcv.Value(out)
	})
}

// Race returns a sender that starts all inputs concurrently and completes
// with the first value or error to arrive, cancelling the losers. It stops
// only when every input stops.
func Race[T any](ss ...Sender[T]) Sender[T] {
	if len(ss) == 0 {
		panic("sender: Race requires at least one sender")
	}
	envs := make([]Env, len(ss))
	for i, s := range ss {
		envs[i] = s.Env()
	}
	env := firstScheduled(envs...)
	return New(env, func(ctx context.Context, rcv Receiver[T]) {
		rctx, cancel := context.WithCancel(ctx)
		defer cancel()
		ch := make(chan outcome[T], len(ss))
		for _, s := range ss {
			s := s
			go func() {
				v, err := s.Await(rctx)
				switch {
				case errors.Is(err, ErrStopped):
					ch <- outcome[T]{stopped: true}
				case err != nil:
					ch <- outcome[T]{err: err}
				default:
					ch <- outcome[T]{val: v}
				}
			}()
		}
		stops := 0
		for range ss {
			o := <-ch
			if o.stopped {
				stops++
				continue
			}
			o.deliver(rcv)
			return
		}
		if stops == len(ss) {
			rcv.Stopped()
		}
	})
}

// Split consumes s and returns n senders that all complete with the same
// outcome. The upstream sender is connected and started exactly once, by
// whichever branch starts first; its side effects are not duplicated. Each
// branch blocks until the shared upstream has completed.
func Split[T any](s Sender[T], n int) []Sender[T] {
	if n <= 0 {
		panic("sender: Split requires a positive count")
	}
	env := s.Env()
	latch := gsync.NewLatch[outcome[T]]()
	var once sync.Once
	startUpstream := func(ctx context.Context) {
		once.Do(func() {
			op := s.Connect(FuncReceiver[T]{
				OnValue:   func(v T) { latch.Set(outcome[T]{val: v}) },
				OnError:   func(err error) { latch.Set(outcome[T]{err: err}) },
				OnStopped: func() { latch.Set(outcome[T]{stopped: true}) },
			})
			op.Start(ctx)
		})
	}
	out := make([]Sender[T], n)
	for i := range out {
		out[i] = New(env, func(ctx context.Context, rcv Receiver[T]) {
			startUpstream(ctx)
			o, ok := latch.Wait(ctx)
			if !ok {
				rcv.Stopped()
				return
			}
			o.deliver(rcv)
		})
	}
	return out
}
