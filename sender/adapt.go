package sender

import "context"

// Then returns a sender that applies f to the value delivered by s and
// completes with the result. Errors and stops pass through unchanged.
// f runs as part of the delivery of s, on whatever execution resource s
// completed on.
func Then[T, R any](s Sender[T], f func(T) R) Sender[R] {
	if f == nil {
		panic("sender: Then requires a function")
	}
	return New(s.env, func(ctx context.Context, rcv Receiver[R]) {
		op := s.Connect(FuncReceiver[T]{
			OnValue:   func(v T) { rcv.Value(f(v)) },
			OnError:   rcv.Error,
			OnStopped: rcv.Stopped,
		})
		op.Start(ctx)
	})
}

// ThenErr is Then for functions that can fail: a non-nil error is delivered
// on the error channel instead of the value channel.
func ThenErr[T, R any](s Sender[T], f func(T) (R, error)) Sender[R] {
	if f == nil {
		panic("sender: ThenErr requires a function")
	}
	return New(s.env, func(ctx context.Context, rcv Receiver[R]) {
		op := s.Connect(FuncReceiver[T]{
			OnValue: func(v T) {
				r, err := f(v)
				if err != nil {
					rcv.Error(err)
					return
				}
				rcv.Value(r)
			},
			OnError:   rcv.Error,
			OnStopped: rcv.Stopped,
		})
		op.Start(ctx)
	})
}

// A Result wraps the outcome of a continuation so the continuation itself
// decides which completion channel it flows out on. Build one with Ok or
// Fail.
type Result[T any] struct {
	val   T
	err   error
	isErr bool
}

// Ok marks v as a success value set.
func Ok[T any](v T) Result[T] { return Result[T]{val: v} }

// Fail marks err as an error signal.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("sender: Fail requires a non-nil error")
	}
	return Result[T]{err: err, isErr: true}
}

// ThenResult returns a sender that applies f to the value delivered by s
// and completes on the channel the returned Result selects.
func ThenResult[T, R any](s Sender[T], f func(T) Result[R]) Sender[R] {
	if f == nil {
		panic("sender: ThenResult requires a function")
	}
	return New(s.env, func(ctx context.Context, rcv Receiver[R]) {
		op := s.Connect(FuncReceiver[T]{
			OnValue: func(v T) {
				res := f(v)
				if res.isErr {
					rcv.Error(res.err)
					return
				}
				rcv.Value(res.val)
			},
			OnError:   rcv.Error,
			OnStopped: rcv.Stopped,
		})
		op.Start(ctx)
	})
}

// A Pair carries two values delivered together.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Also returns a sender that invokes f with the value delivered by s and
// completes with both the original value and f's result: the value is
// preserved for downstream stages as well as transformed.
func Also[T, R any](s Sender[T], f func(T) R) Sender[Pair[T, R]] {
	if f == nil {
		panic("sender: Also requires a function")
	}
	return Then(s, func(v T) Pair[T, R] {
		return Pair[T, R]{First: v, Second: f(v)}
	})
}

// LetValue invokes f with the value delivered by s to construct the
// continuation sender, then runs it. This is the dynamic, data-dependent
// form of composition: the shape of the chain past s is not known until s
// has completed, so backends that build execution graphs ahead of time
// cannot overlap the two halves.
func LetValue[T, R any](s Sender[T], f func(T) Sender[R]) Sender[R] {
	if f == nil {
		panic("sender: LetValue requires a function")
	}
	return New(s.env, func(ctx context.Context, rcv Receiver[R]) {
		op := s.Connect(FuncReceiver[T]{
			OnValue: func(v T) {
				next := f(v)
				nop := next.Connect(rcv)
				nop.Start(ctx)
			},
			OnError:   rcv.Error,
			OnStopped: rcv.Stopped,
		})
		op.Start(ctx)
	})
}

// Pipe threads src through the given stages left to right and returns the
// final sender. It reads the way an infix pipe operator would.
func Pipe[T any](src Sender[T], stages ...func(Sender[T]) Sender[T]) Sender[T] {
	s := src
	for _, stage := range stages {
		if stage == nil {
			panic("sender: Pipe requires non-nil stages")
		}
		s = stage(s)
	}
	return s
}
