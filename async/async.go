// Package async provides asynchronous algorithms: sender adaptors that
// consume a predecessor and return a new sender representing the
// algorithm's eventual completion.
//
// The predecessor is an execution-only dependency. Its value is discarded;
// what the algorithm takes from it is ordering (the algorithm's work is
// sequenced after the predecessor's completion), placement (the scheduler
// and policy attributes are inherited), and its one permitted connection
// (the predecessor is connected exactly once, so its side effects are
// never duplicated). A chain is built leaves first, typically from
// sender.Schedule, and nothing runs until the final sender is started or
// awaited.
//
// An error or stop completion of the predecessor bypasses the algorithm
// and flows through unchanged.
package async

import (
	"cmp"
	"context"
	"errors"

	"github.com/intel/forGoAsync/internal"
	"github.com/intel/forGoAsync/parallel"
	"github.com/intel/forGoAsync/policy"
	"github.com/intel/forGoAsync/sender"
)

// ErrEmptyRange is delivered on the error channel by algorithms that have
// no defined result for an empty input, such as MaxElement.
var ErrEmptyRange = errors.New("async: empty range")

// algorithm wraps work as a sender adaptor: once prev delivers a value,
// work runs on the scheduler inherited from prev (or inline when prev
// carries none) under prev's resolved policy. A panic in work is delivered
// on the error channel rather than unwinding a scheduler goroutine.
func algorithm[P, R any](prev sender.Sender[P], work func(pol policy.Policy) (R, error)) sender.Sender[R] {
	env := prev.Env()
	return sender.New(env, func(ctx context.Context, rcv sender.Receiver[R]) {
		op := prev.Connect(sender.FuncReceiver[P]{
			OnValue: func(P) {
				body := func() {
					if ctx.Err() != nil {
						rcv.Stopped()
						return
					}
					var v R
					var err error
					func() {
						defer func() {
							if p := recover(); p != nil {
								err = internal.PanicError(p)
							}
						}()
						v, err = work(env.ResolvedPolicy())
					}()
					if err != nil {
						rcv.Error(err)
						return
					}
					rcv.Value(v)
				}
				if env.Scheduler != nil {
					env.Scheduler.Run(body)
				} else {
					body()
				}
			},
			OnError:   rcv.Error,
			OnStopped: rcv.Stopped,
		})
		op.Start(ctx)
	})
}

// ForEach returns a sender that invokes f on every element of s and
// completes with Unit.
func ForEach[P, T any](prev sender.Sender[P], s []T, f func(T)) sender.Sender[sender.Unit] {
	return algorithm(prev, func(pol policy.Policy) (sender.Unit, error) {
		parallel.ForEach(pol, s, f)
		return sender.Unit{}, nil
	})
}

// Transform returns a sender that applies f to every element of src,
// storing results in dst, and completes with dst trimmed to the length of
// src.
func Transform[P, T, R any](prev sender.Sender[P], dst []R, src []T, f func(T) R) sender.Sender[[]R] {
	return algorithm(prev, func(pol policy.Policy) ([]R, error) {
		return parallel.Transform(pol, dst, src, f), nil
	})
}

// TransformInPlace is Transform writing each result back into the element
// it came from; it completes with s.
func TransformInPlace[P, T any](prev sender.Sender[P], s []T, f func(T) T) sender.Sender[[]T] {
	return algorithm(prev, func(pol policy.Policy) ([]T, error) {
		return parallel.TransformInPlace(pol, s, f), nil
	})
}

// Reduce returns a sender that folds s with join, starting from identity,
// and completes with the fold.
func Reduce[P, T any](prev sender.Sender[P], s []T, identity T, join func(x, y T) T) sender.Sender[T] {
	return algorithm(prev, func(pol policy.Policy) (T, error) {
		return parallel.Reduce(pol, s, identity, join), nil
	})
}

// Sort returns a sender that sorts s ascending, in place, and completes
// with s.
func Sort[P any, T cmp.Ordered](prev sender.Sender[P], s []T) sender.Sender[[]T] {
	return algorithm(prev, func(pol policy.Policy) ([]T, error) {
		return parallel.Sort(pol, s), nil
	})
}

// SortFunc is Sort with a comparison function.
func SortFunc[P, T any](prev sender.Sender[P], s []T, compare func(a, b T) int) sender.Sender[[]T] {
	return algorithm(prev, func(pol policy.Policy) ([]T, error) {
		return parallel.SortFunc(pol, s, compare), nil
	})
}

// AdjacentDifference returns a sender that stores src[0] in dst[0] and
// diff(src[i], src[i-1]) in every subsequent position, completing with dst
// trimmed to the length of src.
func AdjacentDifference[P, T any](prev sender.Sender[P], dst, src []T, diff func(cur, prev T) T) sender.Sender[[]T] {
	return algorithm(prev, func(pol policy.Policy) ([]T, error) {
		return parallel.AdjacentDifference(pol, dst, src, diff), nil
	})
}

// InclusiveScan returns a sender that stores the running fold of src under
// join in dst and completes with dst trimmed to the length of src.
func InclusiveScan[P, T any](prev sender.Sender[P], dst, src []T, join func(x, y T) T) sender.Sender[[]T] {
	return algorithm(prev, func(pol policy.Policy) ([]T, error) {
		return parallel.InclusiveScan(pol, dst, src, join), nil
	})
}

// MaxElement returns a sender that completes with the largest element of
// s, or with ErrEmptyRange on its error channel when s is empty.
func MaxElement[P any, T cmp.Ordered](prev sender.Sender[P], s []T) sender.Sender[T] {
	return algorithm(prev, func(pol policy.Policy) (T, error) {
		v, ok := parallel.MaxElement(pol, s)
		if !ok {
			return v, ErrEmptyRange
		}
		return v, nil
	})
}

// MinElement returns a sender that completes with the smallest element of
// s, or with ErrEmptyRange on its error channel when s is empty.
func MinElement[P any, T cmp.Ordered](prev sender.Sender[P], s []T) sender.Sender[T] {
	return algorithm(prev, func(pol policy.Policy) (T, error) {
		v, ok := parallel.MinElement(pol, s)
		if !ok {
			return v, ErrEmptyRange
		}
		return v, nil
	})
}

// Any returns a sender that completes with whether pred holds for at least
// one element of s.
func Any[P, T any](prev sender.Sender[P], s []T, pred func(T) bool) sender.Sender[bool] {
	return algorithm(prev, func(pol policy.Policy) (bool, error) {
		return parallel.Any(pol, s, pred), nil
	})
}

// All returns a sender that completes with whether pred holds for every
// element of s.
func All[P, T any](prev sender.Sender[P], s []T, pred func(T) bool) sender.Sender[bool] {
	return algorithm(prev, func(pol policy.Policy) (bool, error) {
		return parallel.All(pol, s, pred), nil
	})
}

// Find returns a sender that completes with the index of the first element
// satisfying pred, or -1.
func Find[P, T any](prev sender.Sender[P], s []T, pred func(T) bool) sender.Sender[int] {
	return algorithm(prev, func(pol policy.Policy) (int, error) {
		return parallel.Find(pol, s, pred), nil
	})
}
