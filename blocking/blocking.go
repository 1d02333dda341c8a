// Package blocking provides synchronous scheduled algorithms. Each call
// launches its work on a scheduler, blocks the calling goroutine through
// exactly one wait operation, and returns the computed value; runtime
// errors surface in the returned error after that wait completes.
//
// Every algorithm has two forms. The plain form takes the scheduler
// directly. The After form takes a predecessor sender instead: the work is
// sequenced after the predecessor's completion on the scheduler the
// predecessor carries. Passing a sender with no attached scheduler to an
// After form is a misuse, not a runtime condition, and panics before any
// work starts.
package blocking

import (
	"cmp"
	"context"

	"github.com/intel/forGoAsync/async"
	"github.com/intel/forGoAsync/sender"
)

func source(sch sender.Scheduler) sender.Sender[sender.Unit] {
	if sch == nil {
		panic("blocking: a scheduler is required")
	}
	return sender.Schedule(sch)
}

func scheduled[P any](prev sender.Sender[P]) sender.Sender[P] {
	if prev.Env().Scheduler == nil {
		panic("blocking: sender has no attached scheduler")
	}
	return prev
}

// ForEach invokes f on every element of s on sch and blocks until done.
func ForEach[T any](ctx context.Context, sch sender.Scheduler, s []T, f func(T)) error {
	_, err := async.ForEach(source(sch), s, f).Await(ctx)
	return err
}

// ForEachAfter is ForEach sequenced after prev on prev's scheduler.
func ForEachAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, f func(T)) error {
	_, err := async.ForEach(scheduled(prev), s, f).Await(ctx)
	return err
}

// Transform applies f to every element of src on sch, storing results in
// dst, and blocks until done.
func Transform[T, R any](ctx context.Context, sch sender.Scheduler, dst []R, src []T, f func(T) R) ([]R, error) {
	return async.Transform(source(sch), dst, src, f).Await(ctx)
}

// TransformAfter is Transform sequenced after prev on prev's scheduler.
func TransformAfter[P, T, R any](ctx context.Context, prev sender.Sender[P], dst []R, src []T, f func(T) R) ([]R, error) {
	return async.Transform(scheduled(prev), dst, src, f).Await(ctx)
}

// TransformInPlace applies f to every element of s on sch, writing each
// result back in place, and blocks until done.
func TransformInPlace[T any](ctx context.Context, sch sender.Scheduler, s []T, f func(T) T) ([]T, error) {
	return async.TransformInPlace(source(sch), s, f).Await(ctx)
}

// TransformInPlaceAfter is TransformInPlace sequenced after prev.
func TransformInPlaceAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, f func(T) T) ([]T, error) {
	return async.TransformInPlace(scheduled(prev), s, f).Await(ctx)
}

// Reduce folds s with join on sch and blocks until the fold is available.
func Reduce[T any](ctx context.Context, sch sender.Scheduler, s []T, identity T, join func(x, y T) T) (T, error) {
	return async.Reduce(source(sch), s, identity, join).Await(ctx)
}

// ReduceAfter is Reduce sequenced after prev on prev's scheduler.
func ReduceAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, identity T, join func(x, y T) T) (T, error) {
	return async.Reduce(scheduled(prev), s, identity, join).Await(ctx)
}

// Sort sorts s ascending on sch and blocks until done.
func Sort[T cmp.Ordered](ctx context.Context, sch sender.Scheduler, s []T) ([]T, error) {
	return async.Sort(source(sch), s).Await(ctx)
}

// SortAfter is Sort sequenced after prev on prev's scheduler.
func SortAfter[P any, T cmp.Ordered](ctx context.Context, prev sender.Sender[P], s []T) ([]T, error) {
	return async.Sort(scheduled(prev), s).Await(ctx)
}

// SortFunc sorts s by the comparison function on sch and blocks until done.
func SortFunc[T any](ctx context.Context, sch sender.Scheduler, s []T, compare func(a, b T) int) ([]T, error) {
	return async.SortFunc(source(sch), s, compare).Await(ctx)
}

// SortFuncAfter is SortFunc sequenced after prev on prev's scheduler.
func SortFuncAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, compare func(a, b T) int) ([]T, error) {
	return async.SortFunc(scheduled(prev), s, compare).Await(ctx)
}

// AdjacentDifference computes adjacent differences of src into dst on sch
// and blocks until done.
func AdjacentDifference[T any](ctx context.Context, sch sender.Scheduler, dst, src []T, diff func(cur, prev T) T) ([]T, error) {
	return async.AdjacentDifference(source(sch), dst, src, diff).Await(ctx)
}

// AdjacentDifferenceAfter is AdjacentDifference sequenced after prev.
func AdjacentDifferenceAfter[P, T any](ctx context.Context, prev sender.Sender[P], dst, src []T, diff func(cur, prev T) T) ([]T, error) {
	return async.AdjacentDifference(scheduled(prev), dst, src, diff).Await(ctx)
}

// InclusiveScan computes the running fold of src into dst on sch and
// blocks until done.
func InclusiveScan[T any](ctx context.Context, sch sender.Scheduler, dst, src []T, join func(x, y T) T) ([]T, error) {
	return async.InclusiveScan(source(sch), dst, src, join).Await(ctx)
}

// InclusiveScanAfter is InclusiveScan sequenced after prev.
func InclusiveScanAfter[P, T any](ctx context.Context, prev sender.Sender[P], dst, src []T, join func(x, y T) T) ([]T, error) {
	return async.InclusiveScan(scheduled(prev), dst, src, join).Await(ctx)
}

// MaxElement returns the largest element of s, computed on sch. It returns
// async.ErrEmptyRange when s is empty.
func MaxElement[T cmp.Ordered](ctx context.Context, sch sender.Scheduler, s []T) (T, error) {
	return async.MaxElement(source(sch), s).Await(ctx)
}

// MaxElementAfter is MaxElement sequenced after prev on prev's scheduler.
func MaxElementAfter[P any, T cmp.Ordered](ctx context.Context, prev sender.Sender[P], s []T) (T, error) {
	return async.MaxElement(scheduled(prev), s).Await(ctx)
}

// MinElement returns the smallest element of s, computed on sch. It
// returns async.ErrEmptyRange when s is empty.
func MinElement[T cmp.Ordered](ctx context.Context, sch sender.Scheduler, s []T) (T, error) {
	return async.MinElement(source(sch), s).Await(ctx)
}

// MinElementAfter is MinElement sequenced after prev on prev's scheduler.
func MinElementAfter[P any, T cmp.Ordered](ctx context.Context, prev sender.Sender[P], s []T) (T, error) {
	return async.MinElement(scheduled(prev), s).Await(ctx)
}

// Any reports whether pred holds for at least one element of s, computed
// on sch.
func Any[T any](ctx context.Context, sch sender.Scheduler, s []T, pred func(T) bool) (bool, error) {
	return async.Any(source(sch), s, pred).Await(ctx)
}

// AnyAfter is Any sequenced after prev on prev's scheduler.
func AnyAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, pred func(T) bool) (bool, error) {
	return async.Any(scheduled(prev), s, pred).Await(ctx)
}

// All reports whether pred holds for every element of s, computed on sch.
func All[T any](ctx context.Context, sch sender.Scheduler, s []T, pred func(T) bool) (bool, error) {
	return async.All(source(sch), s, pred).Await(ctx)
}

// AllAfter is All sequenced after prev on prev's scheduler.
func AllAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, pred func(T) bool) (bool, error) {
	return async.All(scheduled(prev), s, pred).Await(ctx)
}

// Find returns the index of the first element satisfying pred, computed on
// sch, or -1.
func Find[T any](ctx context.Context, sch sender.Scheduler, s []T, pred func(T) bool) (int, error) {
	return async.Find(source(sch), s, pred).Await(ctx)
}

// FindAfter is Find sequenced after prev on prev's scheduler.
func FindAfter[P, T any](ctx context.Context, prev sender.Sender[P], s []T, pred func(T) bool) (int, error) {
	return async.Find(scheduled(prev), s, pred).Await(ctx)
}
