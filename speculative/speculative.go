// Package speculative provides early-exit fork/join kernels. They divide a
// range into batches like the kernels in package parallel, but return as
// soon as the final result is known, without waiting for the remaining
// goroutines to terminate. The Any, All and Find algorithms are built on
// them.
package speculative

import (
	"sync"

	"github.com/intel/forGoAsync/internal"
)

// RangeOr divides the half-open interval from low to high into batches and
// invokes the range predicate for each batch in its own goroutine. It
// returns true as soon as a left-most predicate returns true, without
// waiting for the other predicates to terminate, and false only when all
// of them have returned false.
//
// RangeOr panics if high < low.
//
// If one or more range predicates panic, the corresponding goroutines
// recover the panics, and RangeOr may eventually panic with the left-most
// recovered panic value.
func RangeOr(low, high int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		default:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			var b1 bool
			var p any
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				b1 = recur(mid, high, n-half)
			}()
			if recur(low, mid, half) {
				return true
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return b1
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, 0))
}

// RangeAnd divides the half-open interval from low to high into batches and
// invokes the range predicate for each batch in its own goroutine. It
// returns false as soon as a left-most predicate returns false, without
// waiting for the other predicates to terminate, and true only when all of
// them have returned true.
//
// RangeAnd panics if high < low.
//
// If one or more range predicates panic, the corresponding goroutines
// recover the panics, and RangeAnd may eventually panic with the left-most
// recovered panic value.
func RangeAnd(low, high int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		default:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			var b1 bool
			var p any
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				b1 = recur(mid, high, n-half)
			}()
			if !recur(low, mid, half) {
				return false
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return b1
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, 0))
}

// RangeFind divides the half-open interval from low to high into batches
// and invokes the range search function for each batch in its own
// goroutine. The search function returns the index of a match within its
// batch, or a negative value. RangeFind returns the left-most match: when
// a left half finds one, it returns without waiting for the right half.
//
// RangeFind panics if high < low.
//
// If one or more search functions panic, the corresponding goroutines
// recover the panics, and RangeFind may eventually panic with the
// left-most recovered panic value.
func RangeFind(low, high int, f func(low, high int) int) int {
	var recur func(int, int, int) int
	recur = func(low, high, n int) int {
		switch {
		case n == 1:
			return f(low, high)
		default:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			var i1 int
			var p any
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				i1 = recur(mid, high, n-half)
			}()
			if i0 := recur(low, mid, half); i0 >= 0 {
				return i0
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return i1
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, 0))
}
