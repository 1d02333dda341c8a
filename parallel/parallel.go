// Package parallel provides synchronous, policy-driven implementations of
// the algorithms. The execution policy selects the path: sequential
// policies run the baseline from package serial on the calling goroutine,
// parallel policies run fork/join kernels that divide the work into
// batches sized for runtime.NumCPU().
//
// Nothing here controls placement; work runs on the goroutines of whoever
// calls. Placement-controlled variants live in packages blocking and
// async.
package parallel

import (
	"sync"

	"github.com/intel/forGoAsync/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only when all
// thunks have terminated.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p any
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			thunks[1]()
		}()
		thunks[0]()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			Do(thunks[half:]...)
		}()
		Do(thunks[:half]...)
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
}

// Range divides the half-open interval from low to high into batches and
// invokes the range function for each batch in its own goroutine,
// returning only when all invocations have terminated. The batch count n
// may be 0, selecting a default based on runtime.NumCPU().
//
// Range panics if high < low, or if n < 0.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with the
// left-most recovered panic value.
func Range(low, high, n int, f func(low, high int)) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				f(low, high)
				return
			}
			var p any
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				recur(mid, high, n-half)
			}()
			recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
		default:
			panic("parallel: invalid number of batches")
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// RangeReduce divides the half-open interval from low to high into
// batches, invokes the range reducer for each batch in its own goroutine,
// and combines the batch results with join. The batch count n may be 0,
// selecting a default based on runtime.NumCPU().
//
// RangeReduce panics if high < low, or if n < 0.
//
// If one or more reducer invocations panic, the corresponding goroutines
// recover the panics, and RangeReduce eventually panics with the left-most
// recovered panic value.
func RangeReduce[T any](
	low, high, n int,
	reduce func(low, high int) T,
	join func(x, y T) T,
) T {
	var recur func(int, int, int) T
	recur = func(low, high, n int) T {
		switch {
		case n == 1:
			return reduce(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return reduce(low, high)
			}
			var left, right T
			var p any
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				right = recur(mid, high, n-half)
			}()
			left = recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return join(left, right)
		default:
			panic("parallel: invalid number of batches")
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
