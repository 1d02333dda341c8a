package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) by a number
// that takes runtime.NumCPU() into account. A requested batch count of 0
// selects that default; a positive count is used as given.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		batches = n
		if batches == 0 {
			batches = 2 * runtime.NumCPU()
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if batches < 1 {
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	return
}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p any) any {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}

// PanicError converts a recovered panic into an error carrying the stack
// trace, for delivery over an error channel instead of rethrowing.
func PanicError(p any) error {
	if p == nil {
		return nil
	}
	if err, isError := p.(error); isError {
		return fmt.Errorf("panic: %w\n%s", err, debug.Stack())
	}
	return fmt.Errorf("panic: %v\n%s", p, debug.Stack())
}
