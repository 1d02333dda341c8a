// Package gsync provides synchronization abstractions.
package gsync

import (
	"context"
	"sync"
)

// A Latch is a set-once, multi-reader completion cell. The first Set stores
// a value and releases every current and future Wait; later Sets are no-ops.
//
// The zero Latch is not ready for use; create one with NewLatch.
type Latch[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
}

func NewLatch[T any]() *Latch[T] {
	return &Latch[T]{done: make(chan struct{})}
}

// Set stores v and releases all waiters. It reports whether this call was
// the one that set the latch.
func (l *Latch[T]) Set(v T) (first bool) {
	l.once.Do(func() {
		l.val = v
		close(l.done)
		first = true
	})
	return
}

// Wait blocks until the latch is set or ctx is done. The second return
// value reports whether a value was obtained.
func (l *Latch[T]) Wait(ctx context.Context) (T, bool) {
	select {
	case <-l.done:
		return l.val, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// TryGet returns the latched value, if any, without blocking.
func (l *Latch[T]) TryGet() (T, bool) {
	select {
	case <-l.done:
		return l.val, true
	default:
		var zero T
		return zero, false
	}
}
