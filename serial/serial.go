// Package serial provides baseline sequential implementations of the
// algorithms, with no execution control. The parallel, blocking and async
// packages offer the same algorithms with progressively more control over
// how and where the work executes; the sequential paths of all of them
// bottom out here.
package serial

import (
	"cmp"
	"fmt"
	"slices"
)

// ForEach invokes f on every element of s, in order.
func ForEach[T any](s []T, f func(T)) {
	for _, v := range s {
		f(v)
	}
}

// Transform applies f to every element of src, storing results in dst,
// and returns dst trimmed to the length of src. It panics when dst is too
// short.
func Transform[T, R any](dst []R, src []T, f func(T) R) []R {
	checkDst(len(dst), len(src))
	for i, v := range src {
		dst[i] = f(v)
	}
	return dst[:len(src)]
}

// TransformInPlace applies f to every element of s, storing each result
// back into the element it came from, and returns s.
func TransformInPlace[T any](s []T, f func(T) T) []T {
	for i, v := range s {
		s[i] = f(v)
	}
	return s
}

// Reduce folds s with join, starting from identity, in order.
func Reduce[T any](s []T, identity T, join func(x, y T) T) T {
	acc := identity
	for _, v := range s {
		acc = join(acc, v)
	}
	return acc
}

// Sort sorts s ascending and returns it.
func Sort[T cmp.Ordered](s []T) []T {
	slices.Sort(s)
	return s
}

// SortFunc sorts s by the comparison function and returns it.
func SortFunc[T any](s []T, compare func(a, b T) int) []T {
	slices.SortFunc(s, compare)
	return s
}

// AdjacentDifference stores src[0] in dst[0] and diff(src[i], src[i-1]) in
// dst[i] for every subsequent position, returning dst trimmed to the
// length of src. src and dst may be the same slice.
func AdjacentDifference[T any](dst, src []T, diff func(cur, prev T) T) []T {
	checkDst(len(dst), len(src))
	if len(src) == 0 {
		return dst[:0]
	}
	prev := src[0]
	dst[0] = prev
	for i := 1; i < len(src); i++ {
		cur := src[i]
		dst[i] = diff(cur, prev)
		prev = cur
	}
	return dst[:len(src)]
}

// InclusiveScan stores the running fold of src under join in dst, so that
// dst[i] combines src[0] through src[i]. It returns dst trimmed to the
// length of src. src and dst may be the same slice.
func InclusiveScan[T any](dst, src []T, join func(x, y T) T) []T {
	checkDst(len(dst), len(src))
	if len(src) == 0 {
		return dst[:0]
	}
	acc := src[0]
	dst[0] = acc
	for i := 1; i < len(src); i++ {
		acc = join(acc, src[i])
		dst[i] = acc
	}
	return dst[:len(src)]
}

// MaxElement returns the largest element of s. The second return value is
// false when s is empty.
func MaxElement[T cmp.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return slices.Max(s), true
}

// MinElement returns the smallest element of s. The second return value is
// false when s is empty.
func MinElement[T cmp.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return slices.Min(s), true
}

// Any reports whether pred holds for at least one element of s.
func Any[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every element of s.
func All[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Find returns the index of the first element satisfying pred, or -1.
func Find[T any](s []T, pred func(T) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}
	return -1
}

func checkDst(dst, src int) {
	if dst < src {
		panic(fmt.Sprintf("destination length %d shorter than source length %d", dst, src))
	}
}
