package parallel

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/intel/forGoAsync/policy"
	"github.com/intel/forGoAsync/serial"
	"github.com/intel/forGoAsync/speculative"
)

// sortCutoff is the slice length below which Sort stops forking and hands
// the rest to the standard library.
const sortCutoff = 1 << 11

// ForEach invokes f on every element of s. Under a parallel policy the
// invocation order is unspecified and f must be safe for concurrent use.
func ForEach[T any](pol policy.Policy, s []T, f func(T)) {
	if !pol.Parallel() {
		serial.ForEach(s, f)
		return
	}
	Range(0, len(s), 0, func(low, high int) {
		for _, v := range s[low:high] {
			f(v)
		}
	})
}

// Transform applies f to every element of src, storing results in dst, and
// returns dst trimmed to the length of src. It panics when dst is too
// short. Under a parallel policy f must be safe for concurrent use.
func Transform[T, R any](pol policy.Policy, dst []R, src []T, f func(T) R) []R {
	if !pol.Parallel() {
		return serial.Transform(dst, src, f)
	}
	checkDst(len(dst), len(src))
	Range(0, len(src), 0, func(low, high int) {
		for i := low; i < high; i++ {
			dst[i] = f(src[i])
		}
	})
	return dst[:len(src)]
}

// TransformInPlace applies f to every element of s, storing each result
// back into the element it came from, and returns s.
func TransformInPlace[T any](pol policy.Policy, s []T, f func(T) T) []T {
	if !pol.Parallel() {
		return serial.TransformInPlace(s, f)
	}
	Range(0, len(s), 0, func(low, high int) {
		for i := low; i < high; i++ {
			s[i] = f(s[i])
		}
	})
	return s
}

// Reduce folds s with join, starting from identity. Under a parallel
// policy join must be associative and identity must be its identity
// element; batches are folded independently and combined pairwise.
func Reduce[T any](pol policy.Policy, s []T, identity T, join func(x, y T) T) T {
	if !pol.Parallel() || len(s) == 0 {
		return serial.Reduce(s, identity, join)
	}
	return RangeReduce(0, len(s), 0, func(low, high int) T {
		return serial.Reduce(s[low:high], identity, join)
	}, join)
}

// Sort sorts s ascending and returns it.
func Sort[T cmp.Ordered](pol policy.Policy, s []T) []T {
	return SortFunc(pol, s, cmp.Compare)
}

// SortFunc sorts s by the comparison function and returns it. The parallel
// path is a fork/join merge sort over one temporary buffer.
func SortFunc[T any](pol policy.Policy, s []T, compare func(a, b T) int) []T {
	if !pol.Parallel() || len(s) <= sortCutoff {
		return serial.SortFunc(s, compare)
	}
	mergeSort(s, make([]T, len(s)), compare)
	return s
}

func mergeSort[T any](s, tmp []T, compare func(a, b T) int) {
	if len(s) <= sortCutoff {
		slices.SortFunc(s, compare)
		return
	}
	mid := len(s) / 2
	Do(
		func() { mergeSort(s[:mid], tmp[:mid], compare) },
		func() { mergeSort(s[mid:], tmp[mid:], compare) },
	)
	copy(tmp, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if compare(tmp[i], tmp[j]) <= 0 {
			s[k] = tmp[i]
			i++
		} else {
			s[k] = tmp[j]
			j++
		}
		k++
	}
	copy(s[k:], tmp[i:mid])
	copy(s[k+mid-i:], tmp[j:])
}

// AdjacentDifference stores src[0] in dst[0] and diff(src[i], src[i-1]) in
// dst[i] for every subsequent position, returning dst trimmed to the
// length of src. Every output position depends only on its own inputs, so
// the parallel path is elementwise; it requires dst and src not to alias,
// and falls back to the sequential path when they do.
func AdjacentDifference[T any](pol policy.Policy, dst, src []T, diff func(cur, prev T) T) []T {
	if !pol.Parallel() || len(src) == 0 || aliased(dst, src) {
		return serial.AdjacentDifference(dst, src, diff)
	}
	checkDst(len(dst), len(src))
	Range(0, len(src), 0, func(low, high int) {
		for i := low; i < high; i++ {
			if i == 0 {
				dst[0] = src[0]
				continue
			}
			dst[i] = diff(src[i], src[i-1])
		}
	})
	return dst[:len(src)]
}

// InclusiveScan stores the running fold of src under join in dst, so that
// dst[i] combines src[0] through src[i], and returns dst trimmed to the
// length of src. Under a parallel policy join must be associative; the
// parallel path runs log2(n) elementwise sweeps over a double buffer.
func InclusiveScan[T any](pol policy.Policy, dst, src []T, join func(x, y T) T) []T {
	if !pol.Parallel() || len(src) < 2 || aliased(dst, src) {
		return serial.InclusiveScan(dst, src, join)
	}
	checkDst(len(dst), len(src))
	n := len(src)
	a, b := dst[:n], make([]T, n)
	copy(a, src)
	swapped := false
	for l := 1; l < n; l *= 2 {
		shift := l
		from, to := a, b
		Do(func() {
			Range(0, shift, 0, func(low, high int) {
				copy(to[low:high], from[low:high])
			})
		}, func() {
			Range(shift, n, 0, func(low, high int) {
				for j := low; j < high; j++ {
					to[j] = join(from[j-shift], from[j])
				}
			})
		})
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(dst, a)
	}
	return dst[:n]
}

// MaxElement returns the largest element of s. The second return value is
// false when s is empty.
func MaxElement[T cmp.Ordered](pol policy.Policy, s []T) (T, bool) {
	if !pol.Parallel() || len(s) == 0 {
		return serial.MaxElement(s)
	}
	m := RangeReduce(0, len(s), 0, func(low, high int) T {
		return slices.Max(s[low:high])
	}, func(x, y T) T {
		return max(x, y)
	})
	return m, true
}

// MinElement returns the smallest element of s. The second return value is
// false when s is empty.
func MinElement[T cmp.Ordered](pol policy.Policy, s []T) (T, bool) {
	if !pol.Parallel() || len(s) == 0 {
		return serial.MinElement(s)
	}
	m := RangeReduce(0, len(s), 0, func(low, high int) T {
		return slices.Min(s[low:high])
	}, func(x, y T) T {
		return min(x, y)
	})
	return m, true
}

// Any reports whether pred holds for at least one element of s. The
// parallel path terminates early once a match is known.
func Any[T any](pol policy.Policy, s []T, pred func(T) bool) bool {
	if !pol.Parallel() {
		return serial.Any(s, pred)
	}
	return speculative.RangeOr(0, len(s), func(low, high int) bool {
		return serial.Any(s[low:high], pred)
	})
}

// All reports whether pred holds for every element of s. The parallel path
// terminates early once a counterexample is known.
func All[T any](pol policy.Policy, s []T, pred func(T) bool) bool {
	if !pol.Parallel() {
		return serial.All(s, pred)
	}
	return speculative.RangeAnd(0, len(s), func(low, high int) bool {
		return serial.All(s[low:high], pred)
	})
}

// Find returns the index of the first element satisfying pred, or -1. The
// parallel path terminates early once the left-most match is known.
func Find[T any](pol policy.Policy, s []T, pred func(T) bool) int {
	if !pol.Parallel() {
		return serial.Find(s, pred)
	}
	return speculative.RangeFind(0, len(s), func(low, high int) int {
		if i := serial.Find(s[low:high], pred); i >= 0 {
			return low + i
		}
		return -1
	})
}

func aliased[T any](dst, src []T) bool {
	return len(dst) > 0 && len(src) > 0 && &dst[0] == &src[0]
}

func checkDst(dst, src int) {
	if dst < src {
		panic(fmt.Sprintf("parallel: destination length %d shorter than source length %d", dst, src))
	}
}
