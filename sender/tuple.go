package sender

import "fmt"

// A Tuple is a dynamically typed value set, for the adaptors whose shape
// cannot be expressed with a fixed Go type: Select reorders by position and
// With appends one more value.
type Tuple = []any

// JustValues returns a sender that completes immediately with the given
// values as a Tuple.
func JustValues(vs ...any) Sender[Tuple] {
	return Just(Tuple(vs))
}

// Select returns a sender whose value tuple is the subset of the delivered
// tuple selected by indices, in the given order. Indices may repeat.
// A negative index panics at composition time; an index beyond the
// delivered tuple's length panics at delivery.
func Select(s Sender[Tuple], indices ...int) Sender[Tuple] {
	for _, i := range indices {
		if i < 0 {
			panic(fmt.Sprintf("sender: Select index %d is negative", i))
		}
	}
	return Then(s, func(vs Tuple) Tuple {
		out := make(Tuple, len(indices))
		for n, i := range indices {
			if i >= len(vs) {
				panic(fmt.Sprintf("sender: Select index %d out of range for %d values", i, len(vs)))
			}
			out[n] = vs[i]
		}
		return out
	})
}

// With returns a sender that invokes f with the delivered values and
// completes with the original values plus f's result appended.
func With(s Sender[Tuple], f func(vs ...any) any) Sender[Tuple] {
	if f == nil {
		panic("sender: With requires a function")
	}
	return Then(s, func(vs Tuple) Tuple {
		out := make(Tuple, len(vs), len(vs)+1)
		copy(out, vs)
		return append(out, f(vs...))
	})
}
