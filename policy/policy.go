// Package policy defines execution policies: descriptors of the form of
// parallelism an algorithm is permitted to use.
//
// A policy never controls execution placement on its own. It becomes
// effective only when paired with a scheduler, and the pair must be mutually
// satisfiable: attaching a policy to a scheduler that cannot honor it is
// rejected eagerly, before any work starts.
package policy

import "fmt"

// A Policy describes the permitted form of parallelism for an algorithm
// invocation.
type Policy int

const (
	// Unspecified means no policy has been attached yet. Algorithms
	// resolve it to the scheduler's default policy, or to Seq when no
	// scheduler is attached.
	Unspecified Policy = iota

	// Seq requires sequential execution on a single goroutine.
	Seq

	// Par permits execution on multiple goroutines.
	Par

	// Unseq permits unsequenced execution within a single goroutine.
	// Go has no vectorized execution form, so Unseq executes like Seq.
	Unseq

	// ParUnseq combines Par and Unseq.
	ParUnseq
)

// Parallel reports whether p permits execution on multiple goroutines.
func (p Policy) Parallel() bool {
	return p == Par || p == ParUnseq
}

func (p Policy) String() string {
	switch p {
	case Unspecified:
		return "unspecified"
	case Seq:
		return "seq"
	case Par:
		return "par"
	case Unseq:
		return "unseq"
	case ParUnseq:
		return "par_unseq"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}
