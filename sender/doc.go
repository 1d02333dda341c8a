// Package sender provides the core model for composable asynchronous
// computations.
//
// A Sender is a one-shot, lazily evaluated handle to a deferred computation.
// Nothing runs when a sender is composed; a chain of senders is an expression
// tree that is evaluated once, when its root is connected to a Receiver and
// started. A sender eventually delivers exactly one completion to its
// receiver: a value, an error, or a stop signal.
//
// Senders carry attributes: an optional scheduler describing where their
// work executes, and an optional execution policy describing the permitted
// form of parallelism. Adaptors inherit the attributes of the sender they
// wrap. The attachment operators Schedule, Transfer, AttachPolicy and On
// change them explicitly. An unsatisfiable combination, such as a parallel
// policy on a single-goroutine scheduler, panics at composition time, before
// any work has started.
//
// A sender must be connected at most once. Connecting twice would duplicate
// the side effects of everything upstream, so it panics; use Split when the
// same completion is needed in more than one place.
package sender
