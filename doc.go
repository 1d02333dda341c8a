// This package provides functions and data structures for expressing
// scheduler-aware synchronous and asynchronous algorithms.
//
// It provides the following subpackages:
//
// forGoAsync/sender provides the core model: one-shot composable handles to
// deferred computations, adaptors to reshape the values flowing between them,
// and attachment operators for schedulers and execution policies.
//
// forGoAsync/sched provides schedulers: execution-placement handles that
// senders and scheduled algorithms run their work on.
//
// forGoAsync/serial provides baseline sequential algorithms with no
// execution control.
//
// forGoAsync/parallel provides synchronous, policy-driven implementations of
// the same algorithms, executing fork/join kernels in parallel when the
// policy permits.
//
// forGoAsync/blocking provides synchronous scheduled algorithms: they launch
// work on a scheduler and block the caller until the result is available.
//
// forGoAsync/async provides asynchronous algorithms: they consume a
// predecessor sender and return a new sender representing the algorithm's
// eventual completion.
//
// forGoAsync/speculative provides early-exit fork/join kernels used by the
// Any, All and Find algorithms.
//
// forGoAsync/gsync provides synchronization abstractions.
//
// forGoAsync/observe provides observer hooks for schedulers, with
// Prometheus and zap based implementations in its subpackages.
package forGoAsync
