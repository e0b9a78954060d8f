// Package futures is a library for composing asynchronous operations.
//
// An asynchronous operation is represented by a pair of handles: a [Future],
// holding the eventual outcome of the operation, and a [Promise], the
// writable counterpart that supplies that outcome exactly once.
// On top of this pair, the package provides combinators that sequence,
// iterate, and join operations ([ForEach], [Until], [Forever], [Parallel],
// [WhenAll]) without ever blocking a goroutine.
//
// # Completion Is Cooperative
//
// Nothing in this package blocks. Where some future libraries park a
// goroutine on a channel until a value arrives, a [Future] instead accepts
// a single continuation. If the future is already terminal when the
// continuation is attached, the continuation runs inline; otherwise it is
// stored and, when the paired [Promise] settles, posted to an [Executor],
// a single-threaded run queue that invokes continuations one at a time.
// One can create as many executors as they like.
//
// # Ownership
//
// A Future is uniquely owned. Attaching a continuation, extracting the
// outcome with [Future.Get], or forwarding it with [Future.ForwardTo]
// consumes the future; afterwards the previous owner must not touch it.
// A continuation attached with [Future.OnComplete] receives the terminal
// future back and owns it from then on. At most one continuation may ever
// be attached, and a promise may be settled at most once. Violating one of
// these contracts is a programming error and panics; it is never silently
// ignored, because the ownership handoff is what makes suspension points
// safe without locks.
//
// # Settling From Goroutines
//
// Futures and promises carry no synchronization of their own.
// Within a single executor everything runs on one goroutine and no care is
// needed. To complete an operation from another goroutine, post the settle
// call onto the executor instead of calling it directly:
//
//	e.Spawn(func() { p.SetValue(v) })
//
// [Executor.Spawn] is safe for concurrent use; everything else is not.
//
// # Composition
//
// The combinators behave identically whether a step happens to be complete
// already or completes strictly later. Runs of steps that are already
// complete are consumed by an explicit loop, so composing a long sequence
// of cheap synchronous steps does not grow the call stack; a step that is
// genuinely pending suspends the combinator by attaching one continuation
// and returning control to the executor.
package futures
