package futures

// Any is the type-erased view of a [Future] that [WhenAll] operates on.
// Every *Future[T] implements Any.
//
// An Any handed back by WhenAll is terminal; type-assert it back to its
// concrete *Future[T] to extract the value.
type Any interface {
	Available() bool
	Completed() bool
	Failed() bool
	Err() error

	attach(k func())
}

// WhenAll takes any number of already-launched operations, of possibly
// different result types, and returns a future that becomes terminal once
// every one of them is terminal. The returned slice holds the same
// futures, index-aligned with the inputs regardless of completion order,
// each now terminal and owned by the caller again.
//
// No operation's failure short-circuits the others, and the returned
// future itself never fails: a failed member simply stays failed inside
// the slice.
//
// With no operations, the returned future holds an empty slice and is
// terminal immediately.
func WhenAll(e *Executor, ops ...Any) *Future[[]Any] {
	if len(ops) == 0 {
		return Ready([]Any{})
	}

	head, tail := ops[0], ops[1:]

	p := NewPromise[[]Any](e)
	head.attach(func() {
		WhenAll(e, tail...).OnComplete(func(rest *Future[[]Any]) {
			outcomes, _ := rest.Get()
			p.SetValue(append([]Any{head}, outcomes...))
		})
	})
	return p.Future()
}

// A Pair holds two terminal futures, in the order they were joined.
type Pair[A, B any] struct {
	First  *Future[A]
	Second *Future[B]
}

// A Triple holds three terminal futures, in the order they were joined.
type Triple[A, B, C any] struct {
	First  *Future[A]
	Second *Future[B]
	Third  *Future[C]
}

// WhenAll2 is [WhenAll] for exactly two operations, keeping their types.
func WhenAll2[A, B any](e *Executor, first *Future[A], second *Future[B]) *Future[Pair[A, B]] {
	p := NewPromise[Pair[A, B]](e)
	first.attach(func() {
		second.attach(func() {
			p.SetValue(Pair[A, B]{first, second})
		})
	})
	return p.Future()
}

// WhenAll3 is [WhenAll] for exactly three operations, keeping their types.
func WhenAll3[A, B, C any](e *Executor, first *Future[A], second *Future[B], third *Future[C]) *Future[Triple[A, B, C]] {
	p := NewPromise[Triple[A, B, C]](e)
	first.attach(func() {
		WhenAll2(e, second, third).OnComplete(func(rest *Future[Pair[B, C]]) {
			pair, _ := rest.Get()
			p.SetValue(Triple[A, B, C]{first, pair.First, pair.Second})
		})
	})
	return p.Future()
}
