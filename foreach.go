package futures

import "iter"

// ForEach invokes action on each value of seq, one at a time, in order.
// A later value's action is never invoked before the previous action's
// future is terminal.
//
// The returned future completes when every action has succeeded, or fails
// with the first action failure, in which case the remaining values are
// never visited.
//
// Values whose actions are already terminal when returned are consumed by
// an explicit loop; only a genuinely pending action suspends the sequence,
// with a single continuation that resumes it from the next value.
//
// Caveat: requires spawning a goroutine (which is stackful) when pulling
// from seq. The goroutine leaks if the returned future never becomes
// terminal.
func ForEach[T any](e *Executor, seq iter.Seq[T], action func(T) *Future[Unit]) *Future[Unit] {
	p := NewPromise[Unit](e)
	next, stop := iter.Pull(seq)
	forEachContinued(next, stop, action, p)
	return p.Future()
}

func forEachContinued[T any](next func() (T, bool), stop func(), action func(T) *Future[Unit], p *Promise[Unit]) {
	for {
		v, ok := next()
		if !ok {
			stop()
			p.SetValue(Unit{})
			return
		}

		f := action(v)
		if !f.Available() {
			f.OnComplete(func(f *Future[Unit]) {
				if f.Failed() {
					stop()
					f.ForwardTo(p)
					return
				}
				forEachContinued(next, stop, action, p)
			})
			return
		}

		if f.Failed() {
			stop()
			f.ForwardTo(p)
			return
		}
	}
}
