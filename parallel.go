package futures

import "iter"

// Parallel invokes action on every value of seq immediately, without
// waiting for any predecessor to finish.
//
// The returned future becomes terminal only once every launched action is
// terminal: it completes when all of them succeeded, and fails when any of
// them failed. When several actions fail, the first failure in completion
// order wins; the later ones still run to completion but their errors are
// dropped.
func Parallel[T any](e *Executor, seq iter.Seq[T], action func(T) *Future[Unit]) *Future[Unit] {
	p := NewPromise[Unit](e)

	// The count starts at one so the result cannot settle before every
	// action has been launched, even when they all complete inline.
	remaining := 1
	var firstErr error

	arrive := func() {
		if remaining--; remaining != 0 {
			return
		}
		if firstErr != nil {
			p.SetError(firstErr)
			return
		}
		p.SetValue(Unit{})
	}

	for v := range seq {
		remaining++
		action(v).OnComplete(func(f *Future[Unit]) {
			if _, err := f.Get(); err != nil && firstErr == nil {
				firstErr = err
			}
			arrive()
		})
	}

	arrive()

	return p.Future()
}
