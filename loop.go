package futures

// Until invokes action repeatedly until cond evaluates to true.
// cond is evaluated before each invocation; if it is true from the start,
// action is never invoked and the returned future completes immediately.
//
// The returned future completes when cond becomes true, or fails with the
// first action failure. If neither ever happens, it stays pending forever;
// ensuring eventual termination is the caller's responsibility.
//
// Iterations whose results are already terminal are consumed by an
// explicit loop. A pending result suspends the loop with one continuation
// that re-enters it, so the call-stack depth stays constant no matter how
// many iterations run.
func Until(e *Executor, cond func() bool, action func() *Future[Unit]) *Future[Unit] {
	p := NewPromise[Unit](e)
	untilContinued(cond, action, p)
	return p.Future()
}

func untilContinued(cond func() bool, action func() *Future[Unit], p *Promise[Unit]) {
	for !cond() {
		f := action()
		if !f.Available() {
			f.OnComplete(func(f *Future[Unit]) {
				if f.Failed() {
					f.ForwardTo(p)
					return
				}
				untilContinued(cond, action, p)
			})
			return
		}

		if f.Failed() {
			f.ForwardTo(p)
			return
		}
	}

	p.SetValue(Unit{})
}

// Forever invokes action repeatedly, forever, until it fails.
// The returned future never completes successfully; it fails with the
// first action failure.
func Forever(e *Executor, action func() *Future[Unit]) *Future[Unit] {
	return Until(e, never, action)
}

func never() bool { return false }
