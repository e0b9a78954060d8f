package futures

type state uint8

const (
	statePending state = iota
	stateReady
	stateFailed
)

// Unit is the value type of futures that carry no value.
type Unit struct{}

// A Future represents the eventual outcome of one asynchronous operation:
// either a value or an error, not yet known at creation time.
//
// A Future starts out pending and becomes terminal exactly once, when its
// paired [Promise] is settled. Futures created with [Ready] or [Failed] are
// terminal from the start.
//
// A Future is uniquely owned. [Future.Get], [Future.OnComplete] and
// [Future.ForwardTo] consume it; after any of these, the previous owner
// must not touch it again. Touching a consumed future panics.
//
// A Future must not be shared by more than one [Executor].
type Future[T any] struct {
	executor *Executor
	state    state
	value    T
	err      error
	consumed bool
	hook     func(*Future[T])
}

// Ready returns an already-successful [Future] holding v.
func Ready[T any](v T) *Future[T] {
	return &Future[T]{state: stateReady, value: v}
}

// Failed returns an already-failed [Future] holding err.
func Failed[T any](err error) *Future[T] {
	if err == nil {
		panic("futures: Failed called with nil error")
	}
	return &Future[T]{state: stateFailed, err: err}
}

// Done returns an already-successful [Future] that carries no value.
func Done() *Future[Unit] {
	return Ready(Unit{})
}

func (f *Future[T]) checkOwned() {
	if f.consumed {
		panic("futures: future already consumed")
	}
}

// Available reports whether f is terminal, successfully or not.
func (f *Future[T]) Available() bool {
	f.checkOwned()
	return f.state != statePending
}

// Completed reports whether f is terminal and holds a value.
func (f *Future[T]) Completed() bool {
	f.checkOwned()
	return f.state == stateReady
}

// Failed reports whether f is terminal and holds an error.
func (f *Future[T]) Failed() bool {
	f.checkOwned()
	return f.state == stateFailed
}

// Err returns the error held by f, or nil if f holds a value.
//
// Panics if f is still pending.
func (f *Future[T]) Err() error {
	f.checkOwned()
	if f.state == statePending {
		panic("futures: future not yet available")
	}
	return f.err
}

// Get extracts the outcome of f, consuming it.
//
// Panics if f is still pending.
func (f *Future[T]) Get() (T, error) {
	f.checkOwned()
	if f.state == statePending {
		panic("futures: future not yet available")
	}
	f.consumed = true
	return f.value, f.err
}

// OnComplete attaches a continuation to run once f is terminal, regardless
// of outcome, consuming f. The continuation receives the terminal future
// back and owns it for the duration of the call; once it returns, the
// future is consumed for good and any reference held from before the
// attach must not be used again.
//
// If f is already terminal, the continuation runs inline before OnComplete
// returns. Otherwise it runs later, posted to the [Executor] of the
// [Promise] that produced f.
//
// At most one continuation may be attached to a future; a second attach
// panics.
func (f *Future[T]) OnComplete(k func(*Future[T])) {
	if k == nil {
		panic("futures: nil continuation")
	}
	f.checkOwned()
	if f.hook != nil {
		panic("futures: future already has a continuation")
	}
	run := func(f *Future[T]) {
		f.consumed = false // Ownership passes to the continuation...
		k(f)
		f.consumed = true // ...and never back to the stale reference.
	}
	if f.state != statePending {
		run(f)
		return
	}
	f.consumed = true
	f.hook = run
}

// attach is the type-erased variant of [Future.OnComplete] used by joins.
// Unlike OnComplete it does not consume f: the join hands f back to the
// caller, terminal and still owned, inside its outcome collection.
func (f *Future[T]) attach(k func()) {
	f.checkOwned()
	if f.hook != nil {
		panic("futures: future already has a continuation")
	}
	if f.state != statePending {
		k()
		return
	}
	f.hook = func(*Future[T]) { k() }
}

// ForwardTo transfers the outcome of f into p, consuming f.
// If f is still pending, p is settled whenever f becomes terminal.
func (f *Future[T]) ForwardTo(p *Promise[T]) {
	f.checkOwned()
	if f.state == statePending {
		f.OnComplete(func(f *Future[T]) { f.ForwardTo(p) })
		return
	}
	v, err := f.Get()
	if err != nil {
		p.SetError(err)
		return
	}
	p.SetValue(v)
}

// Then attaches a success continuation to f, consuming f, and returns
// a [Future] for the combined operation.
//
// If f fails, next is never invoked and the failure propagates to the
// returned future. If next returns a future that is itself pending, the
// returned future stays pending until that one is terminal too.
//
// If f is already terminal, next runs inline and no continuation is
// attached.
func Then[T, U any](f *Future[T], next func(T) *Future[U]) *Future[U] {
	if next == nil {
		panic("futures: nil continuation")
	}
	f.checkOwned()
	if f.state != statePending {
		v, err := f.Get()
		if err != nil {
			return Failed[U](err)
		}
		return next(v)
	}
	p := NewPromise[U](f.executor)
	f.OnComplete(func(f *Future[T]) {
		v, err := f.Get()
		if err != nil {
			p.SetError(err)
			return
		}
		next(v).ForwardTo(p)
	})
	return p.Future()
}

// A Promise is the writable counterpart of a [Future]. It produces exactly
// one future, and supplies that future's outcome exactly once, with either
// SetValue or SetError. Settling a promise twice panics.
//
// A Promise may be moved across continuation boundaries before being
// settled, but must only be settled from within its [Executor]; from
// another goroutine, post the settle call with [Executor.Spawn].
type Promise[T any] struct {
	future   *Future[T]
	produced bool
}

// NewPromise creates a new [Promise] whose continuation, if one is pending
// when the promise is settled, will be posted to e.
func NewPromise[T any](e *Executor) *Promise[T] {
	if e == nil {
		panic("futures: nil executor")
	}
	return &Promise[T]{future: &Future[T]{executor: e}}
}

// Future returns the [Future] paired with p.
//
// Panics when called a second time: the future is uniquely owned and there
// is only one to hand out.
func (p *Promise[T]) Future() *Future[T] {
	if p.produced {
		panic("futures: future already produced")
	}
	p.produced = true
	return p.future
}

// SetValue settles p with a value.
//
// One should only call this method from within the executor of p.
func (p *Promise[T]) SetValue(v T) {
	f := p.future
	if f.state != statePending {
		panic("futures: promise already settled")
	}
	f.state = stateReady
	f.value = v
	f.fire()
}

// SetError settles p with an error.
//
// One should only call this method from within the executor of p.
func (p *Promise[T]) SetError(err error) {
	if err == nil {
		panic("futures: SetError called with nil error")
	}
	f := p.future
	if f.state != statePending {
		panic("futures: promise already settled")
	}
	f.state = stateFailed
	f.err = err
	f.fire()
}

func (f *Future[T]) fire() {
	hook := f.hook
	if hook == nil {
		return
	}
	f.hook = nil
	f.executor.Spawn(func() { hook(f) })
}
