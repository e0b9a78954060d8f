package futures

import (
	"sync"

	"github.com/eapache/queue"
)

// An Executor is a continuation runner.
//
// When a continuation is posted, it is added into an internal FIFO queue.
// The Run method then pops and invokes each of them from the queue until
// the queue is emptied.
// It is done in a single-threaded manner.
// If one continuation blocks, no other continuations can run.
// The best practice is not to block.
//
// Manually calling the Run method is usually not desired.
// One would instead use the Autorun method to set up an autorun function to
// calling the Run method automatically whenever a continuation is posted.
// The Executor never calls the autorun function twice at the same time.
type Executor struct {
	mu      sync.Mutex
	q       *queue.Queue
	running bool
	autorun func()
}

// Autorun sets up an autorun function to calling the Run method automatically
// whenever a continuation is posted.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Spawn method may block too.
// The best practice is not to block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// Run pops and invokes every continuation in the queue until the queue is
// emptied.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for e.q != nil && e.q.Length() != 0 {
		f := e.q.Remove().(func())
		e.mu.Unlock()
		f()
		e.mu.Lock()
	}

	e.running = false
	e.mu.Unlock()
}

// Spawn posts a unit of work.
//
// The work is added in a queue. To run it, either call the Run method, or
// call the Autorun method to set up an autorun function beforehand.
//
// Spawn is safe for concurrent use.
func (e *Executor) Spawn(f func()) {
	var autorun func()

	e.mu.Lock()

	if e.q == nil {
		e.q = queue.New()
	}

	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}

	e.q.Add(f)
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}
