// Package workers provides abstractions for managing and running
// background workers in the application.
//
// It defines the Worker interface, a Workers aggregate that allows running
// and stopping multiple workers in a unified way, and a bounded Pool that
// takes CPU-heavy jobs (password hashing) off the goroutines serving
// requests.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
// Shutdown stops the worker and blocks until its goroutines have exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()      { go w.loop() }
//	func (w *MyWorker) Shutdown() { w.stop() }
type Worker interface {
	Run()
	Shutdown()
}

// Offloader accepts jobs for execution on goroutines it owns.
//
// Submit never blocks waiting for capacity. It either queues job or returns
// an error wrapping [ErrOffloadFailed]. ctx is the context of the caller and
// is used for logging only; a queued job always runs.
type Offloader interface {
	Submit(ctx context.Context, job func()) error
}
