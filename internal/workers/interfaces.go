// Package workers runs background jobs for the lifetime of the client
// process.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts a
// set of them in their own goroutines and waits for all of them on Stop.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (ticker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionStore persists the session cookie currently held by the adapter.
type SessionStore interface {
	Save(ctx context.Context) error
}
