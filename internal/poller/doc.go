// Package poller follows a background job on the keepno server until it
// reaches a terminal state.
//
// A [Poller] issues one status request at a time. While the job reports
// PENDING or PROGRESS the next request is scheduled after a fixed interval;
// SUCCESS ends the loop with the job result, any other state or a transport
// error ends it as failed. The loop also stops when its context is cancelled
// or when the configured number of attempts is used up.
package poller
