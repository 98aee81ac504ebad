// Package notify delivers categorized user-facing messages (alerts).
//
// Producers call [Sink.Notify] and never wait for the message to be shown.
// The package ships a zerolog-backed sink, a buffered channel sink consumed by
// the terminal UI, and a fan-out sink combining several of them.
package notify
