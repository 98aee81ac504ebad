package poller

import (
	"context"

	"github.com/MKhiriev/keepno/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/poller_mock.go -package=mock

// StatusSource returns the current status of a background job.
type StatusSource interface {
	TaskStatus(ctx context.Context, handle models.TaskHandle) (models.TaskStatus, error)
}

// Observer receives every state change and progress report of a poll.
// Observe is called from the polling goroutine and must not block.
type Observer interface {
	Observe(u Update)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(u Update)

// Observe implements [Observer].
func (f ObserverFunc) Observe(u Update) { f(u) }
