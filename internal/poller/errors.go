package poller

import "errors"

var (
	ErrInvalidHandle    = errors.New("task handle has no id")
	ErrTaskFailed       = errors.New("task finished without success")
	ErrStatusFetch      = errors.New("task status could not be fetched")
	ErrTooManyAttempts  = errors.New("task did not finish within the attempt limit")
	ErrPollingCancelled = errors.New("polling cancelled")
)
