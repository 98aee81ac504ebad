package listsync

import "errors"

var (
	// ErrExhausted is returned by LoadNextPage once the last page was applied.
	ErrExhausted = errors.New("collection exhausted")
	// ErrFetchInFlight is returned by LoadNextPage while another page fetch of
	// the same list is outstanding.
	ErrFetchInFlight = errors.New("page fetch already in flight")
	// ErrFetchFailed wraps the cause of a failed page fetch.
	ErrFetchFailed = errors.New("page fetch failed")
	// ErrClosed is returned by operations on a closed Engine.
	ErrClosed = errors.New("list closed")
)
