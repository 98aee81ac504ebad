package listsync

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/keepno/internal/logger"
)

// Mode is the fill strategy of a FillController.
type Mode int

const (
	// Eager loads pages back to back until the viewport overflows.
	Eager Mode = iota
	// Lazy loads one page per loading indicator visibility event.
	Lazy
)

func (m Mode) String() string {
	if m == Lazy {
		return "lazy"
	}
	return "eager"
}

// FillController decides after every page whether to fetch the next one at
// once or to wait until the loading indicator is seen. The switch from Eager
// to Lazy happens at most once and is never undone.
type FillController struct {
	pager    Pager
	viewport Viewport
	logger   *logger.Logger

	mu           sync.Mutex
	mode         Mode
	eagerFetches int
	done         bool
	stopWatching func()
}

// NewFillController returns a controller in Eager mode.
func NewFillController(pager Pager, viewport Viewport, log *logger.Logger) *FillController {
	return &FillController{
		pager:    pager,
		viewport: viewport,
		logger:   log,
		mode:     Eager,
	}
}

// Start runs the eager phase. It returns once the collection is exhausted,
// the viewport overflows (the controller then switches to Lazy and watches
// the loading indicator) or a fetch fails. A failed fetch leaves the
// controller in Eager and is returned; the caller may call Start again.
// Start returns nil at once when another fetch of the list is in flight.
func (f *FillController) Start(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		f.mu.Lock()
		if f.mode == Lazy || f.done {
			f.mu.Unlock()
			return nil
		}
		f.mu.Unlock()

		more, err := f.pager.LoadNextPage(ctx)
		switch {
		case errors.Is(err, ErrFetchInFlight):
			// another Start owns the eager loop
			f.logger.Debug().Str("func", "*FillController.Start").Msg("fill already running")
			return nil
		case errors.Is(err, ErrExhausted):
			f.finish()
			return nil
		}

		f.mu.Lock()
		f.eagerFetches++
		f.mu.Unlock()

		switch {
		case err != nil:
			f.logger.Err(err).Str("func", "*FillController.Start").Msg("eager fill stopped")
			return err
		case !more:
			f.finish()
			return nil
		}

		if !f.viewport.Overflows() {
			continue
		}

		f.switchToLazy(ctx)
		return nil
	}
}

func (f *FillController) switchToLazy(ctx context.Context) {
	f.mu.Lock()
	if f.mode == Lazy {
		f.mu.Unlock()
		return
	}
	f.mode = Lazy
	eagerFetches := f.eagerFetches
	f.mu.Unlock()

	f.logger.Debug().
		Str("func", "*FillController.switchToLazy").
		Int("eager_fetches", eagerFetches).
		Msg("switched to lazy fill")

	// the viewport may fire the trigger before WatchIndicator returns
	stop := f.viewport.WatchIndicator(func() { f.onIndicatorVisible(ctx) })

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		stop()
		return
	}
	f.stopWatching = stop
}

func (f *FillController) onIndicatorVisible(ctx context.Context) {
	more, err := f.pager.LoadNextPage(ctx)
	switch {
	case errors.Is(err, ErrFetchInFlight):
		return
	case errors.Is(err, ErrExhausted), errors.Is(err, ErrClosed):
		f.finish()
	case err != nil:
		// already notified by the engine; the next visibility event retries
		return
	case !more:
		f.finish()
	}
}

func (f *FillController) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.done = true
	if f.stopWatching != nil {
		f.stopWatching()
		f.stopWatching = nil
	}
}

// Stop detaches the visibility trigger.
func (f *FillController) Stop() {
	f.finish()
}

// Mode returns the current fill mode.
func (f *FillController) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// EagerFetches returns the number of pages requested in Eager mode.
func (f *FillController) EagerFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.eagerFetches
}

// Done reports whether the controller has stopped for good.
func (f *FillController) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}
