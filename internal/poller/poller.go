// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/models"
)

// State is the lifecycle state of one poll.
type State int

const (
	Started State = iota
	Polling
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Started:
		return "started"
	case Polling:
		return "polling"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further status request follows s.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Update is one observation reported to an [Observer].
type Update struct {
	State    State
	Progress int
	Attempt  int
	Result   string
}

// Result is the outcome of [Poller.Poll].
type Result struct {
	State    State
	Location string
	Attempts int
	Last     models.TaskStatus
}

// Poller polls a [StatusSource] at a fixed interval.
type Poller struct {
	source      StatusSource
	interval    time.Duration
	maxAttempts int
	logger      *logger.Logger
}

// NewPoller returns a Poller. A non-positive interval falls back to
// config.DefaultPollInterval and a non-positive attempt limit to
// config.DefaultPollMaxAttempts.
func NewPoller(source StatusSource, cfg config.ClientPoller, log *logger.Logger) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = config.DefaultPollInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = config.DefaultPollMaxAttempts
	}
	return &Poller{
		source:      source,
		interval:    cfg.Interval,
		maxAttempts: cfg.MaxAttempts,
		logger:      log,
	}
}

// Poll follows handle until the job succeeds or fails. Observer may be nil.
//
// The returned Result is always populated. A nil error means State is
// Succeeded and Location holds the job result; every failure returns State
// Failed together with an error wrapping one of the package sentinels.
// Cancellation of ctx wraps both ErrPollingCancelled and ctx.Err().
func (p *Poller) Poll(ctx context.Context, handle models.TaskHandle, observer Observer) (Result, error) {
	if observer == nil {
		observer = ObserverFunc(func(Update) {})
	}
	log := p.logger.With().Str("task_id", handle.TaskID).Logger()

	res := Result{State: Started}
	fail := func(err error) (Result, error) {
		res.State = Failed
		observer.Observe(Update{State: Failed, Progress: res.Last.Progress, Attempt: res.Attempts})
		log.Err(err).Str("func", "*Poller.Poll").Int("attempts", res.Attempts).Msg("task polling failed")
		return res, err
	}

	if handle.TaskID == "" {
		return fail(ErrInvalidHandle)
	}
	observer.Observe(Update{State: Started})

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrPollingCancelled, err))
		}
		select {
		case <-ctx.Done():
			return fail(fmt.Errorf("%w: %w", ErrPollingCancelled, ctx.Err()))
		case <-timer.C:
		}

		if res.Attempts >= p.maxAttempts {
			return fail(fmt.Errorf("%w: %d attempts", ErrTooManyAttempts, res.Attempts))
		}
		res.Attempts++

		status, err := p.source.TaskStatus(ctx, handle)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fail(fmt.Errorf("%w: %w", ErrPollingCancelled, err))
			}
			return fail(fmt.Errorf("%w: %w", ErrStatusFetch, err))
		}
		status.Progress = clampProgress(status.Progress)
		res.Last = status

		log.Debug().
			Str("func", "*Poller.Poll").
			Int("attempt", res.Attempts).
			Str("status", string(status.State)).
			Int("progress", status.Progress).
			Msg("task status")

		switch status.State {
		// a queued task reports PENDING until a worker picks it up
		case models.TaskPending, models.TaskProgress:
			res.State = Polling
			observer.Observe(Update{State: Polling, Progress: status.Progress, Attempt: res.Attempts})
			timer.Reset(p.interval)
		case models.TaskSuccess:
			res.State = Succeeded
			res.Location = status.Result
			observer.Observe(Update{State: Succeeded, Progress: status.Progress, Attempt: res.Attempts, Result: status.Result})
			return res, nil
		default:
			return fail(fmt.Errorf("%w: status %q", ErrTaskFailed, status.State))
		}
	}
}

func clampProgress(p int) int {
	return max(0, min(p, 100))
}
