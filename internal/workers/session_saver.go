package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/keepno/internal/logger"
)

// DefaultSessionSaveInterval is used when NewSessionSaver gets a
// non-positive interval.
const DefaultSessionSaveInterval = time.Minute

// SessionSaver periodically stores the session cookie, which the server
// refreshes on every response, so that a crash does not lose it.
type SessionSaver struct {
	store    SessionStore
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSaver(store SessionStore, interval time.Duration, log *logger.Logger) *SessionSaver {
	if interval <= 0 {
		interval = DefaultSessionSaveInterval
	}
	return &SessionSaver{store: store, interval: interval, logger: log}
}

// Run implements [Worker].
func (s *SessionSaver) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.store.Save(ctx); err != nil {
				s.logger.Err(err).Str("func", "*SessionSaver.Run").Msg("save session")
			}
		}
	}
}
