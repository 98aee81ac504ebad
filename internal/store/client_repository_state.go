package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/keepno/internal/logger"
)

type stateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewStateRepository returns a [StateRepository] backed by the client_state
// table.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *stateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("%w: %s", ErrStateNotFound, key)
	case err != nil:
		s.logger.Err(err).
			Str("func", "stateRepository.Get").
			Str("key", key).
			Msg("failed to read client state")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *stateRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertStateQuery(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "stateRepository.Set").
			Str("key", key).
			Msg("failed to store client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *stateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "stateRepository.Delete").
			Str("key", key).
			Msg("failed to delete client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
