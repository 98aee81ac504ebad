package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// State keeps the session cookie and the last opened note.
	State StateRepository

	// Exports keeps the history of finished exports.
	Exports ExportRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		State:   NewStateRepository(db, logger),
		Exports: NewExportRepository(db, logger),
		db:      db,
	}
}

// Close releases the database connection.
func (c *ClientStorages) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
