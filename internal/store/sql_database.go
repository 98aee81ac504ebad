package store

import (
	"database/sql"

	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/migrations"
)

// DB is the local SQLite connection shared by the client repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
