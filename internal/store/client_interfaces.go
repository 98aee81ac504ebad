package store

import (
	"context"

	"github.com/MKhiriev/keepno/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the values kept in the client_state table.
const (
	StateKeySession  = "session_cookie"
	StateKeyLastNote = "last_note_id"
)

// StateRepository is a small key/value store for client state that must
// survive restarts.
type StateRepository interface {
	// Get returns the value stored under key or ErrStateNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ExportRepository keeps the history of finished exports.
type ExportRepository interface {
	SaveExport(ctx context.Context, record models.ExportRecord) error

	// RecentExports returns up to limit exports of a note, newest first. A
	// zero noteID returns exports of every note.
	RecentExports(ctx context.Context, noteID models.ItemID, limit uint64) ([]models.ExportRecord, error)
}
