package service

import (
	"context"

	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService manages the keepno session cookie and the client state
// that survives restarts.
type ClientSessionService interface {
	// Restore installs a session cookie on the adapter. A non-empty
	// configured cookie wins over the stored one. Returns ErrNoSession when
	// neither is available.
	Restore(ctx context.Context, configured string) error

	// Save stores the adapter's current cookie, which the server may have
	// refreshed since Restore.
	Save(ctx context.Context) error

	// Forget removes the stored cookie, typically after ErrSessionExpired.
	Forget(ctx context.Context) error

	// LastOpenedNote returns the note opened most recently, if any.
	LastOpenedNote(ctx context.Context) (models.ItemID, bool)

	// RememberOpenedNote stores id as the most recently opened note.
	RememberOpenedNote(ctx context.Context, id models.ItemID) error
}

// ClientExportService runs note exports.
type ClientExportService interface {
	// Export starts a server-side export of a note, follows its progress
	// and returns the absolute download URL. Every outcome is reported to
	// the notification sink; observer receives progress updates and may be
	// nil.
	Export(ctx context.Context, noteID models.ItemID, format string, observer poller.Observer) (string, error)

	// History returns up to limit finished exports of a note, newest first.
	History(ctx context.Context, noteID models.ItemID, limit uint64) ([]models.ExportRecord, error)
}
