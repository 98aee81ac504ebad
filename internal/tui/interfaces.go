package tui

import (
	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/models"
)

// Collections opens the lists shown by the terminal UI.
type Collections interface {
	Notes() listsync.Collection
	Entries(noteID models.ItemID) listsync.Collection
}
