package service

import (
	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/internal/store"
	"github.com/MKhiriev/keepno/models"
)

// ClientServices wires the client-side services to one adapter and one
// local store.
type ClientServices struct {
	SessionService ClientSessionService
	ExportService  ClientExportService

	api adapter.NotesAPI
}

func NewClientServices(storages *store.ClientStorages, api adapter.NotesAPI, sink notify.Sink, cfg config.ClientPoller, log *logger.Logger) *ClientServices {
	p := poller.NewPoller(api, cfg, log.WithComponent("poller"))

	return &ClientServices{
		SessionService: NewClientSessionService(storages.State, api, log.WithComponent("session")),
		ExportService:  NewClientExportService(api, p, storages.Exports, sink, log.WithComponent("export")),
		api:            api,
	}
}

// Notes returns the notes collection.
func (c *ClientServices) Notes() listsync.Collection {
	return NewNotesCollection(c.api)
}

// Entries returns the entries of the note with noteID.
func (c *ClientServices) Entries(noteID models.ItemID) listsync.Collection {
	return NewEntriesCollection(c.api, noteID)
}
