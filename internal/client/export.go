// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/service"
	"github.com/MKhiriev/keepno/internal/store"
	"github.com/MKhiriev/keepno/models"
)

// Exporter exports one note without a terminal UI and prints the download
// URL.
type Exporter struct {
	cfg      *config.ClientConfig
	storages closer
	session  service.ClientSessionService
	exports  service.ClientExportService
	progress progressReporter
	logger   *logger.Logger
}

// NewExporter builds the components of the headless export. Notifications
// and progress go to stderr so that stdout carries only the URL.
func NewExporter(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Exporter, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPNotesAdapter(cfg.Adapter, log.WithComponent("adapter"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create adapter: %w", err)
	}

	sink := notify.Multi{notify.NewLogSink(log.WithComponent("notify")), notify.NewWriterSink(os.Stderr)}
	services := service.NewClientServices(storages, api, sink, cfg.Poller, log)

	return newExporter(cfg, storages, services.SessionService, services.ExportService, newProgressReporter(os.Stderr), log), nil
}

func newExporter(
	cfg *config.ClientConfig,
	storages closer,
	session service.ClientSessionService,
	exports service.ClientExportService,
	progress progressReporter,
	log *logger.Logger,
) *Exporter {
	return &Exporter{
		cfg:      cfg,
		storages: storages,
		session:  session,
		exports:  exports,
		progress: progress,
		logger:   log,
	}
}

// Run exports the configured note and returns its download URL.
func (e *Exporter) Run(ctx context.Context) (string, error) {
	if err := e.session.Restore(ctx, e.cfg.App.SessionCookie); err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("restore session: %w", err)
	}

	noteID := models.ItemID(e.cfg.Export.NoteID)
	location, err := e.exports.Export(ctx, noteID, e.cfg.Export.Format, e.progress)
	e.progress.Finish(err == nil)

	if saveErr := e.session.Save(context.WithoutCancel(ctx)); saveErr != nil {
		e.logger.Err(saveErr).Str("func", "*Exporter.Run").Msg("save session")
	}
	if err != nil {
		return "", fmt.Errorf("export note %d: %w", noteID, err)
	}
	return location, nil
}

// Close closes the local store.
func (e *Exporter) Close() error {
	return e.storages.Close()
}
