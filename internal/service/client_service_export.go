package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/internal/store"
	"github.com/MKhiriev/keepno/models"
)

// SupportedExportFormats lists the formats the server can render.
var SupportedExportFormats = []string{"pdf"}

type clientExportService struct {
	api     adapter.NotesAPI
	poller  *poller.Poller
	exports store.ExportRepository
	sink    notify.Sink
	logger  *logger.Logger
	now     func() time.Time
}

// NewClientExportService returns a [ClientExportService]. exports may be nil,
// in which case no history is kept.
func NewClientExportService(
	api adapter.NotesAPI,
	p *poller.Poller,
	exports store.ExportRepository,
	sink notify.Sink,
	log *logger.Logger,
) ClientExportService {
	return &clientExportService{
		api:     api,
		poller:  p,
		exports: exports,
		sink:    sink,
		logger:  log,
		now:     time.Now,
	}
}

func (s *clientExportService) Export(ctx context.Context, noteID models.ItemID, format string, observer poller.Observer) (string, error) {
	log := s.logger.With().Int64("note_id", int64(noteID)).Str("format", format).Logger()

	if noteID <= 0 {
		return "", ErrInvalidNoteID
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !slices.Contains(SupportedExportFormats, format) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	handle, err := s.api.ExportNote(ctx, noteID, format)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("func", "clientExportService.Export").Msg("export was not started")
		s.reportTriggerError(err)
		return "", fmt.Errorf("start export: %w", err)
	}

	res, err := s.poller.Poll(ctx, handle, observer)
	if err != nil {
		log.Err(err).Str("func", "clientExportService.Export").Str("task_id", handle.TaskID).Msg("export failed")
		if !errors.Is(err, poller.ErrPollingCancelled) {
			notify.Send(s.sink, notify.Error, MsgExportFailed)
		}
		s.record(ctx, models.ExportRecord{NoteID: noteID, TaskID: handle.TaskID, Format: format, State: models.ExportFailed})
		return "", fmt.Errorf("export note %s: %w", noteID, err)
	}

	location := s.api.ResolveURL(res.Location)
	notify.Send(s.sink, notify.Success, MsgExportSucceeded)
	log.Info().Str("task_id", handle.TaskID).Str("location", location).Msg("export finished")

	s.record(ctx, models.ExportRecord{
		NoteID:   noteID,
		TaskID:   handle.TaskID,
		Format:   format,
		State:    models.ExportSucceeded,
		Location: location,
	})
	return location, nil
}

func (s *clientExportService) reportTriggerError(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	var valErr *models.ValidationError
	if errors.As(err, &valErr) {
		notify.Send(s.sink, notify.Error, notify.FormatErrorDetail(MsgExportRejected, valErr.Detail))
		return
	}
	notify.Send(s.sink, notify.Error, MsgExportFailed)
}

// record keeps the export in the local history; a failure is only logged.
func (s *clientExportService) record(ctx context.Context, r models.ExportRecord) {
	if s.exports == nil {
		return
	}
	r.FinishedAt = s.now().UTC()
	// the export context may already be cancelled
	if err := s.exports.SaveExport(context.WithoutCancel(ctx), r); err != nil {
		s.logger.Err(err).Str("func", "clientExportService.record").Msg("failed to save export history")
	}
}

func (s *clientExportService) History(ctx context.Context, noteID models.ItemID, limit uint64) ([]models.ExportRecord, error) {
	if s.exports == nil {
		return nil, nil
	}
	records, err := s.exports.RecentExports(ctx, noteID, limit)
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	return records, nil
}
