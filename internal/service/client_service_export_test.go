// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/mock"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sinkRecorder struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (s *sinkRecorder) Notify(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
}

func (s *sinkRecorder) All() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Notification(nil), s.got...)
}

var exportAt = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func newTestExportSvc(t *testing.T) (*clientExportService, *mock.MockNotesAPI, *mock.MockExportRepository, *sinkRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockNotesAPI(ctrl)
	exports := mock.NewMockExportRepository(ctrl)
	sink := &sinkRecorder{}

	p := poller.NewPoller(api, config.ClientPoller{Interval: time.Millisecond, MaxAttempts: 5}, logger.Nop())
	svc := NewClientExportService(api, p, exports, sink, logger.Nop()).(*clientExportService)
	svc.now = func() time.Time { return exportAt }
	return svc, api, exports, sink
}

func TestClientExportService_Export_Success(t *testing.T) {
	svc, api, exports, sink := newTestExportSvc(t)
	ctx := context.Background()
	handle := models.TaskHandle{TaskID: "42", StatusURL: "/api/task/42"}

	var progress []int
	observer := poller.ObserverFunc(func(u poller.Update) { progress = append(progress, u.Progress) })

	gomock.InOrder(
		api.EXPECT().ExportNote(ctx, models.ItemID(7), "pdf").Return(handle, nil),
		api.EXPECT().TaskStatus(ctx, handle).Return(models.TaskStatus{State: models.TaskProgress, Progress: 30}, nil),
		api.EXPECT().TaskStatus(ctx, handle).Return(models.TaskStatus{State: models.TaskSuccess, Progress: 100, Result: "/files/42.pdf"}, nil),
		api.EXPECT().ResolveURL("/files/42.pdf").Return("http://localhost:5000/files/42.pdf"),
	)
	exports.EXPECT().SaveExport(gomock.Any(), models.ExportRecord{
		NoteID:     7,
		TaskID:     "42",
		Format:     "pdf",
		State:      models.ExportSucceeded,
		Location:   "http://localhost:5000/files/42.pdf",
		FinishedAt: exportAt,
	}).Return(nil)

	location, err := svc.Export(ctx, 7, " PDF ", observer)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/files/42.pdf", location)
	assert.Equal(t, []int{0, 30, 100}, progress)

	notes := sink.All()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.Success, notes[0].Severity)
	assert.Equal(t, MsgExportSucceeded, notes[0].Body)
}

func TestClientExportService_Export_TriggerRejected(t *testing.T) {
	svc, api, _, sink := newTestExportSvc(t)
	valErr := &models.ValidationError{
		StatusCode: http.StatusBadRequest,
		Detail:     models.ErrorDetail{Message: "Note has no entries."},
	}
	api.EXPECT().ExportNote(gomock.Any(), models.ItemID(7), "pdf").
		Return(models.TaskHandle{}, fmt.Errorf("%w: %w", adapter.ErrBadRequest, valErr))

	_, err := svc.Export(context.Background(), 7, "pdf", nil)
	require.Error(t, err)

	notes := sink.All()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.Error, notes[0].Severity)
	assert.Contains(t, notes[0].Body, MsgExportRejected)
	assert.Contains(t, notes[0].Body, "Note has no entries.")
}

func TestClientExportService_Export_TriggerTransportError(t *testing.T) {
	svc, api, _, sink := newTestExportSvc(t)
	api.EXPECT().ExportNote(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.TaskHandle{}, fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport))

	_, err := svc.Export(context.Background(), 7, "pdf", nil)
	assert.ErrorIs(t, err, adapter.ErrTransport)

	notes := sink.All()
	require.Len(t, notes, 1)
	assert.Equal(t, MsgExportFailed, notes[0].Body)
}

func TestClientExportService_Export_TaskFailure(t *testing.T) {
	svc, api, exports, sink := newTestExportSvc(t)
	ctx := context.Background()
	handle := models.TaskHandle{TaskID: "9"}

	api.EXPECT().ExportNote(ctx, models.ItemID(3), "pdf").Return(handle, nil)
	api.EXPECT().TaskStatus(ctx, handle).Return(models.TaskStatus{State: models.TaskFailure}, nil)
	exports.EXPECT().SaveExport(gomock.Any(), models.ExportRecord{
		NoteID:     3,
		TaskID:     "9",
		Format:     "pdf",
		State:      models.ExportFailed,
		FinishedAt: exportAt,
	}).Return(nil)

	_, err := svc.Export(ctx, 3, "pdf", nil)
	assert.ErrorIs(t, err, poller.ErrTaskFailed)

	notes := sink.All()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.Error, notes[0].Severity)
	assert.Equal(t, MsgExportFailed, notes[0].Body)
}

func TestClientExportService_Export_CancelledIsSilent(t *testing.T) {
	svc, api, exports, sink := newTestExportSvc(t)
	ctx, cancel := context.WithCancel(context.Background())
	handle := models.TaskHandle{TaskID: "9"}

	api.EXPECT().ExportNote(ctx, models.ItemID(3), "pdf").DoAndReturn(
		func(context.Context, models.ItemID, string) (models.TaskHandle, error) {
			cancel()
			return handle, nil
		})
	exports.EXPECT().SaveExport(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Export(ctx, 3, "pdf", nil)
	assert.ErrorIs(t, err, poller.ErrPollingCancelled)
	assert.Empty(t, sink.All())
}

func TestClientExportService_Export_HistoryFailureDoesNotFailExport(t *testing.T) {
	svc, api, exports, _ := newTestExportSvc(t)
	ctx := context.Background()
	handle := models.TaskHandle{TaskID: "1"}

	api.EXPECT().ExportNote(ctx, models.ItemID(1), "pdf").Return(handle, nil)
	api.EXPECT().TaskStatus(ctx, handle).Return(models.TaskStatus{State: models.TaskSuccess, Result: "/r.pdf"}, nil)
	api.EXPECT().ResolveURL("/r.pdf").Return("http://h/r.pdf")
	exports.EXPECT().SaveExport(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	location, err := svc.Export(ctx, 1, "pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://h/r.pdf", location)
}

func TestClientExportService_Export_InvalidInput(t *testing.T) {
	svc, _, _, sink := newTestExportSvc(t)

	_, err := svc.Export(context.Background(), 0, "pdf", nil)
	assert.ErrorIs(t, err, ErrInvalidNoteID)

	_, err = svc.Export(context.Background(), 1, "docx", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.Empty(t, sink.All())
}

func TestClientExportService_History(t *testing.T) {
	svc, _, exports, _ := newTestExportSvc(t)
	ctx := context.Background()
	want := []models.ExportRecord{{ID: 1, NoteID: 7, State: models.ExportSucceeded}}

	exports.EXPECT().RecentExports(ctx, models.ItemID(7), uint64(5)).Return(want, nil)

	got, err := svc.History(ctx, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientExportService_WithoutHistory(t *testing.T) {
	api := mock.NewMockNotesAPI(gomock.NewController(t))
	p := poller.NewPoller(api, config.ClientPoller{Interval: time.Millisecond, MaxAttempts: 1}, logger.Nop())
	svc := NewClientExportService(api, p, nil, nil, logger.Nop())

	got, err := svc.History(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "unauthorized", in: adapter.ErrUnauthorized, want: ErrSessionExpired},
		{name: "forbidden", in: adapter.ErrForbidden, want: ErrSessionExpired},
		{name: "not found", in: adapter.ErrNotFound, want: ErrNoteNotFound},
		{name: "passthrough", in: adapter.ErrTransport, want: adapter.ErrTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(fmt.Errorf("wrapped: %w", tt.in))
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}
	assert.NoError(t, mapAdapterError(nil))
}
