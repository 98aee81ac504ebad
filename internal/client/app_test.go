package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/mock"
	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/internal/service"
	"github.com/MKhiriev/keepno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	runs int
	err  error
}

func (f *fakeUI) Run(context.Context) error {
	f.runs++
	return f.err
}

type fakeCloser struct {
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return nil
}

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App:    config.ClientApp{SessionCookie: "cookie"},
		Export: config.ClientExport{NoteID: 7, Format: "pdf"},
	}
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	ui := &fakeUI{}
	storages := &fakeCloser{}

	gomock.InOrder(
		session.EXPECT().Restore(gomock.Any(), "cookie").Return(nil),
		session.EXPECT().Save(gomock.Any()).Return(nil),
	)

	app := newApp(testConfig(), storages, session, ui, logger.Nop())
	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)

	require.NoError(t, app.Close())
	assert.True(t, storages.closed)
}

func TestApp_Run_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	ui := &fakeUI{}

	session.EXPECT().Restore(gomock.Any(), "cookie").Return(service.ErrNoSession)

	app := newApp(testConfig(), &fakeCloser{}, session, ui, logger.Nop())
	err := app.Run(context.Background())

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, ui.runs)
}

func TestApp_Run_UIErrorStillSavesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	uiErr := errors.New("terminal gone")

	session.EXPECT().Restore(gomock.Any(), "cookie").Return(nil)
	session.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))

	app := newApp(testConfig(), &fakeCloser{}, session, &fakeUI{err: uiErr}, logger.Nop())
	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}

func TestExporter_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	exports := mock.NewMockClientExportService(ctrl)
	var out bytes.Buffer

	const location = "http://keepno.local/media/notes/pdf/note_7.pdf"
	session.EXPECT().Restore(gomock.Any(), "cookie").Return(nil)
	exports.EXPECT().Export(gomock.Any(), models.ItemID(7), "pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ItemID, _ string, obs poller.Observer) (string, error) {
			obs.Observe(poller.Update{State: poller.Started})
			obs.Observe(poller.Update{State: poller.Polling, Progress: 50, Attempt: 1})
			obs.Observe(poller.Update{State: poller.Polling, Progress: 50, Attempt: 2})
			obs.Observe(poller.Update{State: poller.Succeeded, Progress: 100, Attempt: 3, Result: "/media/notes/pdf/note_7.pdf"})
			return location, nil
		})
	session.EXPECT().Save(gomock.Any()).Return(nil)

	e := newExporter(testConfig(), &fakeCloser{}, session, exports, newLineReporter(&out), logger.Nop())
	got, err := e.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, location, got)
	assert.Equal(t, "export started 0%\nexport polling 50%\nexport succeeded 100%\n", out.String())
}

func TestExporter_Run_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	exports := mock.NewMockClientExportService(ctrl)

	session.EXPECT().Restore(gomock.Any(), "cookie").Return(nil)
	exports.EXPECT().Export(gomock.Any(), models.ItemID(7), "pdf", gomock.Any()).
		Return("", poller.ErrTaskFailed)
	session.EXPECT().Save(gomock.Any()).Return(nil)

	e := newExporter(testConfig(), &fakeCloser{}, session, exports, newLineReporter(&bytes.Buffer{}), logger.Nop())
	_, err := e.Run(context.Background())

	assert.ErrorIs(t, err, poller.ErrTaskFailed)
}

func TestBarReporter_WritesProgress(t *testing.T) {
	var out bytes.Buffer
	r := newBarReporter(&out)

	r.Observe(poller.Update{State: poller.Polling, Progress: 30})
	r.Finish(true)

	assert.Contains(t, out.String(), "exporting")
}
