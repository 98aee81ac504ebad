package tui

import (
	"context"

	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive terminal front end of keepno.
type TUI struct {
	collections Collections
	session     service.ClientSessionService
	exports     service.ClientExportService
	sink        notify.Sink
	alerts      <-chan notify.Notification
	format      string
	logger      *logger.Logger
}

// New returns a TUI. Lists and exports notify sink; alerts is the channel
// the alert strip reads from, normally the receive side of a
// [notify.ChannelSink] included in sink.
func New(
	services *service.ClientServices,
	sink notify.Sink,
	alerts <-chan notify.Notification,
	exportFormat string,
	log *logger.Logger,
) *TUI {
	return &TUI{
		collections: services,
		session:     services.SessionService,
		exports:     services.ExportService,
		sink:        sink,
		alerts:      alerts,
		format:      exportFormat,
		logger:      log,
	}
}

// Run shows the notes list and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
