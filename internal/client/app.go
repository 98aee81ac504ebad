package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/service"
	"github.com/MKhiriev/keepno/internal/store"
	"github.com/MKhiriev/keepno/internal/tui"
	"github.com/MKhiriev/keepno/internal/workers"
	"github.com/MKhiriev/keepno/models"
)

// alertBuffer is the number of notifications queued for the UI.
const alertBuffer = 32

// ErrNoSession is returned by Run when no session cookie is configured or
// stored.
var ErrNoSession = errors.New("no keepno session: pass -session or set APP_SESSION_COOKIE")

// App is the interactive keepno client.
type App struct {
	cfg      *config.ClientConfig
	storages closer
	session  service.ClientSessionService
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

type closer interface {
	Close() error
}

var _ Client = (*App)(nil)

// NewApp connects the local store and builds every client component.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPNotesAdapter(cfg.Adapter, log.WithComponent("adapter"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create adapter: %w", err)
	}

	alerts := notify.NewChannelSink(alertBuffer)
	sink := notify.Multi{notify.NewLogSink(log.WithComponent("notify")), alerts}

	services := service.NewClientServices(storages, api, sink, cfg.Poller, log)
	ui := tui.New(services, sink, alerts.C(), cfg.Export.Format, log.WithComponent("tui"))

	log.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.Commit).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("client initialised")

	return newApp(cfg, storages, services.SessionService, ui, log), nil
}

func newApp(cfg *config.ClientConfig, storages closer, session service.ClientSessionService, ui UI, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		storages: storages,
		session:  session,
		ui:       ui,
		workers:  workers.New(workers.NewSessionSaver(session, workers.DefaultSessionSaveInterval, log.WithComponent("workers"))),
		logger:   log,
	}
}

// Run restores the session and blocks in the UI. The session cookie is
// stored once more on the way out.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx, a.cfg.App.SessionCookie); err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return ErrNoSession
		}
		return fmt.Errorf("restore session: %w", err)
	}

	a.workers.Start(ctx)
	runErr := a.ui.Run(ctx)
	a.workers.Stop()

	if err := a.session.Save(context.WithoutCancel(ctx)); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("save session on exit")
	}
	return runErr
}

// Close closes the local store.
func (a *App) Close() error {
	return a.storages.Close()
}
