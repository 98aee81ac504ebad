package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to settings left unset by every
// configuration source.
const (
	DefaultAdapterAddress  = "http://localhost:5000"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDSN             = "file:keepno.db?_foreign_keys=on"
	DefaultPollInterval    = 500 * time.Millisecond
	DefaultPollMaxAttempts = 1200
	DefaultExportFormat    = "pdf"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SessionCookie is the keepno session cookie value, possibly empty.
	SessionCookie string
	// LogFile is the client log file path, possibly empty.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the keepno server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientPoller contains task polling settings.
type ClientPoller struct {
	// Interval is the pause between two status fetches.
	Interval time.Duration
	// MaxAttempts caps the status fetches of one task.
	MaxAttempts int
}

// ClientExport contains the parameters of the headless export command.
type ClientExport struct {
	NoteID int64
	Format string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Poller contains export polling settings.
	Poller ClientPoller
	// Export contains headless export parameters.
	Export ClientExport
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], applies defaults to
// unset fields, maps the fields relevant to the client runtime, and validates
// the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// GetExportConfig is [GetClientConfig] for the headless export command: it
// additionally requires a note id.
func GetExportConfig() (*ClientConfig, error) {
	clientCfg, err := GetClientConfig()
	if err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validateExport()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionCookie: cfg.App.SessionCookie,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Poller: ClientPoller{
			Interval:    cfg.Poller.Interval,
			MaxAttempts: cfg.Poller.MaxAttempts,
		},
		Export: ClientExport{
			NoteID: cfg.Export.NoteID,
			Format: cfg.Export.Format,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Poller.Interval == 0 {
		cfg.Poller.Interval = DefaultPollInterval
	}
	if cfg.Poller.MaxAttempts == 0 {
		cfg.Poller.MaxAttempts = DefaultPollMaxAttempts
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}
}
