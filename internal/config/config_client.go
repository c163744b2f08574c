package config

import "time"

// ClientConfig is the view of the merged configuration consumed by the client
// application wiring.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// ClientApp holds session-file and version settings.
type ClientApp struct {
	SessionFile   string
	SessionSecret string
	Version       string
}

// ClientAdapter holds the backend transport settings.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientStorage holds local persistence settings.
type ClientStorage struct {
	CacheDSN     string
	DownloadsDir string
}

// ClientWorkers holds background job settings.
type ClientWorkers struct {
	DownloadConcurrency  int
	TokenRefreshInterval time.Duration
	TokenRefreshLeeway   time.Duration
}

// GetClientConfig loads the merged configuration and projects it into the
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SessionFile:   cfg.App.SessionFile,
			SessionSecret: cfg.App.SessionSecret,
			Version:       cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CacheDSN:     cfg.Storage.DB.DSN,
			DownloadsDir: cfg.Storage.Downloads.Dir,
		},
		Workers: ClientWorkers{
			DownloadConcurrency:  cfg.Workers.DownloadConcurrency,
			TokenRefreshInterval: cfg.Workers.TokenRefreshInterval,
			TokenRefreshLeeway:   cfg.Workers.TokenRefreshLeeway,
		},
	}
}
