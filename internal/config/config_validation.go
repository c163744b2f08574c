package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress          = "http://localhost:8080"
	defaultRequestTimeout       = 15 * time.Second
	defaultDownloadConcurrency  = 4
	defaultTokenRefreshInterval = 30 * time.Second
	defaultTokenRefreshLeeway   = time.Minute

	defaultSessionFileName = "session.bin"
	defaultCacheFileName   = "lumapix.db"
	defaultDownloadsSubdir = "lumapix"
)

// validate fills unset fields with defaults. All client settings have a
// workable default, so the merged config never fails validation outright; the
// method keeps the error return for settings that may become mandatory.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	if cfg.App.SessionFile == "" {
		cfg.App.SessionFile = defaultUserPath(defaultSessionFileName)
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultUserPath(defaultCacheFileName)
	}
	if cfg.Storage.Downloads.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Storage.Downloads.Dir = filepath.Join(home, "Downloads", defaultDownloadsSubdir)
	}

	if cfg.Workers.DownloadConcurrency <= 0 {
		cfg.Workers.DownloadConcurrency = defaultDownloadConcurrency
	}
	if cfg.Workers.TokenRefreshInterval <= 0 {
		cfg.Workers.TokenRefreshInterval = defaultTokenRefreshInterval
	}
	if cfg.Workers.TokenRefreshLeeway <= 0 {
		cfg.Workers.TokenRefreshLeeway = defaultTokenRefreshLeeway
	}

	return nil
}

// defaultUserPath places name under the user config dir, falling back to the
// working directory when the platform dir cannot be resolved.
func defaultUserPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}

	return filepath.Join(dir, "lumapix", name)
}
