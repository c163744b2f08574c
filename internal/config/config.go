package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the lumapix
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the session file location, the
	// secret protecting it at rest, and the client version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and timeout used by the transport
	// layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache database and download directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings: batch download concurrency and
	// the proactive token refresh schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags. Populated via the CONFIG
	// environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionFile is the path of the encrypted session file that lets a
	// relaunched client restore its authenticated session.
	// Env: APP_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`

	// SessionSecret is the passphrase the session file is encrypted with.
	// Must be kept confidential.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the lumapix backend
	// (e.g. "https://api.lumapix.example").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the client-side deadline for a single outbound
	// request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`

	// Downloads holds the download target settings.
	Downloads Downloads `envPrefix:"DOWNLOADS_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path (or ":memory:") the gallery cache lives in.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Downloads holds file-system settings for saved photos.
type Downloads struct {
	// Dir is the directory batch downloads are written into.
	// Env: STORAGE_DOWNLOADS_DIR
	Dir string `env:"DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DownloadConcurrency is the number of photos fetched in parallel during
	// a batch download.
	// Env: WORKERS_DOWNLOAD_CONCURRENCY
	DownloadConcurrency int `env:"DOWNLOAD_CONCURRENCY"`

	// TokenRefreshInterval defines how often the token job checks the access
	// token's remaining lifetime.
	// Env: WORKERS_TOKEN_REFRESH_INTERVAL
	TokenRefreshInterval time.Duration `env:"TOKEN_REFRESH_INTERVAL"`

	// TokenRefreshLeeway is how long before expiry the token job refreshes
	// the access token.
	// Env: WORKERS_TOKEN_REFRESH_LEEWAY
	TokenRefreshLeeway time.Duration `env:"TOKEN_REFRESH_LEEWAY"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (later sources
// fill fields earlier sources left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
