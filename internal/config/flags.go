package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a backend address (e.g. "https://api.lumapix.example")
//	-request-timeout outbound request timeout (e.g. "15s")
//	-d local cache database path
//	-downloads-dir directory batch downloads are written into
//	-session-file encrypted session file path
//	-session-secret passphrase protecting the session file
//	-download-concurrency photos fetched in parallel during batch download
//	-token-refresh-interval token job tick interval (e.g. "30s")
//	-token-refresh-leeway refresh this long before token expiry (e.g. "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("lumapix-client", flag.ContinueOnError)

	var address string
	var requestTimeout time.Duration
	var cacheDSN string
	var downloadsDir string
	var sessionFile string
	var sessionSecret string
	var downloadConcurrency int
	var tokenRefreshInterval time.Duration
	var tokenRefreshLeeway time.Duration
	var jsonConfigPath string

	fs.StringVar(&address, "a", "", "Backend base address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&cacheDSN, "d", "", "Local cache database path")
	fs.StringVar(&downloadsDir, "downloads-dir", "", "Batch download directory")
	fs.StringVar(&sessionFile, "session-file", "", "Encrypted session file path")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session file passphrase")
	fs.IntVar(&downloadConcurrency, "download-concurrency", 0, "Parallel photo downloads")
	fs.DurationVar(&tokenRefreshInterval, "token-refresh-interval", 0, "Token job tick interval")
	fs.DurationVar(&tokenRefreshLeeway, "token-refresh-leeway", 0, "Refresh this long before expiry")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		// Unknown flags leave the flag source empty; the other sources still
		// apply.
		return &StructuredConfig{}
	}

	return &StructuredConfig{
		App: App{
			SessionFile:   sessionFile,
			SessionSecret: sessionSecret,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:        DB{DSN: cacheDSN},
			Downloads: Downloads{Dir: downloadsDir},
		},
		Workers: Workers{
			DownloadConcurrency:  downloadConcurrency,
			TokenRefreshInterval: tokenRefreshInterval,
			TokenRefreshLeeway:   tokenRefreshLeeway,
		},
		JSONFilePath: jsonConfigPath,
	}
}
