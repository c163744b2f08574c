package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		SessionFile   string `json:"session_file"`
		SessionSecret string `json:"session_secret"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Downloads struct {
			Dir string `json:"dir"`
		} `json:"downloads,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		DownloadConcurrency  int      `json:"download_concurrency"`
		TokenRefreshInterval Duration `json:"token_refresh_interval"`
		TokenRefreshLeeway   Duration `json:"token_refresh_leeway"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionFile:   jsonCfg.App.SessionFile,
			SessionSecret: jsonCfg.App.SessionSecret,
			Version:       jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Downloads: Downloads{
				Dir: jsonCfg.Storage.Downloads.Dir,
			},
		},
		Workers: Workers{
			DownloadConcurrency:  jsonCfg.Workers.DownloadConcurrency,
			TokenRefreshInterval: time.Duration(jsonCfg.Workers.TokenRefreshInterval),
			TokenRefreshLeeway:   time.Duration(jsonCfg.Workers.TokenRefreshLeeway),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
