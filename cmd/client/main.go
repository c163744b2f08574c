package main

import (
	"fmt"

	"github.com/lumapix/lumapix-client/internal/adapter"
	"github.com/lumapix/lumapix-client/internal/client"
	"github.com/lumapix/lumapix-client/internal/config"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/service"
	"github.com/lumapix/lumapix-client/internal/session"
	"github.com/lumapix/lumapix-client/internal/store"
	"github.com/lumapix/lumapix-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("lumapix-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sessions, err := session.NewFileStore(cfg.App.SessionFile, cfg.App.SessionSecret, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sessions, log,
		adapter.WithAuthFailureHandler(func() {
			log.Warn().Msg("session rejected by backend, sign-in required")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, sessions, cfg, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
