package client

import (
	"context"
	"errors"

	"github.com/lumapix/lumapix-client/internal/config"
	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/service"
	"github.com/lumapix/lumapix-client/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run alternates between the login flow and the gallery screens until the
// user quits. A restored on-disk session skips the login flow entirely; a
// sign-out or expired session loops back into it.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if !a.services.AuthService.Restore() {
			user, err := a.tui.LoginFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
			a.logger.Info().Int64("user_id", user.UserID).Msg("signed in via login flow")
		}

		a.services.TokenJob.Start(ctx, a.workers.TokenRefreshInterval, a.workers.TokenRefreshLeeway)

		logout, err := a.tui.MainLoop(ctx)
		a.services.TokenJob.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout failed")
		}
	}
}
