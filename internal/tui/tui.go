package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/internal/service"
	"github.com/lumapix/lumapix-client/models"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the welcome/login/register screens until the user is signed
// in. Returns [ErrUserQuit] when the user leaves without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.User{}, result.err
	}

	return result.resultUser, nil
}

// MainLoop runs the gallery screens. logout is true when the user signed out
// or the session expired mid-run; the caller is expected to rerun LoginFlow
// in that case.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout || result.sessionExpired, nil
}
