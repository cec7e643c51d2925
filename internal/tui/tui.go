// Package tui implements the terminal user interface of the autoescola
// tool on top of Bubble Tea. It is a pure consumer of the service layer:
// every state change goes through a service call and the screens redraw
// from the returned results.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/models"
)

// ErrUserQuit reports that the user closed the program from the login
// screen instead of authenticating.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	version  string
}

func New(services *service.Services, version string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, version: version}, nil
}

// LoginFlow runs the login screen until the user authenticates or quits.
// Returns the established session on success and ErrUserQuit otherwise.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginModel(ctx, t.services.Auth, t.version)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return models.Session{}, ErrUserQuit
	}

	return *result.session, nil
}

// MainLoop runs the authenticated part of the UI for the given session.
// Returns logout=true when the user logged out (as opposed to quitting),
// so the caller can re-enter LoginFlow.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout, nil
}
