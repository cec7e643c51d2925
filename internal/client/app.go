package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/internal/tui"
	"github.com/rpassos/autoescola/internal/workers"
	"github.com/rpassos/autoescola/models"
)

// App ties the UI flows to the service layer. A process runs one App; the
// App runs login flow and main loop in a cycle until the user quits.
type App struct {
	services *service.Services
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, ws *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	return &App{services: services, tui: ui, workers: ws, logger: log}, nil
}

// Run starts the background workers and drives the session lifecycle:
// restore the persisted session if one exists, otherwise run the login
// flow; then enter the main loop. A logout loops back into a fresh login
// flow, a quit ends the process.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if a.workers != nil {
		a.workers.Run()
	}

	for {
		session, err := a.establishSession(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}

// establishSession restores the snapshot persisted by the last login, or
// falls back to the interactive login flow when none exists. A restored
// snapshot is trusted as-is.
func (a *App) establishSession(ctx context.Context) (models.Session, error) {
	session, err := a.services.Auth.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.tui.LoginFlow(ctx)
}
