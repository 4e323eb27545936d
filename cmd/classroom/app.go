package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studystack/classroom/internal/client"
	"github.com/studystack/classroom/internal/client/flows"
	"github.com/studystack/classroom/internal/client/guard"
	"github.com/studystack/classroom/internal/client/session"
	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/infrastructure/config"
	"github.com/studystack/classroom/pkg/logger"
)

// viewNavigator tracks the "current view" of the CLI so the 401 handler can
// tell whether the user was mid-login or somewhere that needs tearing down.
type viewNavigator struct {
	current string
}

func (n *viewNavigator) Current() string { return n.current }
func (n *viewNavigator) Go(path string)  { n.current = path }

// app is the wired client stack shared by every command.
type app struct {
	sessions *session.Manager
	client   *client.Client
	flow     *flows.Flow
	nav      *viewNavigator
	log      zerolog.Logger
}

// newApp loads config, opens the on-disk session, and builds the API client.
// view is the path the invoking command represents, so that a 401 during
// login does not bounce off the login view.
func newApp(ctx context.Context, view string) (*app, error) {
	cfg, err := config.LoadClient(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	path, err := session.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}
	sessions, err := session.NewManager(session.NewFileStore(path), log)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	nav := &viewNavigator{current: view}
	c, err := client.New(client.Config{
		BaseURL:   cfg.BaseURL,
		Sessions:  sessions,
		Navigator: nav,
		Timeout:   cfg.Timeout,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		sessions: sessions,
		client:   c,
		flow:     flows.New(c, sessions, log),
		nav:      nav,
		log:      log,
	}, nil
}

// requireRole gates a command body the same way the views gate themselves.
func (a *app) requireRole(role domain.Role) error {
	if d := guard.Evaluate(a.sessions.Session(), role); !d.Allowed() {
		return fmt.Errorf("this command needs a signed-in %s account — run 'classroom login' first", role)
	}
	return nil
}
