package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/consent"
	"github.com/lafaom-mao/portal/internal/session"
	"github.com/lafaom-mao/portal/internal/store"
	"github.com/pkg/errors"
)

// app bundles what most commands need: the API client wired to the session
// token and, on demand, the snapshot database.
type app struct {
	client  *lafaom.Client
	session *session.Store
	consent *consent.Manager

	db *store.DbContext
}

func newApp() (*app, error) {

	stateDir, err := expandPath(cfg.Storage.StateDir)
	if err != nil {
		return nil, err
	}

	sessionStore := session.NewStore(stateDir)

	client := lafaom.NewClient(cfg.API.BaseURL)
	client.SetTokenSource(sessionStore)
	if cfg.API.MaxRequestsPerSecond > 0 {
		client.SetRateLimit(cfg.API.MaxRequestsPerSecond)
	}

	return &app{
		client:  client,
		session: sessionStore,
		consent: consent.NewManager(stateDir),
	}, nil
}

// openDb connects to the snapshot database, creating and seeding it on
// first use.
func (a *app) openDb() (*store.Snapshots, error) {

	if a.db == nil {
		connectionString, err := expandPath(cfg.Storage.ConnectionString)
		if err != nil {
			return nil, err
		}
		if dir := filepath.Dir(connectionString); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return nil, errors.Wrap(err, "failed to create state directory")
			}
		}

		db, err := store.NewDbContext(connectionString)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		a.db = db
	}

	return store.NewSnapshotRepository(a.db.DB), nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
	}
	return path, nil
}
