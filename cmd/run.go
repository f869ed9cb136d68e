package cmd

import (
	"fmt"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/app"
	"github.com/prepdeck/prepdeck/internal/session"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

// openEnv bundles the per-invocation dependencies the commands share.
type openEnv struct {
	Store   *store.Store
	Session *session.Session
	Client  *api.Client
}

// openAll opens the store, loads the persisted session, and builds the
// API client with the stored token. Callers must Close the store.
func openAll(cmd *cobra.Command) (*openEnv, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sess, err := session.Load(cmd.Context(), st.CredentialRepo())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load session: %w", err)
	}

	cfg := api.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		st.Close()
		return nil, err
	}
	if cfg.Token == "" {
		cfg.Token = sess.Token()
	}

	return &openEnv{
		Store:   st,
		Session: sess,
		Client:  api.New(cfg),
	}, nil
}

func (e *openEnv) Close() {
	e.Store.Close()
}

// runApp opens everything and launches the TUI.
func runApp(cmd *cobra.Command) error {
	env, err := openAll(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	return app.Run(app.Options{
		Client:  env.Client,
		Session: env.Session,
		Sync:    env.Store.SyncRepo(),
	})
}

// requireLogin returns an error unless a token is stored.
func requireLogin(env *openEnv) error {
	_, err := env.Session.RequireToken()
	return err
}
