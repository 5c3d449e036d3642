package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/api"
	"github.com/careercompass/compass/internal/catalog"
	"github.com/careercompass/compass/internal/config"
	"github.com/careercompass/compass/internal/draft"
	"github.com/careercompass/compass/internal/logging"
	"github.com/careercompass/compass/internal/store"
)

// runtime bundles the collaborators built from configuration.
type runtime struct {
	cfg     config.Config
	log     *slog.Logger
	store   *store.Store
	catalog *catalog.Catalog
	drafts  *draft.Persistence

	closers []io.Closer
}

// setup loads configuration and opens the store. With logToFile the
// logger writes to compass.log in the data directory so the TUI owns the
// terminal.
func setup(cmd *cobra.Command, logToFile bool) (*runtime, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: cfgFile})
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	rt := &runtime{cfg: cfg}

	logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()}
	if logToFile {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		f, err := logging.OpenFile(filepath.Join(dir, "compass.log"))
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, f)
		logCfg.Output = f
	}
	rt.log = logging.New(logCfg)

	dbPath, err := resolveDBPath(cmd, cfg.Store.DB)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.store = st
	rt.closers = append(rt.closers, st)

	rt.catalog = catalog.Builtin()
	if cfg.Catalog.File != "" {
		if rt.catalog, err = catalog.Load(cfg.Catalog.File); err != nil {
			rt.Close()
			return nil, err
		}
	}

	backend, err := draftBackend(cfg, st)
	if err != nil {
		rt.Close()
		return nil, err
	}
	events := st.EventRepo()
	rt.drafts = draft.NewPersistence(backend,
		draft.WithKey(cfg.Draft.Key),
		draft.WithLogger(rt.log),
		draft.WithDiscardHook(func(ctx context.Context, cause error) {
			err := events.AppendWizardEvent(ctx, store.WizardEventData{
				Kind:   store.WizardEventDiscarded,
				Detail: cause.Error(),
			})
			if err != nil {
				rt.log.Warn("record draft discard failed", "error", err)
			}
		}),
	)
	return rt, nil
}

// client builds the backend API client.
func (rt *runtime) client() (*api.Client, error) {
	return api.New(rt.cfg.API, api.WithLogger(rt.log))
}

// Close releases the store and the log file, in reverse order of opening.
func (rt *runtime) Close() error {
	var first error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	rt.closers = nil
	return first
}

// draftBackend selects where drafts are kept.
func draftBackend(cfg config.Config, st *store.Store) (draft.Backend, error) {
	switch cfg.Draft.Backend {
	case config.DraftBackendMemory:
		return draft.NewMemoryBackend(), nil
	case config.DraftBackendFile:
		dir := cfg.Draft.Dir
		if dir == "" {
			data, err := store.DataDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(data, "drafts")
		}
		return draft.NewFileBackend(dir)
	default:
		return st.DraftRepo(), nil
	}
}
