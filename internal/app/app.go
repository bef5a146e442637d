// Package app wires the application together: environment, storage,
// LLM provider, and the feature services on top of them.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/llm"
	"github.com/tolgahan/oka/internal/profile"
	"github.com/tolgahan/oka/internal/reading"
	"github.com/tolgahan/oka/internal/reward"
	"github.com/tolgahan/oka/internal/store"
	"github.com/tolgahan/oka/internal/story"
)

// App holds the assembled services. Commands reach everything through it.
type App struct {
	Log     *zap.Logger
	Store   *store.Store
	Profile *profile.Store

	Stories  *story.Service
	Readings *reading.Service
	Rewards  *reward.Service
	Images   *reward.Client

	// HasProvider reports whether an LLM backend was configured. When
	// false the services run on their deterministic fallbacks only.
	HasProvider bool
}

// Options control how New assembles the application.
type Options struct {
	// DBPath overrides the default database location.
	DBPath string
	// Debug switches the logger to development output.
	Debug bool
}

// New loads .env if present, opens the database, and builds the service
// graph. A missing or invalid LLM configuration is not fatal: every
// service degrades to its built-in fallback content.
func New(ctx context.Context, opts Options) (*App, error) {
	godotenv.Load()

	log, err := newLogger(opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolving database path: %w", err)
		}
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	profiles, err := profile.NewStore(profile.NewStateRepo(st.RecordRepo()), log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("loading profile state: %w", err)
	}

	a := &App{
		Log:     log,
		Store:   st,
		Profile: profiles,
		Images:  reward.NewClient(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
	if err != nil {
		log.Warn("no LLM provider configured, using fallback content", zap.Error(err))
		provider = nil
	} else {
		a.HasProvider = true
	}

	a.Stories = story.NewService(provider, story.DefaultConfig(), log)
	a.Readings = reading.NewService(provider, reading.DefaultConfig(), log)
	a.Rewards = reward.NewService(provider, reward.DefaultConfig(), log)

	return a, nil
}

// Close flushes the logger and releases the database.
func (a *App) Close() error {
	a.Log.Sync()
	return a.Store.Close()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if v := os.Getenv("OKA_LOG_LEVEL"); v != "" {
		lvl, err := zap.ParseAtomicLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OKA_LOG_LEVEL %q: %w", v, err)
		}
		cfg.Level = lvl
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
