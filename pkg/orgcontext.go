// Package orgcontext wires the context engine together: a directory store
// selected from configuration, an optional read cache, and the context
// assembler on top.
package orgcontext

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/Ingenimax/orgcontext-go/pkg/assembler"
	"github.com/Ingenimax/orgcontext-go/pkg/config"
	"github.com/Ingenimax/orgcontext-go/pkg/directory"
	"github.com/Ingenimax/orgcontext-go/pkg/directory/postgres"
	"github.com/Ingenimax/orgcontext-go/pkg/directory/supabase"
	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
)

// Engine is the top-level entry point: it owns the store, the cache layer
// and the assembler for one process.
type Engine struct {
	store     interfaces.DirectoryStore
	assembler *assembler.Assembler
	logger    logging.Logger
}

// EngineOption represents an option for configuring the engine
type EngineOption func(*Engine)

// WithStore overrides the configured directory store backend.
func WithStore(store interfaces.DirectoryStore) EngineOption {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. Without options the store backend, cache
// layer and assembler bounds come from configuration.
func NewEngine(options ...EngineOption) (*Engine, error) {
	e := &Engine{
		logger: logging.New(),
	}

	for _, option := range options {
		option(e)
	}

	if e.store == nil {
		store, err := storeFromConfig()
		if err != nil {
			return nil, err
		}
		e.store = store
	}

	e.assembler = assembler.New(e.store, assembler.WithLogger(e.logger))
	return e, nil
}

// BuildContext assembles the bounded context for one query.
func (e *Engine) BuildContext(ctx context.Context, query string) (*interfaces.Context, error) {
	return e.assembler.BuildContext(ctx, query)
}

// InvalidateCache clears the directory read cache when one is configured.
// It is intended for callers that just performed bulk directory edits.
func (e *Engine) InvalidateCache(ctx context.Context) error {
	invalidator, ok := e.store.(interfaces.CacheInvalidator)
	if !ok {
		return nil
	}
	return invalidator.InvalidateAll(ctx)
}

// Store exposes the underlying directory store, mainly for seeding the
// in-memory backend in tests and examples.
func (e *Engine) Store() interfaces.DirectoryStore {
	return e.store
}

// storeFromConfig builds the configured store backend and wraps it in the
// configured cache layer.
func storeFromConfig() (interfaces.DirectoryStore, error) {
	cfg := config.Get()

	var store interfaces.DirectoryStore
	switch cfg.Directory.Backend {
	case "", "memory":
		store = directory.NewInMemory()
	case "postgres":
		pgStore, err := postgres.New(cfg.Directory.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres store: %w", err)
		}
		store = pgStore
	case "supabase":
		sbStore, err := supabase.New(cfg.Directory.Supabase.URL, cfg.Directory.Supabase.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create supabase store: %w", err)
		}
		store = sbStore
	default:
		return nil, fmt.Errorf("unknown directory backend %q", cfg.Directory.Backend)
	}

	if cfg.Cache.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.URL,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		return directory.NewRedisCache(store, client, directory.WithTTL(cfg.Cache.Redis.TTL)), nil
	}

	return directory.NewCached(store), nil
}
