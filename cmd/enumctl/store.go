package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/enumkit/pkg/config"
	"github.com/dmitrymomot/enumkit/pkg/enumstore"
	"github.com/dmitrymomot/enumkit/pkg/logger"
	"github.com/dmitrymomot/enumkit/pkg/pg"
	"github.com/dmitrymomot/enumkit/pkg/redis"
)

const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
)

// backend is an opened override store.
type backend struct {
	kind  string
	store enumstore.Store
	ping  func(context.Context) error
	close func()
}

func openStore(ctx context.Context, kind string, log *slog.Logger) (*backend, error) {
	log = log.With(logger.Store(kind))

	switch kind {
	case "", storeMemory:
		return &backend{
			kind:  storeMemory,
			store: enumstore.NewMemoryStore(),
			ping:  func(context.Context) error { return nil },
			close: func() {},
		}, nil

	case storeRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "connected to redis")
		return &backend{
			kind:  storeRedis,
			store: enumstore.NewRedisStore(client, enumstore.WithKeyPrefix(cfg.KeyPrefix)),
			ping:  redis.Healthcheck(client, cfg.HealthcheckTimeout),
			close: func() {
				if err := client.Close(); err != nil {
					log.ErrorContext(ctx, "failed to close redis client", logger.Error(err))
				}
			},
		}, nil

	case storePostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := enumstore.Migrate(ctx, pool, cfg.MigrationsTable, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.DebugContext(ctx, "connected to postgres")
		return &backend{
			kind:  storePostgres,
			store: enumstore.NewPostgresStore(pool),
			ping:  pg.Healthcheck(pool, cfg.HealthcheckTimeout),
			close: pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown store %q", errUsage, kind)
	}
}
