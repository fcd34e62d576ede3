// Package redis connects enumkit to a Redis server through go-redis v9.
//
// It backs enumstore.RedisStore, which keeps enumeration metadata overrides
// in one hash per enumeration so every process sharing the server sees the
// same overrides after a Sync.
//
// Config is populated from REDIS_* environment variables via
// github.com/caarlos0/env (see pkg/config). Connect retries until the server
// answers a ping; Healthcheck wraps Ping for readiness probes.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := enumstore.NewRedisStore(client, enumstore.WithKeyPrefix(cfg.KeyPrefix))
//
// # Errors
//
// ErrRedisNotReady and ErrFailedToParseRedisConnString are joined with the
// underlying go-redis error using errors.Join.
package redis
