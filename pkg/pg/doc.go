// Package pg connects enumkit to PostgreSQL through the pgx/v5 driver and
// applies schema migrations with goose/v3.
//
// It is used by enumstore.PostgresStore and by the enumctl command when the
// postgres override store is selected.
//
// # Architecture
//
//   - Config is populated from environment variables (PG_* tags) via
//     github.com/caarlos0/env, usually through pkg/config.
//   - Connect opens a *pgxpool.Pool and retries with a growing delay until the
//     database answers a ping or the attempts are exhausted.
//   - MigrateFS runs goose migrations read from an fs.FS (typically an
//     embed.FS owned by the package that needs the schema) over the same pool.
//   - Healthcheck wraps Ping for readiness probes.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := enumstore.Migrate(ctx, pool, cfg.MigrationsTable, log); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures are reported with sentinel errors (ErrFailedToParseDBConfig,
// ErrFailedToOpenDBConnection, ErrFailedToApplyMigrations, ...) joined with the
// driver error, so both can be matched with errors.Is.
package pg
