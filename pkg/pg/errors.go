package pg

import "errors"

var (
	ErrEmptyConnectionString    = errors.New("pg: empty connection string, use PG_CONN_URL env var")
	ErrFailedToParseDBConfig    = errors.New("pg: failed to parse connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: failed to open connection pool")
	ErrHealthcheckFailed        = errors.New("pg: healthcheck failed")
	ErrMigrationsDirNotFound    = errors.New("pg: migrations directory not found")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply migrations")
)
