package enumstore

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	loadOverridesQuery = `SELECT member, data FROM enum_overrides WHERE enum_name = $1`

	saveOverrideQuery = `INSERT INTO enum_overrides (enum_name, member, data)
VALUES ($1, $2, $3::jsonb)
ON CONFLICT (enum_name, member)
DO UPDATE SET data = enum_overrides.data || EXCLUDED.data, updated_at = now()`

	deleteOverrideQuery = `DELETE FROM enum_overrides WHERE enum_name = $1 AND member = $2`
)

// querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by
// PostgresStore.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore keeps overrides in the enum_overrides table.
type PostgresStore struct {
	db querier
}

func NewPostgresStore(db querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the enum_overrides table.
func Migrate(ctx context.Context, pool *pgxpool.Pool, table string, log pg.Logger) error {
	if err := pg.MigrateFS(ctx, pool, migrations, "migrations", table, log); err != nil {
		return errors.Join(ErrFailedToMigrate, err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, enumName string) (map[string]enum.Data, error) {
	if strings.TrimSpace(enumName) == "" {
		return nil, ErrEmptyEnumName
	}

	rows, err := s.db.Query(ctx, loadOverridesQuery, enumName)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	out := make(map[string]enum.Data)
	for rows.Next() {
		var (
			member string
			raw    []byte
		)
		if err := rows.Scan(&member, &raw); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		out[member] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return out, nil
}

func (s *PostgresStore) Save(ctx context.Context, enumName, member string, data enum.Data) error {
	if err := validateKey(enumName, member); err != nil {
		return err
	}
	if data == nil {
		data = enum.Data{}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return errors.Join(ErrInvalidRecord, err)
	}

	if _, err := s.db.Exec(ctx, saveOverrideQuery, enumName, member, string(encoded)); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, enumName, member string) error {
	if err := validateKey(enumName, member); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, deleteOverrideQuery, enumName, member); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
