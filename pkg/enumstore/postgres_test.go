package enumstore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/enumstore"
	"github.com/dmitrymomot/enumkit/pkg/logger"
)

// newPostgresPool connects to ENUMKIT_TEST_PG_URL and applies the schema, or
// skips the test.
func newPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("ENUMKIT_TEST_PG_URL")
	if url == "" {
		t.Skip("ENUMKIT_TEST_PG_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, enumstore.Migrate(ctx, pool, "enumkit_test_migrations", logger.Discard()))
	return pool
}

func TestPostgresStore(t *testing.T) {
	pool := newPostgresPool(t)
	ctx := context.Background()

	name := fmt.Sprintf("status_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM enum_overrides WHERE enum_name = $1`, name)
	})
	store := enumstore.NewPostgresStore(pool)

	t.Run("save merges records", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, "1", enum.Data{"color": "green", "rank": 1}))
		require.NoError(t, store.Save(ctx, name, "1", enum.Data{"color": "teal"}))

		got, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, enum.Data{"color": "teal", "rank": float64(1)}, got["1"])
	})

	t.Run("manager round trip", func(t *testing.T) {
		status, err := enum.New(name, []enum.Member[int]{{Name: "ACTIVE", Value: 1}, {Name: "INACTIVE", Value: 0}},
			enum.WithData(map[int]enum.Data{1: {"color": "green"}, 0: {"color": "gray"}}),
			enum.WithLogger[int](logger.Discard()),
		)
		require.NoError(t, err)

		applied, err := newManager(store).Sync(ctx, status)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, "teal", status.ItemsToData()[1]["color"])
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, name, "1"))

		got, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("migrate is idempotent", func(t *testing.T) {
		assert.NoError(t, enumstore.Migrate(ctx, pool, "enumkit_test_migrations", logger.Discard()))
	})
}
