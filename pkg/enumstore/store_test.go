package enumstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/enumstore"
	"github.com/dmitrymomot/enumkit/pkg/environment"
	"github.com/dmitrymomot/enumkit/pkg/logger"
)

var errBackendDown = errors.New("backend down")

// failingStore wraps a MemoryStore and fails writes on demand.
type failingStore struct {
	*enumstore.MemoryStore
	failSave bool
	failLoad bool
}

func (s *failingStore) Save(ctx context.Context, enumName, member string, data enum.Data) error {
	if s.failSave {
		return errBackendDown
	}
	return s.MemoryStore.Save(ctx, enumName, member, data)
}

func (s *failingStore) Load(ctx context.Context, enumName string) (map[string]enum.Data, error) {
	if s.failLoad {
		return nil, errBackendDown
	}
	return s.MemoryStore.Load(ctx, enumName)
}

func newStatus(t *testing.T, opts ...enum.Option[int]) *enum.Type[int] {
	t.Helper()
	opts = append([]enum.Option[int]{
		enum.WithLabels(map[int]string{1: "Active", 0: "Inactive"}),
		enum.WithData(map[int]enum.Data{
			1: {"color": "green"},
			0: {"color": "gray"},
		}),
		enum.WithLogger[int](logger.Discard()),
	}, opts...)

	status, err := enum.New("status", []enum.Member[int]{
		{Name: "ACTIVE", Value: 1},
		{Name: "INACTIVE", Value: 0},
	}, opts...)
	require.NoError(t, err)
	return status
}

func newManager(store enumstore.Store) *enumstore.Manager {
	return enumstore.NewManager(store, enumstore.WithLogger(logger.Discard()))
}

func TestManager_Override(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("applies and persists", func(t *testing.T) {
		t.Parallel()
		store := enumstore.NewMemoryStore()
		status := newStatus(t)

		ok, err := newManager(store).Override(ctx, status, "1", enum.Data{"color": "teal", "icon": "check"})
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, enum.Data{"color": "teal", "icon": "check"}, status.ItemsToData()[1])

		stored, err := store.Load(ctx, "status")
		require.NoError(t, err)
		assert.Equal(t, enum.Data{"color": "teal", "icon": "check"}, stored["1"])
	})

	t.Run("unknown member is not persisted", func(t *testing.T) {
		t.Parallel()
		store := enumstore.NewMemoryStore()
		status := newStatus(t)

		ok, err := newManager(store).Override(ctx, status, "7", enum.Data{"color": "red"})
		require.NoError(t, err)
		assert.False(t, ok)

		stored, err := store.Load(ctx, "status")
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("enumeration without metadata", func(t *testing.T) {
		t.Parallel()
		plain, err := enum.New("plain", []enum.Member[string]{{Name: "A", Value: "a"}})
		require.NoError(t, err)

		ok, err := newManager(enumstore.NewMemoryStore()).Override(ctx, plain, "a", enum.Data{"x": 1})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure keeps in-process change", func(t *testing.T) {
		t.Parallel()
		store := &failingStore{MemoryStore: enumstore.NewMemoryStore(), failSave: true}
		status := newStatus(t)

		ok, err := newManager(store).Override(ctx, status, "0", enum.Data{"color": "black"})
		assert.True(t, ok)
		assert.ErrorIs(t, err, errBackendDown)
		assert.Equal(t, "black", status.ItemsToData()[0]["color"])
	})
}

func TestManager_Sync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("replays stored overrides", func(t *testing.T) {
		t.Parallel()
		store := enumstore.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "status", "1", enum.Data{"color": "navy"}))
		require.NoError(t, store.Save(ctx, "status", "9", enum.Data{"color": "red"}))

		status := newStatus(t)
		applied, err := newManager(store).Sync(ctx, status)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)

		data := status.ItemsToData()
		assert.Equal(t, "navy", data[1]["color"])
		assert.Equal(t, "gray", data[0]["color"])
	})

	t.Run("overrides survive a restart", func(t *testing.T) {
		t.Parallel()
		store := enumstore.NewMemoryStore()

		first := newStatus(t)
		_, err := newManager(store).Override(ctx, first, "0", enum.Data{"color": "silver"})
		require.NoError(t, err)

		second := newStatus(t)
		assert.Equal(t, "gray", second.ItemsToData()[0]["color"])

		applied, err := newManager(store).Sync(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, "silver", second.ItemsToData()[0]["color"])
	})

	t.Run("load failure", func(t *testing.T) {
		t.Parallel()
		store := &failingStore{MemoryStore: enumstore.NewMemoryStore(), failLoad: true}

		applied, err := newManager(store).Sync(ctx, newStatus(t))
		assert.Zero(t, applied)
		assert.ErrorIs(t, err, errBackendDown)
	})
}

func TestManager_SyncAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reg := enum.NewRegistry()
	status := newStatus(t, enum.WithRegistry[int](reg))
	color, err := enum.New("color",
		[]enum.Member[string]{{Name: "RED", Value: "red"}, {Name: "BLUE", Value: "blue"}},
		enum.WithData(map[string]enum.Data{"red": {"hex": "#f00"}, "blue": {"hex": "#00f"}}),
		enum.WithRegistry[string](reg),
		enum.WithLogger[string](logger.Discard()),
	)
	require.NoError(t, err)

	store := enumstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "status", "0", enum.Data{"color": "black"}))
	require.NoError(t, store.Save(ctx, "color", "red", enum.Data{"hex": "#ff0000"}))
	require.NoError(t, store.Save(ctx, "color", "blue", enum.Data{"hex": "#0000ff"}))

	total, err := newManager(store).SyncAll(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "black", status.ItemsToData()[0]["color"])
	assert.Equal(t, "#ff0000", color.ItemsToData()["red"]["hex"])
}

func TestManager_Forget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := enumstore.NewMemoryStore()
	status := newStatus(t)
	mgr := newManager(store)

	_, err := mgr.Override(ctx, status, "1", enum.Data{"color": "lime"})
	require.NoError(t, err)
	require.NoError(t, mgr.Forget(ctx, status, "1"))

	stored, err := store.Load(ctx, "status")
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Equal(t, "lime", status.ItemsToData()[1]["color"])
}

func TestManager_SyncAllDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := enumstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "environment", "production", enum.Data{environment.FieldLogLevel: "warn"}))

	applied, err := newManager(store).SyncAll(ctx, enum.Default)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, applied, 1)
	assert.Equal(t, "warn", environment.Production.Data()[environment.FieldLogLevel])
	assert.Equal(t, "json", environment.Production.Data()[environment.FieldLogFormat])
}
