package enumstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/enumstore"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("save merges records", func(t *testing.T) {
		t.Parallel()
		s := enumstore.NewMemoryStore()

		require.NoError(t, s.Save(ctx, "status", "1", enum.Data{"color": "green", "icon": "check"}))
		require.NoError(t, s.Save(ctx, "status", "1", enum.Data{"color": "teal"}))

		got, err := s.Load(ctx, "status")
		require.NoError(t, err)
		assert.Equal(t, map[string]enum.Data{
			"1": {"color": "teal", "icon": "check"},
		}, got)
	})

	t.Run("load returns copies", func(t *testing.T) {
		t.Parallel()
		s := enumstore.NewMemoryStore()
		require.NoError(t, s.Save(ctx, "status", "1", enum.Data{"color": "green"}))

		got, err := s.Load(ctx, "status")
		require.NoError(t, err)
		got["1"]["color"] = "red"

		again, err := s.Load(ctx, "status")
		require.NoError(t, err)
		assert.Equal(t, "green", again["1"]["color"])
	})

	t.Run("unknown enumeration is empty", func(t *testing.T) {
		t.Parallel()
		got, err := enumstore.NewMemoryStore().Load(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		s := enumstore.NewMemoryStore()
		require.NoError(t, s.Save(ctx, "status", "1", enum.Data{"color": "green"}))
		require.NoError(t, s.Save(ctx, "status", "2", enum.Data{"color": "gray"}))

		require.NoError(t, s.Delete(ctx, "status", "1"))
		require.NoError(t, s.Delete(ctx, "other", "1"))

		got, err := s.Load(ctx, "status")
		require.NoError(t, err)
		assert.Equal(t, map[string]enum.Data{"2": {"color": "gray"}}, got)
	})

	t.Run("invalid keys", func(t *testing.T) {
		t.Parallel()
		s := enumstore.NewMemoryStore()

		_, err := s.Load(ctx, " ")
		assert.ErrorIs(t, err, enumstore.ErrEmptyEnumName)
		assert.ErrorIs(t, s.Save(ctx, "", "1", nil), enumstore.ErrEmptyEnumName)
		assert.ErrorIs(t, s.Save(ctx, "status", "", nil), enumstore.ErrEmptyMember)
		assert.ErrorIs(t, s.Delete(ctx, "status", ""), enumstore.ErrEmptyMember)
	})
}
