package enum_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

func TestType_ConcurrentOverrides(t *testing.T) {
	t.Parallel()

	status := newStatus(t)

	const numGoroutines = 50
	const numOperations = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("g%d_%d", id, j)
				assert.True(t, status.OverrideItemData(statusActive, enum.Data{key: j}))
			}
		}(i)

		go func() {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				rec, ok := status.ItemsWithData()[statusActive].(enum.Data)
				assert.True(t, ok)
				assert.Equal(t, "Active", rec[enum.TitleKey])
				_ = status.Must(statusActive).Data()
				_ = status.Entries()
			}
		}()
	}

	wg.Wait()

	rec := status.ItemsToData()[statusActive]
	// every merged key survives, plus the declared weight
	require.Len(t, rec, numGoroutines*numOperations+1)
	assert.Equal(t, 10, rec["weight"])
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := enum.NewRegistry()

	const numGoroutines = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := enum.New(fmt.Sprintf("enum_%02d", id),
				[]enum.Member[int]{{Name: "A", Value: id}},
				enum.WithRegistry[int](reg),
			)
			assert.NoError(t, err)
			_ = reg.Names()
			_, _ = reg.Lookup("enum_00")
		}(i)
	}

	wg.Wait()
	assert.Equal(t, numGoroutines, reg.Len())
}
