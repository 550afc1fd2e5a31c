package searcher

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedRandom(t *testing.T) {
	t.Run("sampling from many goroutines", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 1000; j++ {
					n := shared.Intn(10)
					assert.GreaterOrEqual(t, n, 0)
					assert.Less(t, n, 10)
				}
			}()
		}
		wg.Wait()
	})

	t.Run("seeding independent generators", func(t *testing.T) {
		first, second := newShared(), newShared()

		require.NotEqual(t, first.Uint64(), second.Uint64(), "Each generator should get its own entropy seed")
	})

	t.Run("deriving independent streams", func(t *testing.T) {
		first, second := newStream(), newStream()

		require.NotEqual(t, first.Uint64(), second.Uint64(), "Streams should not share a seed")
	})
}
