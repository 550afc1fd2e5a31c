package metrics

import (
	"rollout/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting playouts from many goroutines", func(t *testing.T) {
		c := NewCollector()
		c.Start(4)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					c.AddPlayout(10, game.NoProgress)
				}
			}()
		}
		wg.Wait()
		metric := c.Complete()

		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 100, metric.Episodes)
		require.Equal(t, 1000, metric.Plies)
		require.Equal(t, 100, metric.Terminations[game.NoProgress])
		require.Equal(t, 10.0, metric.MeanPlies())
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddPlayout(3, game.Checkmate)

		c.Start(2)
		metric := c.Complete()

		require.Equal(t, 0, metric.Episodes)
		require.Equal(t, 0, metric.Terminations[game.Checkmate])
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8)
		c.AddPlayout(3, game.Checkmate)

		require.Equal(t, RolloutMetric{}, c.Complete())
		require.Equal(t, 0.0, c.Complete().MeanPlies())
	})
}
