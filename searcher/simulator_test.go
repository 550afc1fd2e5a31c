package searcher

import (
	"rollout/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSimulator(t *testing.T) {
	t.Run("panics without episodes or duration", func(t *testing.T) {
		require.Panics(t, func() {
			NewSimulator(2)
		}, "Should panic without a stopping condition")
	})

	t.Run("uses at least one goroutine", func(t *testing.T) {
		s := NewSimulator(0, WithEpisodes(1))

		require.Equal(t, 1, s.goroutines)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("running the requested number of episodes", func(t *testing.T) {
		state, err := game.ParseFEN("k7/1Q6/1K6/8/8/8/8/8 b - - 0 1")
		require.NoError(t, err)
		s := NewSimulator(4, WithEpisodes(20), WithMetrics())

		summary, metric, err := s.Simulate(state)

		require.NoError(t, err)
		require.Equal(t, Summary{Episodes: 20, Losses: 20}, summary)
		require.Equal(t, -1.0, summary.Value())
		require.Equal(t, 20, metric.Episodes)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 20, metric.Terminations[game.Checkmate])
		require.Equal(t, 0, metric.Plies, "Terminal position needs no moves")
	})

	t.Run("leaving the simulated state untouched", func(t *testing.T) {
		fen := "8/5k2/8/8/8/8/2R5/4K3 b - - 0 1"
		state, err := game.ParseFEN(fen)
		require.NoError(t, err)
		s := NewSimulator(2, WithEpisodes(4))

		summary, _, err := s.Simulate(state)

		require.NoError(t, err)
		require.Equal(t, 4, summary.Episodes)
		require.Equal(t, fen, state.FEN())
	})

	t.Run("counting insufficient material draws", func(t *testing.T) {
		state, err := game.ParseFEN("k7/8/4K3/8/8/8/8/8 b - - 0 1")
		require.NoError(t, err)
		s := NewSimulator(2, WithEpisodes(6), WithMetrics())

		summary, metric, err := s.Simulate(state)

		require.NoError(t, err)
		require.Equal(t, 6, summary.Draws)
		require.Equal(t, 0.0, summary.Value())
		require.Equal(t, 6, metric.Terminations[game.InsufficientMaterial])
	})

	t.Run("stopping after the time budget", func(t *testing.T) {
		state := &mockState{classification: game.Drawn}
		s := NewSimulator(2, WithDuration(20*time.Millisecond))

		start := time.Now()
		summary, _, err := s.Simulate(state)

		require.NoError(t, err)
		require.Less(t, time.Since(start), 2*time.Second)
		require.Greater(t, summary.Episodes, 0)
		require.Equal(t, summary.Episodes, summary.Draws)
	})

	t.Run("reproducing results with a seed", func(t *testing.T) {
		state, err := game.ParseFEN("8/8/4k3/8/2Q5/4K3/8/8 w - - 0 1")
		require.NoError(t, err)

		first, _, err := NewSimulator(1, WithEpisodes(5), WithSeed(3), WithMetrics()).Simulate(state)
		require.NoError(t, err)
		second, _, err := NewSimulator(1, WithEpisodes(5), WithSeed(3), WithMetrics()).Simulate(state)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("stopping at the first rollout error", func(t *testing.T) {
		state := &mockState{
			classification: game.Drawn,
			moves:          []game.Move{mockMove{id: 0}},
			plies:          1,
			playErr:        errEngine,
		}
		s := NewSimulator(3, WithEpisodes(30))

		summary, _, err := s.Simulate(state)

		require.ErrorIs(t, err, errEngine)
		require.Less(t, summary.Episodes, 30)
	})
}

func TestSummaryValue(t *testing.T) {
	require.Equal(t, 0.0, Summary{}.Value(), "Empty summary has no value")
	require.InDelta(t, 0.25, Summary{Episodes: 4, Wins: 2, Draws: 1, Losses: 1}.Value(), 1e-9)
}
