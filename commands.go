package main

import (
	"fmt"
	"rollout/config"
	"rollout/experiments"
	"rollout/experiments/metrics"
	"rollout/game"
	"rollout/searcher"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var playCmd = &cobra.Command{
	Use:   "play <fen>",
	Short: "Play one random game and print its value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		state, err := game.ParseFEN(args[0])
		if err != nil {
			return err
		}

		var value int
		if cfg.Seed != 0 {
			value, err = searcher.RolloutWith(state, rand.New(rand.NewSource(cfg.Seed)))
		} else {
			value, err = searcher.Rollout(state)
		}
		if err != nil {
			return err
		}

		log.Debug().Msgf("rollout ended in %s", state.FEN())
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <fen> [moves...]",
	Short: "Apply coordinate moves (e.g. c7b7) and print whether the game is over",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(cmd); err != nil {
			return err
		}
		state, err := game.ParseFEN(args[0])
		if err != nil {
			return err
		}

		originIsWhite := state.WhiteToMove()
		for _, uci := range args[1:] {
			move, err := state.ParseMove(uci)
			if err != nil {
				return err
			}
			if err := state.Play(move); err != nil {
				return err
			}
		}

		terminal, value := searcher.Evaluate(state, originIsWhite)
		fmt.Fprintf(cmd.OutOrStdout(), "terminal=%t value=%d classification=%q repetitions=%d half_move_clock=%d\n",
			terminal, value, state.Classify(), state.Repetitions(), state.HalfMoveClock())
		return nil
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <fen>",
	Short: "Run a batch of rollouts and print the summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		state, err := game.ParseFEN(args[0])
		if err != nil {
			return err
		}

		options := []searcher.Option{
			searcher.WithEpisodes(cfg.Episodes),
			searcher.WithDuration(cfg.Duration),
			searcher.WithMetrics(),
		}
		if cfg.Seed != 0 {
			options = append(options, searcher.WithSeed(cfg.Seed))
		}
		summary, metric, err := searcher.NewSimulator(cfg.Goroutines, options...).Simulate(state)
		if err != nil {
			return err
		}

		log.Info().Msgf("%d episodes in %s, %.1f plies on average", metric.Episodes, metric.Duration, metric.MeanPlies())
		for t := game.Checkmate; t < game.NumTerminations; t++ {
			log.Info().Msgf("%s: %d", t, metric.Terminations[t])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "episodes=%d wins=%d draws=%d losses=%d value=%.4f\n",
			summary.Episodes, summary.Wins, summary.Draws, summary.Losses, summary.Value())
		return nil
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time rollout batches across goroutine counts and store CSV results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return experiments.Run("throughput", cfg.MetricsDir, experiments.Positions, benchConfigs(cfg))
	},
}

// benchConfigs sweeps 1, 2, 4 and 8 goroutines plus the configured count,
// each count at most once.
func benchConfigs(cfg config.Config) []metrics.SimulatorConfig {
	counts := []int{1, 2, 4, 8}
	if !slices.Contains(counts, cfg.Goroutines) {
		counts = append(counts, cfg.Goroutines)
	}

	configs := make([]metrics.SimulatorConfig, 0, len(counts))
	for i, goroutines := range counts {
		configs = append(configs, metrics.SimulatorConfig{
			ID:         i + 1,
			Goroutines: goroutines,
			Duration:   cfg.Duration,
			Episodes:   cfg.Episodes,
		})
	}
	return configs
}
