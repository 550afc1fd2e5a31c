package experiments

import (
	"fmt"
	"rollout/experiments/metrics"
	"rollout/game"
	"rollout/searcher"

	"github.com/rs/zerolog/log"
)

// Benchmark positions, all with plenty of play left
var Positions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"8/8/4k3/8/2Q5/4K3/8/8 w - - 0 1",
	"8/5k2/8/8/8/8/2R5/4K3 b - - 0 1",
}

// Run simulates every position under every config and stores the results
// under root/name.
func Run(name, root string, positions []string, configs []metrics.SimulatorConfig) error {
	states := make([]*game.Position, len(positions))
	for i, fen := range positions {
		state, err := game.ParseFEN(fen)
		if err != nil {
			return err
		}
		states[i] = state
	}

	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	records := []metrics.PositionRecord{}
	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d %+v...", ci+1, len(configs), config)
		simulator := createSimulator(config)

		for pi, state := range states {
			summary, metric, err := simulator.Simulate(state)
			if err != nil {
				return fmt.Errorf("config %d position %d: %w", config.ID, pi+1, err)
			}
			count++
			records = append(records, metrics.PositionRecord{
				ID:            count,
				Config:        config.ID,
				FEN:           positions[pi],
				Wins:          summary.Wins,
				Draws:         summary.Draws,
				Losses:        summary.Losses,
				Value:         summary.Value(),
				RolloutMetric: metric,
			})

			log.Info().Msgf("completed config %d position %d of %d with value %.3f over %d episodes",
				config.ID, pi+1, len(states), summary.Value(), summary.Episodes)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteSimulatorConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store simulator configs: %w", err)
	}
	log.Info().Msg("stored simulator configs")

	err = writer.WritePositionRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store position records: %w", err)
	}
	log.Info().Msgf("stored position records in %s", writer.Dir())
	return nil
}

func createSimulator(config metrics.SimulatorConfig) *searcher.Simulator {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewSimulator(config.Goroutines, options...)
}
