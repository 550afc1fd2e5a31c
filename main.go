// rollout evaluates chess positions by uniformly random self-play.
//
// Usage:
//
//	rollout play <fen>               - Play one random game and print its value
//	rollout evaluate <fen> [moves]   - Apply coordinate moves and print the terminal status
//	rollout simulate <fen>           - Run a batch of rollouts and print the summary
//	rollout bench                    - Time batches across goroutine counts and store CSV results
//
// Values are relative to the side to move in <fen>: 1 win, 0 draw, -1 loss.
package main

import (
	"fmt"
	"os"
	"rollout/config"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagGoroutines int
	flagEpisodes   int
	flagDuration   time.Duration
	flagSeed       uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "rollout",
	Short:         "Random playout evaluation of chess positions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().IntVar(&flagGoroutines, "goroutines", 0, "Number of goroutines for parallel rollouts")
	rootCmd.PersistentFlags().IntVar(&flagEpisodes, "episodes", 0, "Number of rollouts per batch")
	rootCmd.PersistentFlags().DurationVar(&flagDuration, "duration", 0, "Time budget per batch, used when episodes is 0")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = seeded from entropy)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(benchCmd)
}

// loadConfig reads the config file and environment, then applies any flags
// set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("goroutines") {
		cfg.Goroutines = flagGoroutines
	}
	if flags.Changed("episodes") {
		cfg.Episodes = flagEpisodes
	}
	if flags.Changed("duration") {
		cfg.Duration = flagDuration
		if !flags.Changed("episodes") {
			cfg.Episodes = 0 // Duration takes over
		}
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
