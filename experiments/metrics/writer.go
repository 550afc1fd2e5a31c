package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"rollout/game"
	"strconv"
	"time"
)

type SimulatorConfig struct {
	ID         int
	Goroutines int
	Duration   time.Duration
	Episodes   int
}

type PositionRecord struct {
	ID     int
	Config int // SimulatorConfig.ID
	FEN    string
	Wins   int
	Draws  int
	Losses int
	Value  float64
	RolloutMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold one experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSimulatorConfigs(configs []SimulatorConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
		})
	}

	header := []string{"id", "goroutines", "duration", "episodes"}
	return w.write("simulator_configs.csv", header, rows)
}

func (w *Writer) WritePositionRecords(records []PositionRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.FEN,
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Losses),
			strconv.FormatFloat(record.Value, 'f', 4, 64),
			record.Duration.String(),
			strconv.FormatFloat(record.MeanPlies(), 'f', 1, 64),
		}
		for t := game.Checkmate; t < game.NumTerminations; t++ {
			row = append(row, strconv.Itoa(record.Terminations[t]))
		}
		rows = append(rows, row)
	}

	header := []string{"id", "config", "fen", "episodes", "wins", "draws", "losses", "value", "duration", "mean_plies"}
	for t := game.Checkmate; t < game.NumTerminations; t++ {
		header = append(header, t.String())
	}
	return w.write("position_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
