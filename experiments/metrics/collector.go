package metrics

import (
	"rollout/game"
	"sync/atomic"
	"time"
)

type RolloutMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Plies        int // Summed over all episodes
	Terminations [game.NumTerminations]int
}

// MeanPlies is the average playout length.
func (m RolloutMetric) MeanPlies() float64 {
	if m.Episodes == 0 {
		return 0
	}
	return float64(m.Plies) / float64(m.Episodes)
}

type Collector interface {
	Start(goroutines int)
	AddPlayout(plies int, termination game.Termination)
	Complete() RolloutMetric
}

type collector struct {
	goroutines   int
	startTime    time.Time
	episodes     atomic.Int64
	plies        atomic.Int64
	terminations [game.NumTerminations]atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new batch.
func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.plies.Store(0)
	for i := range m.terminations {
		m.terminations[i].Store(0)
	}
}

func (m *collector) AddPlayout(plies int, termination game.Termination) {
	m.episodes.Add(1)
	m.plies.Add(int64(plies))
	if termination >= 0 && termination < game.NumTerminations {
		m.terminations[termination].Add(1)
	}
}

func (m *collector) Complete() RolloutMetric {
	metric := RolloutMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Plies:      int(m.plies.Load()),
	}
	for i := range m.terminations {
		metric.Terminations[i] = int(m.terminations[i].Load())
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)                               {}
func (m *dummyCollector) AddPlayout(plies int, termination game.Termination) {}
func (m *dummyCollector) Complete() RolloutMetric                            { return RolloutMetric{} }
