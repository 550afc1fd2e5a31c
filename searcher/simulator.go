package searcher

import (
	"fmt"
	"rollout/experiments/metrics"
	"rollout/game"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"
)

type Option func(s *Simulator)

// Summary aggregates rollout outcomes relative to the side to move in the
// simulated position.
type Summary struct {
	Episodes int
	Wins     int
	Draws    int
	Losses   int
}

// Value is the mean rollout outcome in [-1, 1].
func (s Summary) Value() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.Wins-s.Losses) / float64(s.Episodes)
}

func (s *Summary) add(value int) {
	s.Episodes++
	switch value {
	case Win:
		s.Wins++
	case Loss:
		s.Losses++
	default:
		s.Draws++
	}
}

func (s *Summary) merge(other Summary) {
	s.Episodes += other.Episodes
	s.Wins += other.Wins
	s.Draws += other.Draws
	s.Losses += other.Losses
}

// Simulator runs batches of rollouts from one position.
type Simulator struct {
	goroutines int
	duration   time.Duration
	episodes   int
	seed       uint64
	seeded     bool
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(s *Simulator) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *Simulator) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

// WithSeed makes every goroutine's random stream derive from seed.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSimulator(goroutines int, options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines: max(goroutines, 1),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.episodes <= 0 && s.duration <= 0 {
		panic("Must specify rollout episodes or duration")
	}
	return s
}

// Simulate rolls out clones of state until the episode count or the time
// budget is exhausted. The state itself is left untouched. The first rollout
// error stops the batch.
func (s *Simulator) Simulate(state game.State) (Summary, metrics.RolloutMetric, error) {
	log.Debug().Msgf("simulating %v with %d goroutines", state, s.goroutines)

	s.metrics.Start(s.goroutines)
	var summary Summary
	var err error
	if s.episodes > 0 {
		summary, err = s.iterate(state)
	} else {
		summary, err = s.countdown(state)
	}
	metric := s.metrics.Complete()
	if err != nil {
		return summary, metric, fmt.Errorf("simulate %v: %w", state, err)
	}

	log.Debug().Msgf("simulated %d episodes with value %.3f", summary.Episodes, summary.Value())
	return summary, metric, nil
}

func (s *Simulator) iterate(state game.State) (Summary, error) {
	task := make(chan any, s.episodes)
	for i := 0; i < s.episodes; i++ {
		task <- nil
	}
	close(task)

	return s.run(state, func(stop <-chan any) bool {
		select {
		case <-stop:
			return false
		default:
		}
		_, ok := <-task
		return ok
	}, nil)
}

func (s *Simulator) countdown(state game.State) (Summary, error) {
	return s.run(state, func(stop <-chan any) bool {
		select {
		case <-stop:
			return false
		default:
			return true
		}
	}, time.After(s.duration))
}

// run starts the workers, each on its own random stream, and stops them
// when next reports no more work, on deadline or on the first error.
func (s *Simulator) run(state game.State, next func(stop <-chan any) bool, deadline <-chan time.Time) (Summary, error) {
	stop := make(chan any)
	var once sync.Once
	var firstErr error
	halt := func(err error) {
		once.Do(func() {
			firstErr = err
			close(stop)
		})
	}

	streams := s.streams()
	summaries := make([]Summary, s.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			for next(stop) {
				value, plies, termination, err := rollout(state.Clone(), streams[i])
				if err != nil {
					halt(err)
					return
				}
				summaries[i].add(value)
				s.metrics.AddPlayout(plies, termination)
			}
		}(i)
	}

	finished := make(chan any)
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-deadline:
		halt(nil)
		<-finished
	}

	var total Summary
	for _, summary := range summaries {
		total.merge(summary)
	}
	return total, firstErr
}

func (s *Simulator) streams() []*rand.Rand {
	streams := make([]*rand.Rand, s.goroutines)
	for i := range streams {
		if s.seeded {
			streams[i] = rand.New(rand.NewSource(s.seed + uint64(i)))
		} else {
			streams[i] = newStream()
		}
	}
	return streams
}
