package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Execution modes for a simulation run. Sequential mode is a genuinely
// separate code path, not the concurrent path with capacity 1, so the two
// can be compared for performance and tested independently.
const (
	ModeSequential = "sequential"
	ModeConcurrent = "concurrent"
)

// DefaultChannelCapacity is the producer/consumer handoff buffer size used
// when the caller does not choose one. Any bound >= 1 is correct; the
// capacity only affects backpressure, never the results.
const DefaultChannelCapacity = 64

// Simulator drives N independent trials of the profit model and aggregates
// the per-trial profits into a RunSummary. One producer and one consumer
// per run; the accumulated profits are owned by the consuming goroutine
// and never touched by the producer.
type Simulator struct {
	Trials int
	Costs  *FixedCosts

	generator *SampleGenerator
	rng       *PartitionedRNG
	mode      string
	capacity  int
	profits   []float64
}

// NewSimulator validates the run parameters and builds a Simulator.
// Negative trial counts, invalid fixed costs, malformed distributions,
// unknown modes, and non-positive channel capacities all fail here.
// Zero trials is accepted: Run then returns a zero-filled summary.
func NewSimulator(trials int, seed int64, costs *FixedCosts, dists DistributionConfig, mode string, capacity int) (*Simulator, error) {
	if trials < 0 {
		return nil, fmt.Errorf("trial count must be non-negative, got %d", trials)
	}
	if costs == nil {
		return nil, fmt.Errorf("fixed costs are required")
	}
	if err := costs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixed costs: %w", err)
	}
	if mode != ModeSequential && mode != ModeConcurrent {
		return nil, fmt.Errorf("unknown mode %q; valid: %s, %s", mode, ModeSequential, ModeConcurrent)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("channel capacity must be >= 1, got %d", capacity)
	}
	generator, err := NewSampleGenerator(dists)
	if err != nil {
		return nil, fmt.Errorf("invalid distributions: %w", err)
	}
	return &Simulator{
		Trials:    trials,
		Costs:     costs,
		generator: generator,
		rng:       NewPartitionedRNG(NewSimulationKey(seed)),
		mode:      mode,
		capacity:  capacity,
	}, nil
}

// Run executes all trials in the configured mode and returns the summary.
// Runs to completion; there is no mid-run cancellation.
func (s *Simulator) Run() RunSummary {
	logrus.Infof("Starting %s simulation: %d trials, seed=%d", s.mode, s.Trials, s.rng.Key())

	switch s.mode {
	case ModeSequential:
		s.runSequential()
	case ModeConcurrent:
		s.runConcurrent()
	}

	if len(s.profits) != s.Trials {
		panic(fmt.Sprintf("trial accounting violated: %d trials requested, %d profits accumulated",
			s.Trials, len(s.profits)))
	}
	return Summarize(s.profits)
}

// runSequential draws and evaluates each sample synchronously.
func (s *Simulator) runSequential() {
	rng := s.rng.ForSubsystem(SubsystemSampling)
	s.profits = make([]float64, 0, s.Trials)
	for i := 0; i < s.Trials; i++ {
		sample := s.generator.GenerateSample(rng)
		s.profits = append(s.profits, Profit(s.Costs, sample))
	}
}

// runConcurrent runs the producer in a background goroutine against a
// bounded channel and consumes on the calling goroutine. The consumer
// stops at end-of-stream, then waits for the producer goroutine to exit
// before the summary is computed, so no trial can still be in flight.
func (s *Simulator) runConcurrent() {
	ch := make(chan Sample, s.capacity)
	rng := s.rng.ForSubsystem(SubsystemSampling)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.generator.RunProducer(ch, rng, s.Trials)
	}()

	s.profits = make([]float64, 0, s.Trials)
	for {
		sample, ok := <-ch
		if !ok {
			break
		}
		s.profits = append(s.profits, Profit(s.Costs, sample))
	}

	wg.Wait()
	if len(ch) != 0 {
		panic("producer channel not drained at end of stream")
	}
}
