package sim

import (
	"fmt"
	"math/rand"
)

// Sample is one (labor cost, component cost, demand) triple. Created
// fresh per trial and consumed immediately by profit evaluation.
type Sample struct {
	LaborCost     float64
	ComponentCost float64
	Demand        float64
}

// SampleGenerator composes the three variate samplers of the profit model.
// Stateless aside from the fixed distribution parameters captured at
// construction; all randomness flows through the rng passed per call.
type SampleGenerator struct {
	laborCost     Sampler
	componentCost Sampler
	demand        Sampler
}

// NewSampleGenerator builds a generator from the given distribution
// configuration. Invalid distribution parameters fail here, before any
// sampling can happen.
func NewSampleGenerator(cfg DistributionConfig) (*SampleGenerator, error) {
	laborCost, err := NewDiscreteSampler(cfg.LaborCost)
	if err != nil {
		return nil, fmt.Errorf("labor cost: %w", err)
	}
	componentCost, err := NewUniformSampler(cfg.ComponentCost)
	if err != nil {
		return nil, fmt.Errorf("component cost: %w", err)
	}
	demand, err := NewClampedNormalSampler(cfg.Demand)
	if err != nil {
		return nil, fmt.Errorf("demand: %w", err)
	}
	return &SampleGenerator{
		laborCost:     laborCost,
		componentCost: componentCost,
		demand:        demand,
	}, nil
}

// GenerateSample draws one sample triple. The three samplers are consulted
// in fixed order (labor, component, demand) so a seeded rng yields a
// reproducible sample stream.
func (g *SampleGenerator) GenerateSample(rng *rand.Rand) Sample {
	return Sample{
		LaborCost:     g.laborCost.Sample(rng),
		ComponentCost: g.componentCost.Sample(rng),
		Demand:        g.demand.Sample(rng),
	}
}

// RunProducer generates exactly trials samples, sending each into ch in
// generation order, then closes ch as the end-of-stream signal. The close
// happens exactly once, strictly after the last send; for trials = 0 only
// the close happens. Intended to run in its own goroutine; the producer
// owns rng exclusively for the duration and blocks when ch is full.
func (g *SampleGenerator) RunProducer(ch chan<- Sample, rng *rand.Rand, trials int) {
	for i := 0; i < trials; i++ {
		ch <- g.GenerateSample(rng)
	}
	close(ch)
}
