package sim

import (
	"math"
	"math/rand"
	"sort"
)

// Sampler generates one random variate per call.
type Sampler interface {
	// Sample returns one draw. Every call is independent of prior calls;
	// all sequencing state lives in the supplied rng.
	Sample(rng *rand.Rand) float64
}

// DiscreteSampler draws from a fixed support via inverse CDF lookup.
type DiscreteSampler struct {
	values []float64
	cdf    []float64 // cumulative probabilities, same length as values
}

// NewDiscreteSampler builds a sampler from explicit support values and
// probability masses. The mass must sum to 1; validation failures are
// construction errors, never deferred to sampling time.
func NewDiscreteSampler(cfg DiscreteDistConfig) (*DiscreteSampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	values := make([]float64, len(cfg.Values))
	copy(values, cfg.Values)
	cdf := make([]float64, len(cfg.Probabilities))
	cumulative := 0.0
	for i, p := range cfg.Probabilities {
		cumulative += p
		cdf[i] = cumulative
	}
	// Guard the top bucket against accumulated rounding error.
	cdf[len(cdf)-1] = 1.0

	return &DiscreteSampler{values: values, cdf: cdf}, nil
}

func (s *DiscreteSampler) Sample(rng *rand.Rand) float64 {
	if len(s.values) == 1 {
		return s.values[0]
	}
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cdf, u)
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	return s.values[idx]
}

// UniformSampler draws uniformly from [min, max).
type UniformSampler struct {
	min, max float64
}

// NewUniformSampler builds a continuous uniform sampler on [min, max).
func NewUniformSampler(cfg UniformDistConfig) (*UniformSampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &UniformSampler{min: cfg.Min, max: cfg.Max}, nil
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Float64()*(s.max-s.min)
}

// ClampedNormalSampler draws from Normal(mean, stdDev) and clamps the
// result into [min, max]. Clamping maps an out-of-range draw to exactly
// the nearest bound rather than redrawing, so the output distribution
// carries point masses at the boundaries.
type ClampedNormalSampler struct {
	mean, stdDev float64
	min, max     float64
}

// NewClampedNormalSampler builds a clamped normal sampler.
func NewClampedNormalSampler(cfg ClampedNormalDistConfig) (*ClampedNormalSampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ClampedNormalSampler{
		mean:   cfg.Mean,
		stdDev: cfg.StdDev,
		min:    cfg.Min,
		max:    cfg.Max,
	}, nil
}

func (s *ClampedNormalSampler) Sample(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.stdDev + s.mean
	return math.Min(s.max, math.Max(s.min, val))
}
