package sim

import (
	"fmt"
	"math"
)

// probMassEpsilon bounds the tolerated drift of a probability mass from 1.0.
const probMassEpsilon = 1e-9

// DiscreteDistConfig parameterizes a discrete distribution over a fixed
// support with explicit probability masses.
type DiscreteDistConfig struct {
	Values        []float64 `yaml:"values"`
	Probabilities []float64 `yaml:"probabilities"`
}

// Validate checks that the support and mass function describe a proper
// discrete distribution.
func (c *DiscreteDistConfig) Validate() error {
	if len(c.Values) == 0 {
		return fmt.Errorf("discrete distribution requires at least one support value")
	}
	if len(c.Values) != len(c.Probabilities) {
		return fmt.Errorf("discrete distribution has %d values but %d probabilities",
			len(c.Values), len(c.Probabilities))
	}
	total := 0.0
	for i, p := range c.Probabilities {
		if p < 0 {
			return fmt.Errorf("probability %d is negative: %f", i, p)
		}
		total += p
	}
	if math.Abs(total-1.0) > probMassEpsilon {
		return fmt.Errorf("probability mass sums to %f, want 1.0", total)
	}
	return nil
}

// UniformDistConfig parameterizes a continuous uniform distribution on
// [Min, Max).
type UniformDistConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Validate checks that the interval bounds are well-formed.
func (c *UniformDistConfig) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("uniform bounds inverted: min %f > max %f", c.Min, c.Max)
	}
	return nil
}

// ClampedNormalDistConfig parameterizes a normal distribution whose draws
// are clamped into [Min, Max]. Out-of-range draws are forced to the nearest
// bound, never redrawn, so probability mass accumulates at the boundaries.
type ClampedNormalDistConfig struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// Validate checks the normal parameters and clamp bounds.
func (c *ClampedNormalDistConfig) Validate() error {
	if c.StdDev <= 0 {
		return fmt.Errorf("normal std_dev must be positive, got %f", c.StdDev)
	}
	if c.Min > c.Max {
		return fmt.Errorf("clamp bounds inverted: min %f > max %f", c.Min, c.Max)
	}
	return nil
}

// DistributionConfig groups the three input distributions of the profit
// model: unit labor cost (discrete), unit component cost (uniform), and
// first-year demand (clamped normal).
type DistributionConfig struct {
	LaborCost     DiscreteDistConfig      `yaml:"labor_cost"`
	ComponentCost UniformDistConfig       `yaml:"component_cost"`
	Demand        ClampedNormalDistConfig `yaml:"demand"`
}

// Validate checks all three distributions.
func (c *DistributionConfig) Validate() error {
	if err := c.LaborCost.Validate(); err != nil {
		return fmt.Errorf("labor cost: %w", err)
	}
	if err := c.ComponentCost.Validate(); err != nil {
		return fmt.Errorf("component cost: %w", err)
	}
	if err := c.Demand.Validate(); err != nil {
		return fmt.Errorf("demand: %w", err)
	}
	return nil
}

// DefaultDistributions returns the product-launch model's input
// distributions: five-point labor cost, uniform component cost on
// [25000, 35000], and demand Normal(14500, 4000) clamped to [9000, 28500].
func DefaultDistributions() DistributionConfig {
	return DistributionConfig{
		LaborCost: DiscreteDistConfig{
			Values:        []float64{10000, 13000, 16000, 19000, 22000},
			Probabilities: []float64{0.10, 0.30, 0.30, 0.20, 0.10},
		},
		ComponentCost: UniformDistConfig{Min: 25000, Max: 35000},
		Demand: ClampedNormalDistConfig{
			Mean:   14500,
			StdDev: 4000,
			Min:    9000,
			Max:    28500,
		},
	}
}
