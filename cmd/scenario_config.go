package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/profit-sim/profit-sim/sim"
)

// ScenarioConfig is the top-level structure of a scenario preset file.
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is one named preset. Fields are pointers so that a preset only
// overrides what it sets; unset fields keep the CLI flag values.
type Scenario struct {
	Trials          *int     `yaml:"trials,omitempty"`
	Seed            *int64   `yaml:"seed,omitempty"`
	SalePrice       *float64 `yaml:"sale_price,omitempty"`
	AdminCost       *float64 `yaml:"admin_cost,omitempty"`
	AdvertisingCost *float64 `yaml:"advertising_cost,omitempty"`

	// Distributions replaces the model's default input distributions
	// wholesale when set. Validated before the lookup returns.
	Distributions *sim.DistributionConfig `yaml:"distributions,omitempty"`
}

// GetScenario loads the named preset from a YAML scenario file.
func GetScenario(path string, name string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found", name)
	}
	if scenario.Distributions != nil {
		if err := scenario.Distributions.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q distributions: %w", name, err)
		}
	}
	return &scenario, nil
}

// ApplyDistributions returns the preset's distribution override, or the
// given defaults when the preset sets none.
func (s *Scenario) ApplyDistributions(defaults sim.DistributionConfig) sim.DistributionConfig {
	if s.Distributions != nil {
		return *s.Distributions
	}
	return defaults
}

// Apply copies the preset's set fields over the given run parameters.
func (s *Scenario) Apply(trials *int, seed *int64, salePrice, adminCost, advertisingCost *float64) {
	if s.Trials != nil {
		*trials = *s.Trials
	}
	if s.Seed != nil {
		*seed = *s.Seed
	}
	if s.SalePrice != nil {
		*salePrice = *s.SalePrice
	}
	if s.AdminCost != nil {
		*adminCost = *s.AdminCost
	}
	if s.AdvertisingCost != nil {
		*advertisingCost = *s.AdvertisingCost
	}
}
