package sim

import "fmt"

// FixedCosts holds the per-run constants of the profit model: the unit
// sale price and the annual administrative and advertising overheads.
// Immutable after construction; safe to share across goroutines without
// synchronization. Callers must rely only on value equality, never on
// pointer identity.
type FixedCosts struct {
	SalePrice       float64
	AdminCost       float64
	AdvertisingCost float64
}

// Validate checks that all three fixed costs are positive.
func (c FixedCosts) Validate() error {
	if c.SalePrice <= 0 {
		return fmt.Errorf("sale price must be positive, got %f", c.SalePrice)
	}
	if c.AdminCost <= 0 {
		return fmt.Errorf("admin cost must be positive, got %f", c.AdminCost)
	}
	if c.AdvertisingCost <= 0 {
		return fmt.Errorf("advertising cost must be positive, got %f", c.AdvertisingCost)
	}
	return nil
}

// CostCache memoizes FixedCosts by their value triple so that every
// evaluation of a run shares one read-only record. Repeated lookups with
// equal arguments return value-equal results; whether the same pointer is
// reused is an implementation detail no caller may depend on.
//
// Thread-safety: NOT thread-safe. Intended for single-goroutine setup
// before a run starts.
type CostCache struct {
	shared map[FixedCosts]*FixedCosts
}

// NewCostCache creates an empty cache.
func NewCostCache() *CostCache {
	return &CostCache{shared: make(map[FixedCosts]*FixedCosts)}
}

// GetFixedCosts returns the shared FixedCosts record for the given triple,
// creating and validating it on first use. Idempotent.
func (c *CostCache) GetFixedCosts(salePrice, adminCost, advertisingCost float64) (*FixedCosts, error) {
	key := FixedCosts{
		SalePrice:       salePrice,
		AdminCost:       adminCost,
		AdvertisingCost: advertisingCost,
	}
	if costs, ok := c.shared[key]; ok {
		return costs, nil
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixed costs: %w", err)
	}
	costs := &FixedCosts{
		SalePrice:       salePrice,
		AdminCost:       adminCost,
		AdvertisingCost: advertisingCost,
	}
	c.shared[key] = costs
	return costs, nil
}

// Len returns the number of distinct cost triples cached.
func (c *CostCache) Len() int {
	return len(c.shared)
}
