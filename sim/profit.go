package sim

// Profit computes the first-year profit for one sample:
//
//	(SalePrice - LaborCost - ComponentCost) * Demand - (AdminCost + AdvertisingCost)
//
// The arithmetic order is fixed: the unit margin is formed first, then
// scaled by demand, then the fixed overhead is subtracted. Pure function,
// no side effects.
func Profit(costs *FixedCosts, s Sample) float64 {
	margin := costs.SalePrice - s.LaborCost - s.ComponentCost
	return margin*s.Demand - (costs.AdminCost + costs.AdvertisingCost)
}
