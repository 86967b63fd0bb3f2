// Package sim provides the Monte Carlo engine that estimates the
// profitability distribution of a new product launch.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - distribution.go: the three variate samplers (discrete labor cost,
//     uniform component cost, clamped-normal demand)
//   - producer.go: Sample triples and the producer side of the bounded
//     channel handoff
//   - simulator.go: the sequential and producer/consumer run loops
//
// # Determinism
//
// All randomness is derived from a single master seed through
// PartitionedRNG (rng.go). Samplers take *rand.Rand per call and hold no
// sequencing state of their own, so two runs with the same seed and
// configuration produce identical sample streams — and the sequential and
// concurrent modes, which both pull from one seeded stream in FIFO order,
// produce identical summaries.
package sim
