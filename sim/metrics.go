// Aggregates per-trial profit values into the run-level statistics
// reported at the end of a simulation.

package sim

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunSummary holds the aggregate statistics of one simulation run.
// Min, max, and mean are order-independent, so sequential and concurrent
// runs over the same sample stream produce the same summary.
type RunSummary struct {
	Trials int     // number of completed trials
	Min    float64 // lowest profit observed
	Max    float64 // highest profit observed
	Mean   float64 // sum of profits divided by trial count
}

// Summarize computes the RunSummary over a run's accumulated profits.
// An empty input is the defined degenerate case for zero-trial runs and
// yields a zero-filled summary, not an error.
func Summarize(profits []float64) RunSummary {
	if len(profits) == 0 {
		return RunSummary{}
	}
	return RunSummary{
		Trials: len(profits),
		Min:    floats.Min(profits),
		Max:    floats.Max(profits),
		Mean:   stat.Mean(profits, nil),
	}
}

// Render returns the labeled summary lines: trial count plus minimum,
// maximum, and average profit with thousands separators and two decimals.
func (s RunSummary) Render() string {
	p := message.NewPrinter(language.English)
	var sb strings.Builder
	sb.WriteString("=== Simulation Results ===\n")
	p.Fprintf(&sb, "Trials            : %d\n", s.Trials)
	p.Fprintf(&sb, "Minimum profit    : %.2f\n", s.Min)
	p.Fprintf(&sb, "Maximum profit    : %.2f\n", s.Max)
	p.Fprintf(&sb, "Average profit    : %.2f\n", s.Mean)
	return sb.String()
}

// Print displays the summary at the end of the simulation.
func (s RunSummary) Print(start time.Time) {
	fmt.Print(s.Render())
	fmt.Printf("Elapsed           : %v\n", time.Since(start))
}
