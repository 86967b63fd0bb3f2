package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/profit-sim/profit-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed            int64  // Seed for random sample generation
	trials          int    // Number of trials to simulate
	logLevel        string // Log verbosity level
	concurrent      bool   // Use the producer/consumer runner instead of the sequential one
	channelCapacity int    // Bounded handoff channel capacity (concurrent mode)

	// CLI flags for the fixed costs
	salePrice       float64 // Sale price per unit
	adminCost       float64 // Annual administrative cost
	advertisingCost float64 // Annual advertising cost

	// CLI flags for scenario presets
	scenarioFile string // Path to a YAML scenario preset file
	scenarioName string // Name of the preset to load from the file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "profit-sim",
	Short: "Monte Carlo simulator for product-launch profitability",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the profitability simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Scenario presets override the flag defaults
		dists := sim.DefaultDistributions()
		if scenarioFile != "" {
			scenario, err := GetScenario(scenarioFile, scenarioName)
			if err != nil {
				logrus.Fatalf("Unable to read scenario %q from %s: %v", scenarioName, scenarioFile, err)
			}
			scenario.Apply(&trials, &seed, &salePrice, &adminCost, &advertisingCost)
			dists = scenario.ApplyDistributions(dists)
		}

		costs, err := sim.NewCostCache().GetFixedCosts(salePrice, adminCost, advertisingCost)
		if err != nil {
			logrus.Fatalf("Invalid fixed costs: %v", err)
		}

		mode := sim.ModeSequential
		if concurrent {
			mode = sim.ModeConcurrent
		}

		logrus.Infof("Starting simulation: trials=%d, seed=%d, mode=%s, sale price=%.2f",
			trials, seed, mode, costs.SalePrice)

		startTime := time.Now()

		s, err := sim.NewSimulator(trials, seed, costs, dists, mode, channelCapacity)
		if err != nil {
			logrus.Fatalf("Unable to configure simulation: %v", err)
		}
		summary := s.Run()
		summary.Print(startTime)

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random sample generation")
	runCmd.Flags().IntVar(&trials, "trials", 10000, "Number of trials to simulate")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&concurrent, "concurrent", false, "Run the producer/consumer variant")
	runCmd.Flags().IntVar(&channelCapacity, "channel-capacity", sim.DefaultChannelCapacity, "Bounded handoff channel capacity (concurrent mode)")

	// Fixed costs
	runCmd.Flags().Float64Var(&salePrice, "sale-price", 70000.0, "Sale price per unit")
	runCmd.Flags().Float64Var(&adminCost, "admin-cost", 160000000.0, "Annual administrative cost")
	runCmd.Flags().Float64Var(&advertisingCost, "advertising-cost", 80000000.0, "Annual advertising cost")

	// Scenario presets
	runCmd.Flags().StringVar(&scenarioFile, "scenario-config", "", "Path to a YAML scenario preset file")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "baseline", "Scenario preset name")

	rootCmd.AddCommand(runCmd)
}
