package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/flowsim/flowsim/sim"
	"github.com/flowsim/flowsim/sim/trace"
)

var (
	// CLI flags for the run itself
	seed              int64  // Master seed for traffic generation and network reshuffles
	horizon           int64  // Total simulated time
	tickInterval      int64  // Simulated time per tick
	reshuffleInterval int64  // Period of outbound link randomization
	logLevel          string // Log verbosity level

	// CLI flags for the link model
	linkThroughput int64  // Outbound link throughput (bytes per tick)
	linkLatency    int64  // Outbound link latency (time units)
	ackLatency     int64  // Return link latency (time units)
	profileName    string // Named link profile, overrides the raw link flags
	profilesPath   string // Path to the profiles YAML

	// CLI flags for the controller and sender
	initialWindow int64
	sampleWindow  int
	increaseStep  int64
	decreaseStep  int64
	capacityFloor int64

	quiet bool // suppress the per-tick column output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "flowsim",
	Short: "Discrete-time simulator for adaptive flow control over a slow link",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the flow-control simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		outThroughput, outLatency, retLatency := linkThroughput, linkLatency, ackLatency
		if profileName != "" {
			profile := GetLinkProfile(profilesPath, profileName)
			if profile == nil {
				logrus.Fatalf("Unknown link profile %q. Exiting simulation.", profileName)
			}
			outThroughput, outLatency, retLatency = profile.Throughput, profile.Latency, profile.AckLatency
		}
		if outThroughput <= 0 {
			logrus.Fatalf("Outbound throughput must be positive, got %d", outThroughput)
		}
		if outLatency < 0 || retLatency < 0 {
			logrus.Fatalf("Link latencies must be non-negative, got %d and %d", outLatency, retLatency)
		}
		if tickInterval <= 0 {
			logrus.Fatalf("Tick interval must be positive, got %d", tickInterval)
		}
		if sampleWindow <= 0 {
			logrus.Fatalf("Sample window must be positive, got %d", sampleWindow)
		}

		logrus.Infof("Starting simulation with throughput=%d, latency=%d, horizon=%d time units",
			outThroughput, outLatency, horizon)

		startTime := time.Now() // Get current time (start)

		defaults := sim.DefaultTrafficConfig()
		s := sim.NewSimulator(
			sim.NewSimulationConfig(horizon, tickInterval, reshuffleInterval, seed),
			sim.NewLinkConfig("output", outThroughput, outLatency),
			sim.NewLinkConfig("acks", sim.UnlimitedThroughput, retLatency),
			sim.NewControllerConfig(initialWindow, sampleWindow, increaseStep, decreaseStep),
			sim.NewTrafficConfig(capacityFloor, capacityFloor, defaults.BurstMin, defaults.BurstMax, defaults.ChunkSigma),
		)
		s.Trace = trace.NewTrace()
		if !quiet {
			printTickHeader()
			s.OnTick = printTickRow
		}

		s.Run()

		s.Metrics.Print()
		printSummaryTable(trace.Summarize(s.Trace))
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
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
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Master seed for traffic generation and network reshuffles")
	runCmd.Flags().Int64Var(&horizon, "horizon", 10000, "Total simulated time (time units)")
	runCmd.Flags().Int64Var(&tickInterval, "tick", 20, "Simulated time per tick")
	runCmd.Flags().Int64Var(&reshuffleInterval, "reshuffle-interval", 10000, "Randomize outbound link parameters every this many time units (0 disables)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// link model configs
	runCmd.Flags().Int64Var(&linkThroughput, "throughput", 500, "Outbound link throughput (bytes per tick)")
	runCmd.Flags().Int64Var(&linkLatency, "latency", 20, "Outbound link latency (time units)")
	runCmd.Flags().Int64Var(&ackLatency, "ack-latency", 20, "Return link latency (time units); return throughput is uncapped")
	runCmd.Flags().StringVar(&profileName, "profile", "", "Named link profile from the profiles file (overrides raw link flags)")
	runCmd.Flags().StringVar(&profilesPath, "profiles-config", "configs/profiles.yaml", "Path to the link profiles YAML")

	// controller and sender configs
	runCmd.Flags().Int64Var(&initialWindow, "initial-window", 128, "Controller's starting window (bytes)")
	runCmd.Flags().IntVar(&sampleWindow, "sample-window", 10, "Latency samples per controller decision")
	runCmd.Flags().Int64Var(&increaseStep, "increase-step", 100, "Additive window growth on speed up (bytes)")
	runCmd.Flags().Int64Var(&decreaseStep, "decrease-step", 200, "Additive window shrink on slow down (bytes)")
	runCmd.Flags().Int64Var(&capacityFloor, "capacity-floor", 128, "Sender capacity never drops below this (bytes)")

	runCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the per-tick column output")

	rootCmd.AddCommand(runCmd)
}
