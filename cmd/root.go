package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/queuesim/queuesim/sim"
)

var (
	// CLI flags for the queueing system parameters
	logLevel        string // Log verbosity level
	bufferCapacity  uint64 // Maximum number of items the buffer can hold
	serverCapacity  uint64 // Number of parallel servers
	serviceDuration uint64 // Fixed service duration (in ticks)
	arrivals        int    // Number of uniformly spaced arrivals to seed
	arrivalInterval uint64 // Spacing between seeded arrivals (in ticks)
	horizon         uint64 // Optional simulation horizon (0 = run to empty queue)
	scenarioPath    string // Optional YAML scenario file overriding the flags above
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queuesim",
	Short: "Discrete-event simulator for a single-stage queueing system",
}

// runCmd executes the simulation using parameters from CLI flags or a
// scenario file, rendering the per-step trajectory and the final event log.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queueing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Build the simulator and seed its arrivals
		var s *sim.Simulator
		if scenarioPath != "" {
			scenario, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Unable to load scenario %s: %v", scenarioPath, err)
			}
			s = scenario.NewSimulator()
		} else {
			s = sim.NewSimulator(bufferCapacity, serverCapacity, sim.Tick(serviceDuration))
			s.SeedUniformArrivals(arrivals, sim.Tick(arrivalInterval))
		}

		logrus.Infof("Starting simulation with buffer capacity=%d, server capacity=%d, service duration=%d ticks, %d seeded arrivals",
			s.State.BufferCapacity(), s.State.ServerCapacity(), s.State.ServerDuration(), s.Metrics.SeededArrivals)

		// Drive the run, rendering one trajectory row per step
		fmt.Printf("%10s %10s %10s\n", "Time", "Buffer", "Server")
		for s.Step() {
			fmt.Printf("%10d %10d %10d\n", s.State.Time(), s.State.BufferCount(), s.State.ServerCount())
			if horizon > 0 && uint64(s.State.Time()) > horizon {
				logrus.Infof("Horizon %d reached, stopping", horizon)
				break
			}
		}

		// Render the full event log and the summary
		fmt.Println()
		for _, f := range s.Log.Facts() {
			fmt.Println(f)
		}
		fmt.Println()
		s.Metrics.Print()

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
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Queueing system parameters
	runCmd.Flags().Uint64Var(&bufferCapacity, "buffer-capacity", 10, "Maximum number of items the buffer can hold")
	runCmd.Flags().Uint64Var(&serverCapacity, "server-capacity", 2, "Number of parallel servers")
	runCmd.Flags().Uint64Var(&serviceDuration, "service-duration", 10, "Fixed service duration in ticks")

	// Arrival seeding
	runCmd.Flags().IntVar(&arrivals, "arrivals", 10, "Number of uniformly spaced arrivals to seed")
	runCmd.Flags().Uint64Var(&arrivalInterval, "arrival-interval", 1, "Ticks between seeded arrivals")
	runCmd.Flags().Uint64Var(&horizon, "horizon", 0, "Stop once the clock passes this tick (0 = run until the queue empties)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides the parameter and arrival flags)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
