package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/parkgate/parkgate/sim"
)

var (
	// CLI flags for run-level configuration
	seed             int64         // Seed for the partitioned RNG
	logLevel         string        // Log verbosity level
	visitorCount     int           // Number of visitors generated for the run
	workerPoolSize   int           // Worker pool size bounding concurrent traversals
	continuationProb float64       // Chance a serviced visitor repeats the same station
	stopProb         float64       // Chance a random traversal ends after a step
	priorityProb     float64       // Chance a visitor is generated in the priority class
	budgetMin        int           // Inclusive lower bound for visitor budgets
	budgetMax        int           // Inclusive upper bound for visitor budgets
	traversalPolicy  string        // Traversal policy (fixed, random)
	admissionMode    string        // Admission mode (direct, queued)
	rosterPath       string        // Optional YAML roster file
	timeScale        time.Duration // Wall-clock length of one simulated second
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "parkgate",
	Short: "Concurrent simulator for capacity-limited stations with two-class admission",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the park simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.RunConfig{
			Visitors:                visitorCount,
			Workers:                 workerPoolSize,
			ContinuationProbability: continuationProb,
			StopProbability:         stopProb,
			PriorityProbability:     priorityProb,
			BudgetMin:               budgetMin,
			BudgetMax:               budgetMax,
			Traversal:               sim.Traversal(traversalPolicy),
			Admission:               sim.Admission(admissionMode),
			TimeScale:               timeScale,
			Seed:                    seed,
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}

		stationConfigs := sim.DefaultRosterConfigs()
		if rosterPath != "" {
			roster, err := sim.LoadRosterFile(rosterPath)
			if err != nil {
				logrus.Fatalf("unable to read roster config; %v", err)
			}
			stationConfigs, err = roster.Configs()
			if err != nil {
				logrus.Fatalf("Invalid roster config: %v", err)
			}
		}

		logrus.Infof("Starting simulation with %d visitors, %d workers, %d stations, seed=%d",
			visitorCount, workerPoolSize, len(stationConfigs), seed)

		startTime := time.Now() // Get current time (start)

		report, err := sim.RunSimulation(cfg, stationConfigs, sim.LogSink{})
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		report.Print()

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
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random visitor generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Run-level configuration
	runCmd.Flags().IntVar(&visitorCount, "visitors", 20, "Number of visitors in the run")
	runCmd.Flags().IntVar(&workerPoolSize, "workers", 8, "Worker pool size (concurrent traversals)")
	runCmd.Flags().Float64Var(&continuationProb, "continuation-prob", 0.5, "Probability a serviced visitor repeats the same station")
	runCmd.Flags().Float64Var(&stopProb, "stop-prob", 0.25, "Probability a random traversal stops after a step")
	runCmd.Flags().Float64Var(&priorityProb, "priority-prob", 0.3, "Probability a visitor is in the priority class")
	runCmd.Flags().IntVar(&budgetMin, "budget-min", 5, "Minimum visitor budget")
	runCmd.Flags().IntVar(&budgetMax, "budget-max", 20, "Maximum visitor budget")
	runCmd.Flags().StringVar(&traversalPolicy, "traversal", "fixed", "Traversal policy (fixed, random)")
	runCmd.Flags().StringVar(&admissionMode, "admission", "queued", "Admission mode (direct, queued)")
	runCmd.Flags().StringVar(&rosterPath, "roster", "", "YAML roster file (default: built-in park roster)")
	runCmd.Flags().DurationVar(&timeScale, "time-scale", 10*time.Millisecond, "Wall-clock length of one simulated second")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
