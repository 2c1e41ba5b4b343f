package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rettertyp/gai/internal/tracelog"
)

var (
	verbose bool
	logger  tracelog.Logger
)

// rootCmd is the base command, matching original_source's bare
// `program <n_intervals>` contract while adding subcommands for the
// richer surface this port supports.
var rootCmd = &cobra.Command{
	Use:   "gai",
	Short: "Decision procedure for Group Assignment on Intervals",
	Long: `gai decides whether a multiset of integer intervals can be partitioned
into groups such that every group of size g has each of its g intervals
contain the value g.

It exposes three interchangeable solver strategies (breadth-first,
depth-first, parallel) over the same dynamic-programming recurrence, and
nine instance-generator families for benchmarking and testing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := tracelog.LevelInfo
		if verbose {
			level = tracelog.LevelDebug
		}
		logger = tracelog.New(level, os.Stdout)
		return nil
	},
}

// Execute runs the root command, exiting nonzero on argument or execution
// error per spec.md §6's CLI contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	binName := "gai"
	rootCmd.Example = `  # Decide a random 200-interval instance with the breadth-first solver
  ` + binName + ` solve 200

  # Use the parallel solver on a known-hard adversarial family
  ` + binName + ` solve 500 --strategy parallel --family MaxWitnessesYes --workers 8

  # Reproduce a run with an explicit seed and write the report elsewhere
  ` + binName + ` solve 200 --family SimpleNo --seed 42 --out ./reports

  # Run every strategy against every family at once
  ` + binName + ` bench 100`
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() tracelog.Logger {
	return logger
}
