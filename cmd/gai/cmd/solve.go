package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rettertyp/gai/pkg/gai"
	"github.com/rettertyp/gai/pkg/gaigen"
	"github.com/rettertyp/gai/pkg/report"
)

var (
	solveStrategy string
	solveFamily   string
	solveSeed     int64
	solveWorkers  int
	solveOutDir   string
)

var solveCmd = &cobra.Command{
	Use:   "solve <n_intervals>",
	Short: "Generate an instance and decide it with one solver strategy",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "bfs", "solver strategy: bfs, dfs, parallel")
	solveCmd.Flags().StringVar(&solveFamily, "family", "SimpleYes", fmt.Sprintf("instance family: %v", gaigen.Families))
	solveCmd.Flags().Int64Var(&solveSeed, "seed", time.Now().UnixNano(), "RNG seed for instance generation")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0, "worker count for --strategy parallel (<=0 selects NumCPU)")
	solveCmd.Flags().StringVar(&solveOutDir, "out", "results", "directory to write the JSON run report to")
}

func runSolve(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("n_intervals must be a positive integer, got %q", args[0])
	}

	log := GetLogger()

	inst, err := gaigen.Generate(solveFamily, n, solveSeed)
	if err != nil {
		return err
	}

	log.Info("generated %s instance: n=%d seed=%d metadata=%v", inst.Name, n, solveSeed, inst.Metadata)

	info, err := solveWith(solveStrategy, inst.Multiset, inst.Name, solveWorkers)
	if err != nil {
		return err
	}
	info.Metadata = inst.Metadata

	if info.SolutionFound {
		log.Info("solution found: nSolutions=%d runTime=%s", info.NSolutions, info.RunTime)
	} else {
		log.Info("no solution: runTime=%s", info.RunTime)
	}

	path, err := report.WriteOne(solveOutDir, info)
	if err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	log.Info("wrote report to %s", path)

	return nil
}

// solveWith dispatches to one of the three solver strategies, returning an
// error for an unrecognised strategy name instead of panicking.
func solveWith(strategy string, input *gai.IntervalMultiset, description string, workers int) (gai.RunInfo, error) {
	switch strategy {
	case "bfs", "breadth-first", "":
		return gai.SolveBreadthFirst(input, description), nil
	case "dfs", "depth-first":
		return gai.SolveDepthFirst(input, description), nil
	case "parallel":
		return gai.SolveParallel(input, description, workers), nil
	default:
		return gai.RunInfo{}, fmt.Errorf("unknown solver strategy %q (valid: bfs, dfs, parallel)", strategy)
	}
}
