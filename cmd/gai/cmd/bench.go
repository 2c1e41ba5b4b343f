package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rettertyp/gai/pkg/gai"
	"github.com/rettertyp/gai/pkg/gaigen"
	"github.com/rettertyp/gai/pkg/report"
)

var (
	benchStrategies []string
	benchFamilies   []string
	benchSeed       int64
	benchWorkers    int
	benchOutDir     string
	benchConcurrent int
)

var benchCmd = &cobra.Command{
	Use:   "bench <n_intervals>",
	Short: "Run every strategy against every requested family concurrently",
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringSliceVar(&benchStrategies, "strategies", []string{"bfs", "dfs", "parallel"}, "solver strategies to run")
	benchCmd.Flags().StringSliceVar(&benchFamilies, "families", gaigen.Families, "instance families to run")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "RNG seed for instance generation")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "worker count for the parallel strategy (<=0 selects NumCPU)")
	benchCmd.Flags().StringVar(&benchOutDir, "out", "results", "directory to write JSON run reports to")
	benchCmd.Flags().IntVar(&benchConcurrent, "concurrency", 4, "maximum number of runs in flight at once")
}

// runBench fans family x strategy combinations out across a bounded errgroup,
// generating an independent instance per combination and collecting every
// RunInfo before
// writing reports in one batch. Each combo gets its own seed derived from its
// index before any goroutine starts, and gaigen.Generate owns its *rand.Rand
// outright, so concurrent combos never share RNG state.
func runBench(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("n_intervals must be a positive integer, got %q", args[0])
	}

	log := GetLogger()

	type combo struct {
		family   string
		strategy string
	}
	var combos []combo
	for _, family := range benchFamilies {
		for _, strategy := range benchStrategies {
			combos = append(combos, combo{family: family, strategy: strategy})
		}
	}

	results := make([]gai.RunInfo, len(combos))

	g, ctx := errgroup.WithContext(cmd.Context())
	if benchConcurrent > 0 {
		g.SetLimit(benchConcurrent)
	}

	for idx, c := range combos {
		idx, c := idx, c
		seed := benchSeed + int64(idx)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			inst, err := gaigen.Generate(c.family, n, seed)
			if err != nil {
				return fmt.Errorf("family %s: %w", c.family, err)
			}

			info, err := solveWith(c.strategy, inst.Multiset, fmt.Sprintf("%s_%s", c.family, c.strategy), benchWorkers)
			if err != nil {
				return fmt.Errorf("strategy %s on family %s: %w", c.strategy, c.family, err)
			}
			info.Metadata = inst.Metadata
			results[idx] = info

			log.Debug("bench combo done: family=%s strategy=%s solutionFound=%v runTime=%s",
				c.family, c.strategy, info.SolutionFound, info.RunTime)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	paths, err := report.WriteMany(benchOutDir, results)
	if err != nil {
		return fmt.Errorf("writing run reports: %w", err)
	}
	log.Info("wrote %d reports to %s", len(paths), benchOutDir)

	return nil
}
