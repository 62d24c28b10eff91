package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/chronobench/chrono/internal/report"
	"github.com/chronobench/chrono/internal/sysinfo"
	"github.com/chronobench/chrono/internal/workload"
	"github.com/chronobench/chrono/pkg/chrono"
)

var (
	benchIterations int
	benchWorkers    int
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Burn CPU and report the composite process clock",
	Long: `Run a deterministic CPU-bound workload and report real, user, and system
time from the composite process clock, with the host context the numbers were
measured under.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchIterations, "iterations", 200_000_000, "total mixing rounds to execute")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", runtime.NumCPU(), "parallel workers")
}

func runBench(cmd *cobra.Command, args []string) error {
	host := sysinfo.Collect()
	logger.Info("starting benchmark", map[string]interface{}{
		"iterations": benchIterations,
		"workers":    benchWorkers,
		"cores":      host.LogicalCores,
		"cpu":        host.CPUModel,
	})

	timer, err := chrono.NewProcessCPUTimer()
	if err != nil {
		return err
	}

	workload.SpinParallel(benchIterations, benchWorkers)

	times, err := timer.Elapsed()
	if err != nil {
		return err
	}

	if times.CPU() > host.CPUBound(times.Real) {
		logger.Warn("cpu time exceeds core capacity for the wall span, OS accounting may be coarse", map[string]interface{}{
			"cpu":   chrono.Format(times.CPU()),
			"real":  chrono.Format(times.Real),
			"cores": host.LogicalCores,
		})
	}

	result := report.New("bench", times)
	result.Iterations = benchIterations
	result.LogSummary(logger)
	return exportResults([]*report.Result{result})
}
