package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronobench/chrono/internal/report"
	"github.com/chronobench/chrono/pkg/chrono"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command and measure its wall, user, and system time",
	Long: `Run a child command to completion and report its wall-clock time (measured
with the high-resolution clock) together with the user and system CPU time the
kernel attributed to it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	timer, err := chrono.NewTimer(chrono.HighResolution)
	if err != nil {
		return err
	}

	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	runErr := child.Run()
	wall, err := timer.Elapsed()
	if err != nil {
		return err
	}

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return fmt.Errorf("failed to run %s: %w", args[0], runErr)
		}
		exitCode = exitErr.ExitCode()
	}

	state := child.ProcessState
	times := chrono.ProcessTimes{
		Real:   wall,
		User:   state.UserTime(),
		System: state.SystemTime(),
	}

	result := report.New("run", times)
	result.SetCommand(strings.Join(args, " "), state.Pid(), exitCode)
	result.LogSummary(logger)
	return exportResults([]*report.Result{result})
}
