// Package report holds the immutable results of a measurement run and
// renders them for humans and machines.
package report

import (
	"time"

	"github.com/chronobench/chrono/pkg/chrono"
	"github.com/chronobench/chrono/pkg/logging"
)

// Result is the immutable record of one measurement. Set once at completion,
// never recomputed.
type Result struct {
	// Identity
	Label   string `json:"label" yaml:"label"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
	PID     int    `json:"pid,omitempty" yaml:"pid,omitempty"`

	// Outcome
	ExitCode   int `json:"exit_code" yaml:"exit_code"`
	Iterations int `json:"iterations,omitempty" yaml:"iterations,omitempty"`

	// Timing, nanoseconds
	Real   time.Duration `json:"real_ns" yaml:"real_ns"`
	User   time.Duration `json:"user_ns" yaml:"user_ns"`
	System time.Duration `json:"system_ns" yaml:"system_ns"`

	// Derived, set once at construction
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
}

// New creates a result from a composite clock snapshot
func New(label string, times chrono.ProcessTimes) *Result {
	return &Result{
		Label:      label,
		Real:       times.Real,
		User:       times.User,
		System:     times.System,
		CPUPercent: times.Utilization() * 100,
	}
}

// SetCommand records the measured child process
func (r *Result) SetCommand(command string, pid, exitCode int) {
	r.Command = command
	r.PID = pid
	r.ExitCode = exitCode
}

// Times returns the snapshot the result was built from
func (r *Result) Times() chrono.ProcessTimes {
	return chrono.ProcessTimes{Real: r.Real, User: r.User, System: r.System}
}

// Summary returns the one-line human form of the measurement
func (r *Result) Summary() string {
	return r.Times().String()
}

// LogSummary emits the one-line summary through the structured logger
func (r *Result) LogSummary(logger *logging.Logger) {
	fields := map[string]interface{}{
		"label":       r.Label,
		"real":        chrono.Format(r.Real),
		"user":        chrono.Format(r.User),
		"system":      chrono.Format(r.System),
		"cpu_percent": r.CPUPercent,
	}
	if r.Command != "" {
		fields["command"] = r.Command
		fields["pid"] = r.PID
		fields["exit"] = r.ExitCode
	}
	logger.Info("measurement complete", fields)
}
