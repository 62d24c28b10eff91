//go:build darwin

package chrono

import (
	"time"

	"golang.org/x/sys/unix"
)

// sampleProcess reads user and system CPU time from getrusage(2). Darwin has
// no times(2) wrapper in x/sys, so the real component comes from the
// monotonic clock; its epoch is arbitrary and only deltas are meaningful,
// same as the tick counter returned by times(2) elsewhere.
func sampleProcess(kind Kind) (ProcessTimes, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return ProcessTimes{}, newSystemError(kind, "getrusage", err)
	}
	real, err := clockGettime(kind, unix.CLOCK_MONOTONIC)
	if err != nil {
		return ProcessTimes{}, err
	}
	return ProcessTimes{
		Real:   real,
		User:   time.Duration(ru.Utime.Nano()),
		System: time.Duration(ru.Stime.Nano()),
	}, nil
}
