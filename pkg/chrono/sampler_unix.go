//go:build linux || darwin

package chrono

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	hasSteadyClock  = true
	hasThreadClock  = true
	hasProcessClock = true
)

// clockGettime reads one posix clock and normalizes the timespec to
// nanoseconds. The kind is only used for error attribution.
func clockGettime(kind Kind, clockID int32) (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockID, &ts); err != nil {
		return 0, newSystemError(kind, "clock_gettime", err)
	}
	return time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)*time.Nanosecond, nil
}

func sampleWall() (time.Duration, error) {
	return clockGettime(System, unix.CLOCK_REALTIME)
}

func sampleSteady() (time.Duration, error) {
	return clockGettime(Steady, unix.CLOCK_MONOTONIC)
}

func sampleHighRes() (time.Duration, error) {
	return clockGettime(HighResolution, unix.CLOCK_MONOTONIC)
}

func sampleThread() (time.Duration, error) {
	return clockGettime(Thread, unix.CLOCK_THREAD_CPUTIME_ID)
}
