//go:build !linux && !darwin && !windows

package chrono

import "time"

// Platforms without a native sampler get the wall clock only. The steady,
// thread, and process CPU clocks are reported as unavailable so callers find
// out through the capability check instead of a bogus zero reading.
const (
	hasSteadyClock  = false
	hasThreadClock  = false
	hasProcessClock = false
)

func sampleWall() (time.Duration, error) {
	return time.Duration(time.Now().UnixNano()), nil
}

func sampleHighRes() (time.Duration, error) {
	return sampleWall()
}

func sampleSteady() (time.Duration, error) {
	return 0, newUnavailableError(Steady)
}

func sampleThread() (time.Duration, error) {
	return 0, newUnavailableError(Thread)
}

func sampleProcess(kind Kind) (ProcessTimes, error) {
	return ProcessTimes{}, newUnavailableError(kind)
}
