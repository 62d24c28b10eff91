//go:build linux

package chrono

import (
	"fmt"
	"sync"
	"time"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// The kernel reports times(2) values in clock ticks. The tick frequency is
// constant for the lifetime of the process, so it is queried once and cached.
var (
	tickOnce    sync.Once
	nsPerTick   int64
	tickInitErr error
)

func tickFactor() (int64, error) {
	tickOnce.Do(func() {
		hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
		if err != nil {
			tickInitErr = err
			return
		}
		if hz <= 0 || hz > int64(time.Second) {
			tickInitErr = fmt.Errorf("implausible clock tick frequency %d", hz)
			return
		}
		nsPerTick = int64(time.Second) / hz
	})
	return nsPerTick, tickInitErr
}

// ticksToDuration converts a times(2) tick count to nanoseconds. The factor
// is an exact integer, so no precision is lost in the multiply.
func ticksToDuration(ticks int64, factor int64) time.Duration {
	return time.Duration(ticks * factor)
}

// durationToTicks is the inverse of ticksToDuration, used to validate the
// normalization round-trip.
func durationToTicks(d time.Duration, factor int64) int64 {
	return int64(d) / factor
}

// sampleProcess reads real, user, and system time in a single times(2)
// query. The return value of times is the wall tick count; user and system
// include reaped children, matching the posix process clock semantics.
func sampleProcess(kind Kind) (ProcessTimes, error) {
	var tms unix.Tms
	ticks, err := unix.Times(&tms)
	if err != nil {
		return ProcessTimes{}, newSystemError(kind, "times", err)
	}
	factor, err := tickFactor()
	if err != nil {
		return ProcessTimes{}, newSystemError(kind, "sysconf(_SC_CLK_TCK)", err)
	}
	return ProcessTimes{
		Real:   ticksToDuration(int64(ticks), factor),
		User:   ticksToDuration(int64(tms.Utime)+int64(tms.Cutime), factor),
		System: ticksToDuration(int64(tms.Stime)+int64(tms.Cstime), factor),
	}, nil
}
