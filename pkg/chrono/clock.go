package chrono

import "time"

// Clock samples a single timing source. The zero value is the system clock;
// use NewClock to get availability checking for the other kinds.
//
// For the system clock Now returns time since the Unix epoch. For the steady
// and high-resolution clocks the epoch is unspecified and only the difference
// between two readings is meaningful. For the CPU clocks the reading is the
// CPU time consumed so far by the process (or calling thread).
type Clock struct {
	kind Kind
}

// NewClock returns a clock for the given kind. The capability check happens
// here, before any OS call: requesting a kind the platform does not support
// fails with a *ClockError of type ErrorTypeUnavailable.
func NewClock(kind Kind) (Clock, error) {
	if !kind.Supported() {
		return Clock{}, newUnavailableError(kind)
	}
	return Clock{kind: kind}, nil
}

// Kind returns the clock kind this clock samples.
func (c Clock) Kind() Kind {
	return c.kind
}

// Now samples the clock and returns the normalized reading.
func (c Clock) Now() (time.Duration, error) {
	return Now(c.kind)
}

// Now samples the given clock kind once.
func Now(kind Kind) (time.Duration, error) {
	if !kind.Supported() {
		return 0, newUnavailableError(kind)
	}
	switch kind {
	case System:
		return sampleWall()
	case Steady:
		return sampleSteady()
	case HighResolution:
		return sampleHighRes()
	case ProcessReal:
		pt, err := sampleProcess(kind)
		return pt.Real, err
	case ProcessUser:
		pt, err := sampleProcess(kind)
		return pt.User, err
	case ProcessSystem:
		pt, err := sampleProcess(kind)
		return pt.System, err
	case Thread:
		return sampleThread()
	default:
		return 0, newUnavailableError(kind)
	}
}

// ProcessNow samples the real, user, and system process clocks in one OS
// query where the platform provides one, avoiding skew between the three
// values. Errors are attributed to the process_real clock.
func ProcessNow() (ProcessTimes, error) {
	if !hasProcessClock {
		return ProcessTimes{}, newUnavailableError(ProcessReal)
	}
	return sampleProcess(ProcessReal)
}
