package chrono

// Kind identifies one of the timing sources this package can sample.
type Kind int

const (
	// System is the system-wide wall clock. It can jump backward or forward
	// when the host clock is adjusted.
	System Kind = iota
	// Steady is the system-wide monotonic clock. Its epoch is unspecified;
	// only differences between two readings are meaningful.
	Steady
	// HighResolution is the finest-grained clock available on the platform:
	// the steady clock where one exists, otherwise the wall clock.
	HighResolution
	// ProcessReal is the wall-clock component of the process CPU query.
	ProcessReal
	// ProcessUser is the CPU time the process has spent in user mode.
	ProcessUser
	// ProcessSystem is the CPU time the kernel has spent on behalf of the
	// process.
	ProcessSystem
	// Thread is the CPU time consumed by the calling OS thread only.
	Thread
)

// Kinds lists every clock kind, supported on this platform or not.
func Kinds() []Kind {
	return []Kind{System, Steady, HighResolution, ProcessReal, ProcessUser, ProcessSystem, Thread}
}

func (k Kind) String() string {
	switch k {
	case System:
		return "system"
	case Steady:
		return "steady"
	case HighResolution:
		return "high_resolution"
	case ProcessReal:
		return "process_real"
	case ProcessUser:
		return "process_user"
	case ProcessSystem:
		return "process_system"
	case Thread:
		return "thread"
	default:
		return "unknown"
	}
}

// Supported reports whether this clock kind can be sampled on the current
// platform. The answer is fixed at build time by the platform sampler files;
// no OS call is made.
func (k Kind) Supported() bool {
	switch k {
	case System, HighResolution:
		return true
	case Steady:
		return hasSteadyClock
	case ProcessReal, ProcessUser, ProcessSystem:
		return hasProcessClock
	case Thread:
		return hasThreadClock
	default:
		return false
	}
}
