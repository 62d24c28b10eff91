// Package chrono provides stopwatch-style timers over the distinct timing
// sources exposed by the operating system: the wall clock, the monotonic
// (steady) clock, process-level real/user/system CPU time, and per-thread
// CPU time.
//
// Each clock kind is sampled through the native primitive of the host
// platform and normalized to a time.Duration:
//
//	| Clock          | Linux                               | Darwin                              | Windows                        |
//	|----------------|-------------------------------------|-------------------------------------|--------------------------------|
//	| System         | clock_gettime(CLOCK_REALTIME)       | clock_gettime(CLOCK_REALTIME)       | GetSystemTimePreciseAsFileTime |
//	| Steady         | clock_gettime(CLOCK_MONOTONIC)      | clock_gettime(CLOCK_MONOTONIC)      | QueryPerformanceCounter        |
//	| HighResolution | Steady                              | Steady                              | Steady                         |
//	| ProcessReal    | times(2)                            | clock_gettime(CLOCK_MONOTONIC)      | QueryPerformanceCounter        |
//	| ProcessUser    | times(2)                            | getrusage(RUSAGE_SELF)              | GetProcessTimes                |
//	| ProcessSystem  | times(2)                            | getrusage(RUSAGE_SELF)              | GetProcessTimes                |
//	| Thread         | clock_gettime(THREAD_CPUTIME_ID)    | clock_gettime(THREAD_CPUTIME_ID)    | GetThreadTimes                 |
//
// Availability of the Steady, Thread, and process CPU clocks is a build-time
// platform capability; check Kind.Supported before sampling. A failed OS
// query is reported as a *ClockError and is never substituted with a zero or
// stale value.
//
// Basic usage:
//
//	timer, err := chrono.NewTimer(chrono.HighResolution)
//	// ... do some work ...
//	elapsed, err := timer.Elapsed()
//	fmt.Println(chrono.Format(elapsed)) // e.g. "5.71s"
//
//	cpu, err := chrono.NewProcessCPUTimer()
//	// ... do some work ...
//	times, err := cpu.Elapsed()
//	fmt.Println(times) // "5.71s wall, 5.7s user + 0ns system = 5.7s CPU (99.8%)"
//
// Timers are plain values with no background goroutines. A single timer
// instance is not safe for concurrent use from multiple goroutines.
package chrono
