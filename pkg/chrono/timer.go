package chrono

import "time"

// Timer is a stopwatch over a single clock kind. It is created running and
// holds one epoch sample; Elapsed reads the clock again and returns the
// difference. Stop freezes the accumulated time, Resume continues it, Start
// discards it and begins a fresh measurement.
//
// For the system clock a backward adjustment of the host clock between two
// readings produces a negative elapsed value; it is returned as-is.
//
// A Timer is a plain value owned by its caller. It holds no locks and must
// not be used from multiple goroutines concurrently.
type Timer struct {
	clock Clock
	// Epoch sample while running, accumulated elapsed time while stopped.
	start   time.Duration
	running bool
}

// NewTimer samples the clock once and returns a running timer. Fails with
// *ClockError if the clock kind is unsupported on this platform or the OS
// query fails.
func NewTimer(kind Kind) (*Timer, error) {
	clock, err := NewClock(kind)
	if err != nil {
		return nil, err
	}
	now, err := clock.Now()
	if err != nil {
		return nil, err
	}
	return &Timer{clock: clock, start: now, running: true}, nil
}

// Kind returns the clock kind the timer measures.
func (t *Timer) Kind() Kind {
	return t.clock.Kind()
}

// IsRunning reports whether the timer is accumulating time.
func (t *Timer) IsRunning() bool {
	return t.running
}

// IsStopped reports whether the timer is stopped.
func (t *Timer) IsStopped() bool {
	return !t.running
}

// Elapsed returns the time accumulated since the last Start or Reset (plus
// any time accumulated before a Stop/Resume cycle). It does not mutate the
// timer and may be called repeatedly.
func (t *Timer) Elapsed() (time.Duration, error) {
	if !t.running {
		return t.start, nil
	}
	now, err := t.clock.Now()
	if err != nil {
		return 0, err
	}
	return now - t.start, nil
}

// Reset rebases the timer to the current clock reading and leaves it
// running. It returns the elapsed time accumulated before the reset.
func (t *Timer) Reset() (time.Duration, error) {
	prev, err := t.Elapsed()
	if err != nil {
		return 0, err
	}
	now, err := t.clock.Now()
	if err != nil {
		return 0, err
	}
	t.start = now
	t.running = true
	return prev, nil
}

// Stop freezes the accumulated elapsed time. A stopped timer keeps returning
// the same value from Elapsed.
func (t *Timer) Stop() error {
	if !t.running {
		return nil
	}
	now, err := t.clock.Now()
	if err != nil {
		return err
	}
	t.start = now - t.start
	t.running = false
	return nil
}

// Start discards any accumulated time and begins a fresh measurement. It is
// a no-op on a running timer.
func (t *Timer) Start() error {
	if t.running {
		return nil
	}
	now, err := t.clock.Now()
	if err != nil {
		return err
	}
	t.start = now
	t.running = true
	return nil
}

// Resume continues a stopped timer, keeping the time accumulated so far. It
// is a no-op on a running timer.
func (t *Timer) Resume() error {
	if t.running {
		return nil
	}
	now, err := t.clock.Now()
	if err != nil {
		return err
	}
	t.start = now - t.start
	t.running = true
	return nil
}

// ProcessCPUTimer measures real, user, and system process time together,
// sampling all three clocks in one OS query where the platform allows. It
// has the same run/stop/resume lifecycle as Timer.
type ProcessCPUTimer struct {
	start   ProcessTimes
	running bool
}

// NewProcessCPUTimer samples the process clocks once and returns a running
// composite timer.
func NewProcessCPUTimer() (*ProcessCPUTimer, error) {
	now, err := ProcessNow()
	if err != nil {
		return nil, err
	}
	return &ProcessCPUTimer{start: now, running: true}, nil
}

// IsRunning reports whether the timer is accumulating time.
func (t *ProcessCPUTimer) IsRunning() bool {
	return t.running
}

// IsStopped reports whether the timer is stopped.
func (t *ProcessCPUTimer) IsStopped() bool {
	return !t.running
}

// Elapsed returns the accumulated {real, user, system} snapshot.
func (t *ProcessCPUTimer) Elapsed() (ProcessTimes, error) {
	if !t.running {
		return t.start, nil
	}
	now, err := ProcessNow()
	if err != nil {
		return ProcessTimes{}, err
	}
	return now.Sub(t.start), nil
}

// Reset rebases the timer to the current readings and leaves it running,
// returning the previously accumulated snapshot.
func (t *ProcessCPUTimer) Reset() (ProcessTimes, error) {
	prev, err := t.Elapsed()
	if err != nil {
		return ProcessTimes{}, err
	}
	now, err := ProcessNow()
	if err != nil {
		return ProcessTimes{}, err
	}
	t.start = now
	t.running = true
	return prev, nil
}

// Stop freezes the accumulated snapshot.
func (t *ProcessCPUTimer) Stop() error {
	if !t.running {
		return nil
	}
	now, err := ProcessNow()
	if err != nil {
		return err
	}
	t.start = now.Sub(t.start)
	t.running = false
	return nil
}

// Start discards any accumulated time and begins a fresh measurement.
func (t *ProcessCPUTimer) Start() error {
	if t.running {
		return nil
	}
	now, err := ProcessNow()
	if err != nil {
		return err
	}
	t.start = now
	t.running = true
	return nil
}

// Resume continues a stopped timer, keeping the accumulated snapshot.
func (t *ProcessCPUTimer) Resume() error {
	if t.running {
		return nil
	}
	now, err := ProcessNow()
	if err != nil {
		return err
	}
	t.start = now.Sub(t.start)
	t.running = true
	return nil
}

// ThreadTimer measures CPU time consumed by the calling OS thread.
//
// Goroutines migrate between OS threads, so a meaningful measurement
// requires the goroutine to be pinned with runtime.LockOSThread for the
// whole interval. Creating the timer on one goroutine and reading it on
// another measures whatever threads those goroutines happen to run on; the
// timer cannot detect this.
type ThreadTimer struct {
	inner Timer
}

// NewThreadTimer samples the calling thread's CPU clock and returns a
// running timer. Fails with *ClockError where the platform has no per-thread
// CPU clock.
func NewThreadTimer() (*ThreadTimer, error) {
	t, err := NewTimer(Thread)
	if err != nil {
		return nil, err
	}
	return &ThreadTimer{inner: *t}, nil
}

// IsRunning reports whether the timer is accumulating time.
func (t *ThreadTimer) IsRunning() bool { return t.inner.IsRunning() }

// IsStopped reports whether the timer is stopped.
func (t *ThreadTimer) IsStopped() bool { return t.inner.IsStopped() }

// Elapsed returns the thread CPU time accumulated so far.
func (t *ThreadTimer) Elapsed() (time.Duration, error) { return t.inner.Elapsed() }

// Reset rebases the timer, returning the previously accumulated time.
func (t *ThreadTimer) Reset() (time.Duration, error) { return t.inner.Reset() }

// Stop freezes the accumulated time.
func (t *ThreadTimer) Stop() error { return t.inner.Stop() }

// Start discards accumulated time and begins a fresh measurement.
func (t *ThreadTimer) Start() error { return t.inner.Start() }

// Resume continues a stopped timer.
func (t *ThreadTimer) Resume() error { return t.inner.Resume() }
