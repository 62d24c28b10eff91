package chrono

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

// TestTimerLifecycle walks a timer through the run/stop/resume/start states
func TestTimerLifecycle(t *testing.T) {
	for _, kind := range []Kind{System, Steady, HighResolution} {
		if !kind.Supported() {
			continue
		}
		timer, err := NewTimer(kind)
		if err != nil {
			t.Fatalf("%s: NewTimer failed: %v", kind, err)
		}
		if !timer.IsRunning() {
			t.Fatalf("%s: new timer is not running", kind)
		}

		time.Sleep(10 * time.Millisecond)
		elapsed, err := timer.Elapsed()
		if err != nil {
			t.Fatalf("%s: Elapsed failed: %v", kind, err)
		}
		if elapsed < 10*time.Millisecond {
			t.Errorf("%s: elapsed %v < 10ms", kind, elapsed)
		}

		if err := timer.Stop(); err != nil {
			t.Fatalf("%s: Stop failed: %v", kind, err)
		}
		if !timer.IsStopped() {
			t.Errorf("%s: timer still running after Stop", kind)
		}
		frozen, _ := timer.Elapsed()
		time.Sleep(10 * time.Millisecond)
		again, _ := timer.Elapsed()
		if frozen != again {
			t.Errorf("%s: stopped timer advanced: %v then %v", kind, frozen, again)
		}

		if err := timer.Resume(); err != nil {
			t.Fatalf("%s: Resume failed: %v", kind, err)
		}
		time.Sleep(10 * time.Millisecond)
		if err := timer.Stop(); err != nil {
			t.Fatalf("%s: Stop failed: %v", kind, err)
		}
		total, _ := timer.Elapsed()
		if total < 20*time.Millisecond {
			t.Errorf("%s: accumulated %v, want >= 20ms", kind, total)
		}

		if err := timer.Start(); err != nil {
			t.Fatalf("%s: Start failed: %v", kind, err)
		}
		if err := timer.Stop(); err != nil {
			t.Fatalf("%s: Stop failed: %v", kind, err)
		}
		fresh, _ := timer.Elapsed()
		if fresh >= 20*time.Millisecond {
			t.Errorf("%s: Start did not discard accumulated time: %v", kind, fresh)
		}
	}
}

// TestTimerReset checks Reset returns the previous elapsed time and rebases
// the epoch
func TestTimerReset(t *testing.T) {
	timer, err := NewTimer(HighResolution)
	if err != nil {
		t.Fatalf("NewTimer failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	prev, err := timer.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if prev < 20*time.Millisecond {
		t.Errorf("Reset returned %v, want >= 20ms", prev)
	}

	after, err := timer.Elapsed()
	if err != nil {
		t.Fatalf("Elapsed failed: %v", err)
	}
	if after < 0 {
		t.Errorf("elapsed after reset is negative: %v", after)
	}
	if after >= prev {
		t.Errorf("elapsed after reset (%v) not smaller than before (%v)", after, prev)
	}
}

// TestNewTimerUnavailable checks construction fails up front for unsupported
// kinds
func TestNewTimerUnavailable(t *testing.T) {
	if _, err := NewTimer(Kind(99)); !IsUnavailable(err) {
		t.Errorf("NewTimer(unknown) error = %v, want unavailable", err)
	}
	if !Steady.Supported() {
		if _, err := NewTimer(Steady); !IsUnavailable(err) {
			t.Errorf("NewTimer(Steady) error = %v, want unavailable", err)
		}
	}
	if !Thread.Supported() {
		if _, err := NewThreadTimer(); !IsUnavailable(err) {
			t.Errorf("NewThreadTimer error = %v, want unavailable", err)
		}
	}
}

// TestProcessCPUTimer runs a parallel CPU-bound task and checks the
// composite snapshot
func TestProcessCPUTimer(t *testing.T) {
	if !ProcessReal.Supported() {
		t.Skip("process clock not supported on this platform")
	}
	timer, err := NewProcessCPUTimer()
	if err != nil {
		t.Fatalf("NewProcessCPUTimer failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			busyWork(100 * time.Millisecond)
		}()
	}
	wg.Wait()

	elapsed, err := timer.Elapsed()
	if err != nil {
		t.Fatalf("Elapsed failed: %v", err)
	}
	if elapsed.Real <= 0 {
		t.Errorf("real = %v, want > 0", elapsed.Real)
	}
	if elapsed.User <= 0 {
		t.Errorf("user = %v, want > 0", elapsed.User)
	}
	if elapsed.System < 0 {
		t.Errorf("system = %v, want >= 0", elapsed.System)
	}
	if elapsed.Utilization() <= 0 {
		t.Errorf("utilization = %v, want > 0", elapsed.Utilization())
	}

	// Sanity bound, not a hard invariant: accounting noise gets one spare core.
	cores := time.Duration(runtime.NumCPU() + 1)
	if cpu := elapsed.CPU(); cpu > elapsed.Real*cores {
		t.Errorf("cpu time %v exceeds real %v on %d cores", cpu, elapsed.Real, runtime.NumCPU())
	}
}

// TestProcessCPUTimerReset checks the composite reset rebases all three
// components
func TestProcessCPUTimerReset(t *testing.T) {
	if !ProcessReal.Supported() {
		t.Skip("process clock not supported on this platform")
	}
	timer, err := NewProcessCPUTimer()
	if err != nil {
		t.Fatalf("NewProcessCPUTimer failed: %v", err)
	}
	busyWork(50 * time.Millisecond)

	prev, err := timer.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if prev.Real <= 0 {
		t.Errorf("previous real = %v, want > 0", prev.Real)
	}

	after, err := timer.Elapsed()
	if err != nil {
		t.Fatalf("Elapsed failed: %v", err)
	}
	if after.Real < 0 || after.User < 0 || after.System < 0 {
		t.Errorf("negative components after reset: %+v", after)
	}
	if after.Real >= prev.Real {
		t.Errorf("real after reset (%v) not smaller than before (%v)", after.Real, prev.Real)
	}
}

// TestThreadTimer pins the goroutine to one OS thread and expects thread CPU
// time to accrue there but not on an idle thread
func TestThreadTimer(t *testing.T) {
	if !Thread.Supported() {
		t.Skip("thread clock not supported on this platform")
	}

	type result struct {
		elapsed time.Duration
		err     error
	}
	inner := make(chan result, 1)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	outer, err := NewThreadTimer()
	if err != nil {
		t.Fatalf("NewThreadTimer failed: %v", err)
	}

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		timer, err := NewThreadTimer()
		if err != nil {
			inner <- result{0, err}
			return
		}
		busyWork(100 * time.Millisecond)
		elapsed, err := timer.Elapsed()
		inner <- result{elapsed, err}
	}()

	res := <-inner
	if res.err != nil {
		t.Fatalf("inner thread timer failed: %v", res.err)
	}
	outerElapsed, err := outer.Elapsed()
	if err != nil {
		t.Fatalf("outer Elapsed failed: %v", err)
	}

	if res.elapsed <= 0 {
		t.Errorf("busy thread CPU time = %v, want > 0", res.elapsed)
	}
	if res.elapsed <= outerElapsed {
		t.Errorf("busy thread (%v) did not out-consume idle thread (%v)", res.elapsed, outerElapsed)
	}
}
