//go:build linux

package chrono

import "testing"

// TestTickFactor checks the cached tick frequency is sane
func TestTickFactor(t *testing.T) {
	factor, err := tickFactor()
	if err != nil {
		t.Fatalf("tickFactor failed: %v", err)
	}
	if factor <= 0 {
		t.Fatalf("nanoseconds per tick = %d, want > 0", factor)
	}
	// 100Hz gives 10ms ticks; anything coarser than 1s is broken.
	if factor > 1_000_000_000 {
		t.Errorf("nanoseconds per tick = %d, want <= 1s", factor)
	}

	again, err := tickFactor()
	if err != nil || again != factor {
		t.Errorf("second call = (%d, %v), want cached (%d, nil)", again, err, factor)
	}
}

// TestTickRoundTrip converts tick counts to durations and back
func TestTickRoundTrip(t *testing.T) {
	factor, err := tickFactor()
	if err != nil {
		t.Fatalf("tickFactor failed: %v", err)
	}
	for _, ticks := range []int64{0, 1, 7, 100, 12345, 1_000_000_000} {
		d := ticksToDuration(ticks, factor)
		back := durationToTicks(d, factor)
		if diff := back - ticks; diff < -1 || diff > 1 {
			t.Errorf("round trip of %d ticks came back as %d", ticks, back)
		}
	}
}

// TestSampleProcessMonotone checks consecutive combined queries never go
// backwards in any component
func TestSampleProcessMonotone(t *testing.T) {
	first, err := sampleProcess(ProcessReal)
	if err != nil {
		t.Fatalf("sampleProcess failed: %v", err)
	}
	second, err := sampleProcess(ProcessReal)
	if err != nil {
		t.Fatalf("sampleProcess failed: %v", err)
	}
	if second.Real < first.Real || second.User < first.User || second.System < first.System {
		t.Errorf("process clocks went backwards: %+v then %+v", first, second)
	}
}
