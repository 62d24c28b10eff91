package chrono

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Format renders a duration at an automatically chosen unit with three
// significant digits, stopwatch style: "5.71s", "123ms", "1.5µs". Trailing
// zeros are trimmed and negative durations keep their sign. Zero renders as
// "0ns".
func Format(d time.Duration) string {
	if d == 0 {
		return "0ns"
	}
	sign := ""
	n := d
	if n < 0 {
		sign = "-"
		n = -n
	}

	type unit struct {
		suffix string
		scale  time.Duration
	}
	units := []unit{
		{"ns", time.Nanosecond},
		{"µs", time.Microsecond},
		{"ms", time.Millisecond},
		{"s", time.Second},
		{"m", time.Minute},
		{"h", time.Hour},
	}

	// Largest unit with at least one integer digit.
	idx := 0
	for i := len(units) - 1; i >= 0; i-- {
		if n >= units[i].scale {
			idx = i
			break
		}
	}

	for {
		v := float64(n) / float64(units[idx].scale)
		s := formatSignificant(v, 3)
		if idx+1 < len(units) {
			// Rounding can carry into the next unit: 999.9ms is "1s", not "1000ms".
			carry := float64(units[idx+1].scale) / float64(units[idx].scale)
			if rounded, err := strconv.ParseFloat(s, 64); err == nil && rounded >= carry {
				idx++
				continue
			}
		}
		return sign + s + units[idx].suffix
	}
}

// formatSignificant renders a non-negative v with the given number of
// significant digits, trimming trailing zeros.
func formatSignificant(v float64, digits int) string {
	intDigits := 1
	if v >= 1 {
		intDigits = int(math.Floor(math.Log10(v))) + 1
	}
	prec := digits - intDigits
	if prec < 0 {
		prec = 0
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ProcessTimes is a snapshot of the real, user-CPU, and system-CPU clocks of
// the process, taken together. All three values are non-negative; user and
// system can each exceed real on multi-threaded workloads.
type ProcessTimes struct {
	Real   time.Duration `json:"real"`
	User   time.Duration `json:"user"`
	System time.Duration `json:"system"`
}

// CPU returns the total CPU time, user plus system.
func (p ProcessTimes) CPU() time.Duration {
	return p.User + p.System
}

// Utilization returns (user+system)/real. Values above 1.0 are expected on
// parallel workloads and are not clamped. Returns 0 when real is zero.
func (p ProcessTimes) Utilization() float64 {
	if p.Real == 0 {
		return 0
	}
	return float64(p.CPU()) / float64(p.Real)
}

// Add returns the component-wise sum of two snapshots.
func (p ProcessTimes) Add(o ProcessTimes) ProcessTimes {
	return ProcessTimes{
		Real:   p.Real + o.Real,
		User:   p.User + o.User,
		System: p.System + o.System,
	}
}

// Sub returns the component-wise difference of two snapshots.
func (p ProcessTimes) Sub(o ProcessTimes) ProcessTimes {
	return ProcessTimes{
		Real:   p.Real - o.Real,
		User:   p.User - o.User,
		System: p.System - o.System,
	}
}

// String renders the snapshot in the conventional CPU-timer form:
//
//	5.71s wall, 5.7s user + 0ns system = 5.7s CPU (99.8%)
func (p ProcessTimes) String() string {
	return fmt.Sprintf("%s wall, %s user + %s system = %s CPU (%.1f%%)",
		Format(p.Real), Format(p.User), Format(p.System), Format(p.CPU()), p.Utilization()*100)
}
