//go:build windows

package chrono

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	hasSteadyClock  = true
	hasThreadClock  = true
	hasProcessClock = true
)

var (
	modkernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procGetThreadTimes = modkernel32.NewProc("GetThreadTimes")
)

// The performance counter frequency is fixed at boot, so it is queried once
// and cached.
var (
	qpcOnce sync.Once
	qpcFreq int64
)

func qpcFrequency() int64 {
	qpcOnce.Do(func() {
		qpcFreq = windows.QueryPerformanceFrequency()
	})
	return qpcFreq
}

// scaleTicks converts a performance counter reading to nanoseconds. The
// seconds and sub-second parts are scaled separately so high-frequency
// counters neither overflow nor lose precision in the 64-bit multiply.
func scaleTicks(ticks, freq int64) time.Duration {
	sec := ticks / freq
	rem := ticks % freq
	return time.Duration(sec)*time.Second + time.Duration(rem*int64(time.Second)/freq)
}

// filetimeDuration interprets a FILETIME as a span of 100ns intervals. Note
// Filetime.Nanoseconds is wrong here: it rebases onto the Unix epoch, which
// only makes sense for absolute timestamps.
func filetimeDuration(ft windows.Filetime) time.Duration {
	t := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return time.Duration(t * 100)
}

func sampleWall() (time.Duration, error) {
	var ft windows.Filetime
	windows.GetSystemTimePreciseAsFileTime(&ft)
	return time.Duration(ft.Nanoseconds()), nil
}

func sampleSteady() (time.Duration, error) {
	freq := qpcFrequency()
	if freq <= 0 {
		return 0, newSystemError(Steady, "QueryPerformanceFrequency", fmt.Errorf("invalid frequency %d", freq))
	}
	return scaleTicks(windows.QueryPerformanceCounter(), freq), nil
}

func sampleHighRes() (time.Duration, error) {
	return sampleSteady()
}

// sampleProcess combines GetProcessTimes for the CPU components with the
// performance counter for the real component.
func sampleProcess(kind Kind) (ProcessTimes, error) {
	var creation, exit, kernel, user windows.Filetime
	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		return ProcessTimes{}, newSystemError(kind, "GetProcessTimes", err)
	}
	real, err := sampleSteady()
	if err != nil {
		return ProcessTimes{}, err
	}
	return ProcessTimes{
		Real:   real,
		User:   filetimeDuration(user),
		System: filetimeDuration(kernel),
	}, nil
}

func sampleThread() (time.Duration, error) {
	var creation, exit, kernel, user windows.Filetime
	r1, _, err := procGetThreadTimes.Call(
		uintptr(windows.CurrentThread()),
		uintptr(unsafe.Pointer(&creation)),
		uintptr(unsafe.Pointer(&exit)),
		uintptr(unsafe.Pointer(&kernel)),
		uintptr(unsafe.Pointer(&user)),
	)
	if r1 == 0 {
		return 0, newSystemError(Thread, "GetThreadTimes", err)
	}
	return filetimeDuration(kernel) + filetimeDuration(user), nil
}
