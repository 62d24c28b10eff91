// Package workload generates deterministic CPU-bound tasks for benchmarking
// the process and thread clocks. The tasks only mix integers in registers, so
// the time they consume is user CPU time, not syscalls or memory stalls.
package workload

import (
	"sync"
	"time"
)

// Spin runs the given number of mixing rounds on the calling goroutine and
// returns the accumulated value so the loop cannot be optimized away.
func Spin(iterations int) uint64 {
	var acc uint64 = 1
	for i := 0; i < iterations; i++ {
		// LCG step; cheap, data-dependent, unskippable.
		acc = acc*6364136223846793005 + 1442695040888963407
	}
	return acc
}

// SpinParallel splits the iterations across the given number of goroutines
// and returns the xor of their results.
func SpinParallel(iterations, workers int) uint64 {
	if workers < 1 {
		workers = 1
	}
	share := iterations / workers

	results := make([]uint64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = Spin(share)
		}(w)
	}
	wg.Wait()

	var acc uint64
	for _, r := range results {
		acc ^= r
	}
	return acc
}

// SpinFor burns CPU on the calling goroutine for roughly the given wall
// duration and returns the number of rounds completed.
func SpinFor(d time.Duration) int {
	const batch = 100_000
	deadline := time.Now().Add(d)
	rounds := 0
	for time.Now().Before(deadline) {
		Spin(batch)
		rounds += batch
	}
	return rounds
}
