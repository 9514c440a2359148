// Package parallel splits independent work items across CPU cores. The
// reporting layer uses it to fit unrelated model specifications
// concurrently; each worker owns a disjoint index range, so callers need
// no synchronization beyond writing to distinct slots.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize partitions [0, items) into contiguous chunks, one per
// worker, and calls fn(start, end) for each chunk on its own goroutine.
// It returns after every chunk is done. fn must not assume any chunk
// ordering.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine
// when items is at most threshold, and falls back to Parallelize above
// it. Small batches skip the goroutine overhead entirely.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
