package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversEveryIndexOnce(t *testing.T) {
	for _, items := range []int{1, 2, 7, 100, 1000} {
		hits := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("items=%d: index %d handled %d times", items, i, h)
			}
		}
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	if called {
		t.Error("worker invoked for zero items")
	}
}

func TestParallelizeWithThreshold_SequentialBelowThreshold(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(3, 10, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 3 {
			t.Errorf("sequential range = [%d, %d), want [0, 3)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path used %d calls, want 1", calls)
	}
}

func TestParallelizeWithThreshold_ParallelAboveThreshold(t *testing.T) {
	items := 64
	hits := make([]int32, items)
	ParallelizeWithThreshold(items, 1, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d handled %d times", i, h)
		}
	}
}
