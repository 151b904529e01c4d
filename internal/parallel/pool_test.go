package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}

	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

// =============================================================================
// ForEachRange Tests
// =============================================================================

func TestWorkerPool_ForEachRangeCoversAllRows(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 203
	var hits [n]atomic.Int32

	pool.ForEachRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			hits[i].Add(1)
		}
	})

	for i := range n {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("row %d visited %d times, want 1", i, got)
		}
	}
}

func TestWorkerPool_ForEachRangeUsesBands(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	calls := 0

	pool.ForEachRange(80, func(lo, hi int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	if calls != 8 {
		t.Errorf("bands = %d, want 8 (2 per worker)", calls)
	}
}

func TestWorkerPool_ForEachRangeSmallInputInline(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var gotLo, gotHi, calls int
	pool.ForEachRange(5, func(lo, hi int) {
		gotLo, gotHi = lo, hi
		calls++
	})

	if calls != 1 || gotLo != 0 || gotHi != 5 {
		t.Errorf("calls=%d range=[%d,%d), want one call over [0,5)", calls, gotLo, gotHi)
	}
}

func TestWorkerPool_ForEachRangeEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ForEachRange(0, func(lo, hi int) {
		t.Error("fn called for empty range")
	})
}

func TestWorkerPool_ForEachRangeAfterClose(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	var calls int
	pool.ForEachRange(100, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 100 {
			t.Errorf("range = [%d,%d), want [0,100)", lo, hi)
		}
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1 inline call on closed pool", calls)
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}
}

// =============================================================================
// Bands Tests
// =============================================================================

func TestBands(t *testing.T) {
	tests := []struct {
		name     string
		n, parts int
		want     [][2]int
	}{
		{"empty", 0, 4, nil},
		{"smaller than one band", 5, 4, [][2]int{{0, 5}}},
		{"even split", 32, 4, [][2]int{{0, 8}, {8, 16}, {16, 24}, {24, 32}}},
		{"remainder spread", 34, 4, [][2]int{{0, 9}, {9, 18}, {18, 26}, {26, 34}}},
		{"limited by min rows", 20, 8, [][2]int{{0, 10}, {10, 20}}},
		{"zero parts", 16, 0, [][2]int{{0, 16}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.n, tt.parts)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%d, %d) = %v, want %v", tt.n, tt.parts, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Bands(%d, %d)[%d] = %v, want %v", tt.n, tt.parts, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func BenchmarkForEachRange(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	var sink atomic.Int64
	for b.Loop() {
		pool.ForEachRange(1024, func(lo, hi int) {
			sink.Add(int64(hi - lo))
		})
	}
}
