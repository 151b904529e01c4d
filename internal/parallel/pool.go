// Package parallel runs row bands of an image operation on a fixed set of
// goroutines. Calls block until every band has finished, so callers keep a
// synchronous view of the work.
package parallel

import (
	"runtime"
	"sync"
)

// MinBandRows is the smallest number of rows handed to one worker.
// Smaller bands cost more in scheduling than they save.
const MinBandRows = 8

// band is one contiguous row range of a ForEachRange call.
type band struct {
	lo, hi int
	fn     func(lo, hi int)
	done   *sync.WaitGroup
}

// WorkerPool is a pool of goroutines processing row bands.
//
// Thread safety: WorkerPool is safe for concurrent use. Close must not be
// called while a ForEachRange call from another goroutine is still queuing.
type WorkerPool struct {
	workers int
	bands   chan band

	// mu guards running and the bands channel against Close.
	mu      sync.RWMutex
	running bool

	wg sync.WaitGroup
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		bands:   make(chan band, workers*2),
		running: true,
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for b := range p.bands {
		b.fn(b.lo, b.hi)
		b.done.Done()
	}
}

// ForEachRange splits [0, n) into contiguous bands and runs fn on each band
// in the pool, returning once all bands are done. Small inputs, single-worker
// pools and closed pools run fn(0, n) on the calling goroutine.
func (p *WorkerPool) ForEachRange(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	parts := Bands(n, p.workers*2)
	if len(parts) <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if !p.running {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	var done sync.WaitGroup
	done.Add(len(parts))
	for _, r := range parts {
		p.bands <- band{lo: r[0], hi: r[1], fn: fn, done: &done}
	}
	p.mu.RUnlock()

	done.Wait()
}

// Close stops the workers after queued bands finish.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.bands)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Bands splits [0, n) into at most maxParts contiguous ranges of at least
// MinBandRows rows each (the last range may be shorter when n is small).
// Ranges are returned as [lo, hi) pairs in ascending order.
func Bands(n, maxParts int) [][2]int {
	if n <= 0 {
		return nil
	}
	parts := min(max(maxParts, 1), max(n/MinBandRows, 1))

	out := make([][2]int, 0, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}
	return out
}
