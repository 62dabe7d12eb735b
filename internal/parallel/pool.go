// Package parallel runs row-banded image work on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from one queue.
//
// Pool is safe for concurrent use. Work submitted after Close runs on the
// calling goroutine.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers. Zero or negative
// means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
	}
	p.running.Store(true)
	p.wg.Add(workers)
	for n := 0; n < workers; n++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// Run executes every item of work and returns when all have finished.
func (p *Pool) Run(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() || len(work) == 1 {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		fn := fn
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queue <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Bands splits [0, n) into at most Workers contiguous bands of at least
// minBand items and calls fn for each band, in parallel when there is
// more than one. Bands never overlap.
func (p *Pool) Bands(n, minBand int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	bands := min(p.workers, max(n/max(minBand, 1), 1))
	if bands == 1 {
		fn(0, n)
		return
	}
	work := make([]func(), bands)
	for i := 0; i < bands; i++ {
		lo, hi := i*n/bands, (i+1)*n/bands
		work[i] = func() { fn(lo, hi) }
	}
	p.Run(work)
}

// Close stops the workers once they finish their current item. It is safe
// to call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}
