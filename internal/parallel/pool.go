// Package parallel provides the worker pool that runs the data-parallel
// stages of the allrgb pipeline (field generation, colour synthesis, pixel
// building, chunked sorting and rank assignment).
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minChunk is the smallest number of items handed to a single task by Range.
// Smaller ranges are not worth the scheduling overhead.
const minChunk = 1024

// WorkerPool is a fixed set of goroutines that execute batches of work.
//
// Each worker owns a queue and steals from its siblings when its own queue
// runs dry, which keeps the pool busy when chunks have uneven cost (domain
// warping makes some rows slower than others).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across workers and waits for every
// item to finish. After Close, the items run on the calling goroutine.
// ExecuteAll must not race with Close.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer pending.Done()
			fn()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	pending.Wait()
}

// Range splits [0, n) into contiguous chunks and calls fn(lo, hi) for each
// chunk in parallel, returning once all chunks are done. Chunk boundaries
// depend only on n and the worker count, never on timing.
//
// A nil pool runs fn(0, n) on the calling goroutine.
func (p *WorkerPool) Range(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.workers == 1 || n <= minChunk {
		fn(0, n)
		return
	}

	chunk := max((n+p.workers*4-1)/(p.workers*4), minChunk)
	work := make([]func(), 0, (n+chunk-1)/chunk)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		work = append(work, func() { fn(lo, hi) })
	}
	p.ExecuteAll(work)
}

// Close stops the workers after they finish any queued work.
// Close is safe to call multiple times and on a nil pool.
func (p *WorkerPool) Close() {
	if p == nil || !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool; 1 for a nil pool.
func (p *WorkerPool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}
