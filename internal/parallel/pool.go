// Package parallel runs independent primitives on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that process indexed jobs.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, so a few expensive primitives (large triangles) do not stall the
// rest of a batch.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// queues holds per-worker job queues.
	queues []chan func()

	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
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

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run calls fn(i) for every i in [0, n) across the workers and waits for
// all calls to return. Jobs are dealt round-robin; completion order is
// unspecified, so fn must write its result to a slot owned by i.
//
// After Close, Run executes fn sequentially on the calling goroutine.
func (p *WorkerPool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if !p.running.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(n)
	for i := range n {
		job := func() {
			defer pending.Done()
			fn(i)
		}
		select {
		case p.queues[i%p.workers] <- job:
		case <-p.done:
			job()
		}
	}
	pending.Wait()
}

// Close stops the workers after the queued jobs finish.
// Close is safe to call multiple times but must not race with Run.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
