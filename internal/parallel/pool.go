// Package parallel runs independent healing jobs on a bounded set of
// worker goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is reported for jobs handed to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// Job is one unit of work, typically healing a single image.
type Job func(ctx context.Context) error

// WorkerPool is a pool of goroutines for batch healing.
//
// Each worker has its own queue. Workers steal from other queues when
// their own is empty, so one slow image does not hold up the rest.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
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
			drain(own)
			return
		case fn := <-own:
			fn()
		default:
			if fn := p.steal(id); fn != nil {
				fn()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case fn := <-own:
				fn()
			}
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			fn()
		default:
			return
		}
	}
}

// steal takes one queued item from another worker, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run executes jobs and waits for all of them. The returned slice holds the
// error of each job by index. Jobs that had not started when ctx was
// cancelled report ctx.Err(); on a closed pool every job reports ErrClosed.
func (p *WorkerPool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))
	if len(jobs) == 0 {
		return errs
	}
	if !p.running.Load() {
		for i := range errs {
			errs[i] = ErrClosed
		}
		return errs
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))

	for i, job := range jobs {
		run := func() {
			defer pending.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = job(ctx)
		}

		select {
		case p.queues[i%p.workers] <- run:
		case <-p.done:
			errs[i] = ErrClosed
			pending.Done()
		}
	}

	pending.Wait()
	return errs
}

// Close stops accepting work, finishes what is queued and stops the
// workers. Close is safe to call multiple times.
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

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
