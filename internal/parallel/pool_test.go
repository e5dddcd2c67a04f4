package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero uses GOMAXPROCS", 0, runtime.GOMAXPROCS(0)},
		{"negative uses GOMAXPROCS", -5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()

			if pool.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", pool.Workers(), tt.want)
			}
			if !pool.IsRunning() {
				t.Error("pool should be running after creation")
			}
		})
	}
}

func TestWorkerPool_RunAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]Job, 100)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			counter.Add(1)
			return nil
		}
	}

	errs := pool.Run(context.Background(), jobs)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
	for i, err := range errs {
		if err != nil {
			t.Errorf("job %d error = %v", i, err)
		}
	}
}

func TestWorkerPool_ErrorsByIndex(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	boom := errors.New("boom")
	jobs := []Job{
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
		func(context.Context) error { return nil },
	}

	errs := pool.Run(context.Background(), jobs)

	if len(errs) != 3 {
		t.Fatalf("len(errs) = %d, want 3", len(errs))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("unexpected errors: %v", errs)
	}
	if !errors.Is(errs[1], boom) {
		t.Errorf("errs[1] = %v, want boom", errs[1])
	}
}

func TestWorkerPool_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if errs := pool.Run(context.Background(), nil); len(errs) != 0 {
		t.Errorf("Run(nil) = %v, want empty", errs)
	}
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int64
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			ran.Add(1)
			return nil
		}
	}

	errs := pool.Run(ctx, jobs)

	if ran.Load() != 0 {
		t.Errorf("%d jobs ran after cancellation", ran.Load())
	}
	for i, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("errs[%d] = %v, want context.Canceled", i, err)
		}
	}
}

func TestWorkerPool_Stealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Slow jobs spread over the queues; idle workers steal the rest.
	var counter atomic.Int64
	jobs := make([]Job, 16)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			time.Sleep(time.Millisecond)
			counter.Add(1)
			return nil
		}
	}

	done := make(chan struct{})
	go func() {
		pool.Run(context.Background(), jobs)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not finish")
	}
	if counter.Load() != 16 {
		t.Errorf("counter = %d, want 16", counter.Load())
	}
}

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not run after Close")
	}

	errs := pool.Run(context.Background(), []Job{func(context.Context) error { return nil }})
	if !errors.Is(errs[0], ErrClosed) {
		t.Errorf("Run on closed pool = %v, want ErrClosed", errs[0])
	}
}
