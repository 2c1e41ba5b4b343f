package parallel

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestExecutionStats(t *testing.T) {
	stats := NewExecutionStats()

	if stats.TasksSubmitted != 0 {
		t.Errorf("expected 0 tasks submitted initially, got %d", stats.TasksSubmitted)
	}

	stats.RecordTaskSubmitted()
	if stats.TasksSubmitted != 1 {
		t.Errorf("expected 1 task submitted, got %d", stats.TasksSubmitted)
	}

	duration := 100 * time.Millisecond
	stats.RecordTaskCompleted(duration)
	if stats.TasksCompleted != 1 {
		t.Errorf("expected 1 task completed, got %d", stats.TasksCompleted)
	}

	err := context.DeadlineExceeded
	stats.RecordTaskFailed(err)
	if stats.TasksFailed != 1 {
		t.Errorf("expected 1 task failed, got %d", stats.TasksFailed)
	}
	if stats.LastError != err {
		t.Errorf("expected last error %v, got %v", err, stats.LastError)
	}

	stats.RecordQueueDepth(10)
	if stats.PeakQueueDepth != 10 {
		t.Errorf("expected peak queue depth 10, got %d", stats.PeakQueueDepth)
	}

	stats.Finalize()
	if stats.TotalExecutionTime <= 0 {
		t.Errorf("expected positive total execution time, got %v", stats.TotalExecutionTime)
	}
}

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	ctx := context.Background()

	var wg sync.WaitGroup
	var completed int64
	var mu sync.Mutex
	for i := 0; i < 20; i++ {
		wg.Add(1)
		if err := pool.Submit(ctx, func() {
			defer wg.Done()
			mu.Lock()
			completed++
			mu.Unlock()
		}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	wg.Wait()

	if completed != 20 {
		t.Errorf("expected 20 tasks to run, got %d", completed)
	}

	pool.Shutdown()
	stats := pool.GetStats().GetStats()
	if stats.TasksSubmitted != 20 {
		t.Errorf("expected 20 tasks submitted, got %d", stats.TasksSubmitted)
	}
	if stats.TasksCompleted != 20 {
		t.Errorf("expected 20 tasks completed, got %d", stats.TasksCompleted)
	}
}

func TestWorkerPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	if err != ErrPoolShutdown {
		t.Errorf("expected ErrPoolShutdown, got %v", err)
	}
}

func TestWorkerPoolRecoversFromPanickingTask(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Shutdown()

	ctx := context.Background()
	if err := pool.Submit(ctx, func() { panic("boom") }); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	if err := pool.Submit(ctx, func() { wg.Done() }); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	wg.Wait()

	pool.Shutdown()
	stats := pool.GetStats().GetStats()
	if stats.TasksFailed != 1 {
		t.Errorf("expected 1 failed task recorded, got %d", stats.TasksFailed)
	}
}

func BenchmarkWorkerPool(b *testing.B) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			pool.Submit(ctx, func() {
				time.Sleep(time.Millisecond)
			})
		}
	})
}
