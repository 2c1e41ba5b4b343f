// Package parallel provides a fixed-size worker pool used to dispatch
// independent DP-cell-population tasks for the GAI parallel solver.
package parallel

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// WorkerPool manages a fixed number of goroutines draining a shared task
// queue. Unlike a scaling pool, the worker count never changes after
// construction: the parallel solver builds its dependency graph up front and
// dispatches uniform cell-population tasks, so there is no queue-depth
// signal worth reacting to at runtime.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once

	stats *ExecutionStats
}

// NewWorkerPool creates a worker pool with the given number of workers. If
// maxWorkers is 0 or negative, it defaults to 1.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*4),
		shutdownChan: make(chan struct{}),
		stats:        NewExecutionStats(),
	}

	pool.workerWg.Add(maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		go pool.worker()
	}

	return pool
}

// worker is the main worker loop that processes tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task, ok := <-wp.taskChan:
			if !ok {
				return
			}
			startTime := time.Now()
			func() {
				defer func() {
					if r := recover(); r != nil {
						wp.stats.RecordTaskFailed(fmt.Errorf("task panicked: %v", r))
					}
				}()
				task()
				wp.stats.RecordTaskCompleted(time.Since(startTime))
			}()
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit submits a task to the worker pool for execution. If the pool is
// full, this call blocks until a worker becomes available.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.stats.RecordTaskSubmitted()

	select {
	case <-wp.shutdownChan:
		wp.stats.RecordTaskCancelled()
		return ErrPoolShutdown
	default:
	}

	select {
	case wp.taskChan <- task:
		wp.stats.RecordQueueDepth(len(wp.taskChan))
		return nil
	case <-ctx.Done():
		wp.stats.RecordTaskCancelled()
		return ctx.Err()
	case <-wp.shutdownChan:
		wp.stats.RecordTaskCancelled()
		return ErrPoolShutdown
	}
}

// Shutdown gracefully shuts down the worker pool, waiting for all
// currently executing tasks to complete.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
		wp.stats.Finalize()
	})
}

// GetMaxWorkers returns the fixed number of workers in the pool.
func (wp *WorkerPool) GetMaxWorkers() int {
	return wp.maxWorkers
}

// GetQueueDepth returns the current number of queued tasks.
func (wp *WorkerPool) GetQueueDepth() int {
	return len(wp.taskChan)
}

// GetStats returns the pool's execution statistics collector.
func (wp *WorkerPool) GetStats() *ExecutionStats {
	return wp.stats
}

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")

// ExecutionStats accumulates counters describing a WorkerPool's lifetime:
// how many tasks were submitted, completed, failed, or cancelled, and
// simple peak/average figures over queue depth and task duration.
type ExecutionStats struct {
	mu sync.RWMutex

	StartTime          time.Time
	EndTime            time.Time
	TotalExecutionTime time.Duration

	TasksSubmitted int64
	TasksCompleted int64
	TasksFailed    int64
	TasksCancelled int64

	PeakQueueDepth    int
	AverageQueueDepth float64

	TasksPerSecond      float64
	AverageTaskDuration time.Duration

	LastError  error
	ErrorCount int64

	queueDepthHistory   []int
	taskDurationHistory []time.Duration
}

// NewExecutionStats creates a new execution statistics collector.
func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{StartTime: time.Now()}
}

// RecordTaskSubmitted records that a task was submitted for execution.
func (es *ExecutionStats) RecordTaskSubmitted() {
	atomic.AddInt64(&es.TasksSubmitted, 1)
}

// RecordTaskCompleted records that a task completed successfully.
func (es *ExecutionStats) RecordTaskCompleted(duration time.Duration) {
	atomic.AddInt64(&es.TasksCompleted, 1)
	es.mu.Lock()
	es.taskDurationHistory = append(es.taskDurationHistory, duration)
	es.mu.Unlock()
}

// RecordTaskFailed records that a task failed with an error.
func (es *ExecutionStats) RecordTaskFailed(err error) {
	atomic.AddInt64(&es.TasksFailed, 1)
	atomic.AddInt64(&es.ErrorCount, 1)
	es.mu.Lock()
	es.LastError = err
	es.mu.Unlock()
}

// RecordTaskCancelled records that a task was cancelled.
func (es *ExecutionStats) RecordTaskCancelled() {
	atomic.AddInt64(&es.TasksCancelled, 1)
}

// RecordQueueDepth records the current queue depth for historical tracking.
func (es *ExecutionStats) RecordQueueDepth(depth int) {
	es.mu.Lock()
	defer es.mu.Unlock()

	if depth > es.PeakQueueDepth {
		es.PeakQueueDepth = depth
	}
	es.queueDepthHistory = append(es.queueDepthHistory, depth)
}

// Finalize computes final statistics once execution completes.
func (es *ExecutionStats) Finalize() {
	es.mu.Lock()
	defer es.mu.Unlock()

	es.EndTime = time.Now()
	es.TotalExecutionTime = es.EndTime.Sub(es.StartTime)

	if len(es.queueDepthHistory) > 0 {
		total := 0
		for _, depth := range es.queueDepthHistory {
			total += depth
		}
		es.AverageQueueDepth = float64(total) / float64(len(es.queueDepthHistory))
	}

	if len(es.taskDurationHistory) > 0 {
		total := time.Duration(0)
		for _, d := range es.taskDurationHistory {
			total += d
		}
		es.AverageTaskDuration = total / time.Duration(len(es.taskDurationHistory))
	}

	if es.TotalExecutionTime > 0 {
		es.TasksPerSecond = float64(es.TasksCompleted) / es.TotalExecutionTime.Seconds()
	}
}

// GetStats returns a snapshot copy of the current statistics.
func (es *ExecutionStats) GetStats() ExecutionStats {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return ExecutionStats{
		StartTime:           es.StartTime,
		EndTime:             es.EndTime,
		TotalExecutionTime:  es.TotalExecutionTime,
		TasksSubmitted:      atomic.LoadInt64(&es.TasksSubmitted),
		TasksCompleted:      atomic.LoadInt64(&es.TasksCompleted),
		TasksFailed:         atomic.LoadInt64(&es.TasksFailed),
		TasksCancelled:      atomic.LoadInt64(&es.TasksCancelled),
		PeakQueueDepth:      es.PeakQueueDepth,
		AverageQueueDepth:   es.AverageQueueDepth,
		TasksPerSecond:      es.TasksPerSecond,
		AverageTaskDuration: es.AverageTaskDuration,
		LastError:           es.LastError,
		ErrorCount:          atomic.LoadInt64(&es.ErrorCount),
	}
}

// String renders a one-line human-readable summary.
func (es *ExecutionStats) String() string {
	s := es.GetStats()
	return fmt.Sprintf(
		"tasks=%d completed=%d failed=%d cancelled=%d peakQueue=%d avgDuration=%s throughput=%.1f/s",
		s.TasksSubmitted, s.TasksCompleted, s.TasksFailed, s.TasksCancelled,
		s.PeakQueueDepth, s.AverageTaskDuration, s.TasksPerSecond,
	)
}
