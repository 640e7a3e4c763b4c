package renderer

import (
	"context"
	"sync"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row    int   // Image row, 0 = top
	Pixels []RGB // Destination slice; no other task writes to it
	Seed   int64 // Seed for this row's private random generator
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	Row     int
	Samples int
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   <-chan RowTask
	resultQueue chan<- RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses the host's logical CPU count. resultBuffer should cover
// every task so workers never block on a slow consumer.
func NewWorkerPool(raytracer *Raytracer, numWorkers, resultBuffer int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, numWorkers),
		resultQueue: make(chan RowResult, resultBuffer),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Rows in progress stop early once ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop closes the task queue, waits for in-flight rows and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a row, giving up if ctx is cancelled first
func (wp *WorkerPool) SubmitTask(ctx context.Context, task RowTask) error {
	select {
	case wp.taskQueue <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row owns its generator, so output does not depend on scheduling
		sampler := core.NewSeededSampler(task.Seed)
		samples, err := w.raytracer.RenderRow(ctx, task.Row, task.Pixels, sampler)
		if err != nil {
			// Unfinished rows are not reported
			continue
		}

		w.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}

// rowSeed derives the generator seed for one scanline
func rowSeed(seed int64, row int) int64 {
	return seed*1000003 + int64(row)
}
