package probe

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-plane-tracer/pkg/core"
	"github.com/df07/go-plane-tracer/pkg/geometry"
)

// Classifier is the part of a primitive the pool needs
type Classifier interface {
	Classify(ray core.Ray) geometry.Intersection
}

// RayTask represents a single ray to classify
type RayTask struct {
	Index int // Position in the input, for deterministic ordering
	Ray   core.Ray
}

// Result contains the classification of one ray
type Result struct {
	Index        int
	Ray          core.Ray
	Intersection geometry.Intersection
}

// WorkerPool classifies rays against one shared, immutable primitive in parallel
type WorkerPool struct {
	target     Classifier
	numWorkers int
	logger     core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(target Classifier, numWorkers int, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &WorkerPool{target: target, numWorkers: numWorkers, logger: logger}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run classifies every ray and returns the results in input order.
// If ctx is cancelled before all rays are processed, Run returns ctx.Err().
func (wp *WorkerPool) Run(ctx context.Context, rays []core.Ray) ([]Result, error) {
	taskQueue := make(chan RayTask)
	resultQueue := make(chan Result, len(rays))

	workers := min(wp.numWorkers, max(len(rays), 1))
	wp.logger.Printf("Classifying %d rays with %d workers\n", len(rays), workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go wp.run(ctx, &wg, taskQueue, resultQueue)
	}

	// Submit tasks until done or cancelled
	submitErr := func() error {
		defer close(taskQueue)
		for i, ray := range rays {
			select {
			case taskQueue <- RayTask{Index: i, Ray: ray}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}()

	wg.Wait()
	close(resultQueue)

	if submitErr != nil {
		return nil, submitErr
	}

	results := make([]Result, len(rays))
	count := 0
	for result := range resultQueue {
		results[result.Index] = result
		count++
	}
	if count != len(rays) {
		// a worker saw the cancellation before draining its task
		return nil, ctx.Err()
	}
	return results, nil
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context, wg *sync.WaitGroup, tasks <-chan RayTask, results chan<- Result) {
	defer wg.Done()

	for task := range tasks {
		if ctx.Err() != nil {
			continue
		}
		results <- Result{
			Index:        task.Index,
			Ray:          task.Ray,
			Intersection: wp.target.Classify(task.Ray),
		}
	}
}
