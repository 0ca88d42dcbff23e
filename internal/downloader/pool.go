package downloader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	errs "animalscraper/pkg/errors"
	"animalscraper/pkg/logger"
	"animalscraper/pkg/models"
	"animalscraper/pkg/parser"
	"animalscraper/pkg/wikipedia"
)

// Job is one animal whose image should be saved. Index is the animal's
// position in the parsed list.
type Job struct {
	Index  int
	Animal models.Animal
}

// Result is the terminal state of a single Job
type Result struct {
	Job      Job
	Outcome  Outcome
	Path     string
	ImageURL string
	Error    error
	Duration time.Duration
	Size     int
}

// WikiClient fetches animal pages and images
type WikiClient interface {
	BaseURL() string
	GetPage(ctx context.Context, path string) (string, error)
	DownloadImage(ctx context.Context, src string) ([]byte, error)
}

// ImageStore persists images by animal name
type ImageStore interface {
	Exists(name string) bool
	Save(r io.Reader, name string) (string, error)
}

// WorkerPool manages concurrent download workers
type WorkerPool struct {
	numWorkers  int
	jobQueue    chan Job
	resultQueue chan Result
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	client      WikiClient
	store       ImageStore
	logger      logger.Logger
}

// NewWorkerPool creates a new download worker pool
func NewWorkerPool(
	ctx context.Context,
	numWorkers int,
	client WikiClient,
	store ImageStore,
	log logger.Logger,
) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	ctx, cancel := context.WithCancel(ctx)

	return &WorkerPool{
		numWorkers:  numWorkers,
		jobQueue:    make(chan Job, numWorkers*2),
		resultQueue: make(chan Result, numWorkers),
		ctx:         ctx,
		cancel:      cancel,
		client:      client,
		store:       store,
		logger:      logger.ForComponent(log, "downloader"),
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	wp.logger.DebugWithFields("Starting worker pool", map[string]interface{}{
		"num_workers": wp.numWorkers,
	})

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Stop closes the job queue and waits for queued jobs to finish. The result
// channel is closed once every worker has exited.
func (wp *WorkerPool) Stop() {
	close(wp.jobQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
	wp.cancel()

	wp.logger.Debug("Worker pool stopped")
}

// Submit adds a new job to the queue
func (wp *WorkerPool) Submit(job Job) error {
	select {
	case wp.jobQueue <- job:
		return nil
	case <-wp.ctx.Done():
		return fmt.Errorf("worker pool is shutting down: %w", wp.ctx.Err())
	}
}

// Results returns the result channel. It must be drained while jobs are
// submitted.
func (wp *WorkerPool) Results() <-chan Result {
	return wp.resultQueue
}

// worker drains the job queue. Every job yields exactly one result, also
// after cancellation, so callers can account for each animal.
func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobQueue {
		wp.resultQueue <- wp.processJob(job, id)
	}

	wp.logger.DebugWithFields("Worker stopping - job queue closed", map[string]interface{}{
		"worker_id": id,
	})
}

// processJob walks one animal through fetch page, locate image, fetch image
// and write.
func (wp *WorkerPool) processJob(job Job, workerID int) (result Result) {
	start := time.Now()
	name := job.Animal.Name
	log := logger.ForAnimal(wp.logger, name).WithField("worker_id", workerID)

	result = Result{Job: job}
	defer func() {
		if r := recover(); r != nil {
			result.Outcome = OutcomeFailed
			result.Error = fmt.Errorf("panic while processing %s: %v", name, r)
			log.ErrorWithFields("Recovered from panic", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
		}
		result.Duration = time.Since(start)
	}()

	if err := wp.ctx.Err(); err != nil {
		result.Outcome = OutcomeFailed
		result.Error = err
		return result
	}

	if wp.store.Exists(name) {
		log.Info(fmt.Sprintf("Image of %s is already exists", name))
		result.Outcome = OutcomeSkipped
		return result
	}

	page, err := wp.client.GetPage(wp.ctx, job.Animal.Href)
	if err != nil {
		wp.logFetchFailure(log, name, err)
		result.Outcome = OutcomeFailed
		result.Error = err
		return result
	}

	src, ok := parser.LocateImage(page)
	if !ok {
		log.Error(fmt.Sprintf("There is no image of %s", name))
		result.Outcome = OutcomeNoImage
		return result
	}
	result.ImageURL = wikipedia.ResolveImageURL(wp.client.BaseURL(), src)

	data, err := wp.client.DownloadImage(wp.ctx, src)
	if err != nil {
		wp.logFetchFailure(log.WithField("image_url", result.ImageURL), name, err)
		result.Outcome = OutcomeFailed
		result.Error = err
		return result
	}
	result.Size = len(data)

	path, err := wp.store.Save(bytes.NewReader(data), name)
	if err != nil {
		log.WithError(err).ErrorWithFields(fmt.Sprintf("Failed to save image of %s", name), map[string]interface{}{
			"size": result.Size,
		})
		result.Outcome = OutcomeFailed
		result.Error = err
		return result
	}

	result.Outcome = OutcomeSaved
	result.Path = path
	log.InfoWithFields(fmt.Sprintf("Finish download image of %s", name), map[string]interface{}{
		"path":     path,
		"size":     result.Size,
		"duration": time.Since(start),
	})
	return result
}

func (wp *WorkerPool) logFetchFailure(log logger.Logger, name string, err error) {
	if errs.IsTimeout(err) {
		log.Error(fmt.Sprintf("Failed to retrieve site due to timeout error of %s", name))
		return
	}
	log.Error(fmt.Sprintf("Failed to retrieve site due to unexpected error: %v of %s", err, name))
}

// GetQueueSize returns the current number of jobs in the queue
func (wp *WorkerPool) GetQueueSize() int {
	return len(wp.jobQueue)
}

// GetActiveWorkers returns the number of workers
func (wp *WorkerPool) GetActiveWorkers() int {
	return wp.numWorkers
}
