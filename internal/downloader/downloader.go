package downloader

import (
	"context"
	"time"

	"animalscraper/pkg/logger"
	"animalscraper/pkg/models"
)

// SaveImages runs every animal through the pool and returns one Result per
// animal in input order. A failing animal never stops the others.
func SaveImages(
	ctx context.Context,
	numWorkers int,
	client WikiClient,
	store ImageStore,
	log logger.Logger,
	animals []models.Animal,
) []Result {
	results := make([]Result, len(animals))
	if len(animals) == 0 {
		return results
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	if numWorkers > len(animals) {
		numWorkers = len(animals)
	}

	start := time.Now()
	pool := NewWorkerPool(ctx, numWorkers, client, store, log)
	pool.Start()

	go func() {
		defer pool.Stop()
		for i, animal := range animals {
			if err := pool.Submit(Job{Index: i, Animal: animal}); err != nil {
				// cancelled before the job was queued
				results[i] = Result{Job: Job{Index: i, Animal: animal}, Outcome: OutcomeFailed, Error: err}
			}
		}
	}()

	for result := range pool.Results() {
		results[result.Job.Index] = result
	}

	summary := Summarize(results)
	log.InfoWithFields("Finished saving images", map[string]interface{}{
		"total":    summary.Total,
		"saved":    summary.Saved,
		"skipped":  summary.Skipped,
		"no_image": summary.NoImage,
		"failed":   summary.Failed,
		"duration": time.Since(start),
	})

	return results
}
