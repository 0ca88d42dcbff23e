package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"animalscraper/internal/downloader"
	"animalscraper/pkg/adjectives"
	"animalscraper/pkg/config"
	errs "animalscraper/pkg/errors"
	"animalscraper/pkg/logger"
	"animalscraper/pkg/models"
	"animalscraper/pkg/parser"
	"animalscraper/pkg/storage"
	"animalscraper/pkg/ui"
)

// Scraper orchestrates list parsing and image downloads
type Scraper struct {
	client         WikiClient
	parser         *parser.Parser
	storageManager *storage.Manager
	config         *config.Config
	logger         logger.Logger
}

// New creates a new Scraper instance
func New(cfg *config.Config, client WikiClient, log logger.Logger) *Scraper {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Scraper{
		client:         client,
		parser:         parser.New(log),
		storageManager: storage.NewManager(cfg.Output.BaseDirectory, cfg.Output.FileExtension),
		config:         cfg,
		logger:         log,
	}
}

// Storage returns the image store used by SaveImages
func (s *Scraper) Storage() *storage.Manager {
	return s.storageManager
}

// ProduceCollateralAdjectives fetches and parses the list page. A transport
// failure is logged and yields no animals and no error; a page without the
// terms table is returned as a parse error.
func (s *Scraper) ProduceCollateralAdjectives(ctx context.Context) ([]models.Animal, *adjectives.Index, error) {
	listPath := s.config.Wikipedia.ListPath
	pageName := strings.TrimPrefix(listPath, "/wiki/")

	page, err := s.client.GetPage(ctx, listPath)
	if err != nil {
		if errs.IsTimeout(err) {
			s.logger.WithError(err).Error(fmt.Sprintf("Failed to retrieve site due to timeout error of %s", pageName))
		} else {
			s.logger.Error(fmt.Sprintf("Failed to retrieve site due to unexpected error: %v of %s", err, pageName))
		}
		return []models.Animal{}, adjectives.BuildIndex(nil), nil
	}

	animals, err := s.parser.ParseAnimals(page)
	if err != nil {
		s.logger.WithError(err).ErrorWithFields("List page has no terms table", map[string]interface{}{
			"url": s.client.BaseURL() + listPath,
		})
		return nil, nil, err
	}

	idx := adjectives.BuildIndex(animals)
	adjectives.Log(s.logger, idx)
	return animals, idx, nil
}

// SaveImages downloads the infobox image of every animal
func (s *Scraper) SaveImages(ctx context.Context, animals []models.Animal) []downloader.Result {
	return downloader.SaveImages(
		ctx,
		s.config.Download.ConcurrentDownloads,
		s.client,
		s.storageManager,
		s.logger,
		animals,
	)
}

// Run performs a full scrape: adjectives report followed by image downloads.
// Only a parse failure of the list page is returned as an error.
func (s *Scraper) Run(ctx context.Context, printer *ui.Printer) (downloader.Summary, error) {
	start := time.Now()

	printer.PrintHighlight("\n[PARSING LIST OF ANIMAL NAMES]")
	animals, idx, err := s.ProduceCollateralAdjectives(ctx)
	if err != nil {
		return downloader.Summary{}, err
	}
	if len(animals) == 0 {
		printer.PrintWarning("No animals found")
		return downloader.Summary{}, nil
	}

	adjectives.Render(printer.Writer(), idx)
	printer.PrintInfo("Animals", fmt.Sprintf("%d", len(animals)))
	printer.PrintInfo("Collateral adjectives", fmt.Sprintf("%d", idx.Len()))

	printer.PrintHighlight("\n[DOWNLOADING INFOBOX IMAGES]")
	printer.PrintInfo("Output", s.storageManager.OutputDir())
	results := s.SaveImages(ctx, animals)

	summary := downloader.Summarize(results)
	summary.Duration = time.Since(start)
	printer.PrintSummary(summary)

	s.logger.Info("Producing collateral adjectives for animals is DONE")
	return summary, nil
}
