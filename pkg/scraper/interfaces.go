package scraper

import "context"

// WikiClient defines the Wikipedia operations a run needs
type WikiClient interface {
	BaseURL() string
	GetPage(ctx context.Context, path string) (string, error)
	DownloadImage(ctx context.Context, src string) ([]byte, error)
}
