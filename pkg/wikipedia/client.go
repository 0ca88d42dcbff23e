package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"animalscraper/pkg/config"
	errs "animalscraper/pkg/errors"
	"animalscraper/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// Client fetches Wikipedia pages and images. Every request is a single
// attempt bounded by the configured timeout.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  logger.Logger
}

// NewClient creates a new Wikipedia client
func NewClient(cfg config.WikipediaConfig, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.NewNopLogger()
	}
	log = logger.ForComponent(log, "wikipedia")

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{log}).
		SetHeader("Accept", "text/html,application/xhtml+xml,image/avif,image/webp,*/*;q=0.8")
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		logger:  log,
	}
}

// BaseURL returns the origin pages are fetched from
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetPage fetches a site-relative page such as /wiki/Cheetah and returns its HTML
func (c *Client) GetPage(ctx context.Context, path string) (string, error) {
	body, err := c.get(ctx, PageURL(c.baseURL, path))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DownloadImage resolves an infobox img src and returns the image bytes
func (c *Client) DownloadImage(ctx context.Context, src string) ([]byte, error) {
	return c.get(ctx, ResolveImageURL(c.baseURL, src))
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": http.MethodGet,
		"url":    url,
	})

	resp, err := c.http.R().SetContext(ctx).Get(url)
	duration := time.Since(start)
	if err != nil {
		classified := errs.NewTransport(url, err)
		c.logger.DebugWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"type":     string(classified.Type),
			"duration": duration,
		})
		return nil, classified
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"url":      url,
		"status":   resp.StatusCode(),
		"size":     len(resp.Body()),
		"duration": duration,
	})

	if resp.IsError() {
		return nil, errs.NewStatus(url, resp.StatusCode())
	}
	return resp.Body(), nil
}

// restyLogger routes resty's internal warnings through the scraper logger
type restyLogger struct {
	log logger.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.log.Error(fmt.Sprintf(format, v...))
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.log.Warn(fmt.Sprintf(format, v...))
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.log.Debug(fmt.Sprintf(format, v...))
}
