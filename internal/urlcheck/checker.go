// Package urlcheck fans out liveness checks for every media and product URL
// in a record set over a bounded worker pool.
package urlcheck

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// Result is the status of one checked URL.
type Result struct {
	URL    string
	Status string
}

// Checker runs bounded-concurrency GET probes.
type Checker struct {
	client  *http.Client
	workers int
	logger  *slog.Logger
}

func NewChecker(timeout time.Duration, workers int, logger *slog.Logger) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if workers <= 0 {
		workers = 20
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
			// redirects are classified, not followed
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		workers: workers,
		logger:  logger,
	}
}

// CheckAll probes every URL concurrently and returns results in input order.
func (c *Checker) CheckAll(ctx context.Context, urls []string) []Result {
	start := time.Now()
	results := make([]Result, len(urls))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Result{URL: urls[i], Status: c.checkOne(ctx, urls[i])}
			}
		}()
	}
	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	c.logger.Info("urlcheck.all.ok",
		"urls", len(urls),
		"workers", c.workers,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results
}

func (c *Checker) checkOne(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Sprintf("Failed - %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := c.client.Do(req)
	if err != nil {
		if os.IsTimeout(err) || ctx.Err() == context.DeadlineExceeded {
			return "Timeout"
		}
		return fmt.Sprintf("Failed - %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("urlcheck.body.close_error", "url", rawURL, "error", err)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
		return "Working"
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		return fmt.Sprintf("Redirect - Status Code: %d", resp.StatusCode)
	case resp.StatusCode == http.StatusForbidden:
		return "Blocked - Captcha Error"
	default:
		return fmt.Sprintf("Not Working - Status Code: %d", resp.StatusCode)
	}
}

// CollectURLs walks a payload and gathers every media and product URL.
func CollectURLs(v any) []string {
	var urls []string
	var walk func(node any)
	walk = func(node any) {
		switch t := node.(type) {
		case map[string]any:
			for _, key := range []string{"src", "attachmentLocation", "productUrl"} {
				if s, ok := t[key].(string); ok && s != "" {
					urls = append(urls, s)
				}
			}
			for _, child := range t {
				walk(child)
			}
		case []any:
			for _, child := range t {
				walk(child)
			}
		}
	}
	walk(v)
	return urls
}

// CollectRecordURLs gathers URLs from a record list.
func CollectRecordURLs(records []record.Record) []string {
	var urls []string
	for _, rec := range records {
		urls = append(urls, CollectURLs(map[string]any(rec))...)
	}
	return urls
}
