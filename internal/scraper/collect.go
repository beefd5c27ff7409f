package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Collector drives the page-by-page loop: fetch, extract, append.
//
// The accumulated records belong to the Collector until CollectAll returns;
// nothing else reads them while the loop runs.
type Collector struct {
	Fetcher   Fetcher
	Extractor Extractor
	Logger    *slog.Logger

	// Sleep pauses between pages. Defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewCollector wires a Fetcher and an Extractor together.
func NewCollector(f Fetcher, x Extractor, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		Fetcher:   f,
		Extractor: x,
		Logger:    logger,
		Sleep:     sleepCtx,
	}
}

// PageURL builds the URL of page n from a pattern containing one %d verb.
func PageURL(pattern string, n int) string {
	return fmt.Sprintf(pattern, n)
}

// CollectAll scrapes pages 1..maxPages in order and returns every record found.
//
// The loop stops early on the first fetch or extraction failure, on a page
// without a next link, or when ctx is done; records collected so far are
// always returned. The result is never nil.
func (c *Collector) CollectAll(ctx context.Context, pattern string, maxPages int, delay time.Duration) []QuoteRecord {
	all := make([]QuoteRecord, 0)
	if maxPages <= 0 {
		return all
	}
	log := c.logger()

	log.Info("starting scrape", "max_pages", maxPages, "delay", delay)
	for page := 1; page <= maxPages; page++ {
		pageURL := PageURL(pattern, page)
		log.Info("scraping page", "page", page, "url", pageURL)

		result, err := c.scrapePage(ctx, pageURL)
		if err != nil {
			log.Error("page failed, stopping", "page", page, "url", pageURL, "err", err)
			break
		}

		all = append(all, result.Records...)
		log.Info("found quotes", "page", page, "count", len(result.Records))

		if !result.HasNext {
			log.Info("no next page, stopping", "page", page)
			break
		}
		if page < maxPages {
			if err := c.sleep(ctx, delay); err != nil {
				log.Warn("interrupted, stopping", "page", page, "err", err)
				break
			}
		}
	}

	log.Info("scrape finished", "total", len(all))
	return all
}

// scrapePage fetches and extracts a single page.
func (c *Collector) scrapePage(ctx context.Context, pageURL string) (PageResult, error) {
	markup, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return PageResult{}, err
	}
	result, err := c.Extractor.Extract(markup)
	if err != nil {
		return PageResult{}, fmt.Errorf("extract %s: %w", pageURL, err)
	}
	return result, nil
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Collector) sleep(ctx context.Context, d time.Duration) error {
	if c.Sleep == nil {
		return sleepCtx(ctx, d)
	}
	return c.Sleep(ctx, d)
}

// sleepCtx sleeps for the given duration or returns early if the context is canceled.
func sleepCtx(ctx context.Context, dur time.Duration) error {
	if dur <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
