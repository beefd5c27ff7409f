package scraper

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

type pageOutcome struct {
	done   bool
	result PageResult
	err    error
}

// CollectConcurrent is CollectAll with up to workers pages in flight.
//
// Requests share one rate.Limiter that admits a request every delay, so the
// target sees the same request rate as the sequential loop. Results are
// merged in page order and cut at the first failed page or the first page
// without a next link, exactly where CollectAll would have stopped. Pages
// already in flight past that point are fetched but discarded.
func (c *Collector) CollectConcurrent(ctx context.Context, pattern string, maxPages int, delay time.Duration, workers int) []QuoteRecord {
	if workers <= 1 {
		return c.CollectAll(ctx, pattern, maxPages, delay)
	}
	all := make([]QuoteRecord, 0)
	if maxPages <= 0 {
		return all
	}
	log := c.logger()

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	limiter := rate.NewLimiter(limit, 1)
	sem := semaphore.NewWeighted(int64(workers))
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	stopAt := maxPages
	terminal := func(page int) {
		mu.Lock()
		if page < stopAt {
			stopAt = page
		}
		mu.Unlock()
	}
	beyond := func(page int) bool {
		mu.Lock()
		defer mu.Unlock()
		return page > stopAt
	}

	outcomes := make([]pageOutcome, maxPages)
	log.Info("starting scrape", "max_pages", maxPages, "delay", delay, "workers", workers)

	for page := 1; page <= maxPages; page++ {
		if beyond(page) {
			break
		}
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}

		page := page
		g.Go(func() error {
			defer sem.Release(1)

			if err := limiter.Wait(gctx); err != nil {
				outcomes[page-1] = pageOutcome{done: true, err: err}
				terminal(page)
				return nil
			}
			if beyond(page) {
				return nil
			}

			pageURL := PageURL(pattern, page)
			log.Info("scraping page", "page", page, "url", pageURL)
			result, err := c.scrapePage(gctx, pageURL)
			outcomes[page-1] = pageOutcome{done: true, result: result, err: err}
			if err != nil || !result.HasNext {
				terminal(page)
			}
			return nil // keep going, the merge decides where to cut
		})
	}
	_ = g.Wait()

	for i, out := range outcomes {
		page := i + 1
		if !out.done {
			break
		}
		if out.err != nil {
			log.Error("page failed, stopping", "page", page, "err", out.err)
			break
		}
		all = append(all, out.result.Records...)
		log.Info("found quotes", "page", page, "count", len(out.result.Records))
		if !out.result.HasNext {
			log.Info("no next page, stopping", "page", page)
			break
		}
	}

	log.Info("scrape finished", "total", len(all))
	return all
}
