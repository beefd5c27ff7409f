package scraper

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements Fetcher on top of a colly collector.
//
// Each Fetch works on a clone of the base collector so callbacks from one
// page never leak into the next.
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a CollyFetcher with the given request timeout and User-Agent.
func NewCollyFetcher(timeout time.Duration, userAgent string) *CollyFetcher {
	opts := []colly.CollectorOption{colly.AllowURLRevisit()}
	if userAgent != "" {
		opts = append(opts, colly.UserAgent(userAgent))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(timeout)

	return &CollyFetcher{collector: c}
}

// Fetch implements the Fetcher interface.
func (f *CollyFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := checkURL(pageURL); err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}

	c := f.collector.Clone()
	// error statuses reach OnResponse so the 2xx check matches Client.Fetch
	c.ParseHTTPErrorResponse = true

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	if err := c.Visit(pageURL); err != nil {
		return "", &FetchError{URL: pageURL, StatusCode: status, Err: err}
	}
	if status < 200 || status > 299 {
		return "", &FetchError{
			URL:        pageURL,
			StatusCode: status,
			Err:        errors.New(http.StatusText(status)),
		}
	}
	return string(body), nil
}
