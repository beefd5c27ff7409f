package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testPattern = "http://quotes.test/page/%d/"

// fakeFetcher serves canned pages keyed by URL and records every call.
type fakeFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	fail  map[string]error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, pageURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, pageURL)
	if err, ok := f.fail[pageURL]; ok {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	markup, ok := f.pages[pageURL]
	if !ok {
		return "", &FetchError{URL: pageURL, StatusCode: http.StatusNotFound, Err: errors.New("404 Not Found")}
	}
	return markup, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// sleepRecorder replaces the collector's timer and remembers each pause.
type sleepRecorder struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (s *sleepRecorder) Sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauses = append(s.pauses, d)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCollector(f Fetcher) (*Collector, *sleepRecorder) {
	c := NewCollector(f, newTestExtractor(), quietLogger())
	rec := &sleepRecorder{}
	c.Sleep = rec.Sleep
	return c, rec
}

func TestCollectAllTwoPages(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		PageURL(testPattern, 1): pageMarkup(1, 10, true),
		PageURL(testPattern, 2): pageMarkup(2, 5, false),
		PageURL(testPattern, 3): pageMarkup(3, 10, true),
	}}
	c, rec := newTestCollector(f)

	records := c.CollectAll(context.Background(), testPattern, 3, time.Second)

	require.Len(t, records, 15)
	require.Equal(t, "quote 1-1", records[0].Text)
	require.Equal(t, "quote 1-10", records[9].Text)
	require.Equal(t, "quote 2-1", records[10].Text)
	require.Equal(t, "quote 2-5", records[14].Text)
	require.Equal(t, []string{PageURL(testPattern, 1), PageURL(testPattern, 2)}, f.calls)
	require.Equal(t, []time.Duration{time.Second}, rec.pauses)
}

func TestCollectAllFetchFailureKeepsPartial(t *testing.T) {
	f := &fakeFetcher{
		pages: map[string]string{PageURL(testPattern, 1): pageMarkup(1, 10, true)},
		fail:  map[string]error{PageURL(testPattern, 2): errors.New("connection refused")},
	}
	c, _ := newTestCollector(f)

	records := c.CollectAll(context.Background(), testPattern, 5, 0)

	require.Len(t, records, 10)
	require.Equal(t, 2, f.callCount())
}

func TestCollectAllFirstPageFails(t *testing.T) {
	f := &fakeFetcher{fail: map[string]error{PageURL(testPattern, 1): errors.New("dns failure")}}
	c, rec := newTestCollector(f)

	records := c.CollectAll(context.Background(), testPattern, 3, time.Second)

	require.NotNil(t, records)
	require.Empty(t, records)
	require.Empty(t, rec.pauses)
}

func TestCollectAllNonPositiveMaxPages(t *testing.T) {
	for _, maxPages := range []int{0, -1, -100} {
		t.Run(fmt.Sprint(maxPages), func(t *testing.T) {
			f := &fakeFetcher{}
			c, _ := newTestCollector(f)

			records := c.CollectAll(context.Background(), testPattern, maxPages, time.Second)
			require.NotNil(t, records)
			require.Empty(t, records)
			require.Zero(t, f.callCount())

			records = c.CollectConcurrent(context.Background(), testPattern, maxPages, time.Second, 4)
			require.NotNil(t, records)
			require.Empty(t, records)
			require.Zero(t, f.callCount())
		})
	}
}

func TestCollectAllStopsAtMaxPages(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{}}
	for p := 1; p <= 5; p++ {
		f.pages[PageURL(testPattern, p)] = pageMarkup(p, 2, true)
	}
	c, rec := newTestCollector(f)

	records := c.CollectAll(context.Background(), testPattern, 3, 10*time.Millisecond)

	require.Len(t, records, 6)
	require.Equal(t, 3, f.callCount())
	// no pause after the final page
	require.Len(t, rec.pauses, 2)
}

func TestCollectAllExtractErrorStops(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		PageURL(testPattern, 1): pageMarkup(1, 3, true),
		PageURL(testPattern, 2): pageMarkup(2, 3, true),
	}}
	c, _ := newTestCollector(f)
	c.Extractor = failingExtractor{page: 2, inner: newTestExtractor()}

	records := c.CollectAll(context.Background(), testPattern, 5, 0)
	require.Len(t, records, 3)
}

func TestCollectAllCanceledDuringDelay(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		PageURL(testPattern, 1): pageMarkup(1, 4, true),
		PageURL(testPattern, 2): pageMarkup(2, 4, true),
	}}
	c := NewCollector(f, newTestExtractor(), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records := c.CollectAll(ctx, testPattern, 5, time.Hour)

	require.Len(t, records, 4)
	require.Equal(t, 1, f.callCount())
}

func TestCollectAllOverHTTP(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()
		switch r.URL.Path {
		case "/page/1/":
			w.Write([]byte(pageMarkup(1, 10, true)))
		case "/page/2/":
			w.Write([]byte(pageMarkup(2, 5, false)))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := NewCollector(NewClient(3*time.Second, "TestAgent/1.0", quietLogger()), newTestExtractor(), quietLogger())
	records := c.CollectAll(context.Background(), server.URL+"/page/%d/", 3, time.Millisecond)

	require.Len(t, records, 15)
	require.Equal(t, map[string]int{"/page/1/": 1, "/page/2/": 1}, hits)
}

func TestPageURL(t *testing.T) {
	require.Equal(t, "http://quotes.toscrape.com/page/7/", PageURL(DefaultPagePattern, 7))
	require.True(t, strings.HasSuffix(PageURL(testPattern, 12), "/page/12/"))
}

func TestSleepCtx(t *testing.T) {
	require.NoError(t, sleepCtx(context.Background(), 0))
	require.NoError(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
}

// failingExtractor delegates to inner but rejects the markup of one page.
type failingExtractor struct {
	page  int
	inner Extractor
}

func (f failingExtractor) Extract(markup string) (PageResult, error) {
	if strings.Contains(markup, fmt.Sprintf("quote %d-", f.page)) {
		return PageResult{}, errors.New("unreadable markup")
	}
	return f.inner.Extract(markup)
}
