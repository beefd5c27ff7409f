package scraper

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrInvalidURL is wrapped by a FetchError when the page URL is not absolute.
var ErrInvalidURL = errors.New("url must be absolute http(s)")

// Fetcher downloads the raw markup of one page.
//
// Implementations never retry: any failure is returned as a *FetchError
// and the caller decides what to do with it.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// FetchError reports a failed page download.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client is the default Fetcher, a thin wrapper over a resty client.
type Client struct {
	http *resty.Client
}

// NewClient constructs a Client with sane Transport defaults and
// timeouts suitable for scraping workloads.
//
// Parameters:
//   - timeout: per-request deadline enforced by the underlying client.
//   - userAgent: value for the "User-Agent" header (empty string disables it).
//   - logger: receives resty's internal warnings; nil means slog.Default().
//
// The returned Client uses an http.Transport with connection pooling, TLS >= 1.2,
// and reasonable dial/handshake timeouts.
func NewClient(timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		Proxy:               http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
	}

	rc := resty.New().
		SetTransport(transport).
		SetTimeout(timeout).
		SetLogger(restyLogger{logger: logger})
	if userAgent != "" {
		rc.SetHeader("User-Agent", userAgent)
	}

	return &Client{http: rc}
}

// Fetch performs a single HTTP GET and returns the body if the status code
// is 2xx. Transport failures, timeouts and non-2xx responses are all
// reported as *FetchError.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := checkURL(pageURL); err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}

	response, err := c.http.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	if !response.IsSuccess() {
		return "", &FetchError{
			URL:        pageURL,
			StatusCode: response.StatusCode(),
			Err:        errors.New(response.Status()),
		}
	}
	return string(response.Body()), nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}
	return nil
}

// restyLogger routes resty's printf-style logging into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
