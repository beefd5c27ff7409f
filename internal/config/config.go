package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// AppName is used for the XDG config directory.
const AppName = "quotes-go"

// Fetcher names accepted in Config.Fetcher.
const (
	FetcherResty = "resty"
	FetcherColly = "colly"
)

// Defaults of a run.
const (
	// DefaultMaxPages keeps a plain run small; the site has ten pages.
	DefaultMaxPages = 3

	// DefaultDelay is the pause between two page requests.
	DefaultDelay = 1 * time.Second

	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is a browser-like agent string.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultWorkers of 1 selects the sequential collector.
	DefaultWorkers = 1

	DefaultCSVFile  = "quotes.csv"
	DefaultJSONFile = "quotes.json"
)

// Config is the full configuration of a scrape run.
type Config struct {
	// MaxPages is the upper bound on pages requested. Zero or less means
	// nothing is fetched.
	MaxPages int `yaml:"max_pages"`

	// Delay is the pause between consecutive page requests.
	Delay time.Duration `yaml:"delay"`

	// Timeout bounds each page request.
	Timeout time.Duration `yaml:"timeout"`

	UserAgent string `yaml:"user_agent"`

	// Workers above 1 switch to the concurrent collector.
	Workers int `yaml:"workers"`

	// Fetcher selects the transport, FetcherResty or FetcherColly.
	Fetcher string `yaml:"fetcher"`

	Output Output `yaml:"output"`
}

// Output names the files a run writes. An empty name disables that export.
// Relative names are resolved against Dir.
type Output struct {
	Dir    string `yaml:"dir,omitempty"`
	CSV    string `yaml:"csv"`
	JSON   string `yaml:"json"`
	JSONL  string `yaml:"jsonl"`
	SQLite string `yaml:"sqlite"`
	Report string `yaml:"report"`
}

// Default returns a Config populated with the defaults.
func Default() *Config {
	return &Config{
		MaxPages:  DefaultMaxPages,
		Delay:     DefaultDelay,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Workers:   DefaultWorkers,
		Fetcher:   FetcherResty,
		Output: Output{
			CSV:  DefaultCSVFile,
			JSON: DefaultJSONFile,
		},
	}
}

// PagePattern is the listing the scraper walks. It is not configurable.
func (c *Config) PagePattern() string {
	return scraper.DefaultPagePattern
}

// Validate checks the configuration for values a run cannot work with.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	switch c.Fetcher {
	case FetcherResty, FetcherColly:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFetcher, c.Fetcher, FetcherResty, FetcherColly)
	}
	return nil
}

// Path resolves an output file name against Dir. It returns "" for an
// empty name so disabled exports stay disabled.
func (o Output) Path(name string) string {
	if name == "" {
		return ""
	}
	if o.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Dir, name)
}
