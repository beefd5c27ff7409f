package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/config"
	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// NewScrapeCmd creates the scrape command.
func NewScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape quotes and export them",
		Long: `Scrape fetches the quote listing page by page until it reaches --max-pages,
a page without a "next" link or a page that cannot be fetched. Quotes
collected up to that point are always exported.

Examples:
  # Default run: 3 pages, 1s apart, quotes.csv and quotes.json
  quotes-go scrape

  # All ten pages, three requests in flight, plus a SQLite database
  quotes-go scrape -p 10 -w 3 --sqlite quotes.db`,
		Args: cobra.NoArgs,
		RunE: runScrapeCmd,
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringP("config", "c", "", "Path to a YAML configuration file")
	f.IntP("max-pages", "p", def.MaxPages, "Maximum number of pages to fetch")
	f.DurationP("delay", "d", def.Delay, "Pause between page requests")
	f.DurationP("timeout", "t", def.Timeout, "Timeout for a single page request")
	f.String("user-agent", def.UserAgent, "User-Agent header sent with requests")
	f.IntP("workers", "w", def.Workers, "Pages fetched in parallel (1 fetches sequentially)")
	f.String("fetcher", def.Fetcher, "HTTP transport: resty or colly")
	addOutputFlags(f, def.Output)

	return cmd
}

func runScrapeCmd(cmd *cobra.Command, _ []string) error {
	logger := commandLogger(cmd)

	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runScrape(ctx, cfg, cfg.PagePattern(), cmd.OutOrStdout(), logger)
}

// loadConfig layers defaults, config file, environment and changed flags,
// then validates the result.
func loadConfig(cmd *cobra.Command, lookup func(string) (string, bool)) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	flags := cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	file, err := config.FindConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if file != "" {
		if cfg, err = config.Load(file); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if flags.Changed("max-pages") {
		cfg.MaxPages, _ = flags.GetInt("max-pages")
	}
	if flags.Changed("delay") {
		cfg.Delay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent, _ = flags.GetString("user-agent")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("fetcher") {
		cfg.Fetcher, _ = flags.GetString("fetcher")
	}
	applyOutputFlags(flags, &cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config, logger *slog.Logger) scraper.Fetcher {
	if cfg.Fetcher == config.FetcherColly {
		return scraper.NewCollyFetcher(cfg.Timeout, cfg.UserAgent)
	}
	return scraper.NewClient(cfg.Timeout, cfg.UserAgent, logger)
}

// runScrape collects the quotes under pattern and writes every configured
// output. Collection problems only shorten the result; the returned error
// reports failed exports.
func runScrape(ctx context.Context, cfg *config.Config, pattern string, stdout io.Writer, logger *slog.Logger) error {
	collector := scraper.NewCollector(newFetcher(cfg, logger), scraper.NewQuoteExtractor(), logger)

	logger.Debug("using fetcher", "fetcher", cfg.Fetcher, "user_agent", cfg.UserAgent)

	var records []scraper.QuoteRecord
	if cfg.Workers > 1 {
		records = collector.CollectConcurrent(ctx, pattern, cfg.MaxPages, cfg.Delay, cfg.Workers)
	} else {
		records = collector.CollectAll(ctx, pattern, cfg.MaxPages, cfg.Delay)
	}

	// an interrupted scrape still exports what it collected
	return writeOutputs(context.WithoutCancel(ctx), stdout, logger, cfg.Output, records)
}
