package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/config"
	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/export"
	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/stats"
)

func addOutputFlags(fs *pflag.FlagSet, defaults config.Output) {
	fs.StringP("output-dir", "o", defaults.Dir, "Directory for relative output files")
	fs.String("csv", defaults.CSV, "CSV output file (empty disables)")
	fs.String("json", defaults.JSON, "JSON output file (empty disables)")
	fs.String("jsonl", defaults.JSONL, "JSON Lines output file (empty disables)")
	fs.String("sqlite", defaults.SQLite, "SQLite database file (empty disables)")
	fs.String("report", defaults.Report, "Markdown statistics report file (empty disables)")
}

// applyOutputFlags copies only the flags the user set, so values from the
// config file and environment survive.
func applyOutputFlags(fs *pflag.FlagSet, out *config.Output) {
	for name, dst := range map[string]*string{
		"output-dir": &out.Dir,
		"csv":        &out.CSV,
		"json":       &out.JSON,
		"jsonl":      &out.JSONL,
		"sqlite":     &out.SQLite,
		"report":     &out.Report,
	} {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
}

// writeOutputs runs every enabled export, then prints the statistics table
// to w. A failed export is logged and does not stop the others; all
// failures are returned joined.
func writeOutputs(ctx context.Context, w io.Writer, logger *slog.Logger, out config.Output, records []scraper.QuoteRecord) error {
	report := stats.Summarize(records)

	exports := []struct {
		name  string
		write func(path string) (export.Result, error)
	}{
		{out.CSV, func(p string) (export.Result, error) { return export.WriteCSV(p, records) }},
		{out.JSON, func(p string) (export.Result, error) { return export.WriteJSON(p, records) }},
		{out.JSONL, func(p string) (export.Result, error) { return export.WriteJSONL(p, records) }},
		{out.SQLite, func(p string) (export.Result, error) { return export.WriteSQLite(ctx, p, records) }},
		{out.Report, func(p string) (export.Result, error) { return export.WriteReport(p, report) }},
	}

	var errs []error
	for _, e := range exports {
		path := out.Path(e.name)
		if path == "" {
			continue
		}
		res, err := e.write(path)
		if err != nil {
			logger.Error("export failed", "err", err)
			errs = append(errs, err)
			continue
		}
		logger.Info("exported quotes", "format", res.Format, "path", res.Path, "count", res.Count)
	}

	stats.RenderTable(w, report)
	return errors.Join(errs...)
}
