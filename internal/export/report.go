package export

import (
	"io"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/stats"
)

// WriteReport writes the statistics report as Markdown. Count is the
// number of quotes the report summarizes.
func WriteReport(path string, report stats.Report) (Result, error) {
	err := writeAtomic(path, func(w io.Writer) error {
		return stats.RenderMarkdown(w, report)
	})
	if err != nil {
		return Result{}, &Error{Format: FormatReport, Path: path, Err: err}
	}
	return Result{Format: FormatReport, Path: path, Count: report.TotalQuotes}, nil
}
