package export

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// CSVHeader is the first row of every tabular export.
var CSVHeader = []string{"text", "author", "tags", "scraped_at"}

// TagSeparator joins a record's tags into one CSV field.
const TagSeparator = ", "

// WriteCSV writes one row per record after a header row. Tags are joined
// with TagSeparator; quoting of embedded commas, quotes and newlines is
// left to encoding/csv. An empty input produces a header-only file.
func WriteCSV(path string, records []scraper.QuoteRecord) (Result, error) {
	err := writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(CSVHeader); err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				r.Text,
				r.Author,
				strings.Join(r.Tags, TagSeparator),
				r.ScrapedAt.Format(time.RFC3339Nano),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return Result{}, &Error{Format: FormatCSV, Path: path, Err: err}
	}
	return Result{Format: FormatCSV, Path: path, Count: len(records)}, nil
}
