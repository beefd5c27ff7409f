package export

import (
	"encoding/json"
	"io"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// WriteJSON writes all records as one indented JSON array. Non-ASCII and
// HTML characters are written verbatim. An empty input produces [].
func WriteJSON(path string, records []scraper.QuoteRecord) (Result, error) {
	err := writeAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(normalize(records))
	})
	if err != nil {
		return Result{}, &Error{Format: FormatJSON, Path: path, Err: err}
	}
	return Result{Format: FormatJSON, Path: path, Count: len(records)}, nil
}
