package export

import (
	"encoding/json"
	"io"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// WriteJSONL writes one JSON object per line.
func WriteJSONL(path string, records []scraper.QuoteRecord) (Result, error) {
	err := writeAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, record := range normalize(records) {
			if err := enc.Encode(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, &Error{Format: FormatJSONL, Path: path, Err: err}
	}
	return Result{Format: FormatJSONL, Path: path, Count: len(records)}, nil
}
