// Package export writes scraped quotes to files.
//
// Every writer stages its output in a temporary file next to the
// destination and renames it into place only after the whole file was
// written and synced, so a failed export never leaves a truncated file.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// Format names used in Results and Errors.
const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
	FormatReport = "markdown"
)

// Result describes a finished export.
type Result struct {
	Format string
	Path   string
	Count  int
}

// Error is returned when an export could not be written.
type Error struct {
	Format string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// writeAtomic creates path's directory, lets write fill a temp file and
// renames the temp file to path once everything was flushed and synced.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// normalize returns a non-nil slice whose records all carry non-nil tags,
// so encoders emit [] instead of null.
func normalize(records []scraper.QuoteRecord) []scraper.QuoteRecord {
	out := make([]scraper.QuoteRecord, len(records))
	for i, r := range records {
		if r.Tags == nil {
			r.Tags = []string{}
		}
		out[i] = r
	}
	return out
}
