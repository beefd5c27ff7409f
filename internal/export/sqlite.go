package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

const sqliteSchema = `
CREATE TABLE quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	author TEXT NOT NULL,
	tags TEXT NOT NULL,
	scraped_at TEXT NOT NULL
);
CREATE INDEX idx_quotes_author ON quotes(author);
`

// WriteSQLite stores the records in a fresh SQLite database at path, one
// row per record in input order. Tags are kept as a JSON array.
// An existing file at path is replaced only once the new database is complete.
func WriteSQLite(ctx context.Context, path string, records []scraper.QuoteRecord) (Result, error) {
	if err := writeSQLite(ctx, path, records); err != nil {
		return Result{}, &Error{Format: FormatSQLite, Path: path, Err: err}
	}
	return Result{Format: FormatSQLite, Path: path, Count: len(records)}, nil
}

func writeSQLite(ctx context.Context, path string, records []scraper.QuoteRecord) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	db, err := sql.Open("sqlite", tmpPath+"?mode=rwc")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err = insertQuotes(ctx, db, records); err != nil {
		db.Close()
		return err
	}
	if err = db.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func insertQuotes(ctx context.Context, db *sql.DB, records []scraper.QuoteRecord) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO quotes (text, author, tags, scraped_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range normalize(records) {
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, r.Text, r.Author, string(tags), r.ScrapedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("failed to insert quote: %w", err)
		}
	}
	return tx.Commit()
}
