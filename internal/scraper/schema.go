package scraper

import "time"

// QuoteRecord is one quote scraped from a listing page.
// Records are built once by an Extractor and never modified afterwards.
type QuoteRecord struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// PageResult is what an Extractor returns for a single page.
type PageResult struct {
	Records []QuoteRecord
	HasNext bool
}
