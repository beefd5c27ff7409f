package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultPagePattern addresses page N of the quotes listing.
const DefaultPagePattern = "http://quotes.toscrape.com/page/%d/"

const (
	qtBlockSel  = "div.quote"
	qtTextSel   = "span.text"
	qtAuthorSel = "small.author"
	qtTagSel    = "a.tag"
	qtNextSel   = "li.next a"
)

// Extractor turns the markup of one page into a PageResult.
// Implementations must not touch the network or the filesystem.
type Extractor interface {
	Extract(markup string) (PageResult, error)
}

// Selectors are the structural markers an extractor queries for.
// Fields are CSS selectors; Text, Author and Tag are relative to Quote.
type Selectors struct {
	Quote  string
	Text   string
	Author string
	Tag    string
	Next   string
}

// DefaultSelectors match the markup of quotes.toscrape.com.
func DefaultSelectors() Selectors {
	return Selectors{
		Quote:  qtBlockSel,
		Text:   qtTextSel,
		Author: qtAuthorSel,
		Tag:    qtTagSel,
		Next:   qtNextSel,
	}
}

// QuoteExtractor is the goquery-backed Extractor.
type QuoteExtractor struct {
	Selectors Selectors
	Now       func() time.Time
}

func NewQuoteExtractor() *QuoteExtractor {
	return &QuoteExtractor{
		Selectors: DefaultSelectors(),
		Now:       time.Now,
	}
}

// Extract parses one listing page.
//
// Quote blocks without text or author are skipped. Tags keep page order and
// are never nil. HasNext reports whether the "next" pager link is present.
func (x *QuoteExtractor) Extract(markup string) (PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return PageResult{}, err
	}

	now := x.now()
	out := make([]QuoteRecord, 0, 10)

	doc.Find(x.Selectors.Quote).Each(func(_ int, blk *goquery.Selection) {
		text := strings.TrimSpace(blk.Find(x.Selectors.Text).First().Text())
		author := strings.TrimSpace(blk.Find(x.Selectors.Author).First().Text())
		if text == "" || author == "" {
			return
		}

		tags := []string{}
		blk.Find(x.Selectors.Tag).Each(func(_ int, a *goquery.Selection) {
			if t := strings.TrimSpace(a.Text()); t != "" {
				tags = append(tags, t)
			}
		})

		out = append(out, QuoteRecord{
			Text:      text,
			Author:    author,
			Tags:      tags,
			ScrapedAt: now,
		})
	})

	return PageResult{
		Records: out,
		HasNext: doc.Find(x.Selectors.Next).Length() > 0,
	}, nil
}

func (x *QuoteExtractor) now() time.Time {
	if x.Now == nil {
		return time.Now().UTC()
	}
	return x.Now().UTC()
}
