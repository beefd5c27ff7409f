// Package stats computes summary aggregates over scraped quotes.
package stats

import (
	"sort"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

// TopN is how many entries Report.TopAuthors and Report.TopTags keep.
const TopN = 5

// Count is a value with the number of times it occurred.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Report is the summary of one run. On empty input every count is zero and
// the most-common fields are empty strings.
type Report struct {
	TotalQuotes           int     `json:"total_quotes"`
	UniqueAuthors         int     `json:"unique_authors"`
	MostCommonAuthor      string  `json:"most_common_author"`
	MostCommonAuthorCount int     `json:"most_common_author_count"`
	UniqueTags            int     `json:"unique_tags"`
	MostCommonTag         string  `json:"most_common_tag"`
	MostCommonTagCount    int     `json:"most_common_tag_count"`
	TopAuthors            []Count `json:"top_authors"`
	TopTags               []Count `json:"top_tags"`
}

// Summarize computes the Report for records without modifying them.
//
// Ties for "most common" go to the value encountered first in record order
// (tags in their in-record order).
func Summarize(records []scraper.QuoteRecord) Report {
	authors := newTally()
	tags := newTally()
	for _, r := range records {
		authors.add(r.Author)
		for _, t := range r.Tags {
			tags.add(t)
		}
	}

	topAuthors := authors.top(TopN)
	topTags := tags.top(TopN)

	rep := Report{
		TotalQuotes:   len(records),
		UniqueAuthors: len(authors.order),
		UniqueTags:    len(tags.order),
		TopAuthors:    topAuthors,
		TopTags:       topTags,
	}
	if len(topAuthors) > 0 {
		rep.MostCommonAuthor = topAuthors[0].Value
		rep.MostCommonAuthorCount = topAuthors[0].Count
	}
	if len(topTags) > 0 {
		rep.MostCommonTag = topTags[0].Value
		rep.MostCommonTagCount = topTags[0].Count
	}
	return rep
}

// tally counts values and remembers the order they were first seen in.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(v string) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

// top returns up to n values by descending count; the stable sort keeps
// first-seen order among equal counts.
func (t *tally) top(n int) []Count {
	out := make([]Count, 0, len(t.order))
	for _, v := range t.order {
		out = append(out, Count{Value: v, Count: t.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
