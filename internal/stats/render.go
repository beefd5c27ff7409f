package stats

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nao1215/markdown"
)

// none is shown for an absent most-common value.
const none = "-"

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}

// cell escapes a value for a Markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderTable prints the labeled summary block as a console table.
func RenderTable(w io.Writer, r Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Scraping Statistics")
	t.AppendRows([]table.Row{
		{"Total Quotes", r.TotalQuotes},
		{"Unique Authors", r.UniqueAuthors},
		{"Most Common Author", orNone(r.MostCommonAuthor)},
		{"Unique Tags", r.UniqueTags},
		{"Most Common Tag", orNone(r.MostCommonTag)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderMarkdown writes the report as a Markdown document.
func RenderMarkdown(w io.Writer, r Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Quote Scrape Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Quotes", strconv.Itoa(r.TotalQuotes)},
			{"Unique Authors", strconv.Itoa(r.UniqueAuthors)},
			{"Most Common Author", cell(orNone(r.MostCommonAuthor))},
			{"Unique Tags", strconv.Itoa(r.UniqueTags)},
			{"Most Common Tag", cell(orNone(r.MostCommonTag))},
		},
	})
	md.PlainText("")

	writeCounts(md, "Top Authors", "Author", r.TopAuthors)
	writeCounts(md, "Top Tags", "Tag", r.TopTags)

	return md.Build()
}

func writeCounts(md *markdown.Markdown, title, column string, counts []Count) {
	if len(counts) == 0 {
		return
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{cell(c.Value), strconv.Itoa(c.Count)})
	}
	md.H2(title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{column, "Quotes"},
		Rows:   rows,
	})
	md.PlainText("")
}
