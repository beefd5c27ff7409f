// Package main provides the quotes-go command line tool.
//
// quotes-go walks the paginated listing of quotes.toscrape.com, extracts
// every quote and writes the result as CSV and JSON (optionally JSON Lines,
// SQLite and a Markdown report) before printing summary statistics.
//
// Usage:
//
//	quotes-go scrape
//	quotes-go scrape --max-pages 10 --delay 500ms --workers 3
//	quotes-go demo
//
// See --help for all available options.
package main

func main() {
	Execute()
}
