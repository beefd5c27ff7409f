package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	ver, _ := buildInfo()
	cmd := &cobra.Command{
		Use:   "quotes-go",
		Short: "Scrape quotes from quotes.toscrape.com",
		Long: `quotes-go scrapes the paginated quote listing of quotes.toscrape.com and
exports every quote with its author and tags to CSV and JSON.

Settings are read from a YAML config file (quotes.yaml or the XDG config
directory), QUOTES_* environment variables and command line flags.`,
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewScrapeCmd())
	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
