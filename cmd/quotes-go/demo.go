package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/config"
	"github.com/zaid1277/QUOTE-WEB-SCRAPER/internal/scraper"
)

var demoOutput = config.Output{
	CSV:  "demo_quotes.csv",
	JSON: "demo_quotes.json",
}

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Export a bundled set of sample quotes without network access",
		Long: `Demo runs the export and statistics steps over ten built-in quotes,
which is handy to look at the output formats offline.`,
		Args: cobra.NoArgs,
		RunE: runDemoCmd,
	}

	addOutputFlags(cmd.Flags(), demoOutput)

	return cmd
}

func runDemoCmd(cmd *cobra.Command, _ []string) error {
	logger := commandLogger(cmd)

	out := demoOutput
	applyOutputFlags(cmd.Flags(), &out)

	records := scraper.SampleQuotes(time.Now())
	logger.Info("loaded sample quotes", "count", len(records))

	return writeOutputs(cmd.Context(), cmd.OutOrStdout(), logger, out, records)
}
