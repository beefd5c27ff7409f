package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at build time via ldflags; empty values fall back to the build info.
var (
	version = ""
	commit  = ""
)

// buildInfo returns the module version and the short VCS revision, each
// taken from ldflags when set.
func buildInfo() (ver, rev string) {
	ver, rev = version, commit
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = &debug.BuildInfo{}
	}
	if ver == "" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		if rev == "" && s.Key == "vcs.revision" {
			rev = s.Value[:min(len(s.Value), 7)]
		}
	}
	if ver == "" {
		ver = "(devel)"
	}
	if rev == "" {
		rev = "unknown"
	}
	return ver, rev
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			ver, rev := buildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "quotes-go %s (%s)\n", ver, rev)
		},
	}
}
