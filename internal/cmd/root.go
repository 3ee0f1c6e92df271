package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for csvmanifest
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvmanifest",
		Short: "Generate a JSON manifest of the CSV data files in a directory",
		Long: `csvmanifest scans a data directory for CSV files and rewrites a JSON
manifest (models.json) listing their filenames in sorted order.

A web application reads the manifest at runtime to discover which data
files it can fetch. Every run is a full rescan-and-overwrite; running
the tool with no arguments performs the scan unconditionally.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	addGenerateFlags(cmd)

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}
