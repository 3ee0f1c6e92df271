package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/csvmanifest/internal/manifest"
)

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the manifest against the data directory",
		Long: `Read the manifest, rescan the data directory, and report any drift:
  - Entries listed in the manifest but missing on disk
  - Files on disk that the manifest does not list

The manifest is never rewritten; run "csvmanifest generate" to bring it
up to date.

Exit code: 0 if current, 1 if the manifest is stale or unreadable`,
		Args:         cobra.NoArgs,
		RunE:         runCheck,
		SilenceUsage: true,
	}

	addScanFlags(cmd)

	return cmd
}

// runCheck implements the check command logic
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadScanConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	manifestPath := filepath.Join(cfg.DataDir, cfg.ManifestName)

	listed, err := manifest.Read(manifestPath)
	if err != nil {
		return err
	}

	actual, err := manifest.Scan(cfg.DataDir, cfg.Suffix, filepath.Base(manifestPath))
	if err != nil {
		return err
	}

	missing, unlisted := manifest.Diff(listed, actual)

	if len(missing) == 0 && len(unlisted) == 0 {
		color.New(color.FgGreen).Fprintf(out, "%s is up to date (%d files)\n", manifestPath, len(listed))
		return nil
	}

	if len(missing) > 0 {
		color.New(color.FgRed).Fprintln(out, "Listed in the manifest but missing on disk:")
		for _, name := range missing {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}

	if len(unlisted) > 0 {
		color.New(color.FgYellow).Fprintln(out, "On disk but not listed in the manifest:")
		for _, name := range unlisted {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}

	return fmt.Errorf("manifest %s is out of date, run \"csvmanifest generate\"", manifestPath)
}
