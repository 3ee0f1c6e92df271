package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/csvmanifest/internal/config"
	"github.com/harrison/csvmanifest/internal/logger"
	"github.com/harrison/csvmanifest/internal/manifest"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan the data directory and rewrite the manifest",
		Long: `Scan the data directory for CSV files and rewrite the manifest with
their sorted filenames. The manifest itself is never listed, and the
write is atomic so readers never see a partial manifest.

Configuration is loaded from .csvmanifest.yaml if present.
CLI flags override configuration file settings.

Examples:
  csvmanifest generate                       # Scan the default data directory
  csvmanifest generate --dir ./src/data/models
  csvmanifest generate --suffix .tsv         # List TSV files instead
  csvmanifest generate --manifest index.json # Rename the manifest
  csvmanifest generate --log-dir ./logs      # Also write a per-run log file
  csvmanifest generate --log-level debug     # Verbose console output`,
		Args:         cobra.NoArgs,
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	addGenerateFlags(cmd)

	return cmd
}

// addScanFlags registers the flags shared by every command that scans
// the data directory.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: .csvmanifest.yaml)")
	cmd.Flags().String("dir", "", "Data directory to scan (default: src/data/models next to the executable)")
	cmd.Flags().String("manifest", "", "Manifest filename (default: models.json)")
	cmd.Flags().String("suffix", "", "Filename suffix to match (default: .csv)")
}

// addGenerateFlags registers the full generate flag set, used by both
// the generate subcommand and the bare root invocation.
func addGenerateFlags(cmd *cobra.Command) {
	addScanFlags(cmd)
	cmd.Flags().String("log-level", "", "Console verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for per-run log files (disabled when empty)")
}

// loadScanConfig loads the config file and applies flag overrides,
// resolving the data directory when neither config nor flags set one.
func loadScanConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.DataDir = dir
	}
	if name, _ := cmd.Flags().GetString("manifest"); name != "" {
		cfg.ManifestName = name
	}
	if suffix, _ := cmd.Flags().GetString("suffix"); suffix != "" {
		if !strings.HasPrefix(suffix, ".") {
			suffix = "." + suffix
		}
		cfg.Suffix = suffix
	}
	if cmd.Flags().Lookup("log-level") != nil {
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.LogLevel = level
		}
	}
	if cmd.Flags().Lookup("log-dir") != nil {
		if logDir, _ := cmd.Flags().GetString("log-dir"); logDir != "" {
			cfg.LogDir = logDir
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir, err = manifest.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runGenerate implements the generate command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadScanConfig(cmd)
	if err != nil {
		return err
	}

	var log logger.Logger = logger.NewConsoleLogger(cmd.OutOrStdout(), cfg.LogLevel)

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer fileLog.Close()
		log = logger.Multi(log, fileLog)
	}

	log.Infof("Scanning for %s files in %s...", cfg.Suffix, cfg.DataDir)

	result, err := manifest.Generate(cfg.DataDir, cfg.ManifestName, cfg.Suffix)
	if err != nil {
		return err
	}

	log.Infof("Generated %s with %d %s files:", result.Path, len(result.Files), cfg.Suffix)
	for _, name := range result.Files {
		log.Infof("  - %s", name)
	}
	log.Infof("%s has been updated", cfg.ManifestName)

	return nil
}
