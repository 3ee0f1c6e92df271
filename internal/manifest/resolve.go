package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvDataDir overrides the default data directory when set.
const EnvDataDir = "CSVMANIFEST_DATA_DIR"

// dataSubpath is where the web application keeps its CSV data files,
// relative to the tool's install location.
var dataSubpath = filepath.Join("src", "data", "models")

// DefaultDataDir returns the data directory the tool targets when none
// is configured.
// Priority order:
//  1. CSVMANIFEST_DATA_DIR environment variable (if set)
//  2. src/data/models relative to the running executable
//  3. src/data/models relative to the working directory (fallback)
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err == nil {
		// Resolve symlinks so an installed binary scans next to its
		// real location, not next to the link.
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			exe = resolved
		}
		return filepath.Join(filepath.Dir(exe), dataSubpath), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}

	return filepath.Join(cwd, dataSubpath), nil
}
