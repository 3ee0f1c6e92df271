// Package manifest generates and reads the JSON manifest that lists the
// CSV data files available in a data directory. The manifest is a plain
// JSON array of bare filenames, sorted ascending by code point, which a
// web application reads to discover fetchable data files at runtime.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/csvmanifest/internal/filelock"
)

const (
	// DefaultName is the manifest filename consumers look for.
	DefaultName = "models.json"

	// DefaultSuffix selects the data files to list.
	DefaultSuffix = ".csv"
)

// ErrDirNotFound indicates the data directory does not exist. It is the
// one failure the tool reports as a user-facing condition; nothing is
// written when it occurs.
var ErrDirNotFound = errors.New("data directory not found")

// Result describes a completed generation.
type Result struct {
	// Dir is the directory that was scanned.
	Dir string
	// Path is the manifest file that was written.
	Path string
	// Files holds the listed filenames in the order they were written.
	Files []string
}

// Generate performs a full rescan-and-overwrite: it lists the files in
// dir matching suffix, excludes the manifest itself by comparing against
// the actual output path, and rewrites <dir>/<name> with the sorted
// result as a two-space-indented JSON array.
//
// The write is atomic and guarded by a sidecar lock, so a reader never
// observes a partially written manifest. If dir does not exist the
// returned error wraps ErrDirNotFound and no file is touched.
func Generate(dir, name, suffix string) (*Result, error) {
	outPath := filepath.Join(dir, name)

	files, err := Scan(dir, suffix, filepath.Base(outPath))
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := filelock.LockAndWrite(outPath, data); err != nil {
		return nil, fmt.Errorf("failed to write manifest %s: %w", outPath, err)
	}

	return &Result{Dir: dir, Path: outPath, Files: files}, nil
}

// Read loads an existing manifest and returns the filenames it lists.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return files, nil
}

// Diff compares the filenames a manifest lists against the filenames a
// fresh scan found. It returns the entries that are listed but missing
// on disk, and the files that are on disk but not listed. Both results
// preserve the order of their inputs.
func Diff(listed, actual []string) (missing, unlisted []string) {
	onDisk := make(map[string]bool, len(actual))
	for _, name := range actual {
		onDisk[name] = true
	}

	inManifest := make(map[string]bool, len(listed))
	for _, name := range listed {
		inManifest[name] = true
		if !onDisk[name] {
			missing = append(missing, name)
		}
	}

	for _, name := range actual {
		if !inManifest[name] {
			unlisted = append(unlisted, name)
		}
	}

	return missing, unlisted
}
