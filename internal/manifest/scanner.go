package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Scan lists the base names of the regular files in dir whose name ends
// with suffix, excluding exclude. The scan is non-recursive and the
// returned names are sorted byte-wise ascending, so ordering is
// case-sensitive by code point.
//
// The suffix comparison is exact; callers normalize the suffix (leading
// dot) before calling. The exclusion is compared by base name so the
// manifest never lists itself, whatever it is configured to be called.
func Scan(dir, suffix, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		if name == exclude {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}
