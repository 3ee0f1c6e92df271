package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates empty files with the given names in dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", name, err)
		}
	}
}

func TestGenerateSortsAndExcludesSelf(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.csv", "c.csv", "b.csv")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.json"), []byte("stale"), 0644))

	result, err := Generate(dir, DefaultName, DefaultSuffix)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.csv", "b.csv", "c.csv"}, result.Files)
	assert.Equal(t, filepath.Join(dir, "models.json"), result.Path)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a.csv\",\n  \"b.csv\",\n  \"c.csv\"\n]", string(data))
}

func TestGenerateEmptyDirectory(t *testing.T) {
	t.Run("nothing in directory", func(t *testing.T) {
		dir := t.TempDir()

		result, err := Generate(dir, DefaultName, DefaultSuffix)
		require.NoError(t, err)
		assert.Empty(t, result.Files)

		data, err := os.ReadFile(result.Path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("only the manifest itself", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "models.json"), []byte(`["gone.csv"]`), 0644))

		result, err := Generate(dir, DefaultName, DefaultSuffix)
		require.NoError(t, err)
		assert.Empty(t, result.Files)

		data, err := os.ReadFile(result.Path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestGenerateIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.csv", "b.csv")

	first, err := Generate(dir, DefaultName, DefaultSuffix)
	require.NoError(t, err)
	firstData, err := os.ReadFile(first.Path)
	require.NoError(t, err)

	second, err := Generate(dir, DefaultName, DefaultSuffix)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second.Path)
	require.NoError(t, err)

	assert.Equal(t, firstData, secondData, "unchanged directory must produce byte-identical manifests")
}

func TestGenerateMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Generate(dir, DefaultName, DefaultSuffix)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirNotFound)

	_, statErr := os.Stat(filepath.Join(dir, DefaultName))
	assert.True(t, os.IsNotExist(statErr), "no manifest may be created for a missing directory")
}

func TestGenerateCodePointOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "model1.csv", "Model2.csv")

	result, err := Generate(dir, DefaultName, DefaultSuffix)
	require.NoError(t, err)

	// Uppercase sorts before lowercase under byte-wise ordering.
	assert.Equal(t, []string{"Model2.csv", "model1.csv"}, result.Files)
}

func TestGenerateRenamedManifestExcludesItself(t *testing.T) {
	// A manifest whose name matches the scan suffix must still be
	// excluded, because exclusion compares against the actual output
	// path rather than a hardcoded name.
	dir := t.TempDir()
	writeFiles(t, dir, "a.csv", "b.csv")

	first, err := Generate(dir, "index.csv", DefaultSuffix)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, first.Files)

	second, err := Generate(dir, "index.csv", DefaultSuffix)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, second.Files, "manifest must never list itself")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.csv", "b.csv")

	result, err := Generate(dir, DefaultName, DefaultSuffix)
	require.NoError(t, err)

	files, err := Read(result.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, files)
}

func TestReadErrors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "models.json"))
		assert.Error(t, err)
	})

	t.Run("malformed manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := Read(path)
		assert.Error(t, err)
	})
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name         string
		listed       []string
		actual       []string
		wantMissing  []string
		wantUnlisted []string
	}{
		{
			name:   "in sync",
			listed: []string{"a.csv", "b.csv"},
			actual: []string{"a.csv", "b.csv"},
		},
		{
			name:        "entry deleted on disk",
			listed:      []string{"a.csv", "b.csv"},
			actual:      []string{"a.csv"},
			wantMissing: []string{"b.csv"},
		},
		{
			name:         "file added on disk",
			listed:       []string{"a.csv"},
			actual:       []string{"a.csv", "b.csv"},
			wantUnlisted: []string{"b.csv"},
		},
		{
			name:         "drift in both directions",
			listed:       []string{"a.csv", "gone.csv"},
			actual:       []string{"a.csv", "new.csv"},
			wantMissing:  []string{"gone.csv"},
			wantUnlisted: []string{"new.csv"},
		},
		{
			name: "both empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, unlisted := Diff(tt.listed, tt.actual)
			assert.Equal(t, tt.wantMissing, missing)
			assert.Equal(t, tt.wantUnlisted, unlisted)
		})
	}
}
