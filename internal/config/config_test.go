package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "models.json", cfg.ManifestName)
	assert.Equal(t, ".csv", cfg.Suffix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err, "missing config file must fall back to defaults")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_dir: /srv/app/data/models
manifest_name: index.json
suffix: .tsv
log_level: debug
log_dir: ./logs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/app/data/models", cfg.DataDir)
	assert.Equal(t, "index.json", cfg.ManifestName)
	assert.Equal(t, ".tsv", cfg.Suffix)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./logs", cfg.LogDir)
}

func TestLoadConfigPartial(t *testing.T) {
	// Fields absent from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "models.json", cfg.ManifestName)
	assert.Equal(t, ".csv", cfg.Suffix)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suffix: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigNormalization(t *testing.T) {
	t.Run("suffix gains leading dot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("suffix: csv\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ".csv", cfg.Suffix)
	})

	t.Run("manifest name must be bare", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("manifest_name: sub/models.json\n"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("cleared fields refill with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("manifest_name: \"\"\nsuffix: \"\"\nlog_level: \"\"\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "models.json", cfg.ManifestName)
		assert.Equal(t, ".csv", cfg.Suffix)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("manifest_name: catalog.json\n"), 0644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "catalog.json", cfg.ManifestName)
}
