package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{
		"top_n": 3,
		"verbose": true,
		"log_level": "debug",
		"log_format": "pretty"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopN)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{broken`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := &Config{TopN: 5, LogFormat: "json"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{TopN: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{LogFormat: "xml"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{VocabularyPath: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingCatalogueFiles(t *testing.T) {
	path := writeTempConfig(t, `{}`)
	cfg := &Config{VocabularyPath: path, RolesPath: path}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TopN: 3}
	merged := cfg.MergeWithDefaults(Config{
		TopN:      5,
		LogLevel:  "info",
		LogFormat: "json",
		Verbose:   true,
	})

	// Set values win over defaults.
	assert.Equal(t, 3, merged.TopN)
	// Unset values fall back.
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, "json", merged.LogFormat)
	assert.True(t, merged.Verbose)
}
