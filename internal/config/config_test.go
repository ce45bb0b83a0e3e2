package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so a tidyprep.yaml in
// the repository root cannot leak into the test.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, ".", cfg.Paths.OutputDir)
	assert.Equal(t, "logs", cfg.Paths.LogsDir)
	assert.Equal(t, "PL", cfg.Sources.PostalCountry)
	assert.Contains(t, cfg.Sources.BillboardURL, "billboard.csv")
	assert.Contains(t, cfg.Sources.PostalURLTemplate, "%s")
	assert.Equal(t, 60*time.Second, cfg.HTTP.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TIDYPREP_LOGGING_LEVEL", "debug")
	t.Setenv("TIDYPREP_SOURCES_POSTAL_COUNTRY", "CH")
	t.Setenv("TIDYPREP_HTTP_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "CH", cfg.Sources.PostalCountry)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "TIDYPREP_LOGGING_LEVEL", value: "verbose"},
		{name: "bad log output", key: "TIDYPREP_LOGGING_OUTPUT", value: "syslog"},
		{name: "bad country code", key: "TIDYPREP_SOURCES_POSTAL_COUNTRY", value: "POL"},
		{name: "template without placeholder", key: "TIDYPREP_SOURCES_POSTAL_URL_TEMPLATE", value: "https://example.com/fixed.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAMLFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("logging: [not a map"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "failed to load config from file")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	yaml := "logging:\n  level: warn\npaths:\n  output_dir: /data/out\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/data/out", cfg.Paths.OutputDir)
}

func TestMergeConfigs(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Logging.Level = "warn"
	fileCfg.Paths.OutputDir = "/from/file"
	fileCfg.HTTP.Timeout = 10 * time.Second

	envCfg := Config{}
	envCfg.Logging.Level = "debug" // env wins where set

	merged := mergeConfigs(fileCfg, envCfg)
	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, "/from/file", merged.Paths.OutputDir)
	assert.Equal(t, 10*time.Second, merged.HTTP.Timeout)
}

func TestPostalURL(t *testing.T) {
	cfg := &Config{}
	cfg.Sources.PostalCountry = "ch"
	cfg.Sources.PostalURLTemplate = "https://download.geonames.org/export/zip/%s.zip"

	assert.Equal(t, "https://download.geonames.org/export/zip/CH.zip", cfg.PostalURL())
}
