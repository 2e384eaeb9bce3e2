package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashbuilder/internal/kvstore"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// isolate runs the test in an empty dir with a fixed data dir.
func isolate(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	data := t.TempDir()
	t.Setenv(kvstore.DataDirEnv, data)
	return data
}

func TestLoad_Defaults(t *testing.T) {
	data := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, "dashboardLayout", cfg.StorageKey)
	assert.Equal(t, 0, cfg.QuotaBytes)
	assert.Equal(t, data, cfg.DataDir)
	assert.Equal(t, filepath.Join(data, DefaultLogFile), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ShowSidebar)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte(
		"backend: sqlite\nstorage_key: fromFile\nquota_bytes: 100\nshow_sidebar: false\n"), 0o644))

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "fromFile", cfg.StorageKey)
	assert.Equal(t, 100, cfg.QuotaBytes)
	assert.False(t, cfg.ShowSidebar)
	assert.Equal(t, DefaultConfigFile, cfg.ConfigFile)

	t.Setenv("DASHBUILDER_STORAGE_KEY", "fromEnv")
	cfg, err = Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "fromEnv", cfg.StorageKey)

	cfg, err = Load(newFlags(t, "--key", "fromFlag", "--backend", "memory"))
	require.NoError(t, err)
	assert.Equal(t, "fromFlag", cfg.StorageKey)
	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, 100, cfg.QuotaBytes, "unset flags do not override the file")
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	isolate(t)
	_, err := Load(newFlags(t, "--config", "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidBackend(t *testing.T) {
	isolate(t)
	_, err := Load(newFlags(t, "--backend", "redis"))
	assert.ErrorContains(t, err, "invalid backend")
}

func TestLoad_VerboseForcesDebug(t *testing.T) {
	isolate(t)
	cfg, err := Load(newFlags(t, "-v"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_StoreOptions(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: "/tmp/x", QuotaBytes: 5}
	assert.Equal(t, kvstore.Options{Backend: kvstore.BackendSQLite, DataDir: "/tmp/x", QuotaBytes: 5}, cfg.StoreOptions())
}
