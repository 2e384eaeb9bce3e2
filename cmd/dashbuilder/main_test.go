package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"dashbuilder/internal/kvstore"
	"dashbuilder/internal/persist"
	"dashbuilder/internal/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saved() []widget.Instance {
	return []widget.Instance{
		{ID: "a1", Type: widget.TypeText, Title: "Welcome Widget"},
		{ID: "b2", Type: widget.TypeChart, Title: "Revenue"},
	}
}

// run executes the CLI with args against dataDir and returns stdout and stderr.
func run(t *testing.T, dataDir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	rt := &runtime{}
	cmd := newRootCmd(rt)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--data-dir", dataDir))
	err := cmd.Execute()
	require.NoError(t, rt.close(t.Context()))
	return stdout.String(), stderr.String(), err
}

func seed(t *testing.T, dir string, widgets []widget.Instance) {
	t.Helper()
	fs, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, persist.NewAdapter(fs).Save(widgets))
}

func TestList_Saved(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, saved())

	out, _, err := run(t, dir, "list")
	require.NoError(t, err)
	for _, s := range []string{"Welcome Widget", "Revenue", "Chart Widget", "a1", "b2", "2 widgets"} {
		assert.Contains(t, out, s)
	}
}

func TestList_NothingSaved(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved dashboard found.\n", out)
}

func TestList_Corrupt(t *testing.T) {
	dir := t.TempDir()
	fs, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Set(persist.DefaultKey, []byte("not json")))

	_, _, err = run(t, dir, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saved data is corrupt")
}

func TestExport_JSON(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, saved())

	out, _, err := run(t, dir, "export")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a1","type":"text","title":"Welcome Widget"},{"id":"b2","type":"chart","title":"Revenue"}]`, out)
}

func TestExport_YAML(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, saved())

	out, _, err := run(t, dir, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.YAMLEq(t, `
- id: a1
  type: text
  title: Welcome Widget
- id: b2
  type: chart
  title: Revenue
`, out)
}

func TestExport_InvalidFormat(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "export", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, saved())

	out, _, err := run(t, dir, "reset")
	require.NoError(t, err)
	assert.Equal(t, "Saved dashboard cleared.\n", out)

	out, _, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved dashboard found.\n", out)
}

func TestSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	store, err := kvstore.Open(kvstore.Options{Backend: kvstore.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, persist.NewAdapter(store).Save(saved()))
	require.NoError(t, store.Close())

	out, _, err := run(t, dir, "list", "--backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, out, "Revenue")
}

func TestCustomKey(t *testing.T) {
	dir := t.TempDir()
	fs, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, persist.NewAdapter(fs, persist.WithKey("team")).Save(saved()))

	out, _, err := run(t, dir, "list", "--key", "team")
	require.NoError(t, err)
	assert.Contains(t, out, "Revenue")
}

func TestLogFileWritten(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, dir, "list", "--verbose")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "dashbuilder.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command":"list"`)
}

func TestInvalidBackend(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "list", "--backend", "redis")
	assert.ErrorContains(t, err, "invalid backend")
}
