package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs one reader-sync invocation and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"))
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APP_DATA_DIR", dir)
	t.Setenv("ADAPTER_PROXY_URL", "")
	t.Setenv("ADAPTER_DOCUMENT_URL", "")
	t.Setenv("ADAPTER_REALTIME_URL", "")
	t.Setenv("CONFIG", "")
	return dir
}

// ── version ──

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build commit: abc")
}

// ── config overrides ──

func TestUnknownConflictPolicy(t *testing.T) {
	setupDataDir(t)

	_, err := execute(t, "--conflict-policy", "merge", "accounts")
	require.ErrorIs(t, err, config.ErrInvalidSyncConfigs)
}

// ── session and library ──

func TestLibraryRequiresLogin(t *testing.T) {
	setupDataDir(t)

	_, err := execute(t, "library", "list")
	require.ErrorIs(t, err, service.ErrNotLoggedIn)
}

func TestLoginAndLibrary(t *testing.T) {
	setupDataDir(t)

	out, err := execute(t, "login", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as alice")

	_, err = execute(t, "library", "add", "novel-1", "--status", "reading")
	require.NoError(t, err)
	_, err = execute(t, "library", "favorite", "novel-1")
	require.NoError(t, err)
	_, err = execute(t, "library", "progress", "novel-1", "ch-3", "140")
	require.NoError(t, err)

	out, err = execute(t, "library", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "novel-1\treading")
	assert.Contains(t, out, "favorite")

	_, err = execute(t, "library", "progress", "novel-1", "ch-3", "many")
	require.Error(t, err)

	_, err = execute(t, "library", "status", "novel-1", "abandoned")
	require.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestAccounts(t *testing.T) {
	setupDataDir(t)

	_, err := execute(t, "login", "alice")
	require.NoError(t, err)
	_, err = execute(t, "login", "bob")
	require.NoError(t, err)

	out, err := execute(t, "accounts")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		if strings.Contains(line, "bob") {
			assert.True(t, strings.HasPrefix(line, "*"))
		}
	}

	_, err = execute(t, "logout")
	require.NoError(t, err)
	_, err = execute(t, "library", "list")
	require.ErrorIs(t, err, service.ErrNotLoggedIn)
}

// ── sync without remote backends ──

func TestPushLocalOnly(t *testing.T) {
	setupDataDir(t)

	_, err := execute(t, "login", "alice")
	require.NoError(t, err)

	out, err := execute(t, "push")
	require.NoError(t, err)
	assert.Contains(t, out, "local backup updated")

	out, err = execute(t, "backup", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "last backup:")
}

func TestRemoteDeleteUnconfigured(t *testing.T) {
	setupDataDir(t)

	_, err := execute(t, "login", "alice")
	require.NoError(t, err)

	_, err = execute(t, "remote", "delete")
	require.Error(t, err)
}

// ── backups ──

func TestBackupExportImport(t *testing.T) {
	setupDataDir(t)
	exportDir := t.TempDir()

	_, err := execute(t, "login", "alice")
	require.NoError(t, err)
	_, err = execute(t, "library", "add", "novel-1")
	require.NoError(t, err)

	out, err := execute(t, "backup", "export", "--dir", exportDir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, exportDir, filepath.Dir(path))
	require.FileExists(t, path)

	_, err = execute(t, "library", "remove", "novel-1")
	require.NoError(t, err)

	_, err = execute(t, "backup", "import", path)
	require.NoError(t, err)

	out, err = execute(t, "library", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "novel-1")
}

func TestBackupFullExport(t *testing.T) {
	setupDataDir(t)
	exportDir := t.TempDir()

	out, err := execute(t, "backup", "export", "--full", "--dir", exportDir)
	require.NoError(t, err)

	data, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, string(data), "exportedAt")

	_, err = execute(t, "backup", "import", "--full", strings.TrimSpace(out))
	require.NoError(t, err)
}

func TestBackupInfoEmpty(t *testing.T) {
	setupDataDir(t)

	out, err := execute(t, "backup", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "no local backup")
}
