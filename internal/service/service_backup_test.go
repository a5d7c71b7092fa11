// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── File names ──────────────────────────────────────────────────────────────

func TestBackupFileNames(t *testing.T) {
	at := time.Date(2026, 4, 9, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "reader-backup-2026-04-09.json", SettingsBackupFileName(at))
	assert.Equal(t, "reader-full-backup-2026-04-09.json", DatabaseBackupFileName(at))
}

// ── Settings backup ─────────────────────────────────────────────────────────

func TestBackupService_ExportImportSettings(t *testing.T) {
	src := newClientEnv(t)
	ctx := context.Background()
	id := src.login(t, "alice")
	src.addBook(t, id, "novel-1")
	require.NoError(t, src.mirror.Set(ctx, settings.KeyReaderSettings, `{"fontSize":17}`))
	require.NoError(t, src.mirror.Set(ctx, settings.KeyTheme, `{"theme":"dark"}`))

	var buf bytes.Buffer
	require.NoError(t, src.backup.ExportSettings(ctx, &buf))

	var doc models.SettingsBackup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc.Library, "novel-1")
	assert.Contains(t, doc.Auth, "savedAccounts", "the file backup keeps saved accounts")
	assert.NotEmpty(t, doc.Timestamp)

	dst := newClientEnv(t)
	require.NoError(t, dst.backup.ImportSettings(ctx, bytes.NewReader(buf.Bytes())))

	assert.Equal(t, id, dst.session.UserID())
	items, err := dst.storages.Library.GetUserLibrary(ctx, id)
	require.NoError(t, err)
	require.Len(t, items, 1)

	theme, _, err := dst.mirror.Get(settings.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, theme)

	_, ok, err := dst.mirror.Get(settings.KeySyncTrigger)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBackupService_ImportSettings_OnlyNonEmpty(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()
	env.login(t, "alice")
	require.NoError(t, env.mirror.Set(ctx, settings.KeyReaderSettings, `{"fontSize":17}`))

	doc := `{"auth":"","library":"","readerSettings":"","theme":"{\"theme\":\"light\"}","timestamp":"2026-01-01T00:00:00.000Z"}`
	require.NoError(t, env.backup.ImportSettings(ctx, strings.NewReader(doc)))

	reader, _, err := env.mirror.Get(settings.KeyReaderSettings)
	require.NoError(t, err)
	assert.Equal(t, `{"fontSize":17}`, reader)

	theme, _, err := env.mirror.Get(settings.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"light"}`, theme)
}

func TestBackupService_ImportSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "hello"},
		{name: "bad auth", doc: `{"auth":"{","theme":"{\"theme\":\"light\"}"}`},
		{name: "bad library", doc: `{"library":"[","theme":"{\"theme\":\"light\"}"}`},
		{name: "bad theme", doc: `{"theme":"light"}`},
		{name: "reduced library without user", doc: `{"library":"{\"state\":{\"library\":[]}}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newClientEnv(t)

			err := env.backup.ImportSettings(context.Background(), strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidBackup)

			_, ok, err := env.mirror.Get(settings.KeyTheme)
			require.NoError(t, err)
			assert.False(t, ok, "nothing is written")
		})
	}
}

func TestBackupService_BackupUserSettings(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()
	id := env.login(t, "alice")

	require.NoError(t, env.backup.BackupUserSettings(ctx, id))

	raw, ok, err := env.mirror.Get(settings.CloudBackupKey(id))
	require.NoError(t, err)
	require.True(t, ok)

	var doc models.SettingsBackup
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.NotEmpty(t, doc.Auth)
	assert.Contains(t, doc.Library, `"state"`)
}

// ── Database backup ─────────────────────────────────────────────────────────

func TestBackupService_DatabaseFileRoundTrip(t *testing.T) {
	src := newClientEnv(t)
	ctx := context.Background()
	src.addBook(t, "u-1", "novel-1")
	src.addBook(t, "u-2", "novel-2")

	dir := t.TempDir()
	path, err := src.backup.ExportDatabaseFile(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "reader-full-backup-"))

	dst := newClientEnv(t)
	dst.addBook(t, "u-3", "novel-3")
	require.NoError(t, dst.backup.ImportDatabaseFile(ctx, path))

	all, err := dst.storages.Library.GetAllLibraryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	info, err := dst.backup.Info()
	require.NoError(t, err)
	assert.True(t, info.HasBackup, "import refreshes the local backup")
}

func TestBackupService_ImportDatabaseFile_Invalid(t *testing.T) {
	env := newClientEnv(t)
	env.addBook(t, "u-1", "novel-1")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	assert.ErrorIs(t, env.backup.ImportDatabaseFile(context.Background(), path), ErrInvalidBackup)
	assert.Error(t, env.backup.ImportDatabaseFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")))

	all, err := env.storages.Library.GetAllLibraryItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// ── Local backup ────────────────────────────────────────────────────────────

func TestBackupService_AutoExportAndRestore(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()

	info, err := env.backup.Info()
	require.NoError(t, err)
	assert.Equal(t, models.BackupInfo{}, info)
	assert.ErrorIs(t, env.backup.RestoreFromLocal(ctx), ErrNoLocalBackup)

	env.addBook(t, "u-1", "novel-1")
	require.NoError(t, env.backup.AutoExport(ctx))

	info, err = env.backup.Info()
	require.NoError(t, err)
	assert.True(t, info.HasBackup)
	_, err = time.Parse(time.RFC3339, info.LastBackupDate)
	assert.NoError(t, err)

	require.NoError(t, env.storages.Library.DeleteLibraryItem(ctx, "u-1", "novel-1"))
	require.NoError(t, env.backup.RestoreFromLocal(ctx))

	all, err := env.storages.Library.GetAllLibraryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBackupService_RestoreFromLocal_Corrupt(t *testing.T) {
	env := newClientEnv(t)
	require.NoError(t, env.mirror.Set(context.Background(), settings.KeyDBBackup, "not json"))

	assert.ErrorIs(t, env.backup.RestoreFromLocal(context.Background()), ErrInvalidBackup)
}
