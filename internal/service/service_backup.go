// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/internal/store"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

const (
	backupDateLayout = "2006-01-02"
	backupFileMode   = 0o600
)

// SettingsBackupFileName returns the name of the settings backup file
// exported at t.
func SettingsBackupFileName(t time.Time) string {
	return "reader-backup-" + t.UTC().Format(backupDateLayout) + ".json"
}

// DatabaseBackupFileName returns the name of the full database backup file
// exported at t.
func DatabaseBackupFileName(t time.Time) string {
	return "reader-full-backup-" + t.UTC().Format(backupDateLayout) + ".json"
}

type backupService struct {
	mirror    SettingsStore
	snapshots store.SnapshotRepository
	session   *SessionContext
	builder   *PayloadBuilder
	merger    *Merger
	now       func() time.Time
	logger    *logger.Logger
}

func NewBackupService(mirror SettingsStore, snapshots store.SnapshotRepository, session *SessionContext, builder *PayloadBuilder, merger *Merger, logger *logger.Logger) BackupService {
	return &backupService{
		mirror:    mirror,
		snapshots: snapshots,
		session:   session,
		builder:   builder,
		merger:    merger,
		now:       time.Now,
		logger:    logger,
	}
}

func (b *backupService) ExportSettings(ctx context.Context, w io.Writer) error {
	backup, err := b.settingsBackup(ctx, b.session.UserID())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(backup); err != nil {
		return fmt.Errorf("write settings backup: %w", err)
	}
	return nil
}

// settingsBackup collects the settings blobs. The library is the reduced
// shape of userID, or the whole database when nobody is logged in. Auth keeps
// the saved accounts since the document stays on this device.
func (b *backupService) settingsBackup(ctx context.Context, userID string) (models.SettingsBackup, error) {
	format := models.LibraryFormatReduced
	if userID == "" {
		format = models.LibraryFormatFull
	}

	library, err := b.builder.library(ctx, userID, format)
	if err != nil {
		return models.SettingsBackup{}, err
	}

	backup := models.SettingsBackup{
		Library:   library,
		Timestamp: formatTimestamp(b.now()),
	}
	for key, dst := range map[string]*string{
		settings.KeyAuth:           &backup.Auth,
		settings.KeyReaderSettings: &backup.ReaderSettings,
		settings.KeyTheme:          &backup.Theme,
	} {
		if *dst, _, err = b.mirror.Get(key); err != nil {
			return models.SettingsBackup{}, fmt.Errorf("read %s: %w", key, err)
		}
	}
	return backup, nil
}

// ImportSettings validates every blob of the document first; a document with
// one bad blob changes nothing.
func (b *backupService) ImportSettings(ctx context.Context, r io.Reader) error {
	var backup models.SettingsBackup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	userID := b.session.UserID()
	if backup.Auth != "" {
		auth, err := decodeAuth(backup.Auth)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBackup, err)
		}
		if auth.State.User != nil && auth.State.User.ID != "" {
			userID = auth.State.User.ID
		}
	}
	library, err := decodeLibrary(backup.Library)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	if library.reduced != nil && userID == "" {
		return fmt.Errorf("%w: library without a user", ErrInvalidBackup)
	}
	for key, blob := range map[string]string{settings.KeyReaderSettings: backup.ReaderSettings, settings.KeyTheme: backup.Theme} {
		if blob != "" && !json.Valid([]byte(blob)) {
			return fmt.Errorf("%w: %s", ErrInvalidBackup, key)
		}
	}

	if err = b.merger.applyLibrary(ctx, userID, library); err != nil {
		return err
	}
	for key, blob := range map[string]string{
		settings.KeyAuth:           backup.Auth,
		settings.KeyReaderSettings: backup.ReaderSettings,
		settings.KeyTheme:          backup.Theme,
	} {
		if blob == "" {
			continue
		}
		if err = b.mirror.Set(ctx, key, blob); err != nil {
			return err
		}
	}
	if backup.Auth != "" {
		if err = b.session.Reload(); err != nil {
			return err
		}
	}

	b.logger.Info().
		Str("func", "backupService.ImportSettings").
		Str("timestamp", backup.Timestamp).
		Msg("settings backup imported")
	return b.mirror.BroadcastSync(ctx)
}

func (b *backupService) ExportDatabaseFile(ctx context.Context, dir string) (string, error) {
	data, err := b.exportDatabase(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, DatabaseBackupFileName(b.now()))
	if err = os.WriteFile(path, data, backupFileMode); err != nil {
		return "", fmt.Errorf("write database backup: %w", err)
	}

	b.logger.Info().Str("func", "backupService.ExportDatabaseFile").Str("path", path).Msg("database exported")
	return path, nil
}

func (b *backupService) ImportDatabaseFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read database backup: %w", err)
	}

	if err = b.importDatabase(ctx, data); err != nil {
		return err
	}
	if err = b.storeLocal(ctx, data); err != nil {
		return err
	}

	b.logger.Info().Str("func", "backupService.ImportDatabaseFile").Str("path", path).Msg("database imported")
	return b.mirror.BroadcastSync(ctx)
}

func (b *backupService) AutoExport(ctx context.Context) error {
	data, err := b.exportDatabase(ctx)
	if err != nil {
		return err
	}
	return b.storeLocal(ctx, data)
}

func (b *backupService) RestoreFromLocal(ctx context.Context) error {
	data, ok, err := b.mirror.Get(settings.KeyDBBackup)
	if err != nil {
		return err
	}
	if !ok || data == "" {
		return ErrNoLocalBackup
	}

	if err = b.importDatabase(ctx, []byte(data)); err != nil {
		return err
	}

	b.logger.Info().Str("func", "backupService.RestoreFromLocal").Msg("local backup restored")
	return b.mirror.BroadcastSync(ctx)
}

func (b *backupService) Info() (models.BackupInfo, error) {
	data, ok, err := b.mirror.Get(settings.KeyDBBackup)
	if err != nil {
		return models.BackupInfo{}, err
	}
	if !ok || data == "" {
		return models.BackupInfo{}, nil
	}

	date, _, err := b.mirror.Get(settings.KeyDBBackupDate)
	if err != nil {
		return models.BackupInfo{}, err
	}
	return models.BackupInfo{HasBackup: true, LastBackupDate: date}, nil
}

func (b *backupService) BackupUserSettings(ctx context.Context, userID string) error {
	backup, err := b.settingsBackup(ctx, userID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(backup)
	if err != nil {
		return fmt.Errorf("encode settings backup: %w", err)
	}
	if err = b.mirror.Set(ctx, settings.CloudBackupKey(userID), string(data)); err != nil {
		return err
	}

	b.logger.Debug().Str("func", "backupService.BackupUserSettings").Str("user_id", userID).Msg("settings backed up")
	return nil
}

func (b *backupService) exportDatabase(ctx context.Context) ([]byte, error) {
	snapshot, err := b.snapshots.ExportAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export database: %w", err)
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode database: %w", err)
	}
	return data, nil
}

func (b *backupService) importDatabase(ctx context.Context, data []byte) error {
	var snapshot models.DatabaseSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	return b.merger.applyLibrary(ctx, "", decodedLibrary{full: &snapshot})
}

// storeLocal refreshes the local backup copy.
func (b *backupService) storeLocal(ctx context.Context, data []byte) error {
	if err := b.mirror.Set(ctx, settings.KeyDBBackup, string(data)); err != nil {
		return err
	}
	if err := b.mirror.Set(ctx, settings.KeyDBBackupDate, b.now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return nil
}
