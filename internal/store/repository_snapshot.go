// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/migrations"
	"github.com/MKhiriev/go-reader-sync/models"
	sq "github.com/Masterminds/squirrel"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSnapshotRepository returns the SQLite-backed [SnapshotRepository].
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{DB: db, logger: logger, now: time.Now}
}

// ExportAll reads every table inside one transaction so the snapshot is
// consistent even while another process writes.
func (s *snapshotRepository) ExportAll(ctx context.Context) (models.DatabaseSnapshot, error) {
	log := logger.FromContext(ctx)

	snapshot := models.DatabaseSnapshot{
		Version:    int(migrations.LatestVersion),
		ExportedAt: s.now().UTC().Format(time.RFC3339),
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if snapshot.Novels, err = novelsTable.list(ctx, tx, nil); err != nil {
			return err
		}
		if snapshot.Users, err = usersTable.list(ctx, tx, nil); err != nil {
			return err
		}
		if snapshot.Library, err = libraryTable.list(ctx, tx, nil); err != nil {
			return err
		}
		if snapshot.Progress, err = progressTable.list(ctx, tx, nil); err != nil {
			return err
		}
		if snapshot.Comments, err = commentsTable.list(ctx, tx, nil); err != nil {
			return err
		}
		snapshot.Reviews, err = reviewsTable.list(ctx, tx, nil)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ExportAll").
			Msg("failed to export database")
		return models.DatabaseSnapshot{}, fmt.Errorf("failed to export database: %w", err)
	}

	log.Debug().
		Str("func", "snapshotRepository.ExportAll").
		Int("novels", len(snapshot.Novels)).
		Int("library", len(snapshot.Library)).
		Int("progress", len(snapshot.Progress)).
		Msg("database exported")

	return snapshot, nil
}

// ImportAll clears every table, then inserts the snapshot. On any failure
// the transaction is rolled back and the previous content stays in place.
func (s *snapshotRepository) ImportAll(ctx context.Context, snapshot models.DatabaseSnapshot) error {
	log := logger.FromContext(ctx)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, clearTable := range []func() (int64, error){
			func() (int64, error) { return reviewsTable.remove(ctx, tx, nil) },
			func() (int64, error) { return commentsTable.remove(ctx, tx, nil) },
			func() (int64, error) { return progressTable.remove(ctx, tx, nil) },
			func() (int64, error) { return libraryTable.remove(ctx, tx, nil) },
			func() (int64, error) { return usersTable.remove(ctx, tx, nil) },
			func() (int64, error) { return novelsTable.remove(ctx, tx, nil) },
		} {
			if _, err := clearTable(); err != nil {
				return err
			}
		}

		if err := novelsTable.upsert(ctx, tx, snapshot.Novels); err != nil {
			return err
		}
		if err := usersTable.upsert(ctx, tx, snapshot.Users); err != nil {
			return err
		}
		if err := libraryTable.upsert(ctx, tx, snapshot.Library); err != nil {
			return err
		}
		if err := progressTable.upsert(ctx, tx, snapshot.Progress); err != nil {
			return err
		}
		if err := commentsTable.upsert(ctx, tx, snapshot.Comments); err != nil {
			return err
		}
		return reviewsTable.upsert(ctx, tx, snapshot.Reviews)
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ImportAll").
			Msg("failed to import database snapshot")
		return fmt.Errorf("failed to import database snapshot: %w", err)
	}

	log.Info().
		Str("func", "snapshotRepository.ImportAll").
		Int("novels", len(snapshot.Novels)).
		Int("library", len(snapshot.Library)).
		Int("progress", len(snapshot.Progress)).
		Msg("database snapshot imported")

	return nil
}

func (s *snapshotRepository) ReplaceUserLibrary(ctx context.Context, userID string, items []models.LibraryItem, progress []models.ReadingProgress) error {
	log := logger.FromContext(ctx)

	owned := make([]models.LibraryItem, 0, len(items))
	for _, item := range items {
		item.UserID = userID
		owned = append(owned, item)
	}
	ownedProgress := make([]models.ReadingProgress, 0, len(progress))
	for _, p := range progress {
		p.UserID = userID
		ownedProgress = append(ownedProgress, p)
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := libraryTable.remove(ctx, tx, sq.Eq{"user_id": userID}); err != nil {
			return err
		}
		if _, err := progressTable.remove(ctx, tx, sq.Eq{"user_id": userID}); err != nil {
			return err
		}
		if err := libraryTable.upsert(ctx, tx, owned); err != nil {
			return err
		}
		return progressTable.upsert(ctx, tx, ownedProgress)
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceUserLibrary").
			Str("user_id", userID).
			Msg("failed to replace user library")
		return fmt.Errorf("failed to replace user library: %w", err)
	}

	return nil
}

func (s *snapshotRepository) UserLibrarySnapshot(ctx context.Context, userID string) (models.LibrarySnapshot, error) {
	log := logger.FromContext(ctx)

	items, err := libraryTable.list(ctx, s.DB, sq.Eq{"user_id": userID})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.UserLibrarySnapshot").
			Str("user_id", userID).
			Msg("failed to read user library")
		return models.LibrarySnapshot{}, err
	}

	progress, err := progressTable.list(ctx, s.DB, sq.Eq{"user_id": userID})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.UserLibrarySnapshot").
			Str("user_id", userID).
			Msg("failed to read user progress")
		return models.LibrarySnapshot{}, err
	}

	byNovel := make(map[string]models.ReadingProgress, len(progress))
	for _, p := range progress {
		byNovel[p.NovelID] = p
	}

	return models.LibrarySnapshot{
		State: models.LibrarySnapshotState{
			Library:         items,
			ReadingProgress: byNovel,
		},
	}, nil
}
