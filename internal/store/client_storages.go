package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
)

// ClientStorages groups the repositories of the local reader database.
type ClientStorages struct {
	DB *DB

	Novels    NovelRepository
	Users     UserRepository
	Library   LibraryRepository
	Progress  ProgressRepository
	Comments  CommentRepository
	Reviews   ReviewRepository
	Snapshots SnapshotRepository
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN (creating it
// and its directory when missing), applies pending migrations and wires
// every repository to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB wires the repositories to an already migrated
// connection.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		DB:        db,
		Novels:    NewNovelRepository(db, logger),
		Users:     NewUserRepository(db, logger),
		Library:   NewLibraryRepository(db, logger),
		Progress:  NewProgressRepository(db, logger),
		Comments:  NewCommentRepository(db, logger),
		Reviews:   NewReviewRepository(db, logger),
		Snapshots: NewSnapshotRepository(db, logger),
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
