package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	sq "github.com/Masterminds/squirrel"
)

// libraryRepository serves the library and progress tables. Both are keyed
// by (user_id, novel_id).
type libraryRepository struct {
	*DB
	logger *logger.Logger
}

func newLibraryRepository(db *DB, logger *logger.Logger) *libraryRepository {
	return &libraryRepository{DB: db, logger: logger}
}

// NewLibraryRepository returns the SQLite-backed [LibraryRepository].
func NewLibraryRepository(db *DB, logger *logger.Logger) LibraryRepository {
	return newLibraryRepository(db, logger)
}

// NewProgressRepository returns the SQLite-backed [ProgressRepository].
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	return newLibraryRepository(db, logger)
}

func userNovelKey(userID, novelID string) sq.Eq {
	return sq.Eq{"user_id": userID, "novel_id": novelID}
}

func (l *libraryRepository) GetLibraryItem(ctx context.Context, userID, novelID string) (models.LibraryItem, error) {
	item, err := libraryTable.get(ctx, l.DB, userNovelKey(userID, novelID))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.GetLibraryItem").
			Str("user_id", userID).
			Str("novel_id", novelID).
			Msg("failed to get library item")
	}
	return item, err
}

func (l *libraryRepository) SaveLibraryItems(ctx context.Context, items ...models.LibraryItem) error {
	if err := libraryTable.upsert(ctx, l.DB, items); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.SaveLibraryItems").
			Int("count", len(items)).
			Msg("failed to save library items")
		return err
	}
	return nil
}

func (l *libraryRepository) GetUserLibrary(ctx context.Context, userID string) ([]models.LibraryItem, error) {
	items, err := libraryTable.list(ctx, l.DB, sq.Eq{"user_id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.GetUserLibrary").
			Str("user_id", userID).
			Msg("failed to list user library")
	}
	return items, err
}

func (l *libraryRepository) GetAllLibraryItems(ctx context.Context) ([]models.LibraryItem, error) {
	items, err := libraryTable.list(ctx, l.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.GetAllLibraryItems").
			Msg("failed to list library")
	}
	return items, err
}

func (l *libraryRepository) DeleteLibraryItem(ctx context.Context, userID, novelID string) error {
	n, err := libraryTable.remove(ctx, l.DB, userNovelKey(userID, novelID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.DeleteLibraryItem").
			Str("user_id", userID).
			Str("novel_id", novelID).
			Msg("failed to delete library item")
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (l *libraryRepository) GetProgress(ctx context.Context, userID, novelID string) (models.ReadingProgress, error) {
	p, err := progressTable.get(ctx, l.DB, userNovelKey(userID, novelID))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.GetProgress").
			Str("user_id", userID).
			Str("novel_id", novelID).
			Msg("failed to get reading progress")
	}
	return p, err
}

func (l *libraryRepository) SaveProgress(ctx context.Context, progress ...models.ReadingProgress) error {
	if err := progressTable.upsert(ctx, l.DB, progress); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.SaveProgress").
			Int("count", len(progress)).
			Msg("failed to save reading progress")
		return err
	}
	return nil
}

func (l *libraryRepository) GetUserProgress(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	progress, err := progressTable.list(ctx, l.DB, sq.Eq{"user_id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.GetUserProgress").
			Str("user_id", userID).
			Msg("failed to list user progress")
	}
	return progress, err
}

func (l *libraryRepository) GetAllProgress(ctx context.Context) ([]models.ReadingProgress, error) {
	progress, err := progressTable.list(ctx, l.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.GetAllProgress").
			Msg("failed to list progress")
	}
	return progress, err
}

func (l *libraryRepository) DeleteProgress(ctx context.Context, userID, novelID string) error {
	n, err := progressTable.remove(ctx, l.DB, userNovelKey(userID, novelID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "libraryRepository.DeleteProgress").
			Str("user_id", userID).
			Str("novel_id", novelID).
			Msg("failed to delete reading progress")
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
