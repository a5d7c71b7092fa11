package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	sq "github.com/Masterminds/squirrel"
)

// catalogRepository serves the novels and users tables.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

func newCatalogRepository(db *DB, logger *logger.Logger) *catalogRepository {
	return &catalogRepository{DB: db, logger: logger}
}

// NewNovelRepository returns the SQLite-backed [NovelRepository].
func NewNovelRepository(db *DB, logger *logger.Logger) NovelRepository {
	return newCatalogRepository(db, logger)
}

// NewUserRepository returns the SQLite-backed [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return newCatalogRepository(db, logger)
}

func (c *catalogRepository) GetNovel(ctx context.Context, novelID string) (models.Novel, error) {
	novel, err := novelsTable.get(ctx, c.DB, sq.Eq{"id": novelID})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.GetNovel").
			Str("novel_id", novelID).
			Msg("failed to get novel")
	}
	return novel, err
}

func (c *catalogRepository) SaveNovels(ctx context.Context, novels ...models.Novel) error {
	if err := novelsTable.upsert(ctx, c.DB, novels); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.SaveNovels").
			Int("count", len(novels)).
			Msg("failed to save novels")
		return err
	}
	return nil
}

func (c *catalogRepository) GetAllNovels(ctx context.Context) ([]models.Novel, error) {
	novels, err := novelsTable.list(ctx, c.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.GetAllNovels").
			Msg("failed to list novels")
	}
	return novels, err
}

func (c *catalogRepository) DeleteNovel(ctx context.Context, novelID string) error {
	n, err := novelsTable.remove(ctx, c.DB, sq.Eq{"id": novelID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.DeleteNovel").
			Str("novel_id", novelID).
			Msg("failed to delete novel")
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *catalogRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := usersTable.get(ctx, c.DB, sq.Eq{"id": userID})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.GetUser").
			Str("user_id", userID).
			Msg("failed to get user")
	}
	return user, err
}

func (c *catalogRepository) SaveUsers(ctx context.Context, users ...models.User) error {
	if err := usersTable.upsert(ctx, c.DB, users); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.SaveUsers").
			Int("count", len(users)).
			Msg("failed to save users")
		return err
	}
	return nil
}

func (c *catalogRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := usersTable.list(ctx, c.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.GetAllUsers").
			Msg("failed to list users")
	}
	return users, err
}

func (c *catalogRepository) DeleteUser(ctx context.Context, userID string) error {
	n, err := usersTable.remove(ctx, c.DB, sq.Eq{"id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.DeleteUser").
			Str("user_id", userID).
			Msg("failed to delete user")
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
