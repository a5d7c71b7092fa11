package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	sq "github.com/Masterminds/squirrel"
)

// communityRepository serves the comments and reviews tables.
type communityRepository struct {
	*DB
	logger *logger.Logger
}

func newCommunityRepository(db *DB, logger *logger.Logger) *communityRepository {
	return &communityRepository{DB: db, logger: logger}
}

// NewCommentRepository returns the SQLite-backed [CommentRepository].
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	return newCommunityRepository(db, logger)
}

// NewReviewRepository returns the SQLite-backed [ReviewRepository].
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	return newCommunityRepository(db, logger)
}

func (c *communityRepository) GetComment(ctx context.Context, commentID string) (models.Comment, error) {
	comment, err := commentsTable.get(ctx, c.DB, sq.Eq{"id": commentID})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.GetComment").
			Str("comment_id", commentID).
			Msg("failed to get comment")
	}
	return comment, err
}

func (c *communityRepository) SaveComments(ctx context.Context, comments ...models.Comment) error {
	if err := commentsTable.upsert(ctx, c.DB, comments); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.SaveComments").
			Int("count", len(comments)).
			Msg("failed to save comments")
		return err
	}
	return nil
}

func (c *communityRepository) GetNovelComments(ctx context.Context, novelID string) ([]models.Comment, error) {
	comments, err := commentsTable.list(ctx, c.DB, sq.Eq{"novel_id": novelID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.GetNovelComments").
			Str("novel_id", novelID).
			Msg("failed to list novel comments")
	}
	return comments, err
}

func (c *communityRepository) GetAllComments(ctx context.Context) ([]models.Comment, error) {
	comments, err := commentsTable.list(ctx, c.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.GetAllComments").
			Msg("failed to list comments")
	}
	return comments, err
}

func (c *communityRepository) DeleteComment(ctx context.Context, commentID string) error {
	n, err := commentsTable.remove(ctx, c.DB, sq.Eq{"id": commentID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.DeleteComment").
			Str("comment_id", commentID).
			Msg("failed to delete comment")
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *communityRepository) GetReview(ctx context.Context, reviewID string) (models.Review, error) {
	review, err := reviewsTable.get(ctx, c.DB, sq.Eq{"id": reviewID})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.GetReview").
			Str("review_id", reviewID).
			Msg("failed to get review")
	}
	return review, err
}

func (c *communityRepository) SaveReviews(ctx context.Context, reviews ...models.Review) error {
	if err := reviewsTable.upsert(ctx, c.DB, reviews); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.SaveReviews").
			Int("count", len(reviews)).
			Msg("failed to save reviews")
		return err
	}
	return nil
}

func (c *communityRepository) GetNovelReviews(ctx context.Context, novelID string) ([]models.Review, error) {
	reviews, err := reviewsTable.list(ctx, c.DB, sq.Eq{"novel_id": novelID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.GetNovelReviews").
			Str("novel_id", novelID).
			Msg("failed to list novel reviews")
	}
	return reviews, err
}

func (c *communityRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := reviewsTable.list(ctx, c.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.GetAllReviews").
			Msg("failed to list reviews")
	}
	return reviews, err
}

func (c *communityRepository) DeleteReview(ctx context.Context, reviewID string) error {
	n, err := reviewsTable.remove(ctx, c.DB, sq.Eq{"id": reviewID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "communityRepository.DeleteReview").
			Str("review_id", reviewID).
			Msg("failed to delete review")
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
