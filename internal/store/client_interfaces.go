package store

import (
	"context"

	"github.com/MKhiriev/go-reader-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// NovelRepository stores catalog items.
type NovelRepository interface {
	GetNovel(ctx context.Context, novelID string) (models.Novel, error)
	SaveNovels(ctx context.Context, novels ...models.Novel) error
	GetAllNovels(ctx context.Context) ([]models.Novel, error)
	DeleteNovel(ctx context.Context, novelID string) error
}

// UserRepository stores reader profiles known to this device.
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	SaveUsers(ctx context.Context, users ...models.User) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// LibraryRepository stores library entries keyed by (userID, novelID).
type LibraryRepository interface {
	GetLibraryItem(ctx context.Context, userID, novelID string) (models.LibraryItem, error)
	SaveLibraryItems(ctx context.Context, items ...models.LibraryItem) error
	GetUserLibrary(ctx context.Context, userID string) ([]models.LibraryItem, error)
	GetAllLibraryItems(ctx context.Context) ([]models.LibraryItem, error)
	DeleteLibraryItem(ctx context.Context, userID, novelID string) error
}

// ProgressRepository stores reading progress keyed by (userID, novelID).
type ProgressRepository interface {
	GetProgress(ctx context.Context, userID, novelID string) (models.ReadingProgress, error)
	SaveProgress(ctx context.Context, progress ...models.ReadingProgress) error
	GetUserProgress(ctx context.Context, userID string) ([]models.ReadingProgress, error)
	GetAllProgress(ctx context.Context) ([]models.ReadingProgress, error)
	DeleteProgress(ctx context.Context, userID, novelID string) error
}

// CommentRepository stores reader comments.
type CommentRepository interface {
	GetComment(ctx context.Context, commentID string) (models.Comment, error)
	SaveComments(ctx context.Context, comments ...models.Comment) error
	GetNovelComments(ctx context.Context, novelID string) ([]models.Comment, error)
	GetAllComments(ctx context.Context) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// ReviewRepository stores novel reviews.
type ReviewRepository interface {
	GetReview(ctx context.Context, reviewID string) (models.Review, error)
	SaveReviews(ctx context.Context, reviews ...models.Review) error
	GetNovelReviews(ctx context.Context, novelID string) ([]models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

// SnapshotRepository works on the whole database at once.
type SnapshotRepository interface {
	// ExportAll reads every table into one snapshot.
	ExportAll(ctx context.Context) (models.DatabaseSnapshot, error)
	// ImportAll clears every table and bulk-inserts the snapshot in a single
	// transaction. A nil table in the snapshot leaves that table empty.
	ImportAll(ctx context.Context, snapshot models.DatabaseSnapshot) error
	// ReplaceUserLibrary swaps the library and progress rows of one user.
	ReplaceUserLibrary(ctx context.Context, userID string, items []models.LibraryItem, progress []models.ReadingProgress) error
	// UserLibrarySnapshot returns the reduced library shape of one user.
	UserLibrarySnapshot(ctx context.Context, userID string) (models.LibrarySnapshot, error)
}
