package store

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/migrations"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ExportAll / ImportAll ────────────────────────────────────────────────────

func TestSnapshot_RoundTrip(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	in := sampleSnapshot()

	require.NoError(t, s.Snapshots.ImportAll(ctx, in))

	out, err := s.Snapshots.ExportAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, int(migrations.LatestVersion), out.Version)
	assert.NotEmpty(t, out.ExportedAt)
	assert.Equal(t, in.Novels, out.Novels)
	assert.Equal(t, in.Users, out.Users)
	assert.Equal(t, in.Library, out.Library)
	assert.Equal(t, in.Progress, out.Progress)
	assert.Equal(t, in.Comments, out.Comments)
	assert.Equal(t, in.Reviews, out.Reviews)
}

func TestImportAll_ClearsExistingRows(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, s.Novels.SaveNovels(ctx, models.Novel{ID: "old", Title: "Old"}))
	require.NoError(t, s.Library.SaveLibraryItems(ctx, models.LibraryItem{UserID: "u9", NovelID: "old"}))

	require.NoError(t, s.Snapshots.ImportAll(ctx, sampleSnapshot()))

	_, err := s.Novels.GetNovel(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Library.GetLibraryItem(ctx, "u9", "old")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestImportAll_MissingTableLeavesItEmpty covers a snapshot without a
// comments array: the table is cleared and no error is returned.
func TestImportAll_MissingTableLeavesItEmpty(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, s.Snapshots.ImportAll(ctx, sampleSnapshot()))

	partial := sampleSnapshot()
	partial.Comments = nil
	partial.Reviews = nil
	require.NoError(t, s.Snapshots.ImportAll(ctx, partial))

	comments, err := s.Comments.GetAllComments(ctx)
	require.NoError(t, err)
	assert.Empty(t, comments)
	reviews, err := s.Reviews.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestImportAll_InvalidRecordRollsBack(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	require.NoError(t, s.Snapshots.ImportAll(ctx, sampleSnapshot()))

	bad := sampleSnapshot()
	bad.Library = append(bad.Library, models.LibraryItem{UserID: "u1"})

	err := s.Snapshots.ImportAll(ctx, bad)
	require.ErrorIs(t, err, ErrInvalidRecord)

	novels, err := s.Novels.GetAllNovels(ctx)
	require.NoError(t, err)
	assert.Len(t, novels, 2, "failed import must leave previous content")
}

func TestImportAll_ChunksLargeTables(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	snap := models.DatabaseSnapshot{}
	for i := range insertChunkSize*2 + 7 {
		snap.Novels = append(snap.Novels, models.Novel{ID: string(rune('a'+i%26)) + "-" + string(rune('A'+i/26)), Title: "t"})
	}
	require.NoError(t, s.Snapshots.ImportAll(ctx, snap))

	novels, err := s.Novels.GetAllNovels(ctx)
	require.NoError(t, err)
	assert.Len(t, novels, len(snap.Novels))
}

// ── ReplaceUserLibrary / UserLibrarySnapshot ─────────────────────────────────

func TestReplaceUserLibrary_OnlyTouchesUser(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	require.NoError(t, s.Snapshots.ImportAll(ctx, sampleSnapshot()))

	err := s.Snapshots.ReplaceUserLibrary(ctx, "u1",
		[]models.LibraryItem{{UserID: "someone-else", NovelID: "n2", Status: models.LibraryStatusDropped}},
		[]models.ReadingProgress{{NovelID: "n2", ChapterID: "c9", Progress: 150}},
	)
	require.NoError(t, err)

	snap, err := s.Snapshots.UserLibrarySnapshot(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, snap.State.Library, 1)
	assert.Equal(t, "u1", snap.State.Library[0].UserID)
	assert.Equal(t, "n2", snap.State.Library[0].NovelID)
	require.Contains(t, snap.State.ReadingProgress, "n2")
	assert.Equal(t, float64(100), snap.State.ReadingProgress["n2"].Progress)

	other, err := s.Library.GetUserLibrary(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestUserLibrarySnapshot_Empty(t *testing.T) {
	s := newTestStorages(t)

	snap, err := s.Snapshots.UserLibrarySnapshot(testContext(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, snap.State.Library)
	assert.Empty(t, snap.State.ReadingProgress)
}

// ── failure paths ────────────────────────────────────────────────────────────

func TestExportAll_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
	_, err = repo.ExportAll(testContext())

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportAll_DeleteErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reviews").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
	err = repo.ImportAll(testContext(), sampleSnapshot())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportAll_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, table := range []string{"reviews", "comments", "progress", "library", "users", "novels"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
	err = repo.ImportAll(testContext(), models.DatabaseSnapshot{})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}
