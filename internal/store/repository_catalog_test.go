package store

import (
	"testing"

	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovels_RoundTripNestedFields(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()
	novel := sampleSnapshot().Novels[0]

	require.NoError(t, s.Novels.SaveNovels(ctx, novel))

	got, err := s.Novels.GetNovel(ctx, novel.ID)
	require.NoError(t, err)
	assert.Equal(t, novel, got)

	novel.Title = "Renamed"
	require.NoError(t, s.Novels.SaveNovels(ctx, novel))
	got, err = s.Novels.GetNovel(ctx, novel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	require.NoError(t, s.Novels.DeleteNovel(ctx, novel.ID))
	_, err = s.Novels.GetNovel(ctx, novel.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_SaveAndList(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, s.Users.SaveUsers(ctx, sampleSnapshot().Users...))

	users, err := s.Users.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[0].AvatarFrame)
	assert.Equal(t, "#fff", users[0].AvatarFrame.Color)

	assert.ErrorIs(t, s.Users.DeleteUser(ctx, "missing"), ErrNotFound)
	_, err = s.Users.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommunity_ByNovel(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, s.Comments.SaveComments(ctx,
		models.Comment{ID: "c1", NovelID: "n1", UserID: "u1", Content: "a"},
		models.Comment{ID: "c2", NovelID: "n2", UserID: "u1", Content: "b"},
	))
	require.NoError(t, s.Reviews.SaveReviews(ctx, models.Review{ID: "r1", NovelID: "n1", UserID: "u1", Rating: 4}))

	comments, err := s.Comments.GetNovelComments(ctx, "n1")
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	reviews, err := s.Reviews.GetNovelReviews(ctx, "n1")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	r, err := s.Reviews.GetReview(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, float64(4), r.Rating)

	require.NoError(t, s.Comments.DeleteComment(ctx, "c1"))
	_, err = s.Comments.GetComment(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Reviews.DeleteReview(ctx, "r1"))
}
