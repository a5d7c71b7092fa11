package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestStorages opens a migrated SQLite database in a temp dir.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(testContext(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "data", "reader.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{DB: db, logger: logger.Nop()}
}

func sampleSnapshot() models.DatabaseSnapshot {
	return models.DatabaseSnapshot{
		Novels: []models.Novel{
			{ID: "n1", Title: "First", Author: "A", Genres: []string{"fantasy"}, Rating: 4.5,
				Volumes: []models.Volume{{ID: "v1", Title: "Vol 1", Number: 1, Chapters: []models.Chapter{{ID: "c1", Title: "Ch 1", Number: 1}}}}},
			{ID: "n2", Title: "Second", Author: "B"},
		},
		Users: []models.User{
			{ID: "u1", Username: "alice", Role: models.RoleUser, AvatarFrame: &models.AvatarFrame{Enabled: true, Color: "#fff"}},
			{ID: "u2", Username: "bob"},
		},
		Library: []models.LibraryItem{
			{UserID: "u1", NovelID: "n1", AddedDate: "2026-01-01T00:00:00Z", IsFavorite: true, Status: models.LibraryStatusReading},
			{UserID: "u2", NovelID: "n2", AddedDate: "2026-01-02T00:00:00Z", Status: models.LibraryStatusCompleted},
		},
		Progress: []models.ReadingProgress{
			{UserID: "u1", NovelID: "n1", ChapterID: "c1", Progress: 42.5, LastRead: "2026-01-03T00:00:00Z", ScrollPosition: 120},
		},
		Comments: []models.Comment{
			{ID: "cm1", NovelID: "n1", UserID: "u1", Content: "great", Likes: 3, CreatedAt: "2026-01-04T00:00:00Z"},
		},
		Reviews: []models.Review{
			{ID: "r1", NovelID: "n1", UserID: "u2", Rating: 5, Content: "loved it", CreatedAt: "2026-01-05T00:00:00Z"},
		},
	}
}
