package store

import (
	"fmt"

	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

func encodeColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}

func decodeColumn(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}

func requireKey(table string, parts ...string) error {
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("%w: %s", ErrInvalidRecord, table)
		}
	}
	return nil
}

// Novels keep their nested volumes and genre lists in one JSON column.
var novelsTable = table[models.Novel]{
	name:    "novels",
	columns: []string{"id", "title", "author", "data"},
	keys:    []string{"id"},
	values: func(n models.Novel) ([]any, error) {
		if err := requireKey("novels", n.ID); err != nil {
			return nil, err
		}
		data, err := encodeColumn(n)
		if err != nil {
			return nil, err
		}
		return []any{n.ID, n.Title, n.Author, data}, nil
	},
	scan: func(r rowScanner) (models.Novel, error) {
		var (
			n    models.Novel
			data string
		)
		if err := r.Scan(&n.ID, &n.Title, &n.Author, &data); err != nil {
			return models.Novel{}, err
		}
		id, title, author := n.ID, n.Title, n.Author
		if err := decodeColumn(data, &n); err != nil {
			return models.Novel{}, err
		}
		n.ID, n.Title, n.Author = id, title, author
		return n, nil
	},
}

var usersTable = table[models.User]{
	name:    "users",
	columns: []string{"id", "username", "email", "data"},
	keys:    []string{"id"},
	values: func(u models.User) ([]any, error) {
		if err := requireKey("users", u.ID); err != nil {
			return nil, err
		}
		data, err := encodeColumn(u)
		if err != nil {
			return nil, err
		}
		return []any{u.ID, u.Username, u.Email, data}, nil
	},
	scan: func(r rowScanner) (models.User, error) {
		var (
			u    models.User
			data string
		)
		if err := r.Scan(&u.ID, &u.Username, &u.Email, &data); err != nil {
			return models.User{}, err
		}
		id, username, email := u.ID, u.Username, u.Email
		if err := decodeColumn(data, &u); err != nil {
			return models.User{}, err
		}
		u.ID, u.Username, u.Email = id, username, email
		return u, nil
	},
}

var libraryTable = table[models.LibraryItem]{
	name:    "library",
	columns: []string{"user_id", "novel_id", "added_date", "is_favorite", "status"},
	keys:    []string{"user_id", "novel_id"},
	values: func(i models.LibraryItem) ([]any, error) {
		if err := requireKey("library", i.UserID, i.NovelID); err != nil {
			return nil, err
		}
		status := i.Status
		if !status.Valid() {
			status = models.LibraryStatusPlanToRead
		}
		return []any{i.UserID, i.NovelID, i.AddedDate, i.IsFavorite, string(status)}, nil
	},
	scan: func(r rowScanner) (models.LibraryItem, error) {
		var i models.LibraryItem
		err := r.Scan(&i.UserID, &i.NovelID, &i.AddedDate, &i.IsFavorite, &i.Status)
		return i, err
	},
}

var progressTable = table[models.ReadingProgress]{
	name:    "progress",
	columns: []string{"user_id", "novel_id", "chapter_id", "progress", "last_read", "scroll_position"},
	keys:    []string{"user_id", "novel_id"},
	values: func(p models.ReadingProgress) ([]any, error) {
		if err := requireKey("progress", p.UserID, p.NovelID); err != nil {
			return nil, err
		}
		p.ClampProgress()
		return []any{p.UserID, p.NovelID, p.ChapterID, p.Progress, p.LastRead, p.ScrollPosition}, nil
	},
	scan: func(r rowScanner) (models.ReadingProgress, error) {
		var p models.ReadingProgress
		err := r.Scan(&p.UserID, &p.NovelID, &p.ChapterID, &p.Progress, &p.LastRead, &p.ScrollPosition)
		return p, err
	},
}

var commentsTable = table[models.Comment]{
	name:    "comments",
	columns: []string{"id", "novel_id", "chapter_id", "user_id", "parent_id", "content", "likes", "created_at"},
	keys:    []string{"id"},
	values: func(c models.Comment) ([]any, error) {
		if err := requireKey("comments", c.ID); err != nil {
			return nil, err
		}
		return []any{c.ID, c.NovelID, c.ChapterID, c.UserID, c.ParentID, c.Content, c.Likes, c.CreatedAt}, nil
	},
	scan: func(r rowScanner) (models.Comment, error) {
		var c models.Comment
		err := r.Scan(&c.ID, &c.NovelID, &c.ChapterID, &c.UserID, &c.ParentID, &c.Content, &c.Likes, &c.CreatedAt)
		return c, err
	},
}

var reviewsTable = table[models.Review]{
	name:    "reviews",
	columns: []string{"id", "novel_id", "user_id", "rating", "content", "created_at"},
	keys:    []string{"id"},
	values: func(rv models.Review) ([]any, error) {
		if err := requireKey("reviews", rv.ID); err != nil {
			return nil, err
		}
		return []any{rv.ID, rv.NovelID, rv.UserID, rv.Rating, rv.Content, rv.CreatedAt}, nil
	},
	scan: func(r rowScanner) (models.Review, error) {
		var rv models.Review
		err := r.Scan(&rv.ID, &rv.NovelID, &rv.UserID, &rv.Rating, &rv.Content, &rv.CreatedAt)
		return rv, err
	},
}
