package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// insertChunkSize bounds the number of rows in one multi-row INSERT so a
// statement stays well below the SQLite variable limit.
const insertChunkSize = 100

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type rowScanner interface {
	Scan(dest ...any) error
}

// table maps one entity type onto one SQL table. keys is the primary key,
// values renders an entity in column order and scan reads it back.
type table[T any] struct {
	name    string
	columns []string
	keys    []string
	values  func(T) ([]any, error)
	scan    func(rowScanner) (T, error)
}

func (t table[T]) upsertSuffix() string {
	updates := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if slices.Contains(t.keys, c) {
			continue
		}
		updates = append(updates, c+" = excluded."+c)
	}
	return "ON CONFLICT (" + strings.Join(t.keys, ", ") + ") DO UPDATE SET " + strings.Join(updates, ", ")
}

// upsert writes items in chunks. A row whose key already exists is replaced.
func (t table[T]) upsert(ctx context.Context, q queryer, items []T) error {
	for start := 0; start < len(items); start += insertChunkSize {
		end := min(start+insertChunkSize, len(items))

		builder := sqlBuilder.Insert(t.name).Columns(t.columns...)
		for _, item := range items[start:end] {
			vals, err := t.values(item)
			if err != nil {
				return err
			}
			builder = builder.Values(vals...)
		}

		query, args, err := builder.Suffix(t.upsertSuffix()).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrExecutingStatement, t.name, err)
		}
	}
	return nil
}

// list returns every row matching where (all rows when where is nil),
// ordered by primary key.
func (t table[T]) list(ctx context.Context, q queryer, where sq.Sqlizer) ([]T, error) {
	builder := sqlBuilder.Select(t.columns...).From(t.name).OrderBy(t.keys...)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExecutingQuery, t.name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, scanErr := t.scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrScanningRow, t.name, scanErr)
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScanningRows, t.name, rowsErr)
	}

	return items, nil
}

func (t table[T]) get(ctx context.Context, q queryer, key sq.Eq) (T, error) {
	var zero T

	query, args, err := sqlBuilder.Select(t.columns...).From(t.name).Where(key).Limit(1).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := t.scan(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrScanningRow, t.name, err)
	}
	return item, nil
}

// remove deletes the rows matching where (all rows when where is nil) and
// returns how many were deleted.
func (t table[T]) remove(ctx context.Context, q queryer, where sq.Sqlizer) (int64, error) {
	builder := sqlBuilder.Delete(t.name)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecutingStatement, t.name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecutingStatement, t.name, err)
	}
	return n, nil
}
