package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"english_coaching/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CrudRepository is a generic repository for owned resources. Every
// resource table shares the shape (id, <data columns...>, user_id,
// created, updated); a concrete repository supplies the table name, the
// data columns, and accessors for the entity's values and metadata.
type CrudRepository[T any] struct {
	db    PgxIface
	table string
	vals  func(*T) []any
	meta  func(*T) *model.ResourceMeta

	selectSQL string
	insertSQL string
	updateSQL string
}

// NewCrudRepository creates a repository for one resource table. cols are
// the mutable data columns in the order vals returns them.
func NewCrudRepository[T any](
	db PgxIface,
	table string,
	cols []string,
	vals func(*T) []any,
	meta func(*T) *model.ResourceMeta,
) *CrudRepository[T] {
	all := append(append([]string{"id"}, cols...), "user_id", "created", "updated")

	placeholders := make([]string, len(all))
	for i := range all {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}

	return &CrudRepository[T]{
		db:    db,
		table: table,
		vals:  vals,
		meta:  meta,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s",
			strings.Join(all, ", "), table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(all, ", "), strings.Join(placeholders, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s, updated = NOW() WHERE id = $%d RETURNING updated",
			table, strings.Join(sets, ", "), len(cols)+1),
	}
}

// Create inserts a new resource row.
func (r *CrudRepository[T]) Create(ctx context.Context, e *T) error {
	m := r.meta(e)
	args := append([]any{m.ID}, r.vals(e)...)
	args = append(args, m.UserID, m.CreatedAt, m.UpdatedAt)
	if _, err := r.db.Exec(ctx, r.insertSQL, args...); err != nil {
		return fmt.Errorf("failed to create %s row: %w", r.table, err)
	}
	return nil
}

// FindByID retrieves one resource. Returns (nil, nil) when absent.
func (r *CrudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	e := new(T)
	sql := r.selectSQL + " WHERE id = $1"
	if err := pgxscan.Get(ctx, r.db, e, sql, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s row: %w", r.table, err)
	}
	return e, nil
}

// FindAll lists every resource row, newest first. Admin-scope queries
// only; regular callers go through FindByOwner.
func (r *CrudRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var items []T
	sql := r.selectSQL + " ORDER BY created DESC"
	if err := pgxscan.Select(ctx, r.db, &items, sql); err != nil {
		return nil, fmt.Errorf("failed to list %s rows: %w", r.table, err)
	}
	return items, nil
}

// FindByOwner lists the rows owned by one user, newest first.
func (r *CrudRepository[T]) FindByOwner(ctx context.Context, owner uuid.UUID) ([]T, error) {
	var items []T
	sql := r.selectSQL + " WHERE user_id = $1 ORDER BY created DESC"
	if err := pgxscan.Select(ctx, r.db, &items, sql, owner); err != nil {
		return nil, fmt.Errorf("failed to list %s rows by owner: %w", r.table, err)
	}
	return items, nil
}

// Update writes the entity's data columns back and bumps the updated
// timestamp, reflecting the new value onto the entity.
func (r *CrudRepository[T]) Update(ctx context.Context, e *T) error {
	m := r.meta(e)
	args := append(r.vals(e), m.ID)
	if err := r.db.QueryRow(ctx, r.updateSQL, args...).Scan(&m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update %s row: %w", r.table, err)
	}
	return nil
}

// Delete removes a resource row.
func (r *CrudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s row: %w", r.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NewNoteRepository creates the repository for notes.
func NewNoteRepository(db PgxIface) *CrudRepository[model.Note] {
	return NewCrudRepository(db, "notes",
		[]string{"title", "content"},
		func(n *model.Note) []any { return []any{n.Title, n.Content} },
		func(n *model.Note) *model.ResourceMeta { return &n.ResourceMeta })
}

// NewWordRepository creates the repository for vocabulary entries.
func NewWordRepository(db PgxIface) *CrudRepository[model.Word] {
	return NewCrudRepository(db, "words",
		[]string{"term", "translation", "example"},
		func(w *model.Word) []any { return []any{w.Term, w.Translation, w.Example} },
		func(w *model.Word) *model.ResourceMeta { return &w.ResourceMeta })
}

// NewSentenceRepository creates the repository for practice sentences.
func NewSentenceRepository(db PgxIface) *CrudRepository[model.Sentence] {
	return NewCrudRepository(db, "sentences",
		[]string{"text", "translation"},
		func(s *model.Sentence) []any { return []any{s.Text, s.Translation} },
		func(s *model.Sentence) *model.ResourceMeta { return &s.ResourceMeta })
}

// NewLessonRepository creates the repository for lessons.
func NewLessonRepository(db PgxIface) *CrudRepository[model.Lesson] {
	return NewCrudRepository(db, "lessons",
		[]string{"title", "description", "scheduled_at"},
		func(l *model.Lesson) []any { return []any{l.Title, l.Description, l.ScheduledAt} },
		func(l *model.Lesson) *model.ResourceMeta { return &l.ResourceMeta })
}
