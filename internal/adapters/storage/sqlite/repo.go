package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evanschultz/tasklane/internal/app"
	"github.com/evanschultz/tasklane/internal/domain"
	_ "modernc.org/sqlite"
)

// driverName defines a package constant value.
const driverName = "sqlite"

// memoryDSN keeps the board in a private database that vanishes on Close.
const memoryDSN = ":memory:"

// Repository stores board tasks in an ephemeral sqlite database.
type Repository struct {
	db *sql.DB
}

// OpenInMemory opens a private in-memory database and creates the schema.
func OpenInMemory() (*Repository, error) {
	db, err := sql.Open(driverName, memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	// every pooled connection to ":memory:" would get its own empty database.
	db.SetMaxOpenConns(1)
	repo := &Repository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the requested operation.
func (r *Repository) Close() error {
	return r.db.Close()
}

// migrate handles migrate.
func (r *Repository) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			tag TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'todo',
			position INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status_position ON tasks(status, position);`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// CreateTask creates task.
func (r *Repository) CreateTask(ctx context.Context, t domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := getTaskByID(ctx, tx, t.ID); err == nil {
		return domain.ErrInvalidID
	} else if !errors.Is(err, app.ErrNotFound) {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tasks(id, title, tag, due_date, status, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, t.Tag, t.DueDate, string(t.Status), t.Position, ts(t.CreatedAt), ts(t.UpdatedAt))
	if err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateTask updates state for the requested operation.
func (r *Repository) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, tag = ?, due_date = ?, status = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, t.Title, t.Tag, t.DueDate, string(t.Status), t.Position, ts(t.UpdatedAt), t.ID)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// GetTask returns task.
func (r *Repository) GetTask(ctx context.Context, id string) (domain.Task, error) {
	return getTaskByID(ctx, r.db, id)
}

// ListTasks lists one board list in display order.
func (r *Repository) ListTasks(ctx context.Context, status domain.Status) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, tag, due_date, status, position, created_at, updated_at
		FROM tasks
		WHERE status = ?
		ORDER BY position ASC, created_at ASC, id ASC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

// DeleteTask deletes task.
func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// getTaskByID returns one task row.
func getTaskByID(ctx context.Context, q queryRower, id string) (domain.Task, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, title, tag, due_date, status, position, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, app.ErrNotFound
	}
	return task, err
}

// scanner represents scanner data used by this package.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask decodes one tasks row.
func scanTask(s scanner) (domain.Task, error) {
	var (
		t          domain.Task
		statusRaw  string
		createdRaw string
		updatedRaw string
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Tag, &t.DueDate, &statusRaw, &t.Position, &createdRaw, &updatedRaw); err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.Status(statusRaw)
	t.CreatedAt = parseTS(createdRaw)
	t.UpdatedAt = parseTS(updatedRaw)
	return t, nil
}

// translateNoRows handles translate no rows.
func translateNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return app.ErrNotFound
	}
	return nil
}

// ts handles ts.
func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTS parses input into a normalized form.
func parseTS(v string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}
