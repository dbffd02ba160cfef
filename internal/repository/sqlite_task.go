package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pogodoro/internal/db"
	"github.com/alexanderramin/pogodoro/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, "desc", work_secs, short_break_secs, long_break_secs,
	pomos_finished, completed, completed_at, created_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks ("desc", work_secs, short_break_secs, long_break_secs, pomos_finished, completed, created_at)
		VALUES (?, ?, ?, ?, 0, 0, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.Description,
		t.WorkSecs,
		t.ShortBreakSecs,
		t.LongBreakSecs,
		t.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	t.ID = id
	t.PomosFinished = 0
	t.Completed = false
	t.CompletedAt = nil
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) ListIncomplete(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE completed = 0 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing incomplete tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListCompletedSince(ctx context.Context, since time.Time) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE completed = 1 AND completed_at >= ?
		ORDER BY completed_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("listing completed tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// IncrementPomodoros bumps the finished counter in a single statement and
// returns the new value, so concurrent callers can never lose an update.
func (r *SQLiteTaskRepo) IncrementPomodoros(ctx context.Context, id int64) (int, error) {
	query := `UPDATE tasks SET pomos_finished = pomos_finished + 1 WHERE id = ? RETURNING pomos_finished`
	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("incrementing pomodoros: %w", err)
	}
	return count, nil
}

// MarkCompleted sets completed = 1. The first completion time is kept, so
// repeated calls are harmless.
func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE tasks SET completed = 1, completed_at = COALESCE(completed_at, ?) WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, at.UTC().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing task rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete physically removes a task. Normal operation never calls it; it
// exists for maintenance and for exercising out-of-band deletion.
func (r *SQLiteTaskRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	t, err := scanTaskFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTaskFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTaskFrom(s rowScanner) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var completedAt sql.NullString
	var createdAt string
	err := s.Scan(
		&t.ID, &t.Description, &t.WorkSecs, &t.ShortBreakSecs, &t.LongBreakSecs,
		&t.PomosFinished, &completed, &completedAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	t.Completed = intToBool(completed)
	t.CompletedAt = parseNullableTime(completedAt)
	if createdAt != "" {
		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		t.CreatedAt = parsed
	}
	return &t, nil
}
