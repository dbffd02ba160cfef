package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pogodoro/internal/db"
	"github.com/alexanderramin/pogodoro/internal/domain"
)

// SQLitePomodoroLogRepo implements PomodoroLogRepo using a SQLite database.
type SQLitePomodoroLogRepo struct {
	db db.DBTX
}

// NewSQLitePomodoroLogRepo creates a new SQLitePomodoroLogRepo.
func NewSQLitePomodoroLogRepo(conn db.DBTX) *SQLitePomodoroLogRepo {
	return &SQLitePomodoroLogRepo{db: conn}
}

func (r *SQLitePomodoroLogRepo) Create(ctx context.Context, l *domain.PomodoroLog) error {
	query := `INSERT INTO pomodoro_log (task_id, session_id, work_secs, finished_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64(l.TaskID),
		l.SessionID,
		l.WorkSecs,
		l.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting pomodoro log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading pomodoro log id: %w", err)
	}
	l.ID = id
	return nil
}

func (r *SQLitePomodoroLogRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.PomodoroLog, error) {
	query := `SELECT id, task_id, session_id, work_secs, finished_at
		FROM pomodoro_log WHERE session_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing pomodoro log: %w", err)
	}
	defer rows.Close()

	var logs []*domain.PomodoroLog
	for rows.Next() {
		var l domain.PomodoroLog
		var taskID sql.NullInt64
		var finishedAt string
		if err := rows.Scan(&l.ID, &taskID, &l.SessionID, &l.WorkSecs, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning pomodoro log row: %w", err)
		}
		if taskID.Valid {
			id := taskID.Int64
			l.TaskID = &id
		}
		parsed, err := time.Parse(timeLayout, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		l.FinishedAt = parsed
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pomodoro log: %w", err)
	}
	return logs, nil
}

// CountByDay groups credited pomodoros by the local calendar day of
// finished_at, oldest first. Days without pomodoros are omitted.
func (r *SQLitePomodoroLogRepo) CountByDay(ctx context.Context, since time.Time) ([]domain.DayCount, error) {
	query := `SELECT finished_at FROM pomodoro_log WHERE finished_at >= ? ORDER BY finished_at`
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("counting pomodoros: %w", err)
	}
	defer rows.Close()

	var counts []domain.DayCount
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning finished_at: %w", err)
		}
		finished, err := time.Parse(timeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		local := finished.In(since.Location())
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
		if n := len(counts); n > 0 && counts[n-1].Day.Equal(day) {
			counts[n-1].Count++
			continue
		}
		counts = append(counts, domain.DayCount{Day: day, Count: 1})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pomodoro log: %w", err)
	}
	return counts, nil
}
