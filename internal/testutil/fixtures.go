package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/google/uuid"
)

var testTaskCounter atomic.Int64

// Task options
type TaskOption func(*domain.Task)

func WithDurations(workSecs, shortBreakSecs, longBreakSecs int) TaskOption {
	return func(t *domain.Task) {
		t.WorkSecs = workSecs
		t.ShortBreakSecs = shortBreakSecs
		t.LongBreakSecs = longBreakSecs
	}
}

func WithPomosFinished(n int) TaskOption {
	return func(t *domain.Task) {
		t.PomosFinished = n
	}
}

func WithCompletedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
		t.CompletedAt = &at
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
	}
}

// NewTestTask returns an unsaved task with the classic 25/5/15 cadence.
// An empty description gets a unique generated one.
func NewTestTask(description string, opts ...TaskOption) *domain.Task {
	if description == "" {
		description = fmt.Sprintf("task %d", testTaskCounter.Add(1))
	}
	t := &domain.Task{
		Description:    description,
		WorkSecs:       25 * 60,
		ShortBreakSecs: 5 * 60,
		LongBreakSecs:  15 * 60,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// InsertTask writes a task row directly, including counter and completion
// columns that the repository's Create always zeroes.
func InsertTask(t *testing.T, database *sql.DB, task *domain.Task) *domain.Task {
	t.Helper()
	var completedAt any
	if task.CompletedAt != nil {
		completedAt = task.CompletedAt.UTC().Format(time.RFC3339)
	}
	completed := 0
	if task.Completed {
		completed = 1
	}
	res, err := database.ExecContext(context.Background(),
		`INSERT INTO tasks ("desc", work_secs, short_break_secs, long_break_secs, pomos_finished, completed, completed_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Description, task.WorkSecs, task.ShortBreakSecs, task.LongBreakSecs,
		task.PomosFinished, completed, completedAt, task.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("inserting test task: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("reading test task id: %v", err)
	}
	task.ID = id
	return task
}

// NewSessionID returns a random session id for log fixtures.
func NewSessionID() string {
	return uuid.New().String()
}
