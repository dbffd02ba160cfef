package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, description string, d domain.Durations) (*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListIncomplete(ctx context.Context) ([]*domain.Task, error)
	ListCompletedSince(ctx context.Context, since time.Time) ([]*domain.Task, error)
	// IncrementPomodoroCount credits one finished work period to the task
	// and returns the new count.
	IncrementPomodoroCount(ctx context.Context, id int64) (int, error)
	MarkCompleted(ctx context.Context, id int64) error
}

type HistoryService interface {
	// RecordFree logs a pomodoro finished in a session with no bound task.
	RecordFree(ctx context.Context, workSecs int) error
	// DailyCounts returns one entry per calendar day for the last n days,
	// oldest first, including days with no pomodoros.
	DailyCounts(ctx context.Context, days int) ([]domain.DayCount, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.PomodoroLog, error)
}
