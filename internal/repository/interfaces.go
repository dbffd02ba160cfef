package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListIncomplete(ctx context.Context) ([]*domain.Task, error)
	ListCompletedSince(ctx context.Context, since time.Time) ([]*domain.Task, error)
	IncrementPomodoros(ctx context.Context, id int64) (int, error)
	MarkCompleted(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

type PomodoroLogRepo interface {
	Create(ctx context.Context, l *domain.PomodoroLog) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.PomodoroLog, error)
	CountByDay(ctx context.Context, since time.Time) ([]domain.DayCount, error)
}
