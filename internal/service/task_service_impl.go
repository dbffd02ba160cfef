package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pogodoro/internal/db"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *taskService) Create(ctx context.Context, description string, d domain.Durations) (task *domain.Task, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "create-task", startedAt, fields, &err) }()

	task, err = domain.NewTask(description, d, s.now().UTC().Truncate(time.Second))
	if err != nil {
		return nil, err
	}
	if err = s.tasks.Create(ctx, task); err != nil {
		err = storeErr("creating task", err)
		return nil, err
	}
	fields["task_id"] = task.ID
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("getting task", err)
	}
	return task, nil
}

func (s *taskService) ListIncomplete(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListIncomplete(ctx)
	if err != nil {
		return nil, storeErr("listing tasks", err)
	}
	return tasks, nil
}

func (s *taskService) ListCompletedSince(ctx context.Context, since time.Time) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListCompletedSince(ctx, since)
	if err != nil {
		return nil, storeErr("listing completed tasks", err)
	}
	return tasks, nil
}

// IncrementPomodoroCount bumps the task's counter and appends a history
// row in one transaction. The row carries the session id found in ctx.
func (s *taskService) IncrementPomodoroCount(ctx context.Context, id int64) (count int, err error) {
	startedAt := time.Now()
	fields := map[string]any{"task_id": id}
	defer func() { observe(ctx, s.observer, "increment-pomodoros", startedAt, fields, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txLogs := repository.NewSQLitePomodoroLogRepo(tx)

		n, err := txTasks.IncrementPomodoros(ctx, id)
		if err != nil {
			return err
		}
		task, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		taskID := id
		if err := txLogs.Create(ctx, &domain.PomodoroLog{
			TaskID:     &taskID,
			SessionID:  domain.SessionIDFromContext(ctx),
			WorkSecs:   task.WorkSecs,
			FinishedAt: s.now().UTC(),
		}); err != nil {
			return err
		}
		count = n
		return nil
	})
	if err != nil {
		err = storeErr("incrementing pomodoros", err)
		return 0, err
	}
	fields["count"] = count
	return count, nil
}

func (s *taskService) MarkCompleted(ctx context.Context, id int64) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"task_id": id}
	defer func() { observe(ctx, s.observer, "complete-task", startedAt, fields, &err) }()

	if err = s.tasks.MarkCompleted(ctx, id, s.now().UTC()); err != nil {
		err = storeErr("completing task", err)
		return err
	}
	return nil
}
