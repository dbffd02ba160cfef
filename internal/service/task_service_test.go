package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/repository"
	"github.com/alexanderramin/pogodoro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func classic() domain.Durations {
	return domain.Durations{Work: 25 * time.Minute, ShortBreak: 5 * time.Minute, LongBreak: 15 * time.Minute}
}

func TestTaskService_Create(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database), obs)
	ctx := context.Background()

	task, err := svc.Create(ctx, "  write report  ", classic())
	require.NoError(t, err)
	assert.Positive(t, task.ID)
	assert.Equal(t, "write report", task.Description)
	assert.Equal(t, 1500, task.WorkSecs)

	fetched, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.PomosFinished)
	assert.False(t, fetched.Completed)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "create-task", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, task.ID, obs.events[0].Fields["task_id"])
}

func TestTaskService_Create_RejectsInvalidInput(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Create(ctx, "", classic())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := classic()
	bad.ShortBreak = 0
	_, err = svc.Create(ctx, "x", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tasks, err := svc.ListIncomplete(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks, "rejected input must not create rows")
}

func TestTaskService_IncrementPomodoroCount_WritesLog(t *testing.T) {
	database := testutil.NewTestDB(t)
	logs := repository.NewSQLitePomodoroLogRepo(database)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database))
	ctx := domain.ContextWithSessionID(context.Background(), "session-1")

	task, err := svc.Create(ctx, "focus", classic())
	require.NoError(t, err)

	n, err := svc.IncrementPomodoroCount(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = svc.IncrementPomodoroCount(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := logs.ListBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].TaskID)
	assert.Equal(t, task.ID, *entries[0].TaskID)
	assert.Equal(t, 1500, entries[0].WorkSecs)
}

func TestTaskService_IncrementPomodoroCount_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database))

	_, err := svc.IncrementPomodoroCount(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestTaskService_IncrementPomodoroCount_RollbackOnLogFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("")
	require.NoError(t, taskRepo.Create(ctx, task))

	failUoW := &testutil.FailingWriteUoW{
		DB:     database,
		Match:  "INSERT INTO pomodoro_log",
		FailOn: 1,
		Err:    fmt.Errorf("injected log insert failure"),
	}
	obs := &recordingObserver{}
	svc := NewTaskService(taskRepo, failUoW, obs)

	_, err := svc.IncrementPomodoroCount(ctx, task.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "injected log insert failure")

	fetched, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.PomosFinished, "counter should be unchanged after rollback")
	assert.True(t, failUoW.RolledBack)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestTaskService_MarkCompleted(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	task, err := svc.Create(ctx, "finish me", classic())
	require.NoError(t, err)
	require.NoError(t, svc.MarkCompleted(ctx, task.ID))
	require.NoError(t, svc.MarkCompleted(ctx, task.ID), "completing twice is harmless")

	open, err := svc.ListIncomplete(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)

	done, err := svc.ListCompletedSince(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, task.ID, done[0].ID)
}

func TestTaskService_MarkCompleted_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database))

	err := svc.MarkCompleted(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskService_StoreClosed_IsUnavailable(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database), testutil.NewTestUoW(database))
	require.NoError(t, database.Close())

	_, err := svc.ListIncomplete(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}
