package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/repository"
)

type historyService struct {
	logs     repository.PomodoroLogRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewHistoryService(logs repository.PomodoroLogRepo, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		logs:     logs,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *historyService) RecordFree(ctx context.Context, workSecs int) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "record-free-pomodoro", startedAt, nil, &err) }()

	if workSecs <= 0 {
		err = domain.ErrInvalidInput
		return err
	}
	err = s.logs.Create(ctx, &domain.PomodoroLog{
		SessionID:  domain.SessionIDFromContext(ctx),
		WorkSecs:   workSecs,
		FinishedAt: s.now().UTC(),
	})
	return storeErr("recording pomodoro", err)
}

func (s *historyService) DailyCounts(ctx context.Context, days int) ([]domain.DayCount, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := today.AddDate(0, 0, -(days - 1))

	counts, err := s.logs.CountByDay(ctx, since)
	if err != nil {
		return nil, storeErr("counting pomodoros", err)
	}
	byDay := make(map[string]int, len(counts))
	for _, c := range counts {
		byDay[c.Day.Format(time.DateOnly)] = c.Count
	}

	out := make([]domain.DayCount, 0, days)
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		out = append(out, domain.DayCount{Day: d, Count: byDay[d.Format(time.DateOnly)]})
	}
	return out, nil
}

func (s *historyService) ListBySession(ctx context.Context, sessionID string) ([]*domain.PomodoroLog, error) {
	logs, err := s.logs.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, storeErr("listing pomodoro log", err)
	}
	return logs, nil
}
