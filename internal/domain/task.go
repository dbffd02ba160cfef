package domain

import (
	"strings"
	"time"
)

// Durations is the cadence of a session: how long each phase lasts.
type Durations struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DurationsFromSeconds builds Durations from whole seconds.
func DurationsFromSeconds(work, shortBreak, longBreak int) Durations {
	return Durations{
		Work:       time.Duration(work) * time.Second,
		ShortBreak: time.Duration(shortBreak) * time.Second,
		LongBreak:  time.Duration(longBreak) * time.Second,
	}
}

// Validate rejects any non-positive phase length.
func (d Durations) Validate() error {
	if d.Work <= 0 {
		return invalidf("work duration must be positive, got %s", d.Work)
	}
	if d.ShortBreak <= 0 {
		return invalidf("short break duration must be positive, got %s", d.ShortBreak)
	}
	if d.LongBreak <= 0 {
		return invalidf("long break duration must be positive, got %s", d.LongBreak)
	}
	return nil
}

// For returns the length of the given phase.
func (d Durations) For(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return d.ShortBreak
	case PhaseLongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

// Task is a unit of work a session can be bound to. Description and
// durations never change after creation.
type Task struct {
	ID             int64
	Description    string
	WorkSecs       int
	ShortBreakSecs int
	LongBreakSecs  int
	PomosFinished  int
	Completed      bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// NewTask validates the inputs and returns an unsaved task with zeroed
// counters. Durations are truncated to whole seconds.
func NewTask(description string, d Durations, now time.Time) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalidf("description must not be empty")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	t := &Task{
		Description:    description,
		WorkSecs:       int(d.Work / time.Second),
		ShortBreakSecs: int(d.ShortBreak / time.Second),
		LongBreakSecs:  int(d.LongBreak / time.Second),
		CreatedAt:      now,
	}
	// Sub-second durations would round down to zero.
	if t.WorkSecs <= 0 || t.ShortBreakSecs <= 0 || t.LongBreakSecs <= 0 {
		return nil, invalidf("durations must be at least one second")
	}
	return t, nil
}

// Durations returns the task's cadence.
func (t *Task) Durations() Durations {
	return DurationsFromSeconds(t.WorkSecs, t.ShortBreakSecs, t.LongBreakSecs)
}

// IsNew reports whether no pomodoro has been finished on the task yet.
func (t *Task) IsNew() bool {
	return t.PomosFinished == 0
}

// MarkCompleted flags the task as done. Completing an already completed
// task keeps the original completion time.
func (t *Task) MarkCompleted(now time.Time) {
	t.Completed = true
	if t.CompletedAt == nil {
		t.CompletedAt = &now
	}
}
