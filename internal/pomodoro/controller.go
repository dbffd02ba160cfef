package pomodoro

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/google/uuid"
)

// Config holds the session parameters that do not come from a task.
type Config struct {
	LongBreakInterval int
	// CreditOnSkip makes skipping a work phase count as a finished pomodoro.
	CreditOnSkip bool
}

// DefaultConfig is the classic four-pomodoro set with skips never credited.
func DefaultConfig() Config {
	return Config{LongBreakInterval: 4}
}

// TaskStore is the persistence a controller needs for a bound task.
type TaskStore interface {
	IncrementPomodoroCount(ctx context.Context, id int64) (int, error)
	MarkCompleted(ctx context.Context, id int64) error
}

// FreeRecorder logs pomodoros finished in a session with no bound task.
type FreeRecorder interface {
	RecordFree(ctx context.Context, workSecs int) error
}

// PhaseChanged describes one transition as seen by the controller.
type PhaseChanged struct {
	From     domain.Phase
	To       domain.Phase
	Credited bool
	Skipped  bool
	// Persisted is true when a credit reached the task store.
	Persisted bool
	// TaskCount is the bound task's counter after this transition.
	TaskCount            int
	PomodorosThisSession int
	CompletedInSet       int
	SessionID            string
	At                   time.Time
}

// PhaseListener is called exactly once per transition, after any store
// write has completed or failed.
type PhaseListener func(ctx context.Context, ev PhaseChanged)

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	Phase                domain.Phase
	Remaining            time.Duration
	Duration             time.Duration
	ClockState           ClockState
	PomodorosThisSession int
	CompletedInSet       int
	LongBreakInterval    int
	// Unpersisted counts credits the store rejected.
	Unpersisted int
	// Task is a copy of the bound task, nil for a free session.
	Task      *domain.Task
	SessionID string
}

// Controller drives one session: a cycle, the clock for its current phase
// and an optional bound task. It is not safe for concurrent use.
type Controller struct {
	cycle     *Cycle
	clock     Clock
	durations domain.Durations
	task      *domain.Task
	store     TaskStore
	recorder  FreeRecorder
	listeners []PhaseListener
	logger    *slog.Logger
	now       func() time.Time
	sessionID string

	pomodorosThisSession int
	unpersisted          int
}

// Option configures a Controller.
type Option func(*Controller)

// WithPhaseListener registers a listener for transitions.
func WithPhaseListener(l PhaseListener) Option {
	return func(c *Controller) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

// WithFreeRecorder records credits of free sessions.
func WithFreeRecorder(r FreeRecorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the logger for transitions and store inconsistencies.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.sessionID = id
		}
	}
}

// WithNow overrides the clock used for completion timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController builds a session in the work phase with its clock running.
// Explicit overrides take precedence over the bound task's durations. A
// session with neither, or with a task but no store, is rejected.
func NewController(cfg Config, store TaskStore, task *domain.Task, overrides *domain.Durations, opts ...Option) (*Controller, error) {
	var d domain.Durations
	switch {
	case overrides != nil:
		d = *overrides
	case task != nil:
		d = task.Durations()
	default:
		return nil, fmt.Errorf("%w: session needs a task or explicit durations", domain.ErrInvalidInput)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if task != nil && store == nil {
		return nil, fmt.Errorf("%w: bound task requires a task store", domain.ErrInvalidInput)
	}

	cycle, err := NewCycle(cfg.LongBreakInterval, cfg.CreditOnSkip)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cycle:     cycle,
		durations: d,
		store:     store,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		sessionID: uuid.New().String(),
	}
	if task != nil {
		bound := *task
		c.task = &bound
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session_id", c.sessionID)
	c.clock.Start(d.For(cycle.Phase()))
	return c, nil
}

// Advance feeds elapsed time to the clock. When the phase runs out it
// performs exactly one transition and returns its event; otherwise it
// returns nil. Time past the end of a phase is not carried into the next.
// A store failure is returned alongside the event; the transition stands.
func (c *Controller) Advance(ctx context.Context, elapsed time.Duration) (*PhaseChanged, error) {
	if !c.clock.Tick(elapsed) {
		return nil, nil
	}
	return c.transition(ctx, c.cycle.Expire())
}

// Skip ends the current phase immediately.
func (c *Controller) Skip(ctx context.Context) (*PhaseChanged, error) {
	return c.transition(ctx, c.cycle.Skip())
}

func (c *Controller) Pause() { c.clock.Pause() }

func (c *Controller) Resume() { c.clock.Resume() }

// TogglePause pauses a running clock and resumes a paused one.
func (c *Controller) TogglePause() {
	if c.clock.State() == ClockPaused {
		c.clock.Resume()
		return
	}
	c.clock.Pause()
}

// CompleteTask marks the bound task completed. The session keeps running.
func (c *Controller) CompleteTask(ctx context.Context) error {
	if c.task == nil {
		return domain.ErrNoBoundTask
	}
	ctx = domain.ContextWithSessionID(ctx, c.sessionID)
	if err := c.store.MarkCompleted(ctx, c.task.ID); err != nil {
		c.logger.WarnContext(ctx, "task completion not persisted", "task_id", c.task.ID, "error", err)
		return fmt.Errorf("completing task %d: %w", c.task.ID, err)
	}
	c.task.MarkCompleted(c.now().UTC())
	return nil
}

// Snapshot returns the current display state without side effects.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Phase:                c.cycle.Phase(),
		Remaining:            c.clock.Remaining(),
		Duration:             c.clock.Duration(),
		ClockState:           c.clock.State(),
		PomodorosThisSession: c.pomodorosThisSession,
		CompletedInSet:       c.cycle.CompletedInSet(),
		LongBreakInterval:    c.cycle.Interval(),
		Unpersisted:          c.unpersisted,
		SessionID:            c.sessionID,
	}
	if c.task != nil {
		t := *c.task
		s.Task = &t
	}
	return s
}

func (c *Controller) SessionID() string { return c.sessionID }

// Durations returns the cadence this session runs with.
func (c *Controller) Durations() domain.Durations { return c.durations }

func (c *Controller) transition(ctx context.Context, t Transition) (*PhaseChanged, error) {
	ctx = domain.ContextWithSessionID(ctx, c.sessionID)
	ev := PhaseChanged{
		From:      t.From,
		To:        t.To,
		Credited:  t.Credited,
		Skipped:   t.Skipped,
		SessionID: c.sessionID,
		At:        c.now(),
	}

	var err error
	if t.Credited {
		c.pomodorosThisSession++
		err = c.persistCredit(ctx, &ev)
	}
	if c.task != nil {
		ev.TaskCount = c.task.PomosFinished
	}
	ev.PomodorosThisSession = c.pomodorosThisSession
	ev.CompletedInSet = c.cycle.CompletedInSet()

	c.clock.Start(c.durations.For(t.To))
	c.logger.DebugContext(ctx, "phase changed",
		"from", t.From, "to", t.To, "credited", t.Credited, "skipped", t.Skipped)

	for _, l := range c.listeners {
		l(ctx, ev)
	}
	return &ev, err
}

func (c *Controller) persistCredit(ctx context.Context, ev *PhaseChanged) error {
	if c.task == nil {
		if c.recorder == nil {
			return nil
		}
		if err := c.recorder.RecordFree(ctx, int(c.durations.Work/time.Second)); err != nil {
			c.logger.WarnContext(ctx, "free pomodoro not recorded", "error", err)
			return nil
		}
		ev.Persisted = true
		return nil
	}

	n, err := c.store.IncrementPomodoroCount(ctx, c.task.ID)
	if err != nil {
		c.unpersisted++
		c.logger.WarnContext(ctx, "pomodoro credit not persisted",
			"task_id", c.task.ID, "unpersisted", c.unpersisted, "error", err)
		return fmt.Errorf("crediting task %d: %w", c.task.ID, err)
	}
	c.task.PomosFinished = n
	ev.Persisted = true
	return nil
}
