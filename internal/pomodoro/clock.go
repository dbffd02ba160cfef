package pomodoro

import "time"

// ClockState is the run state of a Clock.
type ClockState int

const (
	ClockRunning ClockState = iota
	ClockPaused
	ClockExpired
)

func (s ClockState) String() string {
	switch s {
	case ClockRunning:
		return "running"
	case ClockPaused:
		return "paused"
	case ClockExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Clock is a countdown driven by explicit ticks. It never reads wall time;
// callers feed it elapsed durations. Once expired it stays expired until
// the next Start.
type Clock struct {
	duration  time.Duration
	remaining time.Duration
	state     ClockState
}

// Start arms the clock with d and sets it running. A non-positive d
// expires immediately.
func (c *Clock) Start(d time.Duration) {
	c.duration = d
	c.remaining = d
	c.state = ClockRunning
	if d <= 0 {
		c.remaining = 0
		c.state = ClockExpired
	}
}

// Pause freezes the countdown. No-op unless running.
func (c *Clock) Pause() {
	if c.state == ClockRunning {
		c.state = ClockPaused
	}
}

// Resume continues a paused countdown. No-op unless paused.
func (c *Clock) Resume() {
	if c.state == ClockPaused {
		c.state = ClockRunning
	}
}

// Tick subtracts elapsed from the remaining time while running and reports
// whether the clock is expired afterwards. Negative elapsed is ignored.
func (c *Clock) Tick(elapsed time.Duration) bool {
	if c.state != ClockRunning || elapsed <= 0 {
		return c.state == ClockExpired
	}
	c.remaining -= elapsed
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = ClockExpired
	}
	return c.state == ClockExpired
}

func (c *Clock) Remaining() time.Duration { return c.remaining }

func (c *Clock) Duration() time.Duration { return c.duration }

// Elapsed is how much of the current countdown has run.
func (c *Clock) Elapsed() time.Duration { return c.duration - c.remaining }

func (c *Clock) State() ClockState { return c.state }

func (c *Clock) IsExpired() bool { return c.state == ClockExpired }
