package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_StartRunsFromDuration(t *testing.T) {
	var c Clock
	c.Start(10 * time.Second)

	assert.Equal(t, ClockRunning, c.State())
	assert.Equal(t, 10*time.Second, c.Remaining())
	assert.Equal(t, time.Duration(0), c.Elapsed())
	assert.False(t, c.IsExpired())
}

func TestClock_TickCountsDown(t *testing.T) {
	var c Clock
	c.Start(10 * time.Second)

	assert.False(t, c.Tick(3*time.Second))
	assert.Equal(t, 7*time.Second, c.Remaining())
	assert.Equal(t, 3*time.Second, c.Elapsed())
}

func TestClock_TickExpiresAndClamps(t *testing.T) {
	var c Clock
	c.Start(10 * time.Second)

	assert.True(t, c.Tick(15*time.Second))
	assert.Equal(t, ClockExpired, c.State())
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestClock_TickExactlyToZeroExpires(t *testing.T) {
	var c Clock
	c.Start(10 * time.Second)

	assert.True(t, c.Tick(10*time.Second))
}

func TestClock_PauseFreezes(t *testing.T) {
	var c Clock
	c.Start(10 * time.Second)
	c.Tick(2 * time.Second)
	c.Pause()

	assert.False(t, c.Tick(time.Minute))
	assert.Equal(t, ClockPaused, c.State())
	assert.Equal(t, 8*time.Second, c.Remaining())

	c.Pause()
	assert.Equal(t, ClockPaused, c.State(), "pausing twice is a no-op")

	c.Resume()
	assert.Equal(t, ClockRunning, c.State())
	c.Tick(3 * time.Second)
	assert.Equal(t, 5*time.Second, c.Remaining())

	c.Resume()
	assert.Equal(t, ClockRunning, c.State(), "resuming a running clock is a no-op")
}

func TestClock_ExpiredIsTerminal(t *testing.T) {
	var c Clock
	c.Start(time.Second)
	c.Tick(time.Second)

	c.Pause()
	assert.Equal(t, ClockExpired, c.State())
	c.Resume()
	assert.Equal(t, ClockExpired, c.State())
	assert.True(t, c.Tick(time.Second))
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestClock_IgnoresNonPositiveElapsed(t *testing.T) {
	var c Clock
	c.Start(10 * time.Second)

	c.Tick(0)
	c.Tick(-5 * time.Second)
	assert.Equal(t, 10*time.Second, c.Remaining())
}

func TestClock_StartNonPositiveExpires(t *testing.T) {
	var c Clock
	c.Start(0)

	assert.True(t, c.IsExpired())
}

func TestClockState_String(t *testing.T) {
	assert.Equal(t, "running", ClockRunning.String())
	assert.Equal(t, "paused", ClockPaused.String())
	assert.Equal(t, "expired", ClockExpired.String())
	assert.Equal(t, "unknown", ClockState(9).String())
}
