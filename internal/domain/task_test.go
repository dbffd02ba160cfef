package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func pomodoroDurations() Durations {
	return DurationsFromSeconds(1500, 300, 900)
}

func TestNewTask_ZeroedCounters(t *testing.T) {
	task, err := NewTask("Draft proposal", pomodoroDurations(), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Draft proposal", task.Description)
	assert.Equal(t, 1500, task.WorkSecs)
	assert.Equal(t, 300, task.ShortBreakSecs)
	assert.Equal(t, 900, task.LongBreakSecs)
	assert.Zero(t, task.PomosFinished)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.True(t, task.IsNew())
	assert.Equal(t, pomodoroDurations(), task.Durations())
}

func TestNewTask_TrimsDescription(t *testing.T) {
	task, err := NewTask("  Read chapter 3 \n", pomodoroDurations(), testNow)
	require.NoError(t, err)
	assert.Equal(t, "Read chapter 3", task.Description)
}

func TestNewTask_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		desc string
		d    Durations
	}{
		{"empty description", "", pomodoroDurations()},
		{"blank description", "   ", pomodoroDurations()},
		{"zero work", "x", DurationsFromSeconds(0, 300, 900)},
		{"negative short", "x", DurationsFromSeconds(1500, -1, 900)},
		{"zero long", "x", DurationsFromSeconds(1500, 300, 0)},
		{"sub-second work", "x", Durations{Work: time.Millisecond, ShortBreak: time.Minute, LongBreak: time.Minute}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask(tc.desc, tc.d, testNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDurations_For(t *testing.T) {
	d := pomodoroDurations()
	assert.Equal(t, 25*time.Minute, d.For(PhaseWork))
	assert.Equal(t, 5*time.Minute, d.For(PhaseShortBreak))
	assert.Equal(t, 15*time.Minute, d.For(PhaseLongBreak))
}

func TestTask_MarkCompletedKeepsFirstTimestamp(t *testing.T) {
	task, err := NewTask("x", pomodoroDurations(), testNow)
	require.NoError(t, err)

	task.MarkCompleted(testNow)
	task.MarkCompleted(testNow.Add(time.Hour))

	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, testNow, *task.CompletedAt)
}

func TestPhase_Labels(t *testing.T) {
	assert.Equal(t, "Work", PhaseWork.Label())
	assert.Equal(t, "Short Break", PhaseShortBreak.Label())
	assert.Equal(t, "Long Break", PhaseLongBreak.Label())
	assert.False(t, PhaseWork.IsBreak())
	assert.True(t, PhaseShortBreak.IsBreak())
	assert.True(t, PhaseLongBreak.IsBreak())
}

func TestErrNoBoundTask_IsInvalidInput(t *testing.T) {
	assert.ErrorIs(t, ErrNoBoundTask, ErrInvalidInput)
}

func TestSessionIDContext(t *testing.T) {
	assert.Empty(t, SessionIDFromContext(context.Background()))

	ctx := ContextWithSessionID(context.Background(), "abc")
	assert.Equal(t, "abc", SessionIDFromContext(ctx))
}
