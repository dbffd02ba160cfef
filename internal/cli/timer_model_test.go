package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/pomodoro"
	"github.com/alexanderramin/pogodoro/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionStart = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTimerDriver(t *testing.T, app *App, task *domain.Task, overrides *domain.Durations) (*teatest.Driver, *pomodoro.Controller) {
	t.Helper()
	ctrl, err := newController(app, task, overrides)
	require.NoError(t, err)
	d := teatest.New(t, newTimerModel(context.Background(), ctrl, time.Second, sessionStart), teatest.WithSize(80, 24))
	d.DrainInit()
	return d, ctrl
}

func TestTimerModel_InitialView(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Write tests")

	d, _ := newTimerDriver(t, app, task, nil)

	d.AssertContains("POGODORO", "Write tests", "WORK", "01:00", "until long break", "p pause/resume")
	assert.Equal(t, 1, d.Dropped, "the refresh tick is left to the test")
}

func TestTimerModel_TicksAdvanceAndCredit(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Write tests")
	d, ctrl := newTimerDriver(t, app, task, nil)

	t0 := sessionStart
	d.Send(tickMsg(t0.Add(20 * time.Second)))
	d.AssertContains("00:40")

	d.Send(tickMsg(t0.Add(60 * time.Second)))
	d.AssertContains("SHORT BREAK", "00:30", "pomodoro 1 done", "task total: 1")

	assert.Equal(t, domain.PhaseShortBreak, ctrl.Snapshot().Phase)
	got, err := app.Tasks.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PomosFinished)
}

func TestTimerModel_FirstTickCountsFromStart(t *testing.T) {
	app := testApp(t)
	dur := domain.DurationsFromSeconds(60, 30, 90)
	d, ctrl := newTimerDriver(t, app, nil, &dur)

	d.Send(tickMsg(sessionStart.Add(time.Second)))
	assert.Equal(t, 59*time.Second, ctrl.Snapshot().Remaining)
	d.AssertContains("00:59")

	d.Send(tickMsg(sessionStart.Add(60 * time.Second)))
	snap := ctrl.Snapshot()
	assert.Equal(t, domain.PhaseShortBreak, snap.Phase)
	assert.Equal(t, 1, snap.PomodorosThisSession)
}

func TestTimerModel_PauseFreezesCountdown(t *testing.T) {
	app := testApp(t)
	dur := domain.DurationsFromSeconds(60, 30, 90)
	d, ctrl := newTimerDriver(t, app, nil, &dur)

	t0 := sessionStart
	d.PressKey('p')
	d.AssertContains("paused")

	d.Send(tickMsg(t0.Add(45 * time.Second)))
	assert.Equal(t, 60*time.Second, ctrl.Snapshot().Remaining)

	d.PressKey('p')
	d.Send(tickMsg(t0.Add(50 * time.Second)))
	assert.Equal(t, 55*time.Second, ctrl.Snapshot().Remaining)
}

func TestTimerModel_SkipDoesNotCredit(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Skippy")
	d, ctrl := newTimerDriver(t, app, task, nil)

	d.PressKey('n')

	snap := ctrl.Snapshot()
	assert.Equal(t, domain.PhaseShortBreak, snap.Phase)
	assert.Zero(t, snap.PomodorosThisSession)
	d.AssertContains("Work over")

	got, err := app.Tasks.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Zero(t, got.PomosFinished)
}

func TestTimerModel_CompleteTask(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Finish me")
	d, _ := newTimerDriver(t, app, task, nil)

	d.PressKey('c')
	d.AssertContains("task completed")

	got, err := app.Tasks.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestTimerModel_CompleteWithoutTask(t *testing.T) {
	app := testApp(t)
	dur := domain.DurationsFromSeconds(60, 30, 90)
	d, _ := newTimerDriver(t, app, nil, &dur)

	d.PressKey('c')
	d.AssertContains("no task bound")
}

func TestTimerModel_HelpToggle(t *testing.T) {
	app := testApp(t)
	dur := domain.DurationsFromSeconds(60, 30, 90)
	d, _ := newTimerDriver(t, app, nil, &dur)

	assert.NotContains(t, d.PlainView(), "complete task")
	d.PressKey('?')
	d.AssertContains("complete task", "next phase")
}

func TestTimerModel_Quit(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			app := testApp(t)
			dur := domain.DurationsFromSeconds(60, 30, 90)
			d, _ := newTimerDriver(t, app, nil, &dur)

			d.Send(k)
			assert.True(t, d.Quitting)
			assert.Empty(t, d.View())
		})
	}
}
