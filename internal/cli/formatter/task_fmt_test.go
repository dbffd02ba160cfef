package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/pomodoro"
	"github.com/stretchr/testify/assert"
)

func sampleTasks() []*domain.Task {
	return []*domain.Task{
		{ID: 1, Description: "Draft proposal", WorkSecs: 1500, ShortBreakSecs: 300, LongBreakSecs: 900},
		{ID: 2, Description: "Review PR", WorkSecs: 90, ShortBreakSecs: 60, LongBreakSecs: 120, PomosFinished: 3},
	}
}

func TestFormatTaskList_Groups(t *testing.T) {
	out := StripANSI(FormatTaskList(sampleTasks()))

	assert.Contains(t, out, "NEW")
	assert.Contains(t, out, "IN PROGRESS")
	assert.Contains(t, out, "Draft proposal")
	assert.Contains(t, out, "1m30s")
	assert.Less(t, indexOf(out, "Draft proposal"), indexOf(out, "IN PROGRESS"))
	assert.Greater(t, indexOf(out, "Review PR"), indexOf(out, "IN PROGRESS"))
}

func TestFormatTaskList_Empty(t *testing.T) {
	assert.Contains(t, StripANSI(FormatTaskList(nil)), "No tasks")
}

func TestFormatCompletedTasks(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	at := now.Add(-2 * time.Hour)
	tasks := sampleTasks()
	tasks[1].Completed = true
	tasks[1].CompletedAt = &at

	out := StripANSI(FormatCompletedTasks(tasks[1:], now))
	assert.Contains(t, out, "COMPLETED IN THE LAST DAY")
	assert.Contains(t, out, "Review PR")
	assert.Contains(t, out, "2h ago")

	assert.Contains(t, StripANSI(FormatCompletedTasks(nil, now)), "none")
}

func TestFormatStats(t *testing.T) {
	day := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	counts := []domain.DayCount{
		{Day: day, Count: 4},
		{Day: day.AddDate(0, 0, 1), Count: 0},
		{Day: day.AddDate(0, 0, 2), Count: 1},
	}

	out := StripANSI(FormatStats(counts))
	assert.Contains(t, out, "POMOS OVER TIME")
	assert.Contains(t, out, "Jun 08")
	assert.Contains(t, out, "5 pomodoros over 3 days")
}

func TestRenderBarChart_ScalesToPeak(t *testing.T) {
	day := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	out := StripANSI(RenderBarChart([]domain.DayCount{
		{Day: day, Count: 10},
		{Day: day.AddDate(0, 0, 1), Count: 1},
	}, 10))

	assert.Contains(t, out, "Jun 08 │██████████ 10")
	assert.Contains(t, out, "Jun 09 │█ 1")
	assert.Empty(t, RenderBarChart(nil, 10))
}

func TestFormatTimer(t *testing.T) {
	task := sampleTasks()[0]
	task.PomosFinished = 2
	out := StripANSI(FormatTimer(pomodoro.Snapshot{
		Phase:                domain.PhaseShortBreak,
		Remaining:            4*time.Minute + 30*time.Second,
		Duration:             5 * time.Minute,
		ClockState:           pomodoro.ClockPaused,
		PomodorosThisSession: 1,
		CompletedInSet:       1,
		LongBreakInterval:    4,
		Unpersisted:          1,
		Task:                 task,
	}))

	assert.Contains(t, out, "Draft proposal")
	assert.Contains(t, out, "SHORT BREAK")
	assert.Contains(t, out, "04:30")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "●○○○")
	assert.Contains(t, out, "task total: 2")
	assert.Contains(t, out, "1 not saved")
}

func TestFormatTimer_FreeSession(t *testing.T) {
	out := StripANSI(FormatTimer(pomodoro.Snapshot{
		Phase: domain.PhaseWork, Remaining: time.Minute, Duration: time.Minute, LongBreakInterval: 4,
	}))
	assert.Contains(t, out, "Free session")
	assert.NotContains(t, out, "task total")
}

func TestFormatPhaseChange(t *testing.T) {
	out := StripANSI(FormatPhaseChange(pomodoro.PhaseChanged{
		From: domain.PhaseWork, To: domain.PhaseLongBreak, Credited: true, PomodorosThisSession: 4,
		At: time.Now(),
	}))
	assert.Contains(t, out, "Work → Long Break")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "set complete")

	out = StripANSI(FormatPhaseChange(pomodoro.PhaseChanged{From: domain.PhaseWork, To: domain.PhaseShortBreak, Skipped: true, At: time.Now()}))
	assert.Contains(t, out, "Work ⇥ Short Break")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
