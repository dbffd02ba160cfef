package domain

import "time"

// PomodoroLog records one credited pomodoro. TaskID is nil for free sessions.
type PomodoroLog struct {
	ID         int64
	TaskID     *int64
	SessionID  string
	WorkSecs   int
	FinishedAt time.Time
}

// DayCount is the number of pomodoros finished on one calendar day.
type DayCount struct {
	Day   time.Time
	Count int
}
