package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/pomodoro"
)

// FormatTimer renders the main timer panel.
func FormatTimer(s pomodoro.Snapshot) string {
	var b strings.Builder

	title := "Free session"
	if s.Task != nil {
		title = s.Task.Description
		if s.Task.Completed {
			title += " " + StyleGreen.Render("✔")
		}
	}
	b.WriteString(Bold(title))
	b.WriteString("\n\n")

	b.WriteString(PhaseBadge(s.Phase))
	if s.ClockState == pomodoro.ClockPaused {
		b.WriteString("  " + StyleYellow.Render("⏸ paused"))
	}
	b.WriteString("\n")
	b.WriteString(PhaseColor(s.Phase).Bold(true).Render(FormatCountdown(s.Remaining)))
	b.WriteString("\n")

	pct := 0.0
	if s.Duration > 0 {
		pct = float64(s.Duration-s.Remaining) / float64(s.Duration)
	}
	b.WriteString(RenderProgress(pct, 30, PhaseColor(s.Phase)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s", RenderSetDots(s.CompletedInSet, s.LongBreakInterval), Dim("until long break")))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("this session: %d", s.PomodorosThisSession)))
	if s.Task != nil {
		b.WriteString(Dim(fmt.Sprintf("  ·  task total: %d", s.Task.PomosFinished)))
	}
	if s.Unpersisted > 0 {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("⚠ %d not saved", s.Unpersisted)))
	}
	return b.String()
}

// FormatPhaseChange renders one transition as a log line for the headless runner.
func FormatPhaseChange(ev pomodoro.PhaseChanged) string {
	verb := "→"
	if ev.Skipped {
		verb = "⇥"
	}
	line := fmt.Sprintf("%s %s %s %s",
		Dim(ev.At.Local().Format("15:04:05")),
		PhaseColor(ev.From).Render(ev.From.Label()),
		verb,
		PhaseColor(ev.To).Render(ev.To.Label()),
	)
	if ev.Credited {
		line += "  " + StyleRed.Render(fmt.Sprintf("🍅 %d", ev.PomodorosThisSession))
		if ev.To == domain.PhaseLongBreak {
			line += " " + Dim("(set complete)")
		}
	}
	return line + "\n"
}

// FormatSessionStart announces a headless session.
func FormatSessionStart(s pomodoro.Snapshot) string {
	what := "free session"
	if s.Task != nil {
		what = fmt.Sprintf("task #%d %s", s.Task.ID, s.Task.Description)
	}
	return fmt.Sprintf("%s Started %s: %s %s\n",
		StyleRed.Render("🍅"), what, PhaseColor(s.Phase).Render(s.Phase.Label()), FormatDuration(s.Duration))
}

// FormatSessionSummary closes a session with its pomodoro count.
func FormatSessionSummary(s pomodoro.Snapshot) string {
	line := fmt.Sprintf("Session over: %s %s", Bold(fmt.Sprintf("%d", s.PomodorosThisSession)), pluralize(s.PomodorosThisSession, "pomodoro"))
	if s.Task != nil {
		line += Dim(fmt.Sprintf(" (task total %d)", s.Task.PomosFinished))
	}
	if s.Unpersisted > 0 {
		line += " " + StyleYellow.Render(fmt.Sprintf("%d not saved", s.Unpersisted))
	}
	return line + "\n"
}
