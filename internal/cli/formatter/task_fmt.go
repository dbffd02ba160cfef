package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pogodoro/internal/domain"
)

// FormatTaskList renders incomplete tasks split into New and In Progress.
func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks. Add one with: pogodoro add <desc> <work> <short> <long>") + "\n"
	}

	var fresh, started []*domain.Task
	for _, t := range tasks {
		if t.IsNew() {
			fresh = append(fresh, t)
		} else {
			started = append(started, t)
		}
	}

	var b strings.Builder
	b.WriteString(Header("New"))
	b.WriteString("\n")
	b.WriteString(taskTable(fresh))
	b.WriteString("\n")
	b.WriteString(Header("In Progress"))
	b.WriteString("\n")
	b.WriteString(taskTable(started))
	return b.String()
}

func taskTable(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("  none") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", t.ID)),
			t.Description,
			FormatSeconds(t.WorkSecs),
			FormatSeconds(t.ShortBreakSecs),
			FormatSeconds(t.LongBreakSecs),
			StyleRed.Render(fmt.Sprintf("%d", t.PomosFinished)),
		})
	}
	return RenderTable([]string{"ID", "TASK", "WORK", "SHORT", "LONG", "POMOS"}, rows, 0, 5)
}

// FormatCompletedTasks renders tasks completed since a cutoff.
func FormatCompletedTasks(tasks []*domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Completed in the last day"))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("  none") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		when := "--"
		if t.CompletedAt != nil {
			when = HumanTimestampFrom(*t.CompletedAt, now)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", t.ID)),
			t.Description,
			StyleRed.Render(fmt.Sprintf("%d", t.PomosFinished)),
			StyleGreen.Render("✔ " + when),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "TASK", "POMOS", "DONE"}, rows, 0, 2))
	return b.String()
}

// FormatTaskCreated confirms a new task.
func FormatTaskCreated(t *domain.Task) string {
	return fmt.Sprintf("%s Added task %s %s (%s / %s / %s)\n",
		StyleGreen.Render("✔"),
		Bold(fmt.Sprintf("#%d", t.ID)),
		t.Description,
		FormatSeconds(t.WorkSecs),
		FormatSeconds(t.ShortBreakSecs),
		FormatSeconds(t.LongBreakSecs),
	)
}

// FormatTaskCompleted confirms a completed task.
func FormatTaskCompleted(t *domain.Task) string {
	return fmt.Sprintf("%s Completed task %s %s after %d pomodoros\n",
		StyleGreen.Render("✔"), Bold(fmt.Sprintf("#%d", t.ID)), t.Description, t.PomosFinished)
}

// FormatStats renders the daily pomodoro chart with a total.
func FormatStats(counts []domain.DayCount) string {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	var b strings.Builder
	b.WriteString(Header("Pomos over time"))
	b.WriteString("\n")
	b.WriteString(RenderBarChart(counts, 30))
	fmt.Fprintf(&b, "\n%s %s over %d days\n", Bold(fmt.Sprintf("%d", total)), pluralize(total, "pomodoro"), len(counts))
	return b.String()
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
