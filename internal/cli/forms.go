package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pogodoro/internal/cli/formatter"
	"github.com/alexanderramin/pogodoro/internal/config"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pogodoroHuhTheme returns a huh theme matching the Gruvbox palette.
func pogodoroHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskOptions labels incomplete tasks for the picker, most recent first as
// listed by the store.
func taskOptions(tasks []*domain.Task) []huh.Option[int64] {
	opts := make([]huh.Option[int64], 0, len(tasks))
	for _, t := range tasks {
		label := fmt.Sprintf("#%d  %s  (%d 🍅, %s)", t.ID, t.Description, t.PomosFinished,
			formatter.FormatDuration(t.Durations().Work))
		opts = append(opts, huh.NewOption(label, t.ID))
	}
	return opts
}

// pickTask lets the user choose one incomplete task to work on.
func pickTask(ctx context.Context, app *App) (*domain.Task, error) {
	tasks, err := app.Tasks.ListIncomplete(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: no incomplete tasks, add one with `pogodoro add`", domain.ErrNotFound)
	}

	var id int64
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Pick a task").
				Options(taskOptions(tasks)...).
				Value(&id),
		),
	).WithTheme(pogodoroHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fmt.Errorf("%w: no task picked", domain.ErrInvalidInput)
		}
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
}

// durationInput returns a huh.Input that accepts minutes or Go duration syntax.
func durationInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("minutes, or a duration like 90s or 1h").
		Value(value).
		Validate(func(s string) error {
			d, err := config.ParseDuration(s)
			if err != nil {
				return err
			}
			if d <= 0 {
				return errors.New("must be positive")
			}
			return nil
		})
}

// runAddForm collects a task description and cadence, prefilled with defaults.
func runAddForm(defaults domain.Durations) (string, domain.Durations, error) {
	var desc string
	work := formatter.FormatDuration(defaults.Work)
	short := formatter.FormatDuration(defaults.ShortBreak)
	long := formatter.FormatDuration(defaults.LongBreak)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Value(&desc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description is required")
					}
					return nil
				}),
			durationInput("Work", &work),
			durationInput("Short break", &short),
			durationInput("Long break", &long),
		),
	).WithTheme(pogodoroHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", domain.Durations{}, fmt.Errorf("%w: cancelled", domain.ErrInvalidInput)
		}
		return "", domain.Durations{}, err
	}
	d, err := parseDurations(work, short, long)
	if err != nil {
		return "", domain.Durations{}, err
	}
	return strings.TrimSpace(desc), d, nil
}
