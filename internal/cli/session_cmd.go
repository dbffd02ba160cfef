package cli

import (
	"fmt"

	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkOnCmd(app *App) *cobra.Command {
	var pomodoros int

	cmd := &cobra.Command{
		Use:   "work-on [id]",
		Short: "Start a session bound to a task",
		Long: `Start a session bound to a task. Every work phase that runs to zero
adds one pomodoro to the task. Without an id a task picker opens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var task *domain.Task
			if len(args) == 0 {
				if !app.interactive() {
					return fmt.Errorf("%w: work-on needs a task id", domain.ErrInvalidInput)
				}
				picked, err := pickTask(ctx, app)
				if err != nil {
					return err
				}
				task = picked
			} else {
				id, err := parseTaskID(args[0])
				if err != nil {
					return err
				}
				task, err = app.Tasks.GetByID(ctx, id)
				if err != nil {
					return err
				}
			}
			return runSession(cmd, app, task, nil, pomodoros)
		},
	}

	cmd.Flags().IntVar(&pomodoros, "pomodoros", 0, "stop after this many pomodoros (headless only, 0 runs until interrupted)")
	return cmd
}

func newStartCmd(app *App) *cobra.Command {
	var pomodoros int

	cmd := &cobra.Command{
		Use:   "start [<work> <short> <long>]",
		Short: "Start a free session without a task",
		Long: `Start a session that is not bound to a task. Durations are minutes
or Go durations; without arguments the configured defaults are used.`,
		Example: `  pogodoro start
  pogodoro start 50 10 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var d domain.Durations
			switch len(args) {
			case 0:
				d = defaultDurations(app.Config)
			case 3:
				parsed, err := parseDurations(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				d = parsed
			default:
				return fmt.Errorf("%w: start takes zero or three durations, got %d arguments",
					domain.ErrInvalidInput, len(args))
			}
			return runSession(cmd, app, nil, &d, pomodoros)
		},
	}

	cmd.Flags().IntVar(&pomodoros, "pomodoros", 0, "stop after this many pomodoros (headless only, 0 runs until interrupted)")
	return cmd
}
