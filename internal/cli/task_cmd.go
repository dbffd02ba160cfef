package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pogodoro/internal/cli/formatter"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List incomplete tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, completed)
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "also show tasks completed in the last day")
	return cmd
}

func runList(cmd *cobra.Command, app *App, completed bool) error {
	ctx := cmd.Context()
	tasks, err := app.Tasks.ListIncomplete(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatTaskList(tasks))

	if completed {
		now := app.now()
		done, err := app.Tasks.ListCompletedSince(ctx, now.Add(-24*time.Hour))
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.FormatCompletedTasks(done, now))
	}
	return nil
}

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <desc> [<work> <short> <long>]",
		Short: "Add a task",
		Long: `Add a task with its own cadence.

Durations are minutes ("25") or Go durations ("90s", "1h"). With only a
description the configured defaults are used. Without arguments an
interactive form opens.`,
		Example: `  pogodoro add "Write report" 25 5 15
  pogodoro add "Quick review" 10m 2m 5m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var desc string
			var d domain.Durations
			var err error

			switch len(args) {
			case 0:
				if !app.interactive() {
					return fmt.Errorf("%w: add needs <desc> [<work> <short> <long>]", domain.ErrInvalidInput)
				}
				desc, d, err = runAddForm(defaultDurations(app.Config))
			case 1:
				desc, d = args[0], defaultDurations(app.Config)
			case 4:
				desc = args[0]
				d, err = parseDurations(args[1], args[2], args[3])
			default:
				return fmt.Errorf("%w: add takes a description and either zero or three durations, got %d arguments",
					domain.ErrInvalidInput, len(args))
			}
			if err != nil {
				return err
			}

			task, err := app.Tasks.Create(cmd.Context(), desc, d)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskCreated(task))
			return nil
		},
	}
	return cmd
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := app.Tasks.MarkCompleted(ctx, id); err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskCompleted(task))
			return nil
		},
	}
}
