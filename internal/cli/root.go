package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/pogodoro/internal/config"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/notify"
	"github.com/alexanderramin/pogodoro/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by CLI commands.
type App struct {
	Tasks    service.TaskService
	History  service.HistoryService
	Config   *config.Config
	Logger   *slog.Logger
	Notifier notify.Notifier

	// Setup runs after flags are parsed and before any command, so the
	// database and log file honor --db and --log-file. Tests leave it nil
	// and fill the services directly.
	Setup func(cfg *config.Config) error

	// IsInteractive reports whether stdin is a terminal. Interactive runs
	// get the full-screen timer and pickers; others run headless.
	IsInteractive func() bool

	// Now is the wall clock; nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (a *App) notifier() notify.Notifier {
	if a.Notifier != nil {
		return a.Notifier
	}
	return notify.NoOpNotifier{}
}

// NewRootCmd creates the top-level "pogodoro" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Config == nil {
		app.Config = &config.Config{}
	}

	root := &cobra.Command{
		Use:   "pogodoro",
		Short: "Pomodoro timer with persistent tasks",
		Long: `pogodoro alternates work and break intervals, optionally against a task.

Run without a command to pick a task interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Validate(); err != nil {
				return err
			}
			if app.Setup != nil {
				return app.Setup(app.Config)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return runList(cmd, app, false)
			}
			task, err := pickTask(cmd.Context(), app)
			if err != nil {
				return err
			}
			return runSession(cmd, app, task, nil, 0)
		},
	}

	// Subcommands inherit this, so "-3" read as a shorthand flag is still
	// reported as bad input.
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	})

	app.Config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(app),
		newAddCmd(app),
		newCompleteCmd(app),
		newWorkOnCmd(app),
		newStartCmd(app),
		newStatsCmd(app),
	)

	return root
}
