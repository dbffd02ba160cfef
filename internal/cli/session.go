package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/pogodoro/internal/cli/formatter"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/notify"
	"github.com/alexanderramin/pogodoro/internal/pomodoro"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newController builds the session for a task or a free cadence.
func newController(app *App, task *domain.Task, overrides *domain.Durations) (*pomodoro.Controller, error) {
	cfg := pomodoro.Config{
		LongBreakInterval: app.Config.LongBreakInterval,
		CreditOnSkip:      app.Config.CreditOnSkip,
	}
	opts := []pomodoro.Option{
		pomodoro.WithLogger(app.logger()),
		pomodoro.WithPhaseListener(notify.PhaseListener(app.notifier(), app.logger())),
	}
	var store pomodoro.TaskStore
	if task != nil {
		store = app.Tasks
	} else if app.History != nil {
		opts = append(opts, pomodoro.WithFreeRecorder(app.History))
	}
	return pomodoro.NewController(cfg, store, task, overrides, opts...)
}

// runSession runs the full-screen timer on a terminal and the headless
// loop otherwise.
func runSession(cmd *cobra.Command, app *App, task *domain.Task, overrides *domain.Durations, maxPomodoros int) error {
	ctrl, err := newController(app, task, overrides)
	if err != nil {
		return err
	}
	start := app.now()
	app.logger().Info("session started", "session_id", ctrl.SessionID(), "bound", task != nil)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if app.interactive() {
		model := newTimerModel(ctx, ctrl, app.Config.TickInterval, start)
		p := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(out),
		)
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("running timer: %w", err)
		}
	} else {
		ticker := time.NewTicker(app.Config.TickInterval)
		defer ticker.Stop()
		runHeadless(ctx, out, ctrl, ticker.C, start, maxPomodoros)
	}

	snap := ctrl.Snapshot()
	app.logger().Info("session ended", "session_id", snap.SessionID, "pomodoros", snap.PomodorosThisSession)
	fmt.Fprint(out, formatter.FormatSessionSummary(snap))
	return nil
}

// runHeadless advances the controller on every tick until ctx ends or
// maxPomodoros have been credited. Store failures are printed and the
// session carries on.
func runHeadless(ctx context.Context, out io.Writer, ctrl *pomodoro.Controller, ticks <-chan time.Time, start time.Time, maxPomodoros int) {
	fmt.Fprint(out, formatter.FormatSessionStart(ctrl.Snapshot()))
	last := start
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticks:
			// A tick racing the interrupt must not credit during shutdown.
			if ctx.Err() != nil {
				return
			}
			elapsed := now.Sub(last)
			last = now
			ev, err := ctrl.Advance(ctx, elapsed)
			if err != nil {
				fmt.Fprintln(out, formatter.StyleYellow.Render("warning: "+err.Error()))
			}
			if ev != nil {
				fmt.Fprint(out, formatter.FormatPhaseChange(*ev))
			}
			if maxPomodoros > 0 && ctrl.Snapshot().PomodorosThisSession >= maxPomodoros {
				return
			}
		}
	}
}
