package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pogodoro/internal/cli"
	"github.com/alexanderramin/pogodoro/internal/config"
	"github.com/alexanderramin/pogodoro/internal/db"
	"github.com/alexanderramin/pogodoro/internal/logging"
	"github.com/alexanderramin/pogodoro/internal/notify"
	"github.com/alexanderramin/pogodoro/internal/repository"
	"github.com/alexanderramin/pogodoro/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}()

	app := &cli.App{Config: cfg}

	// Detect interactive terminal for the full-screen timer and pickers.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Resources open after flag parsing so --db and --log-file apply.
	app.Setup = func(cfg *config.Config) error {
		logger, closeLog, err := logging.OpenFile(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}
		closers = append(closers, closeLog)

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		closers = append(closers, database.Close)

		// Wire repositories
		taskRepo := repository.NewSQLiteTaskRepo(database)
		logRepo := repository.NewSQLitePomodoroLogRepo(database)

		// Wire unit of work for transactional operations
		uow := db.NewSQLiteUnitOfWork(database)

		observer := service.NewLogUseCaseObserver(logger)
		app.Tasks = service.NewTaskService(taskRepo, uow, observer)
		app.History = service.NewHistoryService(logRepo, observer)
		app.Logger = logger

		notifier, err := notify.FromConfig(notify.Options{
			Bell:       cfg.Notify.Bell,
			BellWriter: os.Stderr,
			Sound:      cfg.Notify.Sound,
			Desktop:    cfg.Notify.Desktop,
			BarkURL:    cfg.Notify.BarkURL,
		})
		if err != nil {
			return fmt.Errorf("configuring notifications: %w", err)
		}
		app.Notifier = notifier

		logger.Debug("pogodoro ready", "db", cfg.DBPath)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
