package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillCreatedAt(db); err != nil {
		return fmt.Errorf("backfilling tasks.created_at: %w", err)
	}
	return nil
}

// backfillCreatedAt stamps rows written before created_at existed so the
// column can be scanned as a plain string.
func backfillCreatedAt(db *sql.DB) error {
	_, err := db.Exec(`UPDATE tasks SET created_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now') WHERE created_at = ''`)
	return err
}

var migrations = []string{
	// AUTOINCREMENT keeps ids monotonic even after out-of-band deletes.
	`CREATE TABLE IF NOT EXISTS tasks (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		"desc"           TEXT NOT NULL CHECK(length("desc") > 0),
		work_secs        INTEGER NOT NULL CHECK(work_secs > 0),
		short_break_secs INTEGER NOT NULL CHECK(short_break_secs > 0),
		long_break_secs  INTEGER NOT NULL CHECK(long_break_secs > 0),
		pomos_finished   INTEGER NOT NULL DEFAULT 0 CHECK(pomos_finished >= 0),
		completed        BOOLEAN NOT NULL DEFAULT 0
	)`,

	`ALTER TABLE tasks ADD COLUMN created_at TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE tasks ADD COLUMN completed_at TEXT`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed, id)`,

	`CREATE TABLE IF NOT EXISTS pomodoro_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id     INTEGER REFERENCES tasks(id) ON DELETE SET NULL,
		session_id  TEXT NOT NULL,
		work_secs   INTEGER NOT NULL,
		finished_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pomodoro_log_finished ON pomodoro_log(finished_at)`,
	`CREATE INDEX IF NOT EXISTS idx_pomodoro_log_task ON pomodoro_log(task_id)`,
}
