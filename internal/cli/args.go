package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pogodoro/internal/config"
	"github.com/alexanderramin/pogodoro/internal/domain"
)

// parseTaskID parses a positive integer task id.
func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task id must be a positive integer, got %q", domain.ErrInvalidInput, s)
	}
	return id, nil
}

// parseDurations reads work, short break and long break arguments.
func parseDurations(work, shortBreak, longBreak string) (domain.Durations, error) {
	var d domain.Durations
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"work", work, &d.Work},
		{"short break", shortBreak, &d.ShortBreak},
		{"long break", longBreak, &d.LongBreak},
	}
	for _, f := range fields {
		v, err := config.ParseDuration(f.raw)
		if err != nil {
			return d, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, f.name, err)
		}
		*f.dst = v
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// defaultDurations is the configured cadence for sessions and tasks
// created without explicit lengths.
func defaultDurations(cfg *config.Config) domain.Durations {
	return domain.Durations{Work: cfg.Work, ShortBreak: cfg.ShortBreak, LongBreak: cfg.LongBreak}
}
