package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// NotifyConfig selects the phase-change notification sinks.
type NotifyConfig struct {
	Bell    bool
	Sound   bool
	Desktop bool
	BarkURL string
}

// Config holds all runtime configuration. It is built once in main and
// passed explicitly to the components that need it.
type Config struct {
	DBPath            string
	LongBreakInterval int
	CreditOnSkip      bool

	// Defaults for free sessions started without arguments.
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	TickInterval time.Duration

	LogLevel string
	LogFile  string

	Notify NotifyConfig
}

const (
	appDirName = "pogodoro"
	envPrefix  = "POGODORO_"

	defaultLongBreakInterval = 4
	defaultWork              = 25 * time.Minute
	defaultShortBreak        = 5 * time.Minute
	defaultLongBreak         = 15 * time.Minute
	defaultTickInterval      = time.Second
	defaultLogLevel          = "info"

	maxMinutes = math.MaxInt64 / int64(time.Minute)
)

// Load builds the configuration from defaults, .env files and POGODORO_*
// environment variables. Flags registered with BindFlags override it later.
// Priority: flags > environment > .env file > defaults
func Load() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return load(filepath.Join(dir, appDirName))
}

func load(appDir string) (*Config, error) {
	// Both files are optional; godotenv never overrides variables already set.
	_ = godotenv.Load(existing(".env", filepath.Join(appDir, ".env"))...)

	cfg := &Config{
		DBPath:            getEnvString("DB", filepath.Join(appDir, "records.db")),
		LongBreakInterval: getEnvInt("LONG_BREAK_INTERVAL", defaultLongBreakInterval),
		CreditOnSkip:      getEnvBool("CREDIT_ON_SKIP", false),
		Work:              getEnvDuration("WORK", defaultWork),
		ShortBreak:        getEnvDuration("SHORT_BREAK", defaultShortBreak),
		LongBreak:         getEnvDuration("LONG_BREAK", defaultLongBreak),
		TickInterval:      getEnvDuration("TICK", defaultTickInterval),
		LogLevel:          getEnvString("LOG_LEVEL", defaultLogLevel),
		LogFile:           getEnvString("LOG_FILE", filepath.Join(appDir, "pogodoro.log")),
		Notify: NotifyConfig{
			Bell:    getEnvBool("NOTIFY_BELL", true),
			Sound:   getEnvBool("NOTIFY_SOUND", false),
			Desktop: getEnvBool("NOTIFY_DESKTOP", false),
			BarkURL: getEnvString("BARK_URL", ""),
		},
	}
	return cfg, nil
}

// BindFlags registers persistent flags that override loaded values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path to the SQLite database")
	fs.IntVar(&c.LongBreakInterval, "long-break-interval", c.LongBreakInterval, "pomodoros before a long break")
	fs.BoolVar(&c.CreditOnSkip, "credit-on-skip", c.CreditOnSkip, "count a skipped work phase as a finished pomodoro")
	fs.Var(newMinutesValue(&c.Work), "work", "default work duration (minutes or Go duration)")
	fs.Var(newMinutesValue(&c.ShortBreak), "short-break", "default short break duration")
	fs.Var(newMinutesValue(&c.LongBreak), "long-break", "default long break duration")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "timer refresh interval")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error, off)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log file path")
	fs.BoolVar(&c.Notify.Bell, "bell", c.Notify.Bell, "ring the terminal bell on phase change")
	fs.BoolVar(&c.Notify.Sound, "sound", c.Notify.Sound, "play a sound on phase change")
	fs.BoolVar(&c.Notify.Desktop, "desktop", c.Notify.Desktop, "show a desktop notification on phase change")
	fs.StringVar(&c.Notify.BarkURL, "bark-url", c.Notify.BarkURL, "Bark push URL for phase notifications")
}

// Validate checks values that flags or the environment may have broken.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if c.LongBreakInterval < 1 {
		return fmt.Errorf("long break interval must be at least 1, got %d", c.LongBreakInterval)
	}
	if c.Work <= 0 || c.ShortBreak <= 0 || c.LongBreak <= 0 {
		return fmt.Errorf("default durations must be positive")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	return nil
}

// ParseDuration reads a plain integer as minutes and anything else as a Go
// duration string ("90s", "1h30m").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > maxMinutes || n < -maxMinutes {
			return 0, fmt.Errorf("invalid duration %q: too many minutes", s)
		}
		return time.Duration(n) * time.Minute, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: use minutes or a value like 90s", s)
	}
	return d, nil
}

func existing(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func getEnvString(key, defaultVal string) string {
	if val, ok := os.LookupEnv(envPrefix + key); ok {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(envPrefix + key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(envPrefix + key); ok {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(envPrefix + key); ok {
		if d, err := ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// minutesValue is a pflag.Value accepting ParseDuration syntax.
type minutesValue struct {
	d *time.Duration
}

func newMinutesValue(d *time.Duration) *minutesValue {
	return &minutesValue{d: d}
}

func (v *minutesValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v *minutesValue) Set(s string) error {
	d, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *minutesValue) Type() string { return "duration" }
