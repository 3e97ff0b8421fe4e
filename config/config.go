// Package config holds the run configuration of the generator front-end and
// the logger it installs.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/sarchlab/progen/core"
	"github.com/sarchlab/progen/executor"
)

// Lint modes.
const (
	// LintAbort stops a run when the static label check finds an error.
	LintAbort = "abort"
	// LintWarn logs lint issues and simulates anyway.
	LintWarn = "warn"
	// LintOff skips the check.
	LintOff = "off"
)

// Config is the run configuration.
type Config struct {
	Seed         uint64 `mapstructure:"seed"`
	MaxSteps     int    `mapstructure:"max_steps"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	ExecutionLog bool   `mapstructure:"execution_log"`
	Lint         string `mapstructure:"lint"`
	Output       string `mapstructure:"output"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Seed:      1,
		MaxSteps:  executor.DefaultMaxSteps,
		LogLevel:  "info",
		LogFormat: "text",
		Lint:      LintAbort,
	}
}

// Load reads a configuration file, if path is not empty, and PROGEN_*
// environment variables on top of the defaults.
func Load(path string) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max_steps", d.MaxSteps)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("execution_log", d.ExecutionLog)
	v.SetDefault("lint", d.Lint)
	v.SetDefault("output", d.Output)

	v.SetEnvPrefix("PROGEN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	switch c.Lint {
	case LintAbort, LintWarn, LintOff:
	default:
		return fmt.Errorf("unknown lint mode %q", c.Lint)
	}

	return nil
}

// Level returns the slog level named by LogLevel. Unknown names yield Info.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// NewLogger creates a logger writing to w in the configured format.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}

	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
