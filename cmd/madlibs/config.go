package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/madlibs/fs"
	"github.com/fwojciec/madlibs/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownTheme is returned when the configured theme does not exist.
var ErrUnknownTheme = errors.New("unknown theme")

// Config holds settings read from the environment. Flags override it.
type Config struct {
	Theme    string `env:"MADLIBS_THEME" envDefault:"dark"`
	LogFile  string `env:"MADLIBS_LOG_FILE"`
	LogLevel string `env:"MADLIBS_LOG_LEVEL" envDefault:"info"`
	Verbose  bool   `env:"MADLIBS_VERBOSE"`
}

// ParseConfig loads configuration from environ.
func ParseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ResolveTheme returns the theme named by the configuration.
func (c Config) ResolveTheme() (*lipgloss.Theme, error) {
	theme, ok := lipgloss.ThemeByName(strings.ToLower(c.Theme))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	return theme, nil
}

// NewLogger builds a file logger. The terminal belongs to the UI, so nothing
// is logged unless a log file is set or verbose logging is on.
func (c Config) NewLogger() (*zap.Logger, error) {
	path := c.LogFile
	if path == "" && c.Verbose {
		path = fs.DefaultLogPath()
	}
	if path == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if c.Verbose {
		level = zapcore.DebugLevel
	}
	if err := fs.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
