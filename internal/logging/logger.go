// Package logging wraps log/slog for licensedesk. Logs go to a rotating
// file because the terminal belongs to the UI; without a file, logging is a
// no-op.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with convenience methods
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to keep
	MaxBackups int
}

var (
	mu      sync.RWMutex
	global  *Logger
	rotator *lumberjack.Logger
	noop    = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init installs the global logger. An empty FilePath installs the no-op
// logger. Calling Init again replaces (and closes) the previous file.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	closeRotator()

	if config.FilePath == "" {
		global = noop
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	rotator = &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(rotator, opts)
	default:
		handler = slog.NewTextHandler(rotator, opts)
	}

	global = &Logger{logger: slog.New(handler), enabled: true}
	return nil
}

// Shutdown closes the log file and reverts to the no-op logger.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	global = noop
	return closeRotator()
}

func closeRotator() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// Get returns the global logger, or the no-op logger before Init.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return noop
	}
	return global
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a Logger that adds the key-value pairs to every record
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), enabled: l.enabled}
}

// IsEnabled returns true if records go anywhere
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Time runs fn and logs its duration at debug level.
func (l *Logger) Time(name string, fn func()) {
	if !l.enabled {
		fn()
		return
	}
	start := time.Now()
	fn()
	d := time.Since(start)
	l.Debug(name, "duration", d.String(), "ms", d.Milliseconds())
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// With returns the global logger with added context
func With(args ...any) *Logger { return Get().With(args...) }

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool { return Get().IsEnabled() }

// Time is Logger.Time on the global logger.
func Time(name string, fn func()) { Get().Time(name, fn) }

// ParseLevel converts a string to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat, defaulting to text
func ParseFormat(format string) LogFormat {
	if format == string(FormatJSON) {
		return FormatJSON
	}
	return FormatText
}
