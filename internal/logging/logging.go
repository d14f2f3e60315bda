package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugEnabled atomic.Bool
	current      atomic.Pointer[zerolog.Logger]
)

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// Options describes where log output is written.
type Options struct {
	// Console receives human readable output. Nil disables console output.
	Console io.Writer
	// File enables a rotating log file at the given path.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New builds a logger writing to the configured sinks at level. The returned
// closer releases the log file and is never nil.
func New(level zerolog.Level, opts Options) (zerolog.Logger, io.Closer, error) {
	writers := make([]io.Writer, 0, 2)
	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: "15:04:05",
		})
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("ensure log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		writers = append(writers, file)
		closer = file
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// Console returns a stderr logger used before any plugin is attached.
func Console(level zerolog.Level) zerolog.Logger {
	logger, _, _ := New(level, Options{Console: os.Stderr})
	return logger
}

// ParseLevel converts a configured level name, defaulting to info.
func ParseLevel(raw string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("parse log level %q: %w", raw, err)
	}
	return level, nil
}

// SetDefault installs logger as the package logger used by Debugf.
func SetDefault(logger zerolog.Logger) {
	current.Store(&logger)
}

// L returns the package logger.
func L() *zerolog.Logger {
	return current.Load()
}

// EnableDebug turns on verbose debug logging for the application lifecycle.
func EnableDebug() {
	debugEnabled.Store(true)
	L().Debug().Msg("debug logging enabled")
}

// DisableDebug turns Debugf back into a no-op.
func DisableDebug() {
	debugEnabled.Store(false)
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	L().Debug().Msgf(format, args...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
