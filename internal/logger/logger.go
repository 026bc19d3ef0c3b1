package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/voxkit/internal/env"
)

// Options configures the logger.
type Options struct {
	logToFile bool
	logFile   string
	level     slog.Leveler
}

// Option mutates the logger options.
type Option func(*Options)

// WithLogToFile enables or disables logging to a rotating file.
func WithLogToFile(enabled bool) Option {
	return func(o *Options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path.
func WithLogFile(path string) Option {
	return func(o *Options) {
		o.logFile = path
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Leveler) Option {
	return func(o *Options) {
		o.level = level
	}
}

// New creates a slog.Logger for the given environment.
// Development uses a colorized console handler, production uses JSON.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	options := &Options{
		logFile: "logs/voxkit.log",
		level:   slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(options)
	}

	out := io.Writer(os.Stderr)
	if options.logToFile {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   options.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	var handler slog.Handler
	if environment.IsProduction() {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: options.level})
	} else {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      options.level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}
