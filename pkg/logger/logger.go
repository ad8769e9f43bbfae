package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Orekusandoru/online-store/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with package-level convenience functions.
type Logger struct {
	*slog.Logger
}

var logger *Logger

// Init sets up the global logger from config. File output rotates via
// lumberjack.
func Init(cfg *config.Logger) error {
	var (
		handler slog.Handler
		level   slog.Level
		writer  io.Writer
	)

	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	switch cfg.Output {
	case "file":
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
		writer = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
	default:
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Level == "debug",
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger = &Logger{Logger: slog.New(handler)}
	return nil
}

// Get returns the global logger, falling back to slog.Default before Init.
func Get() *Logger {
	if logger == nil {
		return &Logger{Logger: slog.Default()}
	}
	return logger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// With returns a logger carrying the given fields.
func With(args ...any) *Logger {
	return &Logger{Logger: Get().With(args...)}
}
