package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// ParseLevel accepts debug, info, warn and error. Unknown input yields info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON slog logger writing to w and installs it as the default.
func New(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

// Gorm adapts logger for GORM. Slow queries and errors are reported at warn;
// record-not-found is not an error here since the service treats it as an
// ordinary outcome.
func Gorm(logger *slog.Logger, level string) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	switch ParseLevel(level) {
	case slog.LevelDebug:
		gormLevel = gormlogger.Info
	case slog.LevelError:
		gormLevel = gormlogger.Error
	}
	return gormlogger.New(
		log.New(&slogWriter{logger: logger}, "", 0),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	w.logger.Warn("gorm", "detail", strings.TrimSpace(string(p)))
	return len(p), nil
}
