package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/idgen-api/internal/shared/config"
)

// NewLogger builds the process logger from logging.level, logging.format
// ("json" or "text") and app.name.
func NewLogger(cfg config.ConfigProvider) *slog.Logger {
	return newLogger(os.Stdout, cfg.GetString("logging.level"), cfg.GetString("logging.format"), cfg.GetString("app.name"))
}

func newLogger(w io.Writer, level, format, service string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if service = strings.TrimSpace(service); service != "" {
		logger = logger.With(slog.String("service", service))
	}
	return logger
}

func parseLevel(level string) slog.Level {
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
