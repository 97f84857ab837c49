package internal

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func NewLogger(w io.Writer, env string, level string) zerolog.Logger {
	// Validate log level
	lvl, err := zerolog.ParseLevel(level) // Info by default on parse failure
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch env {
	case "prod":
		// Structured JSON output
	default:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	if err != nil {
		logger.Warn().Str("value", level).Msg("Invalid log level. Using default level: info")
	}

	return logger
}
