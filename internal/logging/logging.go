// Package logging sets up the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger on w. The verbosity flags win over the
// configured level: quiet shows errors only, each -v steps one level down
// from info towards trace.
func New(w io.Writer, verbose int, quiet bool, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl := configuredLevel(level)
	switch {
	case quiet:
		lvl = zerolog.ErrorLevel
	case verbose == 1:
		lvl = zerolog.DebugLevel
	case verbose >= 2:
		lvl = zerolog.TraceLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func configuredLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
