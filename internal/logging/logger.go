package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to w. Unknown levels fall back to
// DefaultLevel.
func New(w io.Writer, level string, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = DefaultLevel
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "obdlog").Logger()
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return DefaultLevel, false
	}
}
