// Package logging configures the process logger. Console output goes to
// stderr so the stdout diagnostic sink stays machine-readable.
package logging

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "FIELDRIG_LOG_LEVEL"
	EnvLogNoColor = "FIELDRIG_LOG_NOCOLOR"
)

// Init builds the process logger and installs it as the zerolog global.
func Init(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor(),
	}
	logger := zerolog.New(output).
		Level(level()).
		With().
		Timestamp().
		Str("app", app).
		Logger()
	log.Logger = logger
	return logger
}

func level() zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func noColor() bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvLogNoColor)))
	if err != nil {
		return false
	}
	return v
}
