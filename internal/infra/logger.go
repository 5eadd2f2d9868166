package infra

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLogLevel resolves LOG_LEVEL. An empty value means debug in development
// and info everywhere else.
func ParseLogLevel(level, appEnv string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		if appEnv == "development" {
			return zerolog.DebugLevel, nil
		}
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL %q is invalid: %w", level, err)
	}
	return parsed, nil
}

// NewLogger builds the API logger. Development gets a console writer, other
// environments emit JSON lines on stdout.
func NewLogger(cfg *Config, service string) zerolog.Logger {
	level, err := ParseLogLevel(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.AppEnv == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return newLogger(out, level, service)
}

// NewCLILogger writes human-readable warnings to w so command output on
// stdout stays machine readable.
func NewCLILogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}, level, "modconctl")
}

func newLogger(out io.Writer, level zerolog.Level, service string) zerolog.Logger {
	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}
	return ctx.Logger()
}
