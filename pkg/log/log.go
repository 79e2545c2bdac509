package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"

	// EnvLogLevel names the environment variable read by [NewWithCurrentConfig]
	// for the log level.
	EnvLogLevel = "RACELAB_LOG_LEVEL"
	// EnvLogFormat names the environment variable read by
	// [NewWithCurrentConfig] for the log format.
	EnvLogFormat = "RACELAB_LOG_FORMAT"
)

// ErrInvalidFormat indicates an unknown log format was requested.
var ErrInvalidFormat = errors.New("invalid log format")

// NewWithCurrentConfig creates a [slog.Logger] writing to stderr, configured
// from [EnvLogLevel] and [EnvLogFormat]. An unknown format falls back to text.
func NewWithCurrentConfig() *slog.Logger {
	h, err := CreateHandler(os.Stderr, os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
	if err != nil {
		h, _ = CreateHandler(os.Stderr, os.Getenv(EnvLogLevel), TextFormat)
	}

	return slog.New(h)
}

// CreateHandler creates a [slog.Handler] writing to w by strings. An empty
// format selects text.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case LogfmtFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			Formatter:       charmlog.LogfmtFormatter,
			ReportTimestamp: true,
		}), nil
	case TextFormat, "":
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			Formatter:       charmlog.TextFormatter,
			ReportTimestamp: true,
		}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, logFormat)
}

func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
