package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/rs/zerolog"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level
func ParseLevel(name string) (Level, error) {
	zl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return INFO, fmt.Errorf("unknown log level %q: %w", name, err)
	}

	switch {
	case zl == zerolog.NoLevel:
		return INFO, nil
	case zl <= zerolog.DebugLevel:
		return DEBUG, nil
	case zl == zerolog.InfoLevel:
		return INFO, nil
	case zl == zerolog.WarnLevel:
		return WARN, nil
	default:
		return ERROR, nil
	}
}

// Logger wraps a zerolog logger behind printf-style leveled methods
type Logger struct {
	zl    zerolog.Logger
	level Level
}

// NewLogger creates a logger writing JSON lines to stderr
func NewLogger(level Level) *Logger {
	return New(os.Stderr, level, false)
}

// New creates a logger writing to w. Pretty output uses zerolog's console writer.
func New(w io.Writer, level Level, pretty bool) *Logger {
	output := w
	if pretty {
		output = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05.000"}
	}

	zl := zerolog.New(output).
		Level(level.zerolog()).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1).
		Logger()

	return &Logger{zl: zl, level: level}
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() Level {
	return l.level
}

// With returns a child logger that adds the key/value pair to every entry
func (l *Logger) With(key, value string) *Logger {
	return &Logger{
		zl:    l.zl.With().Str(key, value).Logger(),
		level: l.level,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// LogError logs a GameError with its code, detail and cause as fields
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		event := l.zl.Error().
			Str("code", string(gameErr.Code)).
			Str("detail", gameErr.Message)
		if gameErr.Err != nil {
			event = event.AnErr("cause", gameErr.Err)
		}
		event.Msg("game error occurred")
		return
	}

	l.zl.Error().Err(err).Msg("unexpected error")
}

// Default logger instance
var Default = NewLogger(INFO)
