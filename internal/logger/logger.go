package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// NoColor disables ANSI colors in human readable output.
	NoColor bool
	Writer  io.Writer
	// Fields are written on every entry.
	Fields map[string]any
}

// Logger wraps zerolog to provide a simplified API for the application.
// A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    opts.NoColor,
			TimeFormat: time.RFC3339,
		}
	}

	base := &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}
	if len(opts.Fields) > 0 {
		base = base.WithFields(opts.Fields)
	}
	return base, nil
}

// ParseLevel maps a level name to a zerolog level; "" means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// Nop returns a logger that writes nowhere.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
// Keys are applied in sorted order so output is stable.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	builder := l.base.With()
	for _, key := range keys {
		builder = builder.Interface(key, fields[key])
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// With returns a derived logger carrying a single extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Interface(key, value).Logger()}
	return &derived
}

// WithComponent tags entries with the component identifier.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With("component", name)
}

// WithCorrelationID tags entries with the supplied id, generating a UUIDv4 when id is empty.
func (l *Logger) WithCorrelationID(id string) *Logger {
	if id == "" {
		id = NewCorrelationID()
	}
	return l.With("correlation_id", id)
}

// NewCorrelationID produces an id suitable for tagging one CLI invocation.
func NewCorrelationID() string {
	return uuid.NewString()
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	l.write(zerolog.InfoLevel, nil, msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	l.write(zerolog.DebugLevel, nil, msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	l.write(zerolog.WarnLevel, nil, msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	l.write(zerolog.ErrorLevel, err, msg)
}

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
