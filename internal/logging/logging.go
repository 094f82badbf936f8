// Package logging implements mailersend.Logger on top of zerolog.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// FieldComponent tags every entry written by a component logger.
const FieldComponent = "component"

// Logger wraps zerolog.Logger.
type Logger struct {
	logger zerolog.Logger
}

var _ mailersend.Logger = (*Logger)(nil)

// NewZerolog creates a JSON logger writing to w. Unknown levels fall back to
// info.
func NewZerolog(w io.Writer, level string) *Logger {
	return &Logger{
		logger: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// NewConsole creates a human readable logger for terminals.
func NewConsole(w io.Writer, level string, noColor bool) *Logger {
	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}

	return &Logger{
		logger: zerolog.New(writer).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// New picks the writer by format name.
func New(w io.Writer, level, format string) *Logger {
	if strings.EqualFold(format, FormatConsole) {
		return NewConsole(w, level, false)
	}

	return NewZerolog(w, level)
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return parsed
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// Zerolog returns the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	addFields(l.logger.Debug(), fields).Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	addFields(l.logger.Info(), fields).Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	addFields(l.logger.Warn(), fields).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	addFields(l.logger.Error(), fields).Msg(msg)
}

func addFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		if err, ok := v.(error); ok {
			event.AnErr(k, err)

			continue
		}

		event.Interface(k, v)
	}

	return event
}
