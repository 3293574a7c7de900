// Package log provides the application logger: a thin facade over logrus
// with structured fields, optional JSON output, and optional file output.
// The TUI owns the terminal, so file-backed logging writes to the file only
// and the default output is stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"browsd/internal/errors"

	"github.com/sirupsen/logrus"
)

const callerKey = "caller"

// Field is one structured logging key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger plus the optional log file it owns
type Logger struct {
	l       *logrus.Logger
	file    *os.File
	openErr error
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.l.SetOutput(w)
	}
}

// WithFile directs log output to the named file, creating it if needed.
// The open error, if any, is surfaced through Setup.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.openErr = err
			return
		}
		l.file = f
		l.l.SetOutput(f)
	}
}

// WithJSON switches the logger to JSON output
func WithJSON() Option {
	return func(l *Logger) {
		l.l.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithLevel sets the minimum level from its string name. Unknown names
// leave the level unchanged.
func WithLevel(level string) Option {
	return func(l *Logger) {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return
		}
		l.l.SetLevel(parsed)
	}
}

// NewLogger builds a Logger with the given options applied over the
// defaults (stderr, text format, info level)
func NewLogger(opts ...Option) *Logger {
	l := &Logger{l: logrus.New()}
	l.l.SetOutput(os.Stderr)
	l.l.SetLevel(logrus.InfoLevel)
	l.l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var logger = NewLogger()

// Configure replaces the global logger with one built from opts
func Configure(opts ...Option) {
	Close()
	logger = NewLogger(opts...)
}

// Setup configures the global logger from the config surface: a level name
// and an optional log file path. An empty path keeps stderr output.
func Setup(level, file string) error {
	opts := []Option{WithLevel(level)}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return errors.Wrapf(err, "creating log directory for %s", file)
		}
		opts = append(opts, WithFile(file))
	}
	Configure(opts...)
	if logger.openErr != nil {
		return errors.Wrapf(logger.openErr, "opening log file %s", file)
	}
	return nil
}

// SetDebug toggles debug-level logging on the global logger
func SetDebug(debug bool) {
	if debug {
		logger.l.SetLevel(logrus.DebugLevel)
	} else {
		logger.l.SetLevel(logrus.InfoLevel)
	}
}

// Close releases the global logger's file, if one is open
func Close() {
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

// caller reports the file:line that invoked the public logging call
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Entry is a logging entry carrying structured fields
type Entry struct {
	e *logrus.Entry
}

// With adds more fields to the entry
func (e *Entry) With(fields ...Field) *Entry {
	return &Entry{e: e.e.WithFields(toLogrus(fields))}
}

// Info logs the entry at info level
func (e *Entry) Info(args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Info(args...)
}

// Infof logs a formatted message at info level
func (e *Entry) Infof(format string, args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Infof(format, args...)
}

// Debug logs the entry at debug level
func (e *Entry) Debug(args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Debug(args...)
}

// Debugf logs a formatted message at debug level
func (e *Entry) Debugf(format string, args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Debugf(format, args...)
}

// Warn logs the entry at warn level
func (e *Entry) Warn(args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Warn(args...)
}

// Warnf logs a formatted message at warn level
func (e *Entry) Warnf(format string, args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Warnf(format, args...)
}

// Error logs the entry at error level
func (e *Entry) Error(args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Error(args...)
}

// Errorf logs a formatted message at error level
func (e *Entry) Errorf(format string, args ...interface{}) {
	e.e.WithField(callerKey, caller(2)).Errorf(format, args...)
}

func toLogrus(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

// With starts an entry with structured fields on this logger
func (l *Logger) With(fields ...Field) *Entry {
	return &Entry{e: l.l.WithFields(toLogrus(fields))}
}

// Info logs at info level
func (l *Logger) Info(args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Info(args...)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Infof(format, args...)
}

// Debug logs at debug level
func (l *Logger) Debug(args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Debug(args...)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Debugf(format, args...)
}

// Warn logs at warn level
func (l *Logger) Warn(args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Warn(args...)
}

// Warnf logs a formatted message at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Warnf(format, args...)
}

// Error logs at error level
func (l *Logger) Error(args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Error(args...)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.l.WithField(callerKey, caller(2)).Errorf(format, args...)
}

// Info logs at info level on the global logger
func Info(args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Info(args...)
}

// Infof logs a formatted message at info level on the global logger
func Infof(format string, args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Infof(format, args...)
}

// Debug logs at debug level on the global logger
func Debug(args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Debug(args...)
}

// Debugf logs a formatted message at debug level on the global logger
func Debugf(format string, args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Debugf(format, args...)
}

// Warn logs at warn level on the global logger
func Warn(args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Warn(args...)
}

// Warnf logs a formatted message at warn level on the global logger
func Warnf(format string, args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Warnf(format, args...)
}

// Error logs at error level on the global logger
func Error(args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Error(args...)
}

// Errorf logs a formatted message at error level on the global logger
func Errorf(format string, args ...interface{}) {
	logger.l.WithField(callerKey, caller(2)).Errorf(format, args...)
}

// LogWithFields starts a structured entry on the global logger
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError starts an entry carrying err and whatever typed detail
// (kind, path, config param) can be extracted from it
func LogWithError(err error) *Entry {
	fields := []Field{F("error", err)}

	var kinded interface{ Kind() errors.ErrorKind }
	if errors.As(err, &kinded) {
		fields = append(fields, F("error_kind", int(kinded.Kind())))
	}
	var pathErr *errors.PathError
	if errors.As(err, &pathErr) {
		fields = append(fields, F("path", pathErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) {
		fields = append(fields, F("param", configErr.Param()))
	}

	return logger.With(fields...)
}

// LogError logs err with a message at error level
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}
