// Package logging provides the leveled logger shared by vedit's components.
//
// The terminal belongs to the screen while the editor runs, so log output
// normally goes to a file opened with OpenFile, or is discarded with Null.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name case-insensitively. Unknown names yield
// LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// sink is the shared, locked destination of a logger family.
type sink struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	closer io.Closer
}

// Logger writes leveled, timestamped lines with key=value fields.
// Loggers derived with WithField share their parent's output and level.
type Logger struct {
	sink   *sink
	prefix string
	fields map[string]any
	now    func() time.Time
}

// Config configures a logger.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is written after the level on every line.
	Prefix string
}

// New creates a logger.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		sink:   &sink{out: cfg.Output, level: cfg.Level},
		prefix: cfg.Prefix,
		now:    time.Now,
	}
}

// OpenFile creates a logger appending to path, creating parent
// directories as needed. Close releases the file.
func OpenFile(path string, level Level, prefix string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(Config{Level: level, Output: f, Prefix: prefix})
	l.sink.closer = f
	return l, nil
}

// Null returns a logger that discards everything.
func Null() *Logger {
	return New(Config{Level: LevelError + 1, Output: io.Discard})
}

// Close closes the underlying file of a logger made by OpenFile.
func (l *Logger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.closer == nil {
		return nil
	}
	err := l.sink.closer.Close()
	l.sink.closer = nil
	l.sink.out = io.Discard
	return err
}

// WithField returns a logger that adds key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a logger that adds fields to every line.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{sink: l.sink, prefix: l.prefix, fields: merged, now: l.now}
}

// WithComponent returns a logger tagged with component.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel changes the minimum level for the logger and everything
// derived from it.
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// Level returns the minimum level.
func (l *Logger) Level() Level {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// Debug logs a debug message. args format msg as with fmt.Sprintf.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

func (l *Logger) log(level Level, msg string, args ...any) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if level < l.sink.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(l.now().Format("2006-01-02T15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
		}
		b.WriteString("}")
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.sink.out, b.String())
}
