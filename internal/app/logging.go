package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel orders log messages by severity; a Logger drops anything below
// its own level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < LogLevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel accepts the names String prints in any case, plus "warning".
// Anything else is info.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "WARNING" {
		return LogLevelWarn
	}
	for i, name := range levelNames {
		if s == name {
			return LogLevel(i)
		}
	}
	return LogLevelInfo
}

// Logger writes levelled key=value lines. The terminal belongs to the
// screen, so output normally goes to a file or is discarded.
type Logger struct {
	mu     *sync.Mutex
	level  LogLevel
	output io.Writer
	fields []field
}

type field struct {
	key   string
	value any
}

// NewLogger creates a logger writing to w. A nil writer discards output.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{mu: &sync.Mutex{}, level: level, output: w}
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return NewLogger(io.Discard, LogLevelError)
}

// OpenLogFile opens path for appending. An empty path returns a discarding
// writer and a no-op closer.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// WithField returns a logger that adds key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make([]field, len(l.fields), len(l.fields)+1)
	copy(fields, l.fields)
	return &Logger{
		mu:     l.mu,
		level:  l.level,
		output: l.output,
		fields: append(fields, field{key, value}),
	}
}

// WithComponent returns a logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Debug logs a debug message with alternating key/value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	l.log(LogLevelDebug, msg, kv)
}

// Info logs an info message.
func (l *Logger) Info(msg string, kv ...any) {
	l.log(LogLevelInfo, msg, kv)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, kv ...any) {
	l.log(LogLevelWarn, msg, kv)
}

// Error logs an error message.
func (l *Logger) Error(msg string, kv ...any) {
	l.log(LogLevelError, msg, kv)
}

func (l *Logger) log(level LogLevel, msg string, kv []any) {
	if level < l.level {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", time.Now().Format("2006-01-02T15:04:05.000"), level, msg)

	fields := l.fields
	if len(kv) > 0 {
		fields = append(fields[:len(fields):len(fields)], pairs(kv)...)
	}
	sorted := make([]field, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].key < sorted[j].key })
	for _, f := range sorted {
		fmt.Fprintf(&b, " %s=%v", f.key, f.value)
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.output, b.String())
}

// pairs turns alternating key/value arguments into fields. A trailing key
// without a value is logged under "!BADKEY".
func pairs(kv []any) []field {
	fields := make([]field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			fields = append(fields, field{"!BADKEY", kv[i]})
			break
		}
		fields = append(fields, field{fmt.Sprint(kv[i]), kv[i+1]})
	}
	return fields
}
