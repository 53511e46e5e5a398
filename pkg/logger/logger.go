package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Rotation settings for file logging
const (
	maxLogFileSizeMB  = 10
	maxLogFileBackups = 3
	maxLogFileAgeDays = 28
)

// Logger provides leveled printf-style logging. A nil *Logger discards
// everything, so components may hold one without checking.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	level   LogLevel
	verbose bool
}

// NewLogger creates a new logger writing to stderr
func NewLogger(level string, verbose bool) *Logger {
	return NewWriterLogger(os.Stderr, level, verbose)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer, level string, verbose bool) *Logger {
	return &Logger{
		out:     w,
		level:   ParseLogLevel(level),
		verbose: verbose,
	}
}

// NewFileLogger creates a logger writing to a size-rotated log file
func NewFileLogger(path, level string, verbose bool) *Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogFileSizeMB,
		MaxBackups: maxLogFileBackups,
		MaxAge:     maxLogFileAgeDays,
		Compress:   true,
	}
	l := NewWriterLogger(rotator, level, verbose)
	l.closer = rotator
	return l
}

// Debug logs debug information (only in debug mode)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l != nil && l.level <= LevelDebug {
		l.log("DEBUG", fmt.Sprintf(format, args...))
	}
}

// Info logs informational messages (only in verbose mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if l != nil && l.verbose && l.level <= LevelInfo {
		l.log("INFO", fmt.Sprintf(format, args...))
	}
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	if l != nil && l.level <= LevelWarn {
		l.log("WARN", fmt.Sprintf(format, args...))
	}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l != nil && l.level <= LevelError {
		l.log("ERROR", fmt.Sprintf(format, args...))
	}
}

// Progress logs step-by-step details (only in verbose mode)
func (l *Logger) Progress(emoji, format string, args ...interface{}) {
	if l != nil && l.verbose {
		l.write(fmt.Sprintf("%s %s\n", emoji, fmt.Sprintf(format, args...)))
	}
}

// ProgressAlways logs milestones that are shown regardless of verbose mode
func (l *Logger) ProgressAlways(emoji, format string, args ...interface{}) {
	if l != nil {
		l.write(fmt.Sprintf("%s %s\n", emoji, fmt.Sprintf(format, args...)))
	}
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// log outputs formatted log messages
func (l *Logger) log(level, message string) {
	l.write(fmt.Sprintf("%s [%s] %s\n", time.Now().Format(time.RFC3339), level, message))
}

func (l *Logger) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}

// ParseLogLevel converts string level to LogLevel
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// DefaultLogger returns a default logger instance
func DefaultLogger() *Logger {
	return NewLogger("info", false)
}

// Discard returns a logger that writes nothing
func Discard() *Logger {
	return NewWriterLogger(io.Discard, "error", false)
}
