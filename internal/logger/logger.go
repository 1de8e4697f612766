// Package logger provides leveled logging to stderr for the CLI and the
// retrieval pipeline.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is a log severity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Logger writes timestamped leveled messages to a single writer.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

var std = &Logger{level: LevelInfo, out: os.Stderr}

// SetLevel sets the minimum level of the package-level logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput redirects the package-level logger, mainly for tests.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.out = w
}

// Debug logs at DEBUG level.
func Debug(format string, args ...interface{}) { std.log(LevelDebug, format, args...) }

// Info logs at INFO level.
func Info(format string, args ...interface{}) { std.log(LevelInfo, format, args...) }

// Warn logs at WARN level.
func Warn(format string, args ...interface{}) { std.log(LevelWarn, format, args...) }

// Error logs at ERROR level.
func Error(format string, args ...interface{}) { std.log(LevelError, format, args...) }

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.out, "%s [%s] %s\n", ts, levelNames[level], fmt.Sprintf(format, args...))
}
