// Package log writes diagnostics to a log file and, for problems, to stderr.
// Standard output is left alone so it only ever carries the report.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes every line to a file and warnings or errors to a console stream.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	out     io.Writer // file sink
	console io.Writer // warnings and errors
	runID   string
}

// New creates a logger that appends to logPath, creating its directory, and
// echoes warnings and errors to console.
func New(logPath string, console io.Writer) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:    file,
		out:     file,
		console: console,
	}, nil
}

// SetRunID tags every following line with id.
func (l *Logger) SetRunID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runID = id
}

func (l *Logger) write(level string, toConsole bool, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %-5s %s\n", timestamp, level, msg)
	if l.runID != "" {
		line = fmt.Sprintf("[%s] %-5s run=%s %s\n", timestamp, level, l.runID, msg)
	}

	_, _ = fmt.Fprint(l.out, line)
	if toConsole && l.console != nil {
		_, _ = fmt.Fprintf(l.console, "%s: %s\n", level, msg)
	}
}

// Debugf writes a formatted debug line to the log file.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write("DEBUG", false, format, args...)
}

// Infof writes a formatted line to the log file.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write("INFO", false, format, args...)
}

// Warnf writes a formatted warning to the console and log file.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write("WARN", true, format, args...)
}

// Errorf writes a formatted error to the console and log file.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write("ERROR", true, format, args...)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger with stderr as the console stream.
func Init(logPath string) error {
	logger, err := New(logPath, os.Stderr)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// SetRunID tags the global logger's lines with id.
func SetRunID(id string) {
	if globalLogger != nil {
		globalLogger.SetRunID(id)
	}
}

// Debugf logs through the global logger. Dropped when uninitialized.
func Debugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

// Infof logs through the global logger. Dropped when uninitialized.
func Infof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

// Warnf logs a warning through the global logger, or to stderr.
func Warnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
	}
}

// Errorf logs an error through the global logger, or to stderr.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	}
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		err := globalLogger.Close()
		globalLogger = nil
		return err
	}
	return nil
}
