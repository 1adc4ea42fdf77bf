package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures the optional rotating file sink.
type LogOptions struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Debug      bool
}

// Logger provides structured, leveled logging throughout the application.
// Console lines carry ANSI level colours; the file copy is plain text.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger

	mu           sync.Mutex
	file         io.WriteCloser
	debugEnabled bool
}

// NewLogger creates a new Logger writing to stdout/stderr with debug enabled.
func NewLogger() *Logger {
	flags := 0
	return &Logger{
		info:         log.New(os.Stdout, "", flags),
		warn:         log.New(os.Stdout, "", flags),
		err:          log.New(os.Stderr, "", flags),
		debug:        log.New(os.Stdout, "", flags),
		debugEnabled: true,
	}
}

// NewLoggerWithOptions creates a console Logger that also appends to a
// size-rotated log file when opts.File is set.
func NewLoggerWithOptions(opts LogOptions) *Logger {
	l := NewLogger()
	l.debugEnabled = opts.Debug
	if opts.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
	}
	return l
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.emit(l.info, "\033[32mINFO\033[0m ", "INFO ", format, args...)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(l.warn, "\033[33mWARN\033[0m ", "WARN ", format, args...)
}

// Error logs a failure to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.emit(l.err, "\033[31mERROR\033[0m", "ERROR", format, args...)
}

// Debug logs a message only when debug output is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if !l.debugEnabled {
		return
	}
	l.emit(l.debug, "\033[36mDEBUG\033[0m", "DEBUG", format, args...)
}

func (l *Logger) emit(console *log.Logger, colouredLevel, plainLevel, format string, args ...any) {
	ts := l.timestamp()
	msg := fmt.Sprintf(format, args...)
	console.Printf("[%s] %s %s\n", ts, colouredLevel, msg)

	if l.file == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.file, "[%s] %s %s\n", ts, plainLevel, msg)
}
