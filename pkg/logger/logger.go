// Package logger provides basic logging functionalities.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger defines a simple interface for leveled logging.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
	levelFatal
)

func parseLevel(s string) level {
	switch s {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	case "fatal":
		return levelFatal
	default:
		return levelInfo
	}
}

// defaultLogger is a simple leveled logger built on the standard log package.
type defaultLogger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	fatalLogger *log.Logger
}

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

func newDefaultLogger(minLevel level) *defaultLogger {
	l := &defaultLogger{
		debugLogger: log.New(io.Discard, "", 0),
		infoLogger:  log.New(io.Discard, "", 0),
		warnLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		fatalLogger: log.New(os.Stderr, "FATAL: ", logFlags),
	}
	if minLevel <= levelDebug {
		l.debugLogger = log.New(os.Stdout, "DEBUG: ", logFlags)
	}
	if minLevel <= levelInfo {
		l.infoLogger = log.New(os.Stdout, "INFO:  ", logFlags)
	}
	if minLevel <= levelWarn {
		l.warnLogger = log.New(os.Stdout, "WARN:  ", logFlags)
	}
	if minLevel <= levelError {
		l.errorLogger = log.New(os.Stderr, "ERROR: ", logFlags)
	}
	return l
}

// NewLogger creates a new Logger instance.
// logLevel can be "debug", "info", "warn", "error" or "fatal".
func NewLogger(logLevel string) Logger {
	return newDefaultLogger(parseLevel(logLevel))
}

func (l *defaultLogger) Debug(args ...interface{}) { l.debugLogger.Println(args...) }

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.debugLogger.Printf(format, args...)
}

func (l *defaultLogger) Info(args ...interface{}) { l.infoLogger.Println(args...) }

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.infoLogger.Printf(format, args...)
}

func (l *defaultLogger) Warn(args ...interface{}) { l.warnLogger.Println(args...) }

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.warnLogger.Printf(format, args...)
}

func (l *defaultLogger) Error(args ...interface{}) { l.errorLogger.Println(args...) }

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.errorLogger.Printf(format, args...)
}

func (l *defaultLogger) Fatal(args ...interface{}) { l.fatalLogger.Fatalln(args...) }

func (l *defaultLogger) Fatalf(format string, args ...interface{}) {
	l.fatalLogger.Fatalf(format, args...)
}

// Global std logger instance, defaults to "info".
var std = newDefaultLogger(levelInfo)

// SetGlobalLogLevel reconfigures the global std logger's level.
func SetGlobalLogLevel(logLevel string) {
	std = newDefaultLogger(parseLevel(logLevel))
}

// Debug logs a debug message using the global std logger.
func Debug(args ...interface{}) { std.Debug(args...) }

// Debugf logs a debug message with formatting.
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

// Info logs an informational message using the global std logger.
func Info(args ...interface{}) { std.Info(args...) }

// Infof logs an informational message with formatting.
func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

// Warn logs a warning message.
func Warn(args ...interface{}) { std.Warn(args...) }

// Warnf logs a warning message with formatting.
func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

// Error logs an error message.
func Error(args ...interface{}) { std.Error(args...) }

// Errorf logs an error message with formatting.
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// Fatal logs a fatal error message and exits.
func Fatal(args ...interface{}) { std.Fatal(args...) }

// Fatalf logs a fatal error message with formatting and exits.
func Fatalf(format string, args ...interface{}) { std.Fatalf(format, args...) }
