// Package logger provides a small leveled key/value logger for CLI output.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level controls which messages get through.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// AppLogger writes leveled messages with key/value fields to stderr.
type AppLogger struct {
	level Level
	out   *log.Logger
}

// New creates a logger filtering below the named level. Unknown names
// default to info.
func New(levelStr string) *AppLogger {
	return &AppLogger{
		level: parseLevel(levelStr),
		out:   log.New(os.Stderr, "", 0),
	}
}

// Debug logs a debug message.
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.write("DEBUG", msg, fields...)
	}
}

// Info logs an info message.
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	if l.level <= INFO {
		l.write("INFO", msg, fields...)
	}
}

// Warn logs a warning message.
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WARN {
		l.write("WARN", msg, fields...)
	}
}

// Error logs an error message.
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ERROR {
		allFields := append([]interface{}{"error", err}, fields...)
		l.write("ERROR", msg, allFields...)
	}
}

func (l *AppLogger) write(level, msg string, fields ...interface{}) {
	line := fmt.Sprintf("%s: %s", level, msg)

	if len(fields) > 0 {
		pairs := make([]string, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
		}
		if len(pairs) > 0 {
			line += " " + strings.Join(pairs, " ")
		}
	}

	l.out.Println(line)
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
