package ux

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// StdLogger implements Logger using standard library log package.
// It is used when the zerolog logging layer has not been initialized,
// e.g. when the packages are embedded in another program.
type StdLogger struct {
	logger *log.Logger
	debug  bool
}

func NewStdLogger() Logger {
	return NewStdLoggerWithWriter(os.Stderr, false)
}

func NewStdLoggerWithWriter(w io.Writer, debug bool) *StdLogger {
	return &StdLogger{logger: log.New(w, "", log.LstdFlags), debug: debug}
}

func (l *StdLogger) Info(msg string, fields ...LogField) {
	l.logger.Printf("INFO: %s%s", msg, formatFields(fields))
}

func (l *StdLogger) Warn(msg string, fields ...LogField) {
	l.logger.Printf("WARN: %s%s", msg, formatFields(fields))
}

func (l *StdLogger) Error(msg string, fields ...LogField) {
	l.logger.Printf("ERROR: %s%s", msg, formatFields(fields))
}

func (l *StdLogger) Debug(msg string, fields ...LogField) {
	if !l.debug {
		return
	}
	l.logger.Printf("DEBUG: %s%s", msg, formatFields(fields))
}

func formatFields(fields []LogField) string {
	if len(fields) == 0 {
		return ""
	}

	var parts []string
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", field.Key, field.Value))
	}

	return " [" + strings.Join(parts, " ") + "]"
}
