package ux

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ZerologLogger implements Logger using zerolog
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger uses the global logger configured by the CLI's logging layer
func NewZerologLogger() Logger {
	return &ZerologLogger{logger: log.Logger}
}

func NewZerologLoggerWithLogger(logger zerolog.Logger) Logger {
	return &ZerologLogger{logger: logger}
}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return &ZerologLogger{logger: zerolog.Nop()}
}

func (l *ZerologLogger) Info(msg string, fields ...LogField) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, fields ...LogField) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, fields ...LogField) {
	withFields(l.logger.Error(), fields).Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, fields ...LogField) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields []LogField) *zerolog.Event {
	for _, field := range fields {
		event = event.Interface(field.Key, field.Value)
	}
	return event
}
