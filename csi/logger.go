package csi

import (
	"context"
	"log/slog"
)

// Phase names a step of the stream lifecycle.
type Phase string

// Lifecycle phases reported to the PhaseCallback.
const (
	PhaseReset    Phase = "reset"
	PhaseSettle   Phase = "settle"
	PhaseEnabled  Phase = "enabled"
	PhaseDisabled Phase = "disabled"
)

// PhaseCallback is called when Start or Stop moves the block to a new phase.
// Implementations should return quickly.
//
// Example:
//
//	ctrl := csi.New(bus,
//	    csi.WithPhaseCallback(func(p csi.Phase) {
//	        fmt.Println("csis:", p)
//	    }),
//	)
type PhaseCallback func(Phase)

// Logger is an optional logging interface that can be provided to the controller.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	ctrl := csi.New(bus, csi.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// SlogLogger adapts a *slog.Logger to Logger.
//
//	ctrl := csi.New(bus, csi.WithLogger(csi.SlogLogger{L: slog.Default()}))
type SlogLogger struct {
	L *slog.Logger
}

// Debug implements Logger.
func (s SlogLogger) Debug(msg string, kv ...interface{}) {
	s.L.Log(context.Background(), slog.LevelDebug, msg, kv...)
}

// Info implements Logger.
func (s SlogLogger) Info(msg string, kv ...interface{}) {
	s.L.Log(context.Background(), slog.LevelInfo, msg, kv...)
}

// Error implements Logger.
func (s SlogLogger) Error(msg string, kv ...interface{}) {
	s.L.Log(context.Background(), slog.LevelError, msg, kv...)
}
