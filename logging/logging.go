package logging

import (
	"fmt"
	"log"
	"sync/atomic"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var threshold int32 = WarnLevel

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// SetLevel sets the minimum level at which messages are emitted, for all Loggers
func SetLevel(level int) {
	atomic.StoreInt32(&threshold, int32(level))
}

// Level returns the minimum level at which messages are emitted
func Level() int {
	return int(atomic.LoadInt32(&threshold))
}

// Logger writes level-filtered messages, tagged with a source, to the standard logger
type Logger struct {
	source string
	out    *log.Logger
}

// New creates a Logger for the given source. A nil out writes to the standard logger.
func New(source string, out *log.Logger) *Logger {
	if out == nil {
		out = log.Default()
	}
	return &Logger{source: source, out: out}
}

// Enabled returns true iff messages at the given level would be emitted
func (l *Logger) Enabled(level int) bool {
	return level >= Level()
}

// Logf emits a message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("[%s] %s: %s", LogLevelToString(level), l.source, fmt.Sprintf(format, args...))
}

// Debugf emits a message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(DebugLevel, format, args...)
}

// Errorf emits a message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(ErrorLevel, format, args...)
}
