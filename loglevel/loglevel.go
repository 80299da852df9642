// Package loglevel defines the ordered severity levels used by log events
// and filter configuration.
package loglevel

import "strings"

// Level represents the severity of a log event. Levels are totally ordered;
// comparisons use the ordinary < and > operators.
type Level int8

const (
	// TraceLevel for the most detailed diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable errors
	FatalLevel
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
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
		return "UNKNOWN"
	}
}

// Parse converts a level name to a Level. Matching is case-insensitive and
// "WARNING" is accepted as an alias for WARN. The second return value is
// false when the name is empty or not recognized; callers treat that as an
// unconfigured level rather than an error.
func Parse(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}
