package api

import "github.com/jgornowich/log4cplus/loglevel"

// Result represents the outcome of a single filter decision, or of a whole
// chain evaluation.
type Result string

const (
	// Deny suppresses the event. Terminal: no later filter is consulted.
	Deny Result = "deny"
	// Neutral means the filter has no opinion; the next filter decides.
	Neutral Result = "neutral"
	// Accept lets the event through. Terminal like Deny.
	Accept Result = "accept"
)

// Event is an immutable snapshot of a log record handed to the filter chain.
// The diagnostic context values are captured at snapshot time and owned by
// the event; filters only read them.
type Event struct {
	// Message is the formatted log message text.
	Message string

	// Level is the severity the event was logged at.
	Level loglevel.Level

	// NDC is the flattened nested diagnostic context of the logging call.
	NDC string

	// MDC holds the mapped diagnostic context of the logging call.
	MDC map[string]string
}

// MDCValue returns the mapped diagnostic context value for key, or "" when
// the key is absent.
func (e *Event) MDCValue(key string) string {
	return e.MDC[key]
}

// CheckRequest is used by the CLI `check` command to dry-run an event.
type CheckRequest struct {
	Level   string            `json:"level"`
	Message string            `json:"message,omitempty"`
	NDC     string            `json:"ndc,omitempty"`
	MDC     map[string]string `json:"mdc,omitempty"`
}

// CheckResponse is the verdict of a dry-run check.
type CheckResponse struct {
	Verdict Result `json:"verdict"`
	Filter  string `json:"filter,omitempty"`
}
