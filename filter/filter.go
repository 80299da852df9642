// Package filter implements the decision pipeline consulted before a log
// event is emitted. A chain of filters is evaluated in order; each filter
// accepts the event, denies it, or stays neutral and defers to the next one.
// Filters are immutable once constructed and Decide is a pure function of
// the filter's configuration and the event, so a fully built chain may be
// evaluated from any number of goroutines without locking.
package filter

import "github.com/jgornowich/log4cplus/api"

// Filter is a single decision stage in a chain.
type Filter interface {
	// Name returns the filter name for logging and verdict reporting.
	Name() string

	// Decide returns this filter's verdict for the event. It must not
	// modify the event or the filter's own state.
	Decide(ev *api.Event) api.Result
}
