package filter

import (
	"log/slog"

	"github.com/jgornowich/log4cplus/api"
)

// Chain evaluates a sequence of filters in order until one of them renders a
// non-neutral verdict. A chain must be fully assembled before it is shared:
// Append is not synchronized with Evaluate, so build the chain, then publish
// it, and never append to a chain other goroutines may be traversing.
type Chain struct {
	filters []Filter
	logger  *slog.Logger
}

// NewChain creates a chain over the given filters. The logger may be nil to
// disable the per-evaluation debug line.
func NewChain(logger *slog.Logger, filters ...Filter) *Chain {
	return &Chain{
		filters: filters,
		logger:  logger,
	}
}

// Append adds a filter at the end of the chain.
func (c *Chain) Append(f Filter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.filters)
}

// Evaluate returns the chain's verdict for the event: the first non-neutral
// filter result, or Accept when every filter is neutral. An empty or nil
// chain accepts everything.
func (c *Chain) Evaluate(ev *api.Event) api.Result {
	verdict, _ := c.EvaluateDetail(ev)
	return verdict
}

// EvaluateDetail is Evaluate plus the name of the filter that decided, or
// "" when the chain was exhausted without a verdict.
func (c *Chain) EvaluateDetail(ev *api.Event) (api.Result, string) {
	if c == nil {
		return api.Accept, ""
	}
	for _, f := range c.filters {
		result := f.Decide(ev)
		if result == api.Neutral {
			continue
		}
		if c.logger != nil {
			c.logger.Debug("filter decided",
				"filter", f.Name(),
				"level", ev.Level.String(),
				"verdict", result,
			)
		}
		return result, f.Name()
	}
	return api.Accept, ""
}
