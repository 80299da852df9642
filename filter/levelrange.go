package filter

import (
	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/loglevel"
	"github.com/jgornowich/log4cplus/properties"
)

// LevelRangeFilter denies events outside a [min, max] level range. Events in
// range are accepted, or left to later filters when acceptOnMatch is false.
// Either bound may be nil, meaning unbounded on that side; each configured
// bound triggers denial on its own.
type LevelRangeFilter struct {
	min    *loglevel.Level
	max    *loglevel.Level
	accept bool
}

// NewLevelRangeFilter creates a filter over the given bounds. A nil bound is
// unbounded.
func NewLevelRangeFilter(min, max *loglevel.Level, acceptOnMatch bool) *LevelRangeFilter {
	return &LevelRangeFilter{min: min, max: max, accept: acceptOnMatch}
}

// LevelRangeFilterFromProperties creates a LevelRangeFilter from the keys
// LogLevelMin, LogLevelMax and AcceptOnMatch (default true). An absent or
// unrecognized level name leaves that bound open.
func LevelRangeFilterFromProperties(p *properties.Properties) *LevelRangeFilter {
	f := &LevelRangeFilter{accept: p.Bool("AcceptOnMatch", true)}
	if min, ok := loglevel.Parse(p.Get("LogLevelMin")); ok {
		f.min = &min
	}
	if max, ok := loglevel.Parse(p.Get("LogLevelMax")); ok {
		f.max = &max
	}
	return f
}

func (f *LevelRangeFilter) Name() string { return "level-range" }

func (f *LevelRangeFilter) Decide(ev *api.Event) api.Result {
	if f.min != nil && ev.Level < *f.min {
		return api.Deny
	}
	if f.max != nil && ev.Level > *f.max {
		return api.Deny
	}
	if f.accept {
		return api.Accept
	}
	// In range; let later filters have a look.
	return api.Neutral
}
