package filter

import (
	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/loglevel"
	"github.com/jgornowich/log4cplus/properties"
)

// LevelMatchFilter decides on events logged at exactly one level: a matching
// event is accepted (or denied when acceptOnMatch is false), everything else
// is neutral. With no level configured the filter is inert.
type LevelMatchFilter struct {
	level  *loglevel.Level
	accept bool
}

// NewLevelMatchFilter creates a filter matching exactly the given level.
func NewLevelMatchFilter(level loglevel.Level, acceptOnMatch bool) *LevelMatchFilter {
	return &LevelMatchFilter{level: &level, accept: acceptOnMatch}
}

// LevelMatchFilterFromProperties creates a LevelMatchFilter from the keys
// LogLevelToMatch and AcceptOnMatch (default true). An absent or
// unrecognized level name leaves the filter inert.
func LevelMatchFilterFromProperties(p *properties.Properties) *LevelMatchFilter {
	f := &LevelMatchFilter{accept: p.Bool("AcceptOnMatch", true)}
	if level, ok := loglevel.Parse(p.Get("LogLevelToMatch")); ok {
		f.level = &level
	}
	return f
}

func (f *LevelMatchFilter) Name() string { return "level-match" }

func (f *LevelMatchFilter) Decide(ev *api.Event) api.Result {
	if f.level == nil {
		return api.Neutral
	}
	if ev.Level != *f.level {
		return api.Neutral
	}
	if f.accept {
		return api.Accept
	}
	return api.Deny
}
