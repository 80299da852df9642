package filter

import (
	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/properties"
)

// MDCMatchFilter compares one key of the event's mapped diagnostic context
// against a configured value. Same strict binary shape as NDCMatchFilter:
// after the empty guard, a mismatch renders the opposite verdict.
type MDCMatchFilter struct {
	key            string
	value          string
	accept         bool
	neutralOnEmpty bool
}

// NewMDCMatchFilter creates a filter matching the given mapped diagnostic
// context key and value.
func NewMDCMatchFilter(key, value string, acceptOnMatch, neutralOnEmpty bool) *MDCMatchFilter {
	return &MDCMatchFilter{key: key, value: value, accept: acceptOnMatch, neutralOnEmpty: neutralOnEmpty}
}

// MDCMatchFilterFromProperties creates an MDCMatchFilter from the keys
// MDCKeyToMatch, MDCValueToMatch, AcceptOnMatch (default true) and
// NeutralOnEmpty (default true).
func MDCMatchFilterFromProperties(p *properties.Properties) *MDCMatchFilter {
	return &MDCMatchFilter{
		key:            p.Get("MDCKeyToMatch"),
		value:          p.Get("MDCValueToMatch"),
		accept:         p.Bool("AcceptOnMatch", true),
		neutralOnEmpty: p.Bool("NeutralOnEmpty", true),
	}
}

func (f *MDCMatchFilter) Name() string { return "mdc-match" }

func (f *MDCMatchFilter) Decide(ev *api.Event) api.Result {
	if f.neutralOnEmpty && (f.key == "" || f.value == "") {
		return api.Neutral
	}
	actual := ev.MDCValue(f.key)
	if f.neutralOnEmpty && actual == "" {
		return api.Neutral
	}
	if actual == f.value {
		if f.accept {
			return api.Accept
		}
		return api.Deny
	}
	if f.accept {
		return api.Deny
	}
	return api.Accept
}
