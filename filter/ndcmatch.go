package filter

import (
	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/properties"
)

// NDCMatchFilter compares the event's nested diagnostic context against a
// configured value. Unlike the level and string match filters it is a strict
// binary classifier: once the empty guard passes, a mismatch renders the
// opposite verdict rather than neutral. With neutralOnEmpty set (the
// default) an empty configured value or an empty event context short-
// circuits to neutral; with it cleared, both sides empty counts as a match.
type NDCMatchFilter struct {
	ndc            string
	accept         bool
	neutralOnEmpty bool
}

// NewNDCMatchFilter creates a filter matching the given nested diagnostic
// context value.
func NewNDCMatchFilter(ndc string, acceptOnMatch, neutralOnEmpty bool) *NDCMatchFilter {
	return &NDCMatchFilter{ndc: ndc, accept: acceptOnMatch, neutralOnEmpty: neutralOnEmpty}
}

// NDCMatchFilterFromProperties creates an NDCMatchFilter from the keys
// NDCToMatch, AcceptOnMatch (default true) and NeutralOnEmpty (default
// true).
func NDCMatchFilterFromProperties(p *properties.Properties) *NDCMatchFilter {
	return &NDCMatchFilter{
		ndc:            p.Get("NDCToMatch"),
		accept:         p.Bool("AcceptOnMatch", true),
		neutralOnEmpty: p.Bool("NeutralOnEmpty", true),
	}
}

func (f *NDCMatchFilter) Name() string { return "ndc-match" }

func (f *NDCMatchFilter) Decide(ev *api.Event) api.Result {
	if f.neutralOnEmpty && (f.ndc == "" || ev.NDC == "") {
		return api.Neutral
	}
	if ev.NDC == f.ndc {
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
