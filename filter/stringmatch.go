package filter

import (
	"strings"

	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/properties"
)

// StringMatchFilter decides on events whose message contains a configured
// substring. Non-matching messages are neutral, never denied; with no
// substring configured the filter is inert.
type StringMatchFilter struct {
	substr string
	accept bool
}

// NewStringMatchFilter creates a filter matching messages containing substr.
func NewStringMatchFilter(substr string, acceptOnMatch bool) *StringMatchFilter {
	return &StringMatchFilter{substr: substr, accept: acceptOnMatch}
}

// StringMatchFilterFromProperties creates a StringMatchFilter from the keys
// StringToMatch and AcceptOnMatch (default true).
func StringMatchFilterFromProperties(p *properties.Properties) *StringMatchFilter {
	return &StringMatchFilter{
		substr: p.Get("StringToMatch"),
		accept: p.Bool("AcceptOnMatch", true),
	}
}

func (f *StringMatchFilter) Name() string { return "string-match" }

func (f *StringMatchFilter) Decide(ev *api.Event) api.Result {
	if f.substr == "" || ev.Message == "" {
		return api.Neutral
	}
	if !strings.Contains(ev.Message, f.substr) {
		return api.Neutral
	}
	if f.accept {
		return api.Accept
	}
	return api.Deny
}
