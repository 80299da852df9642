package filter

import (
	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/properties"
)

// DenyAllFilter denies every event. Appended at the end of a chain it turns
// the default accept-on-exhaustion policy into a whitelist: only events an
// earlier filter explicitly accepted get through.
type DenyAllFilter struct{}

// NewDenyAllFilter creates a DenyAllFilter.
func NewDenyAllFilter() *DenyAllFilter {
	return &DenyAllFilter{}
}

// DenyAllFilterFromProperties creates a DenyAllFilter. The filter has no
// options; the properties are ignored.
func DenyAllFilterFromProperties(_ *properties.Properties) *DenyAllFilter {
	return &DenyAllFilter{}
}

func (f *DenyAllFilter) Name() string { return "deny-all" }

func (f *DenyAllFilter) Decide(_ *api.Event) api.Result {
	return api.Deny
}
