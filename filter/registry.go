package filter

import (
	"fmt"
	"sort"

	"github.com/jgornowich/log4cplus/properties"
)

// Factory constructs a filter from its configuration properties.
type Factory func(p *properties.Properties) (Filter, error)

// factories maps the documented configuration type names to their property
// constructors. FunctionFilter has no entry: it wraps code, which a config
// file cannot supply.
var factories = map[string]Factory{
	"DenyAllFilter": func(p *properties.Properties) (Filter, error) {
		return DenyAllFilterFromProperties(p), nil
	},
	"LogLevelMatchFilter": func(p *properties.Properties) (Filter, error) {
		return LevelMatchFilterFromProperties(p), nil
	},
	"LogLevelRangeFilter": func(p *properties.Properties) (Filter, error) {
		return LevelRangeFilterFromProperties(p), nil
	},
	"StringMatchFilter": func(p *properties.Properties) (Filter, error) {
		return StringMatchFilterFromProperties(p), nil
	},
	"NDCMatchFilter": func(p *properties.Properties) (Filter, error) {
		return NDCMatchFilterFromProperties(p), nil
	},
	"MDCMatchFilter": func(p *properties.Properties) (Filter, error) {
		return MDCMatchFilterFromProperties(p), nil
	},
	"RegoFilter": func(p *properties.Properties) (Filter, error) {
		return RegoFilterFromProperties(p)
	},
}

// FromType constructs a filter of the named type from the given properties.
// The name must be one of the registered configuration type names.
func FromType(typ string, p *properties.Properties) (Filter, error) {
	factory, ok := factories[typ]
	if !ok {
		return nil, fmt.Errorf("unknown filter type %q", typ)
	}
	return factory(p)
}

// KnownType reports whether typ is a registered filter type name.
func KnownType(typ string) bool {
	_, ok := factories[typ]
	return ok
}

// Types returns the registered filter type names in sorted order.
func Types() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
