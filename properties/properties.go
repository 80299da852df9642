// Package properties provides the string-keyed option map used to construct
// filters from configuration. Lookups of absent keys yield the zero value;
// typed accessors take an explicit default that survives absent or
// unparseable values, so misconfiguration degrades instead of failing.
package properties

import (
	"sort"
	"strconv"
)

// Properties is an ordered set of string key/value pairs. The zero value is
// not usable; call New or FromMap.
type Properties struct {
	keys   []string
	values map[string]string
}

// New returns an empty property set.
func New() *Properties {
	return &Properties{values: make(map[string]string)}
}

// FromMap builds a property set from a plain map. Keys are inserted in
// sorted order so construction is deterministic.
func FromMap(m map[string]string) *Properties {
	p := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Set stores a value under key, preserving first-insertion order.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key, or "" when the key is absent.
func (p *Properties) Get(key string) string {
	return p.values[key]
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Bool returns the boolean value for key. The default is returned when the
// key is absent or its value does not parse as a boolean.
func (p *Properties) Bool(key string, def bool) bool {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
