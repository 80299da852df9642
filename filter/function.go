package filter

import "github.com/jgornowich/log4cplus/api"

// FunctionFilter wraps an arbitrary decision function, letting embedding
// code put ad-hoc logic into a chain without defining a filter type. The
// function's result is returned verbatim; it must be pure and must not
// panic.
type FunctionFilter struct {
	name string
	fn   func(*api.Event) api.Result
}

// NewFunctionFilter creates a FunctionFilter. The name is used for logging
// and verdict reporting; "function" is used when it is empty.
func NewFunctionFilter(name string, fn func(*api.Event) api.Result) *FunctionFilter {
	if name == "" {
		name = "function"
	}
	return &FunctionFilter{name: name, fn: fn}
}

func (f *FunctionFilter) Name() string { return f.name }

func (f *FunctionFilter) Decide(ev *api.Event) api.Result {
	return f.fn(ev)
}
