// Package diagctx carries nested and mapped diagnostic context on a
// context.Context instead of thread-local storage. Contexts are derived, not
// mutated: Push and WithValue return a child context, and "popping" the
// nested context is simply returning to the parent. Snapshot freezes the
// current values into an event, so filters never touch ambient state.
package diagctx

import (
	"context"
	"maps"

	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/loglevel"
)

type ndcKey struct{}
type mdcKey struct{}

// Push returns a child context whose nested diagnostic context has s
// appended. Nested values are flattened with single spaces, outermost first.
func Push(ctx context.Context, s string) context.Context {
	if cur := NDC(ctx); cur != "" {
		s = cur + " " + s
	}
	return context.WithValue(ctx, ndcKey{}, s)
}

// NDC returns the flattened nested diagnostic context of ctx, or "".
func NDC(ctx context.Context) string {
	s, _ := ctx.Value(ndcKey{}).(string)
	return s
}

// WithValue returns a child context whose mapped diagnostic context has key
// set to value. The parent's map is copied, never modified.
func WithValue(ctx context.Context, key, value string) context.Context {
	m := maps.Clone(mdc(ctx))
	if m == nil {
		m = make(map[string]string, 1)
	}
	m[key] = value
	return context.WithValue(ctx, mdcKey{}, m)
}

// Value returns the mapped diagnostic context value for key, or "" when the
// key is absent.
func Value(ctx context.Context, key string) string {
	return mdc(ctx)[key]
}

// Mapped returns a copy of the full mapped diagnostic context of ctx. The
// result is nil when nothing was set.
func Mapped(ctx context.Context) map[string]string {
	return maps.Clone(mdc(ctx))
}

func mdc(ctx context.Context) map[string]string {
	m, _ := ctx.Value(mdcKey{}).(map[string]string)
	return m
}

// Snapshot builds an event from the message and level plus the diagnostic
// context currently carried by ctx.
func Snapshot(ctx context.Context, level loglevel.Level, message string) *api.Event {
	return &api.Event{
		Message: message,
		Level:   level,
		NDC:     NDC(ctx),
		MDC:     Mapped(ctx),
	}
}
