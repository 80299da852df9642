package filter

import (
	"context"
	"fmt"
	"os"

	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"github.com/open-policy-agent/opa/storage/inmem"

	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/properties"
)

// RegoFilter evaluates an embedded Rego policy to decide on events. The
// policy lives in package logfilter and sets a `result` value of "accept",
// "deny" or "neutral":
//
//	package logfilter
//
//	import rego.v1
//
//	default result := "neutral"
//
//	result := "deny" if {
//		contains(input.message, "password")
//	}
//
// Input available to the policy:
//
//	input.message: string
//	input.level: string (TRACE, DEBUG, INFO, WARN, ERROR, FATAL)
//	input.ndc: string
//	input.mdc: object
//
// Evaluation errors, undefined results and unrecognized result values all
// degrade to Neutral, like any other misconfigured filter.
type RegoFilter struct {
	query rego.PreparedEvalQuery
}

// NewRegoFilter compiles a filter from raw Rego source.
func NewRegoFilter(source string) (*RegoFilter, error) {
	// Parse to validate before preparing.
	_, err := ast.ParseModuleWithOpts("filter.rego", source, ast.ParserOptions{RegoVersion: ast.RegoV1})
	if err != nil {
		return nil, fmt.Errorf("parsing Rego filter policy: %w", err)
	}

	r := rego.New(
		rego.Query("data.logfilter"),
		rego.Module("filter.rego", source),
		rego.Store(inmem.New()),
	)

	query, err := r.PrepareForEval(context.Background())
	if err != nil {
		return nil, fmt.Errorf("preparing Rego filter query: %w", err)
	}

	return &RegoFilter{query: query}, nil
}

// RegoFilterFromProperties creates a RegoFilter from the PolicyFile key,
// which names a .rego file on disk.
func RegoFilterFromProperties(p *properties.Properties) (*RegoFilter, error) {
	path := p.Get("PolicyFile")
	if path == "" {
		return nil, fmt.Errorf("RegoFilter requires a PolicyFile property")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading Rego filter policy: %w", err)
	}
	return NewRegoFilter(string(data))
}

func (f *RegoFilter) Name() string { return "rego" }

func (f *RegoFilter) Decide(ev *api.Event) api.Result {
	input := map[string]any{
		"message": ev.Message,
		"level":   ev.Level.String(),
		"ndc":     ev.NDC,
	}
	if ev.MDC != nil {
		input["mdc"] = ev.MDC
	}

	rs, err := f.query.Eval(context.Background(), rego.EvalInput(input))
	if err != nil || len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return api.Neutral
	}

	doc, ok := rs[0].Expressions[0].Value.(map[string]any)
	if !ok {
		return api.Neutral
	}

	switch doc["result"] {
	case "accept":
		return api.Accept
	case "deny":
		return api.Deny
	default:
		return api.Neutral
	}
}
