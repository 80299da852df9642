package config

import (
	"testing"

	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/loglevel"
)

func TestLoadBytes_BuildChain(t *testing.T) {
	yaml := `
version: 1
filters:
  - type: LogLevelRangeFilter
    options:
      LogLevelMin: WARN
      LogLevelMax: ERROR
  - type: DenyAllFilter
`
	f, err := LoadBytes([]byte(yaml))
	if err != nil {
		t.Fatal(err)
	}
	chain, err := f.BuildChain(nil)
	if err != nil {
		t.Fatal(err)
	}
	if chain.Len() != 2 {
		t.Fatalf("expected 2 filters, got %d", chain.Len())
	}

	warnEv := &api.Event{Level: loglevel.WarnLevel, Message: "warn log message"}
	infoEv := &api.Event{Level: loglevel.InfoLevel, Message: "info log message"}
	if got := chain.Evaluate(warnEv); got != api.Accept {
		t.Errorf("expected accept for in-range event, got %s", got)
	}
	if got := chain.Evaluate(infoEv); got != api.Deny {
		t.Errorf("expected deny for out-of-range event, got %s", got)
	}
}

func TestLoadBytes_OptionDefaults(t *testing.T) {
	yaml := `
version: 1
filters:
  - type: NDCMatchFilter
    options:
      NDCToMatch: request
      AcceptOnMatch: "False"
`
	f, err := LoadBytes([]byte(yaml))
	if err != nil {
		t.Fatal(err)
	}
	chain, err := f.BuildChain(nil)
	if err != nil {
		t.Fatal(err)
	}
	ev := &api.Event{Level: loglevel.InfoLevel, Message: "info log message", NDC: "request"}
	if got := chain.Evaluate(ev); got != api.Deny {
		t.Errorf("expected deny with AcceptOnMatch false, got %s", got)
	}
}

func TestLoadBytes_UnknownType(t *testing.T) {
	yaml := `
version: 1
filters:
  - type: TelepathyFilter
`
	if _, err := LoadBytes([]byte(yaml)); err == nil {
		t.Error("expected error for unknown filter type")
	}
}

func TestLoadBytes_MissingType(t *testing.T) {
	yaml := `
version: 1
filters:
  - options:
      StringToMatch: x
`
	if _, err := LoadBytes([]byte(yaml)); err == nil {
		t.Error("expected error for entry without a type")
	}
}

func TestLoadBytes_BadVersion(t *testing.T) {
	if _, err := LoadBytes([]byte("version: 2\n")); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile("testdata/filters.yaml")
	if err != nil {
		t.Fatal(err)
	}
	chain, err := f.BuildChain(nil)
	if err != nil {
		t.Fatal(err)
	}

	debugEv := &api.Event{Level: loglevel.DebugLevel, Message: "debug log message"}
	healthEv := &api.Event{Level: loglevel.InfoLevel, Message: "health check ok"}
	infoEv := &api.Event{Level: loglevel.InfoLevel, Message: "info log message"}
	if got := chain.Evaluate(healthEv); got != api.Deny {
		t.Errorf("expected deny for suppressed health check noise, got %s", got)
	}
	if got := chain.Evaluate(debugEv); got != api.Deny {
		t.Errorf("expected deny below INFO, got %s", got)
	}
	if got := chain.Evaluate(infoEv); got != api.Accept {
		t.Errorf("expected accept, got %s", got)
	}
}
