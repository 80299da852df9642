package properties

import "testing"

func TestGetAbsent(t *testing.T) {
	p := New()
	if got := p.Get("missing"); got != "" {
		t.Errorf("expected empty string for absent key, got %q", got)
	}
	if p.Has("missing") {
		t.Error("expected Has to be false for absent key")
	}
}

func TestBoolDefaults(t *testing.T) {
	p := New()
	p.Set("AcceptOnMatch", "False")
	p.Set("Garbage", "not-a-bool")

	if p.Bool("AcceptOnMatch", true) {
		t.Error("expected False to override the default")
	}
	if !p.Bool("NeutralOnEmpty", true) {
		t.Error("expected absent key to keep the default true")
	}
	if !p.Bool("Garbage", true) {
		t.Error("expected unparseable value to keep the default")
	}
	if p.Bool("Garbage", false) {
		t.Error("expected unparseable value to keep the default false")
	}
}

func TestInsertionOrder(t *testing.T) {
	p := New()
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("b", "3")

	keys := p.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("unexpected key order: %v", keys)
	}
	if p.Get("b") != "3" {
		t.Errorf("expected overwrite to keep last value, got %q", p.Get("b"))
	}
}

func TestFromMapDeterministic(t *testing.T) {
	p := FromMap(map[string]string{"z": "1", "a": "2", "m": "3"})
	keys := p.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "m" || keys[2] != "z" {
		t.Errorf("expected sorted insertion order, got %v", keys)
	}
}
