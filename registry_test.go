package wscodec

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if _, ok := Lookup[string](r); !ok {
		t.Fatal("missing text codec")
	}
	if _, ok := Lookup[[]byte](r); !ok {
		t.Fatal("missing bytes codec")
	}
	if _, ok := Lookup[url.Values](r); !ok {
		t.Fatal("missing form codec")
	}
	if _, ok := Lookup[json.RawMessage](r); !ok {
		t.Fatal("missing json codec")
	}
	if _, ok := Lookup[HTML](r); !ok {
		t.Fatal("missing html codec")
	}
	if _, ok := Lookup[Script](r); !ok {
		t.Fatal("missing script codec")
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if _, ok := Lookup[greeting](r); ok {
		t.Fatal("lookup on empty registry succeeded")
	}
	Register(r, JSON[greeting]())
	c, ok := Lookup[greeting](r)
	if !ok {
		t.Fatal("registered codec not found")
	}
	want := greeting{Name: "bo", Count: 1}
	got, ok, err := c.Decode(c.Encode(want))
	if err != nil || !ok || got != want {
		t.Fatalf("round trip via registry: got %+v ok=%v err=%v", got, ok, err)
	}
	if r.Len() != 1 {
		t.Fatalf("len: got %d, want 1", r.Len())
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	Register(r, Text())
	Register(r, plainStringCodec())
	c, ok := Lookup[string](r)
	if !ok {
		t.Fatal("codec not found after replace")
	}
	if c.Name() != "plainstr" {
		t.Fatalf("replace kept old codec %q", c.Name())
	}
	if r.Len() != 1 {
		t.Fatalf("len after replace: got %d, want 1", r.Len())
	}
}

// plainStringCodec exists only to observe replacement in the registry.
func plainStringCodec() FrameCodec[string] {
	return Transform(Text(), "plainstr",
		func(s string) string { return s },
		func(s string) (string, error) { return s, nil },
	)
}
