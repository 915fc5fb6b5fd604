package stylekey

import (
	"strings"
	"testing"
)

func TestSerializeDeterministic(t *testing.T) {
	// Build two structurally equal maps through different insertion orders.
	a := map[string]any{}
	a["padding"] = "12px"
	a["color"] = "#333"
	a["border-radius"] = "6px"

	b := map[string]any{}
	b["border-radius"] = "6px"
	b["color"] = "#333"
	b["padding"] = "12px"

	for i := 0; i < 20; i++ {
		sa, err := Serialize(a)
		if err != nil {
			t.Fatalf("Serialize(a) failed: %v", err)
		}
		sb, err := Serialize(b)
		if err != nil {
			t.Fatalf("Serialize(b) failed: %v", err)
		}
		if sa != sb {
			t.Fatalf("equal maps serialized differently: %q vs %q", sa, sb)
		}
	}
}

func TestSerializeDistinguishesValues(t *testing.T) {
	sa, err := Serialize(map[string]any{"color": "red"})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	sb, err := Serialize(map[string]any{"color": "blue"})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if sa == sb {
		t.Error("different values produced the same serialization")
	}
}

func TestSerializeRejectsFunctions(t *testing.T) {
	_, err := Serialize(map[string]any{"fn": func() {}})
	if err == nil {
		t.Error("expected error serializing a function value")
	}
}

func TestHash(t *testing.T) {
	h1, err := Hash(map[string]any{"padding": "12px"})
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(h1) != 16 {
		t.Errorf("hash length = %d, want 16", len(h1))
	}

	h2, err := Hash(map[string]any{"padding": "12px"})
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 != h2 {
		t.Errorf("equal values hashed differently: %q vs %q", h1, h2)
	}

	h3, err := Hash(map[string]any{"padding": "16px"})
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h3 {
		t.Error("different values produced the same hash")
	}
}

func TestHashNestedOrderIndependent(t *testing.T) {
	a := map[string]any{
		"padding": "12px",
		"&:hover": map[string]any{"background": "#eee", "color": "#111"},
	}
	b := map[string]any{
		"&:hover": map[string]any{"color": "#111", "background": "#eee"},
		"padding": "12px",
	}

	ha, err := Hash(a)
	if err != nil {
		t.Fatalf("Hash(a) failed: %v", err)
	}
	hb, err := Hash(b)
	if err != nil {
		t.Fatalf("Hash(b) failed: %v", err)
	}
	if ha != hb {
		t.Errorf("nested map order changed the hash: %q vs %q", ha, hb)
	}
}

func TestToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := Token()
		if len(tok) != 16 {
			t.Fatalf("token length = %d, want 16", len(tok))
		}
		if strings.ContainsAny(tok, " ()") {
			t.Fatalf("token %q contains reserved key characters", tok)
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}
