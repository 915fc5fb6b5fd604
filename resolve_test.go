package hxstyle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveRightOverridesLeft(t *testing.T) {
	left := Static(CSS{"a": "1"})
	right := Static(CSS{"a": "2", "b": "3"})

	got := Resolve(Merge(left, right))
	want := CSS{"a": "2", "b": "3"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved object mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNestedMerge(t *testing.T) {
	base := Static(CSS{
		"padding": "12px",
		"&:hover": CSS{"background": "#eee", "color": "#111"},
	})
	override := Static(CSS{
		"&:hover": CSS{"color": "#8b5cf6"},
	})

	got := Resolve(Merge(base, override))
	want := CSS{
		"padding": "12px",
		"&:hover": CSS{"background": "#eee", "color": "#8b5cf6"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("nested merge mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveVariants(t *testing.T) {
	accent := Func(func(color string) CSS {
		return CSS{"border-color": color}
	})

	tests := []struct {
		name string
		node *Style
		want CSS
	}{
		{"none", None(), nil},
		{"static", Static(CSS{"padding": "12px"}), CSS{"padding": "12px"}},
		{"dynamic", Dynamic(CSS{"width": "40px"}), CSS{"width": "40px"}},
		{"func", accent("#333"), CSS{"border-color": "#333"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.node)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	baseObj := CSS{"a": "1", "&:hover": CSS{"color": "#111"}}
	base := Static(baseObj)
	override := Static(CSS{"a": "2", "&:hover": CSS{"color": "#222"}})

	Resolve(Merge(base, override))

	want := CSS{"a": "1", "&:hover": CSS{"color": "#111"}}
	if diff := cmp.Diff(want, baseObj); diff != "" {
		t.Errorf("resolving a merge mutated the left object (-want +got):\n%s", diff)
	}
}

func TestResolveMergeWithAbsentSide(t *testing.T) {
	funcNone := Func(func(p int) CSS { return nil })

	// A func node resolving to nil leaves the other side untouched: the
	// very same map comes back, not a merged copy.
	obj := CSS{"padding": "12px"}
	static := Static(obj)

	got := Resolve(Merge(static, funcNone(1)))
	if diff := cmp.Diff(obj, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	// Reference check: no merge work should have happened.
	got["probe"] = "x"
	if obj["probe"] != "x" {
		t.Error("expected the stored object back unchanged, got a copy")
	}
	delete(obj, "probe")
}
