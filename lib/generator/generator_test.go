package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSS = `
/* card styles */
.card {
	padding: 12px;
	border-radius: 6px;
}

.card:hover {
	background: #eee;
}

.card-header {
	font-weight: 600;
}

div.broken { color: red; }
`

func TestParseFragments(t *testing.T) {
	fragments, warnings, err := ParseFragments(sampleCSS)
	if err != nil {
		t.Fatalf("ParseFragments failed: %v", err)
	}

	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}

	card := fragments[0]
	if card.Name != "Card" || card.Class != "card" {
		t.Errorf("fragment = %q/%q, want Card/card", card.Name, card.Class)
	}
	if len(card.Decls) != 2 {
		t.Fatalf("card has %d decls, want 2", len(card.Decls))
	}
	if card.Decls[0] != (Decl{Prop: "padding", Value: "12px"}) {
		t.Errorf("unexpected first decl %+v", card.Decls[0])
	}
	if len(card.Blocks) != 1 || card.Blocks[0].Selector != "&:hover" {
		t.Errorf("unexpected blocks %+v", card.Blocks)
	}

	header := fragments[1]
	if header.Name != "CardHeader" {
		t.Errorf("header name = %q, want CardHeader", header.Name)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "div.broken") {
		t.Errorf("expected a warning for div.broken, got %v", warnings)
	}
}

func TestParseFragmentsPseudoOnly(t *testing.T) {
	fragments, _, err := ParseFragments(`.btn:focus { outline: none; }`)
	if err != nil {
		t.Fatalf("ParseFragments failed: %v", err)
	}
	if len(fragments) != 1 {
		t.Fatalf("got %d fragments, want 1", len(fragments))
	}
	if len(fragments[0].Decls) != 0 || len(fragments[0].Blocks) != 1 {
		t.Errorf("unexpected fragment %+v", fragments[0])
	}
}

func TestParseFragmentsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed block", ".card { padding: 12px;"},
		{"empty selector", "{ padding: 12px; }"},
		{"bad declaration", ".card { padding }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseFragments(tt.src); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"card", "Card"},
		{"card-header", "CardHeader"},
		{"stack_tight", "StackTight"},
		{"btn--primary", "BtnPrimary"},
	}
	for _, tt := range tests {
		if got := goName(tt.in); got != tt.out {
			t.Errorf("goName(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestGenerateWritesFormattedGo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "card.css"), []byte(sampleCSS), 0644); err != nil {
		t.Fatal(err)
	}

	gen := New(Options{Package: "components"})
	if err := gen.Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "card_hx.go"))
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}

	src := string(out)
	for _, want := range []string{
		"package components",
		`import "github.com/pthm/hxstyle"`,
		"var Card = hxstyle.Static(hxstyle.CSS{",
		`"padding": "12px",`,
		`"&:hover": hxstyle.CSS{`,
		"var CardHeader = hxstyle.Static(hxstyle.CSS{",
		"DO NOT EDIT",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "card.css"), []byte(`.card { padding: 12px; }`), 0644); err != nil {
		t.Fatal(err)
	}

	gen := New(Options{DryRun: true})
	if err := gen.Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "card_hx.go")); !os.IsNotExist(err) {
		t.Error("dry run should not write files")
	}
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	gen := filepath.Join(dir, "card_hx.go")
	keep := filepath.Join(dir, "card.go")
	for _, f := range []string{gen, keep} {
		if err := os.WriteFile(f, []byte("package x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := New(Options{}).Clean(dir); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if _, err := os.Stat(gen); !os.IsNotExist(err) {
		t.Error("generated file should be removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("hand-written file should survive")
	}
}
