// Package generator turns plain CSS files into Go style fragment
// declarations.
//
// Running the generator over a directory finds every .css file and emits a
// sibling <name>_hx.go file declaring one hxstyle.Static fragment per
// class rule. Pseudo-class rules fold into their base fragment as nested
// blocks:
//
//	.card { padding: 12px; }
//	.card:hover { background: #eee; }
//
// becomes
//
//	var Card = hxstyle.Static(hxstyle.CSS{
//	    "padding": "12px",
//	    "&:hover": hxstyle.CSS{"background": "#eee"},
//	})
//
// Only single-class selectors are supported; anything else (element or
// descendant selectors, selector lists) is skipped with a warning.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Options configures the generator.
type Options struct {
	DryRun  bool
	Package string // output package name; defaults to the directory name
}

// Generator generates hxstyle fragment declarations.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate generates fragment files for the given directory patterns.
// A pattern ending in "/..." is walked recursively.
func (g *Generator) Generate(patterns ...string) error {
	dirs, err := g.findDirs(patterns)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := g.generateDir(dir); err != nil {
			return fmt.Errorf("dir %s: %w", dir, err)
		}
	}

	return nil
}

// Clean removes generated files for the given directory patterns.
func (g *Generator) Clean(patterns ...string) error {
	dirs, err := g.findDirs(patterns)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := g.cleanDir(dir); err != nil {
			return fmt.Errorf("dir %s: %w", dir, err)
		}
	}

	return nil
}

// findDirs resolves directory patterns, expanding "/..." recursively.
func (g *Generator) findDirs(patterns []string) ([]string, error) {
	var dirs []string

	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/...") {
			dirs = append(dirs, pattern)
			continue
		}

		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return nil
			}
			base := filepath.Base(path)
			if (strings.HasPrefix(base, ".") && base != ".") || base == "vendor" || base == "node_modules" {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return dirs, nil
}

// generateDir generates fragment files for every .css file in one directory.
func (g *Generator) generateDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".css") {
			continue
		}

		src, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}

		fragments, warnings, err := ParseFragments(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for _, w := range warnings {
			fmt.Printf("  %s: %s\n", entry.Name(), w)
		}
		if len(fragments) == 0 {
			continue
		}

		if err := g.writeFragments(dir, entry.Name(), fragments); err != nil {
			return err
		}
	}

	return nil
}

// cleanDir removes generated *_hx.go files from one directory.
func (g *Generator) cleanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_hx.go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fmt.Printf("removing %s\n", path)
		if g.opts.DryRun {
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}

	return nil
}

// Decl is one property declaration inside a fragment.
type Decl struct {
	Prop  string
	Value string
}

// Block is a nested declaration block within a fragment, keyed by a
// selector relative to the fragment's class ("&:hover").
type Block struct {
	Selector string
	Decls    []Decl
}

// Fragment is one generated style fragment: a Go name, the source class,
// its declarations, and any pseudo-class blocks.
type Fragment struct {
	Name   string // exported Go identifier, e.g. CardHeader
	Class  string // source class name, e.g. card-header
	Decls  []Decl
	Blocks []Block
}

// ParseFragments parses CSS source into fragments, one per distinct class.
// Pseudo-class rules attach to their base fragment; a pseudo rule whose
// base class has no plain rule still creates the fragment. Unsupported
// selectors produce warnings, not errors.
func ParseFragments(src string) ([]Fragment, []string, error) {
	rules, err := parseRules(src)
	if err != nil {
		return nil, nil, err
	}

	var fragments []Fragment
	index := make(map[string]int) // class -> fragments position
	var warnings []string

	for _, r := range rules {
		class, pseudo, ok := splitSelector(r.selector)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("skipping unsupported selector %q", r.selector))
			continue
		}

		i, exists := index[class]
		if !exists {
			i = len(fragments)
			index[class] = i
			fragments = append(fragments, Fragment{
				Name:  goName(class),
				Class: class,
			})
		}

		if pseudo == "" {
			fragments[i].Decls = append(fragments[i].Decls, r.decls...)
			continue
		}
		fragments[i].Blocks = append(fragments[i].Blocks, Block{
			Selector: "&" + pseudo,
			Decls:    r.decls,
		})
	}

	return fragments, warnings, nil
}

type rule struct {
	selector string
	decls    []Decl
}

// parseRules tokenizes flat CSS rules: selector { prop: value; ... }.
func parseRules(src string) ([]rule, error) {
	src = stripComments(src)

	var rules []rule
	rest := src
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.TrimSpace(rest) != "" {
				return nil, fmt.Errorf("trailing content %q", strings.TrimSpace(rest))
			}
			return rules, nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unclosed block after %q", strings.TrimSpace(rest[:open]))
		}
		end += open

		selector := strings.TrimSpace(rest[:open])
		if selector == "" {
			return nil, fmt.Errorf("block with empty selector")
		}

		decls, err := parseDecls(rest[open+1 : end])
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", selector, err)
		}
		rules = append(rules, rule{selector: selector, decls: decls})

		rest = rest[end+1:]
	}
}

func parseDecls(body string) ([]Decl, error) {
	var decls []Decl
	for _, stmt := range strings.Split(body, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		prop, value, ok := strings.Cut(stmt, ":")
		if !ok {
			return nil, fmt.Errorf("declaration %q missing ':'", stmt)
		}
		decls = append(decls, Decl{
			Prop:  strings.TrimSpace(prop),
			Value: strings.TrimSpace(value),
		})
	}
	return decls, nil
}

func stripComments(src string) string {
	var b strings.Builder
	for {
		open := strings.Index(src, "/*")
		if open < 0 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:open])
		end := strings.Index(src[open+2:], "*/")
		if end < 0 {
			return b.String()
		}
		src = src[open+2+end+2:]
	}
}

// splitSelector accepts ".class" and ".class:pseudo" selectors, returning
// the class name and the pseudo suffix (":hover", "::before", or "").
func splitSelector(sel string) (class, pseudo string, ok bool) {
	if !strings.HasPrefix(sel, ".") {
		return "", "", false
	}
	rest := sel[1:]
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		class, pseudo = rest[:i], rest[i:]
	} else {
		class = rest
	}
	if class == "" || strings.ContainsAny(class, " .,>+~[#") {
		return "", "", false
	}
	return class, pseudo, true
}

// goName converts a class name to an exported Go identifier:
// "card-header" -> "CardHeader".
func goName(class string) string {
	var b strings.Builder
	upper := true
	for _, r := range class {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
