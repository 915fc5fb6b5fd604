package hxstyle

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/pthm/hxstyle/lib/stylekey"
)

// Sheet is the default Materializer: a registry of CSS rules keyed by
// content-derived class names.
//
// Materializing the same style object twice yields the same class and
// renders its rule text only once. Rules are kept in first-materialization
// order; render the collected stylesheet into a layout with Component or
// CSS.
//
// A Sheet is typically longer-lived than a Session - one Sheet per
// application, one Session per request - so unlike Session it is safe for
// concurrent use.
type Sheet struct {
	mu     sync.RWMutex
	prefix string
	seen   map[string]struct{}
	rules  []string
}

// NewSheet creates an empty sheet. Class names are prefixed "hx-".
func NewSheet() *Sheet {
	return &Sheet{
		prefix: "hx-",
		seen:   make(map[string]struct{}),
	}
}

// Materialize derives the class name for obj, rendering its rule text into
// the sheet the first time that class is seen. It satisfies Materializer.
//
// The class is prefix + content hash, so equal objects materialize to the
// same class no matter which session asked first.
//
// Panics with an error wrapping ErrUnserializable if obj cannot be
// serialized; resolved objects built through the composer cannot trigger
// this.
func (sh *Sheet) Materialize(obj CSS) string {
	h, err := stylekey.Hash(obj)
	if err != nil {
		panic(fmt.Errorf("%w: materialize: %v", ErrUnserializable, err))
	}
	class := sh.prefix + h

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.seen[class]; ok {
		return class
	}
	sh.seen[class] = struct{}{}
	sh.rules = append(sh.rules, renderRules("."+class, obj)...)
	return class
}

// CSS returns the full stylesheet text, one rule per line, in
// first-materialization order.
func (sh *Sheet) CSS() string {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return strings.Join(sh.rules, "\n")
}

// Len returns the number of rendered rules.
func (sh *Sheet) Len() int {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return len(sh.rules)
}

// Component returns a templ component rendering the sheet as a <style>
// tag. Place it in the document head after all components have rendered,
// or re-render it per response - the sheet only grows.
func (sh *Sheet) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<style>\n"+sh.CSS()+"\n</style>")
		return err
	})
}

// renderRules renders obj as a rule for selector plus one rule per nested
// CSS block. Properties are sorted for deterministic output. A nested
// block's key has "&" expanded to the parent selector; keys without "&"
// become descendant selectors.
func renderRules(selector string, obj CSS) []string {
	props := make([]string, 0, len(obj))
	var nested []string
	for k, v := range obj {
		if _, ok := v.(CSS); ok {
			nested = append(nested, k)
			continue
		}
		props = append(props, k)
	}
	sort.Strings(props)
	sort.Strings(nested)

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {")
	for _, k := range props {
		fmt.Fprintf(&b, " %s: %v;", k, obj[k])
	}
	b.WriteString(" }")

	rules := []string{b.String()}
	for _, k := range nested {
		sub := selector + " " + k
		if strings.Contains(k, "&") {
			sub = strings.ReplaceAll(k, "&", selector)
		}
		rules = append(rules, renderRules(sub, obj[k].(CSS))...)
	}
	return rules
}
