package hxstyle

import (
	"strings"

	"github.com/a-h/templ"
)

// Classes joins class names with spaces, skipping empties. The absent
// style materializes to "", so composed class attributes stay clean:
//
//	<div class={ hxstyle.Classes(base, extra) }>
func Classes(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

// Attrs returns a templ attribute map carrying class, for spreading onto
// an element:
//
//	<div { hxstyle.Attrs(sess.Class(card, accent(color)))... }>
//
// An empty class yields no class attribute.
func Attrs(class string) templ.Attributes {
	if class == "" {
		return templ.Attributes{}
	}
	return templ.Attributes{"class": class}
}
