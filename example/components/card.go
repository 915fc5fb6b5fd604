package components

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxstyle"
)

// CardView renders one card with an accent color and a per-instance
// emphasis override.
func CardView(sess *hxstyle.Session, title, body, accent string, emphasized bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		override := Accent(accent)
		if emphasized {
			override = hxstyle.Merge(override, hxstyle.Dynamic(hxstyle.CSS{
				"box-shadow": "0 2px 8px rgba(11, 15, 25, 0.12)",
			}))
		}

		class := sess.Class(Card, override)
		titleClass := sess.Class(CardTitle, hxstyle.None())

		_, err := fmt.Fprintf(w,
			`<div class=%q><h2 class=%q>%s</h2><p>%s</p></div>`,
			class, titleClass, html.EscapeString(title), html.EscapeString(body))
		return err
	})
}

// StackView lays out children vertically.
func StackView(sess *hxstyle.Session, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := sess.Class(Stack, hxstyle.None())
		if _, err := fmt.Fprintf(w, `<div class=%q>`, class); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
