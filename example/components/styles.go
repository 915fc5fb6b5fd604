package components

import "github.com/pthm/hxstyle"

// Shared fragments, declared once at package scope so their content hashes
// are computed a single time.
var (
	Card = hxstyle.Static(hxstyle.CSS{
		"background":    "#fff",
		"border":        "1px solid #e4e7ec",
		"border-radius": "8px",
		"padding":       "16px",
		"&:hover": hxstyle.CSS{
			"border-color": "#c7ccd4",
		},
	})

	CardTitle = hxstyle.Static(hxstyle.CSS{
		"font-weight": "600",
		"margin":      "0 0 8px 0",
	})

	Stack = hxstyle.Static(hxstyle.CSS{
		"display":        "flex",
		"flex-direction": "column",
		"gap":            "12px",
		"max-width":      "480px",
		"margin":         "40px auto",
	})

	Page = hxstyle.Static(hxstyle.CSS{
		"font-family": "system-ui, sans-serif",
		"background":  "#f6f7fb",
		"color":       "#0b0f19",
	})
)

// Accent colors a card's left edge. One token for the factory, one cache
// key per distinct color.
var Accent = hxstyle.Func(func(color string) hxstyle.CSS {
	return hxstyle.CSS{"border-left": "4px solid " + color}
})
