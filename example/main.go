package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/pthm/hxstyle"
	"github.com/pthm/hxstyle/example/components"
)

func main() {
	debug := flag.Bool("debug", false, "trace style cache misses")
	flag.Parse()

	// One sheet for the whole app: rules accumulate across requests and
	// equal styles always map to the same class.
	sheet := hxstyle.NewSheet()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// One session per request: the render pass is single-goroutine, so
		// the cache needs no locking.
		sess := hxstyle.NewSession(sheet.Materialize)
		if *debug {
			sess.Debug(logger)
		}

		page := components.StackView(sess,
			components.CardView(sess, "Iris", "Composable styles, cached by key.", "#8b5cf6", true),
			components.CardView(sess, "Green", "Same base fragment, new accent.", "#22a06b", false),
			components.CardView(sess, "Green again", "This one is a cache hit.", "#22a06b", false),
		)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<!doctype html><html><head><title>hxstyle demo</title>")
		// The sheet renders after the page so every rule is registered.
		bodyClass := sess.Class(components.Page, hxstyle.None())
		fmt.Fprintf(w, `</head><body class=%q>`, bodyClass)
		if err := page.Render(r.Context(), w); err != nil {
			log.Printf("render: %v", err)
			return
		}
		if err := sheet.Component().Render(r.Context(), w); err != nil {
			log.Printf("render sheet: %v", err)
			return
		}

		stats := sess.Stats()
		fmt.Fprintf(w,
			`<footer style="text-align:center;color:#667085">cache: %d entries, %d calls, %d hits, %d misses, %d bailouts</footer>`,
			stats.Entries, stats.Calls, stats.Hits, stats.Misses, stats.Bailouts)
		fmt.Fprint(w, "</body></html>")
	})

	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
