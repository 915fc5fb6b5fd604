package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// writeFragments renders and writes the *_hx.go file for one CSS source.
func (g *Generator) writeFragments(dir, cssFile string, fragments []Fragment) error {
	baseName := strings.TrimSuffix(cssFile, ".css")
	outputFile := filepath.Join(dir, baseName+"_hx.go")

	fmt.Printf("generating %s\n", outputFile)

	if g.opts.DryRun {
		return nil
	}

	pkg := g.opts.Package
	if pkg == "" {
		pkg = packageNameFor(dir)
	}

	code, err := renderFile(pkg, cssFile, fragments)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		// Write unformatted for debugging.
		if writeErr := os.WriteFile(outputFile+".unformatted", code, 0644); writeErr == nil {
			fmt.Printf("  wrote unformatted code to %s.unformatted for debugging\n", outputFile)
		}
		return fmt.Errorf("format source: %w", err)
	}

	return os.WriteFile(outputFile, formatted, 0644)
}

// packageNameFor derives a Go package name from a directory path.
func packageNameFor(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	name := filepath.Base(abs)
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, name)
	if name == "" {
		name = "styles"
	}
	return strings.ToLower(name)
}

var fileTemplate = template.Must(template.New("hx").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(`// Code generated by hxstyle generate; DO NOT EDIT.
// Source: {{.Source}}

package {{.Package}}

import "github.com/pthm/hxstyle"

{{range .Fragments}}
// {{.Name}} is the style fragment for .{{.Class}}.
var {{.Name}} = hxstyle.Static(hxstyle.CSS{
{{- range .Decls}}
	{{quote .Prop}}: {{quote .Value}},
{{- end}}
{{- range .Blocks}}
	{{quote .Selector}}: hxstyle.CSS{
	{{- range .Decls}}
		{{quote .Prop}}: {{quote .Value}},
	{{- end}}
	},
{{- end}}
})
{{end}}
`))

// renderFile renders the generated source for one CSS file.
func renderFile(pkg, source string, fragments []Fragment) ([]byte, error) {
	data := struct {
		Package   string
		Source    string
		Fragments []Fragment
	}{
		Package:   pkg,
		Source:    source,
		Fragments: fragments,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
