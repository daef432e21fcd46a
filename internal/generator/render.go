package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"text/template"
)

// LibraryPath is the import path of the solver contract used by generated code.
const LibraryPath = "github.com/zjrosen/aoc/day"

// sourceTemplates holds one template per generated file:
//   - templates/days.go.tmpl   -> DaysFile
//   - templates/inputs.go.tmpl -> InputsFile
//
//go:embed templates/*.tmpl
var sourceTemplates embed.FS

var templates = template.Must(template.ParseFS(sourceTemplates, "templates/*.tmpl"))

type renderData struct {
	*Manifest
	Library string
}

// RenderDays returns the formatted source of the day list file.
func RenderDays(m *Manifest) ([]byte, error) {
	return render("days.go.tmpl", m)
}

// RenderInputs returns the formatted source of the embedded input file.
func RenderInputs(m *Manifest) ([]byte, error) {
	return render("inputs.go.tmpl", m)
}

func render(name string, m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, renderData{Manifest: m, Library: LibraryPath}); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s output: %w", name, err)
	}
	return src, nil
}
