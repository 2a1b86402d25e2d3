// Package web serves the keypad page. Every button is a form submit, so the
// page works without scripts and re-renders with each outcome.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/keypad"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// button is one keypad button as rendered.
type button struct {
	Value string
	Label string
	Class string
}

// buttons is the keypad layout, row by row.
var buttons = layout()

func layout() []button {
	digit := func(d string) button { return button{Value: d, Label: d, Class: "number"} }
	op := func(o calculator.Operator) button {
		return button{Value: o.Symbol(), Label: o.Glyph(), Class: "operator"}
	}

	return []button{
		digit("7"), digit("8"), digit("9"), op(calculator.Divide),
		digit("4"), digit("5"), digit("6"), op(calculator.Multiply),
		digit("1"), digit("2"), digit("3"), op(calculator.Subtract),
		digit("0"), digit("."), {Value: "C", Label: "C", Class: "clear"}, op(calculator.Add),
		{Value: "=", Label: "=", Class: "equals"},
	}
}

type pageData struct {
	Display string
	Failed  bool
	Keys    []button
}

// renderPage writes the keypad page for s. The template is executed into a
// buffer first so a failure never leaves a half-written page.
func renderPage(w http.ResponseWriter, s keypad.State) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{
		Display: s.Display,
		Failed:  s.Failed,
		Keys:    buttons,
	}); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
	return nil
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
