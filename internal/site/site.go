// Package site renders the report and proposal pages from the content
// model. The visual PDF pipeline captures these pages; the CLI can also
// write them out for a browser.
package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/norgestion/reportpdf"
	"github.com/norgestion/reportpdf/content"
)

// Page names accepted by [Render].
const (
	PageInforme   = "informe"
	PagePropuesta = "propuesta"
)

// ErrUnknownPage is returned by [Render] for a page it does not know.
var ErrUnknownPage = errors.New("site: unknown page")

// Mode selects how a page is rendered.
type Mode int

const (
	// Screen is the interactive page with navigation and calls to action.
	Screen Mode = iota
	// Export is the page as it looks while being captured: pdf-exporting
	// on the root element and no interactive chrome.
	Export
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pages = template.Must(template.New("site").Funcs(template.FuncMap{
	"formatInt":     content.FormatInt,
	"formatDecimal": content.FormatDecimal,
}).ParseFS(templateFS, "templates/*.html.tmpl"))

type view struct {
	Title    string
	Brand    string
	TargetID string
	Export   bool
	Report   *content.Report
	Proposal *content.Proposal
}

func newView(title string, mode Mode) view {
	return view{
		Title:    title,
		Brand:    content.Brand,
		TargetID: reportpdf.DefaultTargetID,
		Export:   mode == Export,
	}
}

// RenderInforme writes the results report page.
func RenderInforme(w io.Writer, r *content.Report, mode Mode) error {
	if err := r.Validate(); err != nil {
		return err
	}
	v := newView(content.Brand+" · Informe de resultados", mode)
	v.Report = r
	return execute(w, PageInforme, v)
}

// RenderPropuesta writes the proposal page.
func RenderPropuesta(w io.Writer, p *content.Proposal, mode Mode) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v := newView(content.Brand+" · Propuesta estratégica", mode)
	v.Proposal = p
	return execute(w, PagePropuesta, v)
}

// Render writes the named page with the built-in content.
func Render(w io.Writer, page string, mode Mode) error {
	switch page {
	case PageInforme:
		return RenderInforme(w, content.Informe(), mode)
	case PagePropuesta:
		return RenderPropuesta(w, content.Propuesta(), mode)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
}

func execute(w io.Writer, name string, v view) error {
	if err := pages.ExecuteTemplate(w, name, v); err != nil {
		return fmt.Errorf("site: rendering %s: %w", name, err)
	}
	return nil
}
