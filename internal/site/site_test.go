package site

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/norgestion/reportpdf/content"
)

func render(t *testing.T, page string, mode Mode) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, page, mode); err != nil {
		t.Fatalf("Render(%s): %v", page, err)
	}
	return buf.String()
}

func TestRender_Target(t *testing.T) {
	for _, page := range []string{PageInforme, PagePropuesta} {
		for _, mode := range []Mode{Screen, Export} {
			out := render(t, page, mode)
			if !strings.Contains(out, `<main id="pdf-content">`) {
				t.Errorf("%s/%d: missing capture target", page, mode)
			}
			if strings.Count(out, "<main") != 1 {
				t.Errorf("%s/%d: want exactly one main element", page, mode)
			}
		}
	}
}

func TestRender_Modes(t *testing.T) {
	screen := render(t, PageInforme, Screen)
	if strings.Contains(screen, "pdf-exporting\">") || strings.Contains(screen, `class="pdf-exporting"`) {
		t.Error("screen mode carries the export class")
	}
	if !strings.Contains(screen, `<nav class="pdf-hide">`) {
		t.Error("screen mode lacks the navigation bar")
	}
	if !strings.Contains(screen, `id="contacto"`) {
		t.Error("screen mode lacks the closing call to action")
	}

	export := render(t, PageInforme, Export)
	if !strings.Contains(export, `<html lang="es" class="pdf-exporting">`) {
		t.Error("export mode lacks the export class")
	}
	if strings.Contains(export, `<nav class="pdf-hide">`) || strings.Contains(export, `id="contacto"`) {
		t.Error("export mode renders interactive elements")
	}
}

func TestRenderInforme_Content(t *testing.T) {
	r := content.Informe()
	out := render(t, PageInforme, Export)

	for _, want := range []string{
		`id="` + r.Overview.ID + `"`,
		`id="` + r.Positioning.ID + `"`,
		`id="` + r.LinkedIn.ID + `"`,
		`id="` + r.Impact.ID + `"`,
		`id="` + r.Competitive.ID + `"`,
		`id="` + r.PageRanking.ID + `"`,
		r.Overview.Stats[0].Value,
		`class="pdf-table-scroll"`,
		content.FormatInt(r.LinkedIn.KPIs[0].Total),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report page misses %q", want)
		}
	}
	// One section per content section plus the cover.
	if got, want := strings.Count(out, "<section"), 8; got != want {
		t.Errorf("got %d sections, want %d", got, want)
	}
}

func TestRenderPropuesta_Content(t *testing.T) {
	p := content.Propuesta()
	out := render(t, PagePropuesta, Screen)
	for _, want := range []string{p.Pricing.Price, p.Roadmap.Quarters[0].Label, p.Footer} {
		if !strings.Contains(out, want) {
			t.Errorf("proposal page misses %q", want)
		}
	}
}

func TestRender_Escapes(t *testing.T) {
	r := content.Informe()
	r.Cover.Lead = `<script>alert(1)</script>`
	var buf bytes.Buffer
	if err := RenderInforme(&buf, r, Screen); err != nil {
		t.Fatalf("RenderInforme: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("content was not escaped")
	}
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "precios", Screen); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("err = %v, want ErrUnknownPage", err)
	}

	r := content.Informe()
	r.Overview.Title = ""
	if err := RenderInforme(&buf, r, Screen); !errors.Is(err, content.ErrInvalid) {
		t.Errorf("err = %v, want content.ErrInvalid", err)
	}
}
