// Package editorial lays out the two text documents, the results report and
// the proposal, on a [layout.Composer] backed by fpdf.
package editorial

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/norgestion/reportpdf/content"
	"github.com/norgestion/reportpdf/internal/layout"
)

// ProgressFunc receives advisory completion percentages.
type ProgressFunc func(percent int)

// Document is a finished editorial PDF held in memory.
type Document struct {
	Data  []byte
	Pages int
	Trail []layout.Cursor
}

// builder couples the fpdf document with the composer drawing on it.
type builder struct {
	pdf      *fpdf.Fpdf
	c        *layout.Composer
	progress ProgressFunc
}

func newBuilder(geo layout.Geometry, progress ProgressFunc) *builder {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: geo.PageWidth, Ht: geo.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetCreator(content.Brand, true)
	if progress == nil {
		progress = func(int) {}
	}
	c := layout.New(pdf, geo, layout.WithTranslator(pdf.UnicodeTranslatorFromDescriptor("")))
	return &builder{pdf: pdf, c: c, progress: progress}
}

func (b *builder) finish() (*Document, error) {
	if err := b.pdf.Error(); err != nil {
		return nil, fmt.Errorf("editorial: composing: %w", err)
	}
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("editorial: writing pdf: %w", err)
	}
	return &Document{Data: buf.Bytes(), Pages: b.c.Pages(), Trail: b.c.Trail()}, nil
}

// cover draws the brand mark, the kicker and the stacked title.
func (b *builder) cover(titleLines []string, titleLineHeight float64, lead string) {
	c := b.c
	c.Mark()
	c.Text(content.Brand, layout.Label, 0)
	c.Spacer(5)
	for _, ln := range titleLines {
		c.Text(ln, layout.Title, titleLineHeight)
	}
	c.Spacer(10)
	c.Text(lead, layout.Body, 6)
	c.Spacer(20)
	c.Rule()
}

// heading opens a section on a fresh page.
func (b *builder) heading(s content.Section, after float64) {
	c := b.c
	c.NewPage()
	c.Text(s.Label, layout.Label, 0)
	c.Spacer(5)
	c.Text(s.Title, layout.H1, 0)
	if s.Lead != "" {
		c.Spacer(5)
		c.Text(s.Lead, layout.Body, 6)
	}
	c.Spacer(after)
}

// numbered draws "01  Title" on one baseline with the description under it.
func (b *builder) numbered(blk content.Block, title layout.StyleToken, check, gap, descIndent, after float64) {
	c := b.c
	c.Ensure(check)
	c.Inline(0, blk.Number, layout.Label)
	c.Inline(12, blk.Title, title)
	c.Spacer(gap)
	c.TextIndent(blk.Description, layout.Body, descIndent, 5)
	c.Spacer(after)
}

// titled draws a heading line followed by its paragraph.
func (b *builder) titled(blk content.Block, title layout.StyleToken) {
	c := b.c
	c.Ensure(20)
	c.Text(blk.Title, title, 0)
	c.Text(blk.Description, layout.Body, 5)
	c.Spacer(8)
}

func (b *builder) bullets(items []string, indent float64) {
	for _, it := range items {
		b.c.TextIndent("• "+it, layout.Body, indent, 6)
	}
}

func (b *builder) disclaimer(text string) {
	if text == "" {
		return
	}
	b.c.Spacer(10)
	b.c.Note(text)
}

func keywordLine(kws []content.Keyword) string {
	parts := make([]string, len(kws))
	for i, k := range kws {
		parts[i] = k.PositionLabel()
	}
	return strings.Join(parts, "  •  ")
}
