// Package layout is the page-layout engine behind the editorial PDFs: a
// vertical cursor over fixed-size pages, page-break checks and the text
// presets every emission is drawn with.
//
// All lengths are millimetres. Font sizes are points.
package layout

import (
	"strings"
)

// Layout constants.
const (
	DefaultLineHeight = 7.0

	ruleCheck    = 10.0
	ruleAdvance  = 8.0
	ruleWidth    = 0.3
	statCheck    = 20.0
	statValueGap = 6.0
	statAdvance  = 10.0
	noteLine     = 4.0
	footerOffset = 15.0
	markSize     = 8.0
	markAdvance  = 20.0
)

var ruleColor = RGB{220, 220, 220}

// StatHeight is how far a Stat advances the cursor.
const StatHeight = statValueGap + statAdvance

// Geometry is a portrait page with symmetric margins.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// ContentWidth is the page width minus both margins.
func (g Geometry) ContentWidth() float64 { return g.PageWidth - 2*g.Margin }

// Bottom is the lowest y a block may reach.
func (g Geometry) Bottom() float64 { return g.PageHeight - g.Margin }

// Usable is the writable height of one page.
func (g Geometry) Usable() float64 { return g.PageHeight - 2*g.Margin }

// Cursor is the write position: Y on the current page, Page counted from 1.
type Cursor struct {
	Page int
	Y    float64
}

// Option configures a Composer.
type Option func(*Composer)

// WithTranslator sets the function applied to every string before it is
// measured or drawn, typically fpdf's UTF-8 to cp1252 translator.
func WithTranslator(tr func(string) string) Option {
	return func(c *Composer) {
		if tr != nil {
			c.tr = tr
		}
	}
}

// Composer lays out text blocks top to bottom and never splits a block that
// fits on one page. It is not safe for concurrent use.
type Composer struct {
	w     Writer
	geo   Geometry
	tr    func(string) string
	cur   Cursor
	trail []Cursor
}

// New starts a document on w with its first page already added.
func New(w Writer, geo Geometry, opts ...Option) *Composer {
	c := &Composer{
		w:   w,
		geo: geo,
		tr:  func(s string) string { return s },
	}
	for _, o := range opts {
		o(c)
	}
	w.AddPage()
	c.cur = Cursor{Page: 1, Y: geo.Margin}
	return c
}

// Geometry returns the page geometry.
func (c *Composer) Geometry() Geometry { return c.geo }

// Cursor returns the current write position.
func (c *Composer) Cursor() Cursor { return c.cur }

// Y is shorthand for Cursor().Y.
func (c *Composer) Y() float64 { return c.cur.Y }

// Pages returns the number of pages started so far.
func (c *Composer) Pages() int { return c.cur.Page }

// Trail returns the cursor after every emission, in order.
func (c *Composer) Trail() []Cursor {
	out := make([]Cursor, len(c.trail))
	copy(out, c.trail)
	return out
}

// Err reports the writer's error state.
func (c *Composer) Err() error { return c.w.Error() }

// SetStyle selects the font, size and colour for tok.
func (c *Composer) SetStyle(tok StyleToken) {
	c.setFont(Lookup(tok), false)
}

func (c *Composer) setFont(s TextStyle, italic bool) {
	weight := s.Weight
	if italic {
		weight += "I"
	}
	c.w.SetFont(s.Family, weight, s.Size)
	c.w.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

// NewPage starts a page and moves the cursor to the top margin.
func (c *Composer) NewPage() {
	c.w.AddPage()
	c.cur = Cursor{Page: c.cur.Page + 1, Y: c.geo.Margin}
}

// Ensure breaks the page when a block of height h would cross the bottom
// margin. A cursor already at the top never breaks, so an oversized block
// cannot produce empty pages.
func (c *Composer) Ensure(h float64) {
	if c.cur.Y+h > c.geo.Bottom() && c.cur.Y > c.geo.Margin {
		c.NewPage()
	}
}

// Wrap splits text to width using the current font.
func (c *Composer) Wrap(text string, width float64) []string {
	return Wrap(text, width, c.measure)
}

func (c *Composer) measure(s string) float64 {
	return c.w.GetStringWidth(c.tr(s))
}

// Text wraps text to the content width and draws it as one block.
func (c *Composer) Text(text string, tok StyleToken, lineHeight float64) {
	c.TextIndent(text, tok, 0, lineHeight)
}

// TextIndent is Text with the block shifted right by indent.
func (c *Composer) TextIndent(text string, tok StyleToken, indent, lineHeight float64) {
	c.SetStyle(tok)
	c.block(text, indent, lineHeight)
}

// Note draws small italic print, used for disclaimers.
func (c *Composer) Note(text string) {
	c.setFont(Lookup(Small), true)
	c.block(text, 0, noteLine)
}

func (c *Composer) block(text string, indent, lineHeight float64) {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	lines := c.Wrap(text, c.geo.ContentWidth()-indent)
	if len(lines) == 0 {
		return
	}
	x := c.geo.Margin + indent
	h := float64(len(lines)) * lineHeight
	if h <= c.geo.Usable() {
		c.Ensure(h)
		c.draw(x, lines, lineHeight)
	} else {
		for _, ln := range lines {
			c.Ensure(lineHeight)
			c.draw(x, []string{ln}, lineHeight)
		}
	}
	c.record()
}

func (c *Composer) draw(x float64, lines []string, lineHeight float64) {
	for i, ln := range lines {
		c.w.Text(x, c.cur.Y+float64(i)*lineHeight, c.tr(ln))
	}
	c.cur.Y += float64(len(lines)) * lineHeight
}

// Inline draws a single unwrapped line at offset dx from the left margin
// without moving the cursor.
func (c *Composer) Inline(dx float64, text string, tok StyleToken) {
	c.SetStyle(tok)
	c.w.Text(c.geo.Margin+dx, c.cur.Y, c.tr(text))
}

// Spacer advances the cursor. A spacer that would cross the bottom margin
// moves to the top of a new page instead.
func (c *Composer) Spacer(h float64) {
	if c.cur.Y+h > c.geo.Bottom() {
		c.NewPage()
	} else {
		c.cur.Y += h
	}
	c.record()
}

// Rule draws a full-width divider.
func (c *Composer) Rule() {
	c.Ensure(ruleCheck)
	c.w.SetDrawColor(ruleColor.R, ruleColor.G, ruleColor.B)
	c.w.SetLineWidth(ruleWidth)
	c.w.Line(c.geo.Margin, c.cur.Y, c.geo.PageWidth-c.geo.Margin, c.cur.Y)
	c.cur.Y += ruleAdvance
	c.record()
}

// Stat draws a large value with its upper-cased label underneath, checked
// for space as one unit.
func (c *Composer) Stat(value, label string) {
	c.Ensure(statCheck)
	c.SetStyle(H1)
	c.w.Text(c.geo.Margin, c.cur.Y, c.tr(value))
	c.cur.Y += statValueGap
	c.SetStyle(Small)
	c.w.Text(c.geo.Margin, c.cur.Y, c.tr(strings.ToUpper(label)))
	c.cur.Y += statAdvance
	c.record()
}

// Mark draws the square brand mark and leaves room under it.
func (c *Composer) Mark() {
	c.w.SetFillColor(brand.R, brand.G, brand.B)
	c.w.Rect(c.geo.Margin, c.cur.Y, markSize, markSize, "F")
	c.Spacer(markAdvance)
}

// Footer draws text near the bottom edge of the current page. The cursor
// does not move.
func (c *Composer) Footer(text string) {
	c.SetStyle(Small)
	c.w.Text(c.geo.Margin, c.geo.PageHeight-footerOffset, c.tr(text))
}

func (c *Composer) record() {
	c.trail = append(c.trail, c.cur)
}
