package layout

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

var a4 = Geometry{PageWidth: 210, PageHeight: 297, Margin: 20}

type textCall struct {
	page int
	x, y float64
	s    string
}

// fakeWriter measures every rune as charWidth millimetres, whatever the font.
type fakeWriter struct {
	charWidth float64
	pages     int
	texts     []textCall
	rules     int
	font      string
	size      float64
}

func (f *fakeWriter) AddPage() { f.pages++ }
func (f *fakeWriter) SetFont(family, style string, size float64) {
	f.font = family + style
	f.size = size
}
func (f *fakeWriter) SetTextColor(r, g, b int)    {}
func (f *fakeWriter) SetDrawColor(r, g, b int)    {}
func (f *fakeWriter) SetFillColor(r, g, b int)    {}
func (f *fakeWriter) SetLineWidth(w float64)      {}
func (f *fakeWriter) Line(x1, y1, x2, y2 float64) { f.rules++ }
func (f *fakeWriter) Rect(x, y, w, h float64, style string) {}
func (f *fakeWriter) Text(x, y float64, s string) {
	f.texts = append(f.texts, textCall{page: f.pages, x: x, y: y, s: s})
}
func (f *fakeWriter) GetStringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.charWidth
}
func (f *fakeWriter) PageCount() int { return f.pages }
func (f *fakeWriter) Error() error   { return nil }

func newFake() (*fakeWriter, *Composer) {
	w := &fakeWriter{charWidth: 2} // 85 runes per 170 mm line
	return w, New(w, a4)
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("palabra ", n))
}

func TestWrap(t *testing.T) {
	measure := func(s string) float64 { return float64(utf8.RuneCountInString(s)) }
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits", "aaa bbb", 10, []string{"aaa bbb"}},
		{"greedy", "aaa bbb ccc", 10, []string{"aaa bbb", "ccc"}},
		{"overlong word", "abcdefghijklmno", 10, []string{"abcdefghij", "klmno"}},
		{"overlong after text", "ab abcdefghijklm", 10, []string{"ab", "abcdefghij", "klm"}},
		{"newline", "uno\ndos", 10, []string{"uno", "dos"}},
		{"blank paragraph", "uno\n\ndos", 10, []string{"uno", "", "dos"}},
		{"runes not bytes", "ññññ ññññ", 9, []string{"ññññ ññññ"}},
		{"blank", "   ", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, measure)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewStartsAtTopMargin(t *testing.T) {
	w, c := newFake()
	if w.pages != 1 || c.Pages() != 1 {
		t.Fatalf("pages = %d/%d, want 1", w.pages, c.Pages())
	}
	if c.Y() != a4.Margin {
		t.Errorf("Y = %v, want %v", c.Y(), a4.Margin)
	}
}

func TestText_AdvancesByWrappedHeight(t *testing.T) {
	w, c := newFake()
	c.Text(words(30), Body, 6) // 239 runes -> 3 lines
	if got, want := c.Y(), a4.Margin+3*6; got != want {
		t.Errorf("Y = %v, want %v", got, want)
	}
	if len(w.texts) != 3 {
		t.Fatalf("drew %d lines, want 3", len(w.texts))
	}
	for i, tc := range w.texts {
		if want := a4.Margin + float64(i)*6; tc.y != want {
			t.Errorf("line %d at y=%v, want %v", i, tc.y, want)
		}
		if tc.x != a4.Margin {
			t.Errorf("line %d at x=%v, want %v", i, tc.x, a4.Margin)
		}
	}
}

func TestText_DefaultLineHeight(t *testing.T) {
	_, c := newFake()
	c.Text("uno", H2, 0)
	if got, want := c.Y(), a4.Margin+DefaultLineHeight; got != want {
		t.Errorf("Y = %v, want %v", got, want)
	}
}

func TestText_NeverSplitsFittingBlock(t *testing.T) {
	const lineHeight = 7.0
	block := words(50) // 5 lines, 35 mm
	for start := a4.Margin; start <= a4.Bottom(); start += 3 {
		w, c := newFake()
		if start > a4.Margin {
			c.Spacer(start - a4.Margin)
		}
		before := len(w.texts)
		c.Text(block, Body, lineHeight)
		drawn := w.texts[before:]
		if len(drawn) != 5 {
			t.Fatalf("start %v: drew %d lines, want 5", start, len(drawn))
		}
		for _, tc := range drawn {
			if tc.page != drawn[0].page {
				t.Fatalf("start %v: block split across pages %d and %d", start, drawn[0].page, tc.page)
			}
		}
		if c.Y() > a4.Bottom() {
			t.Fatalf("start %v: cursor %v below bottom margin %v", start, c.Y(), a4.Bottom())
		}
		if c.Y() < a4.Margin {
			t.Fatalf("start %v: cursor %v above top margin", start, c.Y())
		}
	}
}

func TestText_OversizedBlockFlowsLineByLine(t *testing.T) {
	w, c := newFake()
	c.Spacer(100)
	c.Text(words(600), Body, 7) // ~57 lines, far more than one page
	if c.Pages() < 2 {
		t.Fatalf("pages = %d, want at least 2", c.Pages())
	}
	for _, tc := range w.texts {
		if tc.y > a4.Bottom() {
			t.Fatalf("line %q drawn at y=%v below bottom margin", tc.s, tc.y)
		}
	}
}

func TestText_IndentNarrowsWidth(t *testing.T) {
	w, c := newFake()
	// 84 runes fit 170 mm but not 158 mm.
	text := strings.Repeat("x", 40) + " " + strings.Repeat("y", 43)
	c.TextIndent(text, Body, 12, 5)
	if len(w.texts) != 2 {
		t.Fatalf("drew %d lines, want 2", len(w.texts))
	}
	if w.texts[0].x != a4.Margin+12 {
		t.Errorf("x = %v, want %v", w.texts[0].x, a4.Margin+12)
	}
}

func TestSpacer_AtBottomStartsNewPage(t *testing.T) {
	_, c := newFake()
	c.Spacer(250)
	if c.Y() != 270 {
		t.Fatalf("Y = %v, want 270", c.Y())
	}
	c.Spacer(10)
	if c.Pages() != 2 || c.Y() != a4.Margin {
		t.Errorf("after overflowing spacer: page %d y %v, want page 2 y %v", c.Pages(), c.Y(), a4.Margin)
	}
}

func TestEnsure_AtTopDoesNotBreak(t *testing.T) {
	_, c := newFake()
	c.Ensure(a4.Usable() + 50)
	if c.Pages() != 1 {
		t.Errorf("pages = %d, want 1", c.Pages())
	}
}

func TestStat_BreaksAsOneUnit(t *testing.T) {
	w, c := newFake()
	c.Spacer(240) // y = 260, 17 mm left
	c.Stat("57", "Keywords en #1")
	if c.Pages() != 2 {
		t.Fatalf("pages = %d, want 2", c.Pages())
	}
	last := w.texts[len(w.texts)-2:]
	if last[0].page != 2 || last[1].page != 2 {
		t.Error("value and label must land on the same new page")
	}
	if last[1].s != "KEYWORDS EN #1" {
		t.Errorf("label = %q, want upper case", last[1].s)
	}
	if got, want := c.Y(), a4.Margin+StatHeight; got != want {
		t.Errorf("Y = %v, want %v", got, want)
	}
}

func TestRule(t *testing.T) {
	w, c := newFake()
	c.Rule()
	if w.rules != 1 {
		t.Fatalf("rules = %d, want 1", w.rules)
	}
	if c.Y() != a4.Margin+ruleAdvance {
		t.Errorf("Y = %v, want %v", c.Y(), a4.Margin+ruleAdvance)
	}
}

func TestFooterDoesNotMoveCursor(t *testing.T) {
	w, c := newFake()
	c.Footer("pie")
	if c.Y() != a4.Margin {
		t.Errorf("Y moved to %v", c.Y())
	}
	if got := w.texts[0].y; got != a4.PageHeight-footerOffset {
		t.Errorf("footer y = %v, want %v", got, a4.PageHeight-footerOffset)
	}
}

func TestTrailIsDeterministic(t *testing.T) {
	build := func() []Cursor {
		_, c := newFake()
		c.Mark()
		c.Text("Análisis del", Title, 0)
		c.Text(words(120), Body, 6)
		for i := 0; i < 12; i++ {
			c.Stat("53%", "Ratio de engagement")
			c.Text(words(20), Body, 5)
			c.Spacer(8)
		}
		c.Rule()
		return c.Trail()
	}
	a, b := build(), build()
	if !slices.Equal(a, b) {
		t.Fatal("two identical builds produced different trails")
	}
	if a[len(a)-1].Page < 2 {
		t.Errorf("expected the build to span pages, ended on page %d", a[len(a)-1].Page)
	}
}

func TestLookup(t *testing.T) {
	if got := Lookup(Title); got.Size != 28 || got.Weight != "B" {
		t.Errorf("title = %+v", got)
	}
	if got := Lookup(Label); got.Color != (RGB{1, 105, 54}) {
		t.Errorf("label colour = %+v", got.Color)
	}
	if got := Lookup("nope"); got != Lookup(Body) {
		t.Errorf("unknown token = %+v, want body", got)
	}
	if n := len(Tokens()); n != 7 {
		t.Errorf("len(Tokens()) = %d, want 7", n)
	}
}

// A stat followed by its description on a fresh page stays on that page and
// advances by exactly the two block heights.
func TestStatWithDescription_RealWriter(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	c := New(pdf, a4, WithTranslator(pdf.UnicodeTranslatorFromDescriptor("")))

	const desc = "Visitas registradas en la web durante los últimos 3 meses."
	c.Stat("15.760", "Sesiones")
	c.SetStyle(Body)
	lines := c.Wrap(desc, a4.ContentWidth())
	c.Text(desc, Body, 5)

	want := a4.Margin + StatHeight + float64(len(lines))*5
	if c.Y() != want {
		t.Errorf("Y = %v, want %v", c.Y(), want)
	}
	if c.Pages() != 1 || pdf.PageCount() != 1 {
		t.Errorf("pages = %d/%d, want 1", c.Pages(), pdf.PageCount())
	}
	if err := c.Err(); err != nil {
		t.Fatalf("writer error: %v", err)
	}
}
