package editorial

import (
	"fmt"

	"github.com/norgestion/reportpdf/content"
	"github.com/norgestion/reportpdf/internal/layout"
)

// BuildReport composes the results report. Sections always appear in the
// same order, each starting on a new page. The final 100 is left to the
// caller, which reports it once the file is saved.
func BuildReport(r *content.Report, geo layout.Geometry, progress ProgressFunc) (*Document, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	b := newBuilder(geo, progress)
	b.progress(10)

	b.reportCover(r.Cover)
	b.progress(30)

	b.overview(r.Overview)
	b.progress(50)

	b.positioning(r.Positioning)
	b.progress(60)

	b.linkedIn(r.LinkedIn)
	b.progress(70)

	b.impact(r.Impact)
	b.progress(85)

	b.competitive(r.Competitive)
	b.c.Spacer(20)
	b.c.Footer(r.Footer)
	b.progress(95)

	return b.finish()
}

func (b *builder) reportCover(cv content.ReportCover) {
	b.cover(cv.TitleLines, 0, cv.Lead)
	b.c.Text(cv.SummaryTag, layout.H2, 0)
	b.c.Spacer(8)
	for _, s := range cv.Summary {
		b.numbered(s, layout.H3, 25, 6, 12, 8)
	}
}

func (b *builder) overview(o content.Overview) {
	c := b.c
	b.heading(o.Section, 15)
	for _, s := range o.Stats {
		c.Ensure(30)
		c.Stat(s.Value, s.Label)
		c.Text(s.Description, layout.Body, 5)
		c.Spacer(8)
	}
	b.disclaimer(o.Disclaimer)
}

func (b *builder) positioning(p content.Positioning) {
	c := b.c
	b.heading(p.Section, 15)
	for _, s := range p.Stats {
		c.Stat(s.Value, s.Label)
	}

	c.Spacer(10)
	c.Text(p.HighlightsHead, layout.H3, 0)
	c.Spacer(8)
	c.Text(keywordLine(p.Highlights), layout.Body, 5)
	c.Spacer(10)

	c.Text(p.AIPresence.Title, layout.H2, 0)
	c.Spacer(5)
	c.Text(p.AIPresence.Description, layout.Body, 6)
	c.Spacer(10)

	c.Text("Posicionamiento geográfico", layout.H2, 0)
	c.Spacer(5)
	for _, g := range p.Geo {
		c.Ensure(15)
		c.Text(g.City, layout.H3, 6)
		c.TextIndent(keywordLine(g.Keywords), layout.Body, 6, 5)
		c.Spacer(4)
	}
	if len(p.International) > 0 {
		c.Spacer(6)
		c.Text("Alcance internacional", layout.H3, 6)
		c.Text(keywordLine(p.International), layout.Body, 5)
	}
	b.disclaimer(p.Disclaimer)
}

func (b *builder) linkedIn(l content.LinkedIn) {
	c := b.c
	b.heading(l.Section, 15)
	for _, k := range l.KPIs {
		c.Ensure(30)
		c.Stat(content.FormatInt(k.Total), k.Title)
		c.Text(kpiLine(k), layout.Body, 5)
		c.Spacer(8)
	}
	c.Spacer(5)
	for _, in := range l.Insights {
		b.titled(in, layout.H3)
	}
	b.disclaimer(l.Disclaimer)
}

func kpiLine(k content.KPI) string {
	status := "por debajo del objetivo"
	if k.Achieved {
		status = "objetivo superado"
	}
	return fmt.Sprintf("%s por publicación (objetivo %s): %s.",
		content.FormatDecimal(k.PerPost), content.FormatDecimal(k.Target), status)
}

func (b *builder) impact(im content.Impact) {
	c := b.c
	b.heading(im.Section, 15)
	c.Text(im.CategoriesHead, layout.H2, 0)
	c.Spacer(10)
	for _, cat := range im.Categories {
		c.Ensure(30)
		c.Stat(content.FormatInt(cat.Value), cat.Descriptor)
		c.Text(cat.Subtext, layout.Body, 5)
		c.Spacer(8)
	}
	for _, in := range im.Insights {
		b.titled(in, layout.H3)
	}
	c.Spacer(10)
	c.Text(im.International.Title, layout.H2, 0)
	c.Spacer(5)
	c.Text(im.International.Description, layout.Body, 6)
	b.disclaimer(im.Disclaimer)
}

func (b *builder) competitive(cp content.Competitive) {
	c := b.c
	b.heading(cp.Section, 15)

	c.Text("Casos de mercado", layout.H2, 0)
	c.Spacer(8)
	for _, cs := range cp.Cases {
		b.titled(cs, layout.H3)
	}

	c.Spacer(5)
	c.Text("Ventaja estructural", layout.H2, 0)
	c.Spacer(8)
	for _, a := range cp.Advantages {
		b.titled(a, layout.H3)
	}

	c.Spacer(5)
	for _, cmp := range []content.Comparison{cp.Traditional, cp.FullStack} {
		c.Ensure(30)
		c.Text(cmp.Title, layout.H2, 0)
		c.Spacer(8)
		b.bullets(cmp.Items, 0)
		c.Spacer(15)
	}
	c.Rule()
	c.Text(cp.Conclusion, layout.Body, 6)
}
