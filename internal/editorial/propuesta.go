package editorial

import (
	"strings"

	"github.com/norgestion/reportpdf/content"
	"github.com/norgestion/reportpdf/internal/layout"
)

// priceOffset is how far the price sits from the right margin.
const priceOffset = 30.0

// BuildProposal composes the sales proposal.
func BuildProposal(p *content.Proposal, geo layout.Geometry, progress ProgressFunc) (*Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := newBuilder(geo, progress)
	b.progress(10)

	b.cover(p.Cover.TitleLines, 12, p.Cover.Lead)
	b.progress(20)

	b.objectives(p.Objectives)
	b.progress(35)

	b.actions(p.Actions)
	b.progress(45)

	b.roadmap(p.Roadmap)
	b.progress(50)

	b.pricing(p.Pricing)
	b.progress(70)

	b.nextSteps(p.NextSteps)
	b.philosophy(p.Philosophy)
	b.c.Spacer(20)
	b.c.Footer(p.Footer)
	b.progress(95)

	return b.finish()
}

func (b *builder) objectives(s content.BlockSection) {
	b.heading(s.Section, 15)
	for _, o := range s.Items {
		b.numbered(o, layout.H2, 35, 8, 0, 10)
	}
}

func (b *builder) actions(a content.Actions) {
	c := b.c
	b.heading(a.Section, 15)
	for _, it := range a.Items {
		b.numbered(it, layout.H3, 30, 7, 0, 8)
	}
	c.Spacer(5)
	c.Rule()
	c.Text(a.Hypothesis.Title, layout.H3, 0)
	c.Spacer(3)
	c.Text(a.Hypothesis.Description, layout.Body, 6)
}

func (b *builder) roadmap(r content.Roadmap) {
	c := b.c
	b.heading(r.Section, 15)
	for _, q := range r.Quarters {
		c.Ensure(30)
		c.Inline(0, q.Label, layout.Label)
		c.Inline(12, q.Months, layout.H3)
		c.Spacer(7)
		b.bullets(q.Items, 12)
		c.Spacer(8)
	}
}

func (b *builder) pricing(p content.Pricing) {
	c := b.c
	geo := c.Geometry()
	b.heading(p.Section, 15)
	c.Text(p.BreakdownHead, layout.H2, 0)
	c.Spacer(10)
	for _, s := range p.Services {
		c.Ensure(25)
		c.Text(s.Title, layout.H3, 0)
		c.Text(s.Concept, layout.Small, 5)
		c.Text(s.Detail, layout.Body, 5)
		c.Spacer(8)
	}

	c.Spacer(5)
	c.Rule()
	c.Ensure(20)
	c.Inline(0, p.PriceLabel, layout.H2)
	c.Inline(geo.ContentWidth()-priceOffset, p.Price, layout.H1)
	c.Spacer(15)
	c.Note(p.Disclaimer)
}

func (b *builder) nextSteps(n content.NextSteps) {
	c := b.c
	b.heading(n.Section, 15)
	for _, s := range n.Steps {
		c.Ensure(25)
		c.Inline(0, strings.ToUpper(s.Period), layout.Label)
		c.Spacer(6)
		c.Text(s.Title, layout.H2, 0)
		c.Text(s.Description, layout.Body, 5)
		c.Spacer(12)
	}
}

// philosophy shares the next-steps page, separated by a rule.
func (b *builder) philosophy(p content.Philosophy) {
	c := b.c
	c.Spacer(10)
	c.Rule()
	c.Text(p.Label, layout.Label, 0)
	c.Spacer(5)
	c.Text(p.Title, layout.H1, 0)
	c.Spacer(10)
	c.Text(p.Statement, layout.H3, 0)
	c.Spacer(8)
	c.Text(p.Body, layout.Body, 6)
}
