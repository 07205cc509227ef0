package raster

import "math"

// Span is a section's vertical extent in CSS pixels, measured from the top
// of the captured element.
type Span struct {
	Top    float64
	Height float64
}

// Plan is the extra top padding for each section and for the trailing
// filler, in CSS pixels.
type Plan struct {
	Padding  []float64
	Trailing float64
}

// PagePixels is the height of one page at the given capture width.
func PagePixels(width float64, p Page) float64 {
	return width * p.Height / p.Width
}

// PlanBreaks pushes every section whose start lands in the last threshold
// fraction of a page to the top of the next one. Padding accumulates, so
// each later section is tested at its shifted position. With padTrailing
// set, Trailing brings total up to a whole number of pages.
func PlanBreaks(spans []Span, total, pagePx, threshold float64, padTrailing bool) Plan {
	plan := Plan{Padding: make([]float64, len(spans))}
	if pagePx <= 0 {
		return plan
	}
	shift := 0.0
	for i, s := range spans {
		pos := math.Mod(s.Top+shift, pagePx)
		if pos > pagePx*(1-threshold) {
			pad := pagePx - pos
			plan.Padding[i] = pad
			shift += pad
		}
	}
	if padTrailing {
		if rem := math.Mod(total+shift, pagePx); rem > 0 {
			plan.Trailing = pagePx - rem
		}
	}
	return plan
}
