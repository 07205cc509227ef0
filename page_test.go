package reportpdf

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestA4Geometry(t *testing.T) {
	if A4.ContentWidth() != 170 {
		t.Errorf("ContentWidth = %v, want 170", A4.ContentWidth())
	}
	g := A4.editorial()
	if g.Bottom() != 277 || g.Usable() != 257 {
		t.Errorf("editorial bottom/usable = %v/%v, want 277/257", g.Bottom(), g.Usable())
	}
}

func TestPagePixels(t *testing.T) {
	// 1200 * 297 / 210
	if got := A4.PagePixels(1200); !almostEqual(got, 1697.142857, 0.0001) {
		t.Errorf("PagePixels(1200) = %v", got)
	}
}

func TestRasterPageCount(t *testing.T) {
	p := A4.raster(DefaultCaptureOptions().TrailingDropThreshold)
	tests := []struct {
		height float64
		want   int
	}{
		{50, 1},
		{614, 2},
		{650, 3},
	}
	for _, tt := range tests {
		if got := p.PageCount(tt.height); got != tt.want {
			t.Errorf("PageCount(%v) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestDefaultCaptureOptions(t *testing.T) {
	o := DefaultCaptureOptions()
	if o.WindowWidth != 1200 || o.Scale != 2 || o.Quality != 95 {
		t.Errorf("viewport = %d@%vx q%d, want 1200@2x q95", o.WindowWidth, o.Scale, o.Quality)
	}
	if o.OrphanThreshold != 0.15 || o.TrailingDropThreshold != 0.10 {
		t.Errorf("thresholds = %v/%v", o.OrphanThreshold, o.TrailingDropThreshold)
	}
	if o.TableMaxHeight != 2400 {
		t.Errorf("TableMaxHeight = %d, want 2400", o.TableMaxHeight)
	}
	if !slices.Contains(o.HideSelectors, ".pdf-hide") {
		t.Error("default hide selectors miss .pdf-hide")
	}
	if err := o.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestCaptureOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CaptureOptions)
	}{
		{"zero width", func(o *CaptureOptions) { o.WindowWidth = 0 }},
		{"zero scale", func(o *CaptureOptions) { o.Scale = 0 }},
		{"quality too high", func(o *CaptureOptions) { o.Quality = 101 }},
		{"orphan threshold one", func(o *CaptureOptions) { o.OrphanThreshold = 1 }},
		{"negative drop", func(o *CaptureOptions) { o.TrailingDropThreshold = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultCaptureOptions()
			tt.mutate(&o)
			if err := o.validate(); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestExportOptionsDefaults(t *testing.T) {
	var nilOpts *ExportOptions
	if got := nilOpts.filename(DefaultProposalFilename); got != DefaultProposalFilename {
		t.Errorf("nil options filename = %q", got)
	}
	nilOpts.progress()(50) // must not panic

	o := &ExportOptions{Filename: "x.pdf"}
	if got := o.filename(DefaultProposalFilename); got != "x.pdf" {
		t.Errorf("filename = %q, want x.pdf", got)
	}
}

func TestMonotonicProgress(t *testing.T) {
	var seen []int
	p := monotonic(func(v int) { seen = append(seen, v) })
	for _, v := range []int{-5, 10, 30, 20, 30, 150, 90} {
		p(v)
	}
	if want := []int{0, 10, 30, 30, 100}; !slices.Equal(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}
