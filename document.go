package reportpdf

import (
	"context"
	"fmt"
)

// Document is a live rendered page the raster pipeline captures from.
//
// The exporter only ever mutates the page through SetBodyOverflow and
// SetExporting, and always puts both back. Capture must leave the target
// subtree as it found it.
type Document interface {
	// HasElement reports whether an element with the given id exists.
	HasElement(ctx context.Context, id string) (bool, error)

	// BodyOverflow returns the inline overflow style of <body>.
	BodyOverflow(ctx context.Context) (string, error)

	// SetBodyOverflow sets the inline overflow style of <body>.
	SetBodyOverflow(ctx context.Context, value string) error

	// SetExporting toggles the page-wide flag stylesheets use to switch to
	// print-friendly rendering.
	SetExporting(ctx context.Context, on bool) error

	// Capture renders element id into a single JPEG bitmap.
	Capture(ctx context.Context, id string, opts CaptureOptions) (*Capture, error)
}

// Capture is one encoded bitmap of the captured element.
type Capture struct {
	JPEG   []byte
	Width  int // device pixels
	Height int // device pixels
}

// CaptureOptions controls how the target element is rendered to a bitmap.
//
// All adjustments are applied to a clone of the target, never to the
// original subtree.
type CaptureOptions struct {
	// WindowWidth is the layout viewport width in CSS pixels.
	WindowWidth int

	// Scale is the device pixel ratio of the capture.
	Scale float64

	// Quality is the JPEG quality, 1 to 100.
	Quality int

	// Background paints behind transparent regions.
	Background string

	// HideSelectors match elements removed from the capture, such as
	// carousel controls and lightboxes.
	HideSelectors []string

	// HideTrailingCTA hides the last section when it holds a button.
	HideTrailingCTA bool

	// ScrollSelector matches height-clipped containers that are expanded
	// to their full content.
	ScrollSelector string

	// TableScrollSelector matches tabular scroll regions. These are
	// expanded only up to TableMaxHeight.
	TableScrollSelector string
	TableMaxHeight      int

	// SectionSelector matches the top-level sections used for page-break
	// planning.
	SectionSelector string

	// OrphanThreshold is the bottom fraction of a page in which a section
	// may not start. It is moved to the next page instead.
	OrphanThreshold float64

	// PadTrailingSection extends the last section to the end of its page.
	PadTrailingSection bool

	// TrailingDropThreshold is the fraction of a page a remainder must
	// exceed to get a page of its own.
	TrailingDropThreshold float64
}

// DefaultCaptureOptions returns the settings the report pages are tuned
// for.
func DefaultCaptureOptions() CaptureOptions {
	return CaptureOptions{
		WindowWidth: 1200,
		Scale:       2,
		Quality:     95,
		Background:  "#ffffff",
		HideSelectors: []string{
			".pdf-hide",
			`button[aria-label*="Previous"]`,
			`button[aria-label*="Next"]`,
			`button[aria-label*="slide"]`,
			`button[aria-label*="Close"]`,
			".slider-nav-dots",
			".slider-progress",
			`[class*="fixed inset-0 z-50"]`,
		},
		HideTrailingCTA:       true,
		ScrollSelector:        `[class*="max-h-"]`,
		TableScrollSelector:   ".pdf-table-scroll",
		TableMaxHeight:        2400,
		SectionSelector:       "section:not(section section)",
		OrphanThreshold:       0.15,
		PadTrailingSection:    true,
		TrailingDropThreshold: 0.10,
	}
}

func (o CaptureOptions) validate() error {
	switch {
	case o.WindowWidth <= 0:
		return fmt.Errorf("%w: window width %d", ErrInvalidOptions, o.WindowWidth)
	case o.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidOptions, o.Scale)
	case o.Quality < 1 || o.Quality > 100:
		return fmt.Errorf("%w: jpeg quality %d", ErrInvalidOptions, o.Quality)
	case o.OrphanThreshold < 0 || o.OrphanThreshold >= 1:
		return fmt.Errorf("%w: orphan threshold %v", ErrInvalidOptions, o.OrphanThreshold)
	case o.TrailingDropThreshold < 0 || o.TrailingDropThreshold >= 1:
		return fmt.Errorf("%w: trailing drop threshold %v", ErrInvalidOptions, o.TrailingDropThreshold)
	}
	return nil
}
