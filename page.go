package reportpdf

import (
	"github.com/norgestion/reportpdf/internal/layout"
	"github.com/norgestion/reportpdf/internal/raster"
)

// PageSize represents paper dimensions in millimetres.
type PageSize struct {
	Width  float64 // Width in millimetres.
	Height float64 // Height in millimetres.
}

// A4 is the only paper size the exporter produces, always in portrait.
var A4 = PageSize{Width: 210, Height: 297}

// EditorialMargin is the margin on every side of an editorial page, in
// millimetres.
const EditorialMargin = 20.0

// Default output names per pipeline.
const (
	DefaultVisualFilename    = "NORGESTION-Informe-2025.pdf"
	DefaultEditorialFilename = "NORGESTION-Informe-Texto-2025.pdf"
	DefaultProposalFilename  = "NORGESTION-Propuesta-2026.pdf"
)

// DefaultTargetID is the id of the element wrapping the rendered report.
const DefaultTargetID = "pdf-content"

// ContentWidth is the editorial text width: 170 mm on A4.
func (s PageSize) ContentWidth() float64 {
	return s.Width - 2*EditorialMargin
}

func (s PageSize) editorial() layout.Geometry {
	return layout.Geometry{PageWidth: s.Width, PageHeight: s.Height, Margin: EditorialMargin}
}

// raster returns the slicing geometry for the image pipeline. drop is the
// fraction of a page that a trailing remainder must exceed to get its own
// page.
func (s PageSize) raster(drop float64) raster.Page {
	return raster.Page{Width: s.Width, Height: s.Height, Drop: drop}
}

// PagePixels is the height in CSS pixels of one page captured at the given
// viewport width.
func (s PageSize) PagePixels(width int) float64 {
	return raster.PagePixels(float64(width), s.raster(0))
}
