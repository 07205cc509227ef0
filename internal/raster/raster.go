// Package raster turns one tall captured bitmap into an image-only PDF,
// and plans where section starts must move so they never sit at the very
// bottom of a page.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

const imageName = "capture"

// ErrEmptyImage is returned for a capture without pixels.
var ErrEmptyImage = errors.New("raster: empty capture")

// Page is the paper the bitmap is sliced onto, in millimetres.
type Page struct {
	Width  float64
	Height float64
	// Drop is the fraction of a page below which leftover image height does
	// not get a page of its own.
	Drop float64
}

// Offsets returns the y position at which the full image is drawn on each
// page: 0, -h, -2h and so on. There is always at least one page.
func (p Page) Offsets(imgHeight float64) []float64 {
	offs := []float64{0}
	left := imgHeight - p.Height
	for left > p.Drop*p.Height {
		offs = append(offs, -float64(len(offs))*p.Height)
		left -= p.Height
	}
	return offs
}

// PageCount is len(Offsets(imgHeight)) in closed form.
func (p Page) PageCount(imgHeight float64) int {
	n := int(math.Ceil((imgHeight - p.Drop*p.Height) / p.Height))
	return max(n, 1)
}

// Document is an assembled image PDF.
type Document struct {
	Data        []byte
	Pages       int
	ImageHeight float64 // millimetres at full page width
}

// Assemble registers the JPEG once and references it from every page.
func Assemble(jpeg []byte, p Page) (*Document, error) {
	if len(jpeg) == 0 {
		return nil, ErrEmptyImage
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: p.Width, Ht: p.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	opt := fpdf.ImageOptions{ImageType: "JPG", AllowNegativePosition: true}
	info := pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(jpeg))
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("raster: registering image: %w", err)
	}
	if info == nil || info.Width() <= 0 || info.Height() <= 0 {
		return nil, ErrEmptyImage
	}

	imgHeight := info.Height() * p.Width / info.Width()
	offsets := p.Offsets(imgHeight)
	for _, y := range offsets {
		pdf.AddPage()
		pdf.ImageOptions(imageName, 0, y, p.Width, imgHeight, false, opt, 0, "")
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("raster: placing pages: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("raster: writing pdf: %w", err)
	}
	return &Document{Data: buf.Bytes(), Pages: len(offsets), ImageHeight: imgHeight}, nil
}
