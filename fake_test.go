package reportpdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"sync"
	"testing"
)

// fakeDocument is an in-memory page. It records every call and what the
// page looked like when Capture ran.
type fakeDocument struct {
	mu        sync.Mutex
	elements  map[string]bool
	overflow  string
	exporting bool
	calls     []string

	capture    *Capture
	captureErr error
	exportErr  error

	// Capture blocks on release when it is non-nil, after closing entered.
	entered chan struct{}
	release chan struct{}

	seenOverflow  string
	seenExporting bool
}

func newFakeDocument(t *testing.T, w, h int) *fakeDocument {
	t.Helper()
	return &fakeDocument{
		elements: map[string]bool{DefaultTargetID: true},
		overflow: "hidden",
		capture:  &Capture{JPEG: testJPEG(t, w, h), Width: w, Height: h},
	}
}

func (d *fakeDocument) record(call string) {
	d.mu.Lock()
	d.calls = append(d.calls, call)
	d.mu.Unlock()
}

func (d *fakeDocument) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

func (d *fakeDocument) State() (overflow string, exporting bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.overflow, d.exporting
}

func (d *fakeDocument) HasElement(_ context.Context, id string) (bool, error) {
	d.record("HasElement")
	return d.elements[id], nil
}

func (d *fakeDocument) BodyOverflow(context.Context) (string, error) {
	d.record("BodyOverflow")
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.overflow, nil
}

func (d *fakeDocument) SetBodyOverflow(_ context.Context, v string) error {
	d.record("SetBodyOverflow")
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overflow = v
	return nil
}

func (d *fakeDocument) SetExporting(_ context.Context, on bool) error {
	d.record("SetExporting")
	if on && d.exportErr != nil {
		return d.exportErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.exporting = on
	return nil
}

func (d *fakeDocument) Capture(ctx context.Context, _ string, _ CaptureOptions) (*Capture, error) {
	d.record("Capture")
	d.mu.Lock()
	d.seenOverflow, d.seenExporting = d.overflow, d.exporting
	d.mu.Unlock()
	if d.release != nil {
		close(d.entered)
		select {
		case <-d.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if d.captureErr != nil {
		return nil, d.captureErr
	}
	return d.capture, nil
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 240, G: byte(x % 256), B: byte(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	return buf.Bytes()
}
