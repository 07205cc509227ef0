package reportpdf_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/spf13/afero"

	"github.com/norgestion/reportpdf"
)

// chromeAvailable reports whether a Chrome/Chromium executable is in PATH.
func chromeAvailable() bool {
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func skipIfNoChrome(t *testing.T) {
	t.Helper()
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
}

func newChromeExporter(t *testing.T) (*reportpdf.Exporter, afero.Fs) {
	t.Helper()
	skipIfNoChrome(t)
	fs := afero.NewMemMapFs()
	e, err := reportpdf.NewExporter(
		reportpdf.WithNoSandbox(),
		reportpdf.WithSaver(reportpdf.NewFSSaver(fs, "")),
	)
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e, fs
}

const tallPage = `<!DOCTYPE html>
<html><head><style>
  body { margin: 0; font-family: sans-serif; overflow: hidden; }
  section { height: 900px; border-bottom: 1px solid #ccc; }
</style></head>
<body>
  <main id="pdf-content">
    <section><h1>Resumen</h1><button class="pdf-hide">Descargar</button></section>
    <section><h2>Posicionamiento</h2></section>
    <section><h2>LinkedIn</h2></section>
  </main>
</body></html>`

func TestGenerateVisualPDFFromHTML(t *testing.T) {
	e, fs := newChromeExporter(t)

	var seen []int
	res, err := e.GenerateVisualPDFFromHTML(context.Background(), tallPage, reportpdf.DefaultTargetID,
		&reportpdf.ExportOptions{OnProgress: func(p int) { seen = append(seen, p) }})
	if err != nil {
		t.Fatalf("GenerateVisualPDFFromHTML: %v", err)
	}
	if string(res.Bytes()[:5]) != "%PDF-" {
		t.Fatal("output is not a valid PDF")
	}
	// 2700 CSS px at 1200px wide is well over one A4 page.
	if res.Pages() < 2 {
		t.Errorf("Pages = %d, want at least 2", res.Pages())
	}
	if len(seen) == 0 || seen[len(seen)-1] != 100 {
		t.Errorf("progress = %v, want to end at 100", seen)
	}
	if ok, _ := afero.Exists(fs, reportpdf.DefaultVisualFilename); !ok {
		t.Error("result was not saved")
	}
}

func TestGenerateVisualPDFFromHTML_MissingTarget(t *testing.T) {
	e, _ := newChromeExporter(t)

	_, err := e.GenerateVisualPDFFromHTML(context.Background(), "<p>no target</p>", reportpdf.DefaultTargetID, nil)
	if !errors.Is(err, reportpdf.ErrTargetNotFound) {
		t.Errorf("err = %v, want ErrTargetNotFound", err)
	}
}
