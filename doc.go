// Package reportpdf exports the NORGESTION results report and sales
// proposal as PDF documents, in two complementary ways:
//
//   - Visual: a rendered page element is captured through headless Chrome
//     (Chrome DevTools Protocol) and sliced across A4 pages as one image.
//   - Editorial: the same content is laid out as selectable vector text,
//     with no browser involved.
//
// # Visual export
//
// For a one-off export use the package-level helper:
//
//	res, err := reportpdf.GenerateVisualPDF(ctx, "http://localhost:3000/informe", "pdf-content", nil)
//
// For repeated exports create an [Exporter], which starts the browser on
// first use and keeps it:
//
//	e, err := reportpdf.NewExporter(reportpdf.WithNoSandbox())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer e.Close()
//
//	res, err := e.GenerateVisualPDF(ctx, pageURL, reportpdf.DefaultTargetID, nil)
//	res, err  = e.GenerateVisualPDFFromHTML(ctx, html, reportpdf.DefaultTargetID, nil)
//
// While capturing, the page is put into export mode: body overflow is forced
// visible and the html element carries the pdf-exporting class. Both are
// restored however the export ends. Adjustments for print (hidden controls,
// expanded scroll areas, section page breaks) happen on a clone of the
// target, so the live subtree is never touched. See [CaptureOptions].
//
// # Editorial export
//
//	res, err := e.GenerateEditorialPDF(ctx, nil)            // NORGESTION-Informe-Texto-2025.pdf
//	res, err  = e.GeneratePropuestaEditorialPDF(ctx, &reportpdf.ExportOptions{
//	    Filename:   "propuesta.pdf",
//	    OnProgress: func(p int) { fmt.Println(p) },
//	})
//
// # Saving and results
//
// Every export hands the finished bytes to a [Saver]. The default writes
// into the working directory, or the directory given with [WithOutputDir].
// A [Result] gives access to what was saved:
//
//	res.Filename()                    // name it was saved under
//	res.Pages()                       // page count
//	res.Bytes()                       // []byte
//	res.Base64()                      // base64 string (RFC 4648)
//	res.WriteToFile("copy.pdf", 0o644)
//
// Only one export runs at a time per Exporter. A request made while another
// is running is ignored: it returns a nil Result and a nil error.
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]:
//
//	e, err := reportpdf.NewExporter(reportpdf.WithAutoDownload())
package reportpdf
