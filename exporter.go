package reportpdf

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/norgestion/reportpdf/content"
	"github.com/norgestion/reportpdf/internal/editorial"
	"github.com/norgestion/reportpdf/internal/raster"
)

// Pipeline names used in log entries.
const (
	pipelineVisual    = "visual"
	pipelineEditorial = "editorial"
	pipelineProposal  = "proposal"
)

// Exporter produces the report PDFs.
//
// At most one export runs at a time: a call made while another export is
// in progress returns a nil Result and a nil error without doing anything.
// The headless browser needed by the visual exports is started on first use
// and reused afterwards.
//
// Call [Exporter.Close] when the Exporter is no longer needed to release
// browser resources.
type Exporter struct {
	cfg exporterConfig
	log *zap.Logger

	mu               sync.Mutex
	closed           bool
	generatingVisual bool
	generatingText   bool

	browserMu     sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewExporter creates an Exporter with the given options.
func NewExporter(opts ...Option) (*Exporter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.capture.validate(); err != nil {
		return nil, err
	}
	if cfg.saver == nil {
		cfg.saver = NewFSSaver(afero.NewOsFs(), cfg.outputDir)
	}
	return &Exporter{cfg: cfg, log: cfg.logger}, nil
}

// Close releases all resources held by the Exporter, including the
// browser process if one was started. Close is idempotent.
func (e *Exporter) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	e.browserMu.Lock()
	defer e.browserMu.Unlock()
	if e.browserCancel != nil {
		e.browserCancel()
		e.allocCancel()
		e.browserCtx, e.browserCancel, e.allocCancel = nil, nil, nil
	}
	return nil
}

// Busy reports whether an export is in progress.
func (e *Exporter) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generatingVisual || e.generatingText
}

// begin claims the export slot for pipeline. ok is false when another
// export is already running.
func (e *Exporter) begin(pipeline string) (end func(), ok bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, false, ErrClosed
	}
	if e.generatingVisual || e.generatingText {
		return nil, false, nil
	}
	flag := &e.generatingText
	if pipeline == pipelineVisual {
		flag = &e.generatingVisual
	}
	*flag = true
	return func() {
		e.mu.Lock()
		*flag = false
		e.mu.Unlock()
	}, true, nil
}

// browser returns the shared browser context, starting Chrome if needed.
func (e *Exporter) browser() (context.Context, error) {
	e.browserMu.Lock()
	defer e.browserMu.Unlock()
	if e.browserCtx != nil {
		return e.browserCtx, nil
	}

	path, err := browserPath(e.cfg)
	if err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", e.cfg.headless),
	)
	if path != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(path))
	}
	if e.cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("reportpdf: starting browser: %w", err)
	}
	e.log.Info("browser started", zap.String("path", path))

	e.allocCancel = allocCancel
	e.browserCtx = browserCtx
	e.browserCancel = browserCancel
	return browserCtx, nil
}

// openTab loads targetURL in a new tab sized for capture.
func (e *Exporter) openTab(ctx context.Context, targetURL string) (*chromeDocument, error) {
	browserCtx, err := e.browser()
	if err != nil {
		return nil, err
	}
	tab, cancel := chromedp.NewContext(browserCtx)
	doc := &chromeDocument{tab: tab, cancel: cancel}
	if err := doc.run(ctx, loadActions(targetURL, e.cfg.capture)); err != nil {
		cancel()
		return nil, fmt.Errorf("reportpdf: loading %s: %w", targetURL, err)
	}
	return doc, nil
}

func (e *Exporter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.timeout > 0 {
		return context.WithTimeout(ctx, e.cfg.timeout)
	}
	return context.WithCancel(ctx)
}

// GenerateVisualPDF opens pageURL in the headless browser and exports the
// element targetID as an image PDF.
func (e *Exporter) GenerateVisualPDF(ctx context.Context, pageURL, targetID string, opts *ExportOptions) (*Result, error) {
	if _, err := url.ParseRequestURI(pageURL); err != nil {
		return nil, fmt.Errorf("reportpdf: invalid URL %q: %w", pageURL, err)
	}
	return e.visual(ctx, targetID, opts, func(ctx context.Context) (Document, func(), error) {
		doc, err := e.openTab(ctx, pageURL)
		if err != nil {
			return nil, nil, err
		}
		return doc, doc.cancel, nil
	})
}

// GenerateVisualPDFFromHTML renders an HTML document in the headless
// browser and exports the element targetID as an image PDF.
func (e *Exporter) GenerateVisualPDFFromHTML(ctx context.Context, html, targetID string, opts *ExportOptions) (*Result, error) {
	return e.visual(ctx, targetID, opts, func(ctx context.Context) (Document, func(), error) {
		path, cleanup, err := writeTempHTML(html)
		if err != nil {
			return nil, nil, err
		}
		doc, err := e.openTab(ctx, "file://"+path)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return doc, func() { doc.cancel(); cleanup() }, nil
	})
}

// GenerateVisualPDFFromDocument exports the element targetID of an already
// open document as an image PDF.
func (e *Exporter) GenerateVisualPDFFromDocument(ctx context.Context, doc Document, targetID string, opts *ExportOptions) (*Result, error) {
	return e.visual(ctx, targetID, opts, func(context.Context) (Document, func(), error) {
		return doc, func() {}, nil
	})
}

func writeTempHTML(html string) (path string, cleanup func(), err error) {
	fs := afero.NewOsFs()
	f, err := afero.TempFile(fs, "", "reportpdf-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("reportpdf: creating temp file: %w", err)
	}
	name := f.Name()
	cleanup = func() { fs.Remove(name) }

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("reportpdf: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("reportpdf: closing temp file: %w", err)
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("reportpdf: resolving path: %w", err)
	}
	return abs, cleanup, nil
}

type openFunc func(ctx context.Context) (doc Document, closeDoc func(), err error)

func (e *Exporter) visual(ctx context.Context, targetID string, opts *ExportOptions, open openFunc) (*Result, error) {
	end, ok, err := e.begin(pipelineVisual)
	if err != nil {
		return nil, err
	}
	if !ok {
		e.log.Info("export already in progress, ignoring request", zap.String("pipeline", pipelineVisual))
		return nil, nil
	}
	defer end()

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	ex := e.start(pipelineVisual, opts.filename(DefaultVisualFilename))
	doc, closeDoc, err := open(ctx)
	if err != nil {
		return nil, ex.fail(err)
	}
	defer closeDoc()

	res, err := e.captureAndSave(ctx, doc, targetID, ex, opts.progress())
	if err != nil {
		return nil, ex.fail(err)
	}
	ex.done(res)
	return res, nil
}

// captureAndSave is the raster pipeline proper.
func (e *Exporter) captureAndSave(ctx context.Context, doc Document, targetID string, ex *export, progress ProgressFunc) (*Result, error) {
	found, err := doc.HasElement(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("reportpdf: resolving target: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, targetID)
	}
	progress(10)

	capture, err := e.capture(ctx, doc, targetID, ex, progress)
	if err != nil {
		return nil, err
	}
	progress(70)

	assembled, err := raster.Assemble(capture.JPEG, A4.raster(e.cfg.capture.TrailingDropThreshold))
	if err != nil {
		return nil, fmt.Errorf("reportpdf: assembling document: %w", err)
	}
	progress(90)

	if err := e.save(ctx, ex.filename, assembled.Data); err != nil {
		return nil, err
	}
	progress(100)

	return &Result{id: ex.id, filename: ex.filename, pages: assembled.Pages, data: assembled.Data}, nil
}

// capture holds export mode for exactly the duration of the capture.
func (e *Exporter) capture(ctx context.Context, doc Document, targetID string, ex *export, progress ProgressFunc) (*Capture, error) {
	release, err := acquireExportMode(ctx, doc)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(); err != nil {
			ex.log.Warn("restoring page after export", zap.Error(err))
		}
	}()
	progress(20)

	c, err := doc.Capture(ctx, targetID, e.cfg.capture)
	if err != nil {
		return nil, fmt.Errorf("reportpdf: capture failed: %w", err)
	}
	if c == nil || len(c.JPEG) == 0 {
		return nil, fmt.Errorf("reportpdf: capture failed: %w", raster.ErrEmptyImage)
	}
	ex.log.Debug("captured",
		zap.Int("width_px", c.Width),
		zap.Int("height_px", c.Height),
		zap.Int("jpeg_bytes", len(c.JPEG)),
	)
	return c, nil
}

// GenerateEditorialPDF composes and saves the text version of the results
// report.
func (e *Exporter) GenerateEditorialPDF(ctx context.Context, opts *ExportOptions) (*Result, error) {
	return e.text(ctx, pipelineEditorial, opts.filename(DefaultEditorialFilename), opts, func(p editorial.ProgressFunc) (*editorial.Document, error) {
		return editorial.BuildReport(content.Informe(), A4.editorial(), p)
	})
}

// GeneratePropuestaEditorialPDF composes and saves the proposal.
func (e *Exporter) GeneratePropuestaEditorialPDF(ctx context.Context, opts *ExportOptions) (*Result, error) {
	return e.text(ctx, pipelineProposal, opts.filename(DefaultProposalFilename), opts, func(p editorial.ProgressFunc) (*editorial.Document, error) {
		return editorial.BuildProposal(content.Propuesta(), A4.editorial(), p)
	})
}

func (e *Exporter) text(ctx context.Context, pipeline, filename string, opts *ExportOptions, build func(editorial.ProgressFunc) (*editorial.Document, error)) (*Result, error) {
	end, ok, err := e.begin(pipeline)
	if err != nil {
		return nil, err
	}
	if !ok {
		e.log.Info("export already in progress, ignoring request", zap.String("pipeline", pipeline))
		return nil, nil
	}
	defer end()

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	ex := e.start(pipeline, filename)
	progress := opts.progress()
	doc, err := build(editorial.ProgressFunc(progress))
	if err != nil {
		if !errors.Is(err, content.ErrInvalid) {
			err = fmt.Errorf("reportpdf: assembling document: %w", err)
		}
		return nil, ex.fail(err)
	}
	if err := e.save(ctx, filename, doc.Data); err != nil {
		return nil, ex.fail(err)
	}
	progress(100)

	res := &Result{id: ex.id, filename: filename, pages: doc.Pages, data: doc.Data}
	ex.done(res)
	return res, nil
}

func (e *Exporter) save(ctx context.Context, filename string, data []byte) error {
	if err := e.cfg.saver.Save(ctx, filename, data); err != nil {
		return fmt.Errorf("reportpdf: saving %s: %w", filename, err)
	}
	return nil
}

// export carries the per-call logging context.
type export struct {
	id       string
	filename string
	started  time.Time
	log      *zap.Logger
}

func (e *Exporter) start(pipeline, filename string) *export {
	id := uuid.NewString()
	ex := &export{
		id:       id,
		filename: filename,
		started:  time.Now(),
		log: e.log.With(
			zap.String("export_id", id),
			zap.String("pipeline", pipeline),
			zap.String("filename", filename),
		),
	}
	ex.log.Info("export started")
	return ex
}

func (ex *export) fail(err error) error {
	ex.log.Error("export failed", zap.Error(err), zap.Duration("duration", time.Since(ex.started)))
	return err
}

func (ex *export) done(r *Result) {
	ex.log.Info("export finished",
		zap.Int("pages", r.Pages()),
		zap.Int("bytes", r.Len()),
		zap.Duration("duration", time.Since(ex.started)),
	)
}

// --- Package-level convenience functions ---

// GenerateEditorialPDF composes the text report with a temporary
// [Exporter]. No browser is started.
func GenerateEditorialPDF(ctx context.Context, opts *ExportOptions, options ...Option) (*Result, error) {
	e, err := NewExporter(options...)
	if err != nil {
		return nil, err
	}
	defer e.Close()
	return e.GenerateEditorialPDF(ctx, opts)
}

// GeneratePropuestaEditorialPDF composes the proposal with a temporary
// [Exporter].
func GeneratePropuestaEditorialPDF(ctx context.Context, opts *ExportOptions, options ...Option) (*Result, error) {
	e, err := NewExporter(options...)
	if err != nil {
		return nil, err
	}
	defer e.Close()
	return e.GeneratePropuestaEditorialPDF(ctx, opts)
}

// GenerateVisualPDF exports a web page element with a temporary [Exporter].
// For repeated use, create an [Exporter] with [NewExporter] to reuse the
// browser instance.
func GenerateVisualPDF(ctx context.Context, pageURL, targetID string, opts *ExportOptions, options ...Option) (*Result, error) {
	e, err := NewExporter(options...)
	if err != nil {
		return nil, err
	}
	defer e.Close()
	return e.GenerateVisualPDF(ctx, pageURL, targetID, opts)
}
