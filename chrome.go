package reportpdf

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/norgestion/reportpdf/internal/raster"
)

// initialViewportHeight only matters until the capture clip is known.
const initialViewportHeight = 900

// chromeDocument is a [Document] backed by one Chrome tab.
type chromeDocument struct {
	tab    context.Context
	cancel context.CancelFunc
}

// run executes actions in the tab. Cancelling ctx closes the tab.
func (d *chromeDocument) run(ctx context.Context, actions ...chromedp.Action) error {
	stop := context.AfterFunc(ctx, d.cancel)
	defer stop()
	return chromedp.Run(d.tab, actions...)
}

// jsValue renders v as a JavaScript literal.
func jsValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Only strings, numbers and plain structs are passed in.
		panic(err)
	}
	return string(b)
}

func (d *chromeDocument) HasElement(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := d.run(ctx, chromedp.Evaluate(
		fmt.Sprintf("document.getElementById(%s) !== null", jsValue(id)), &ok))
	return ok, err
}

func (d *chromeDocument) BodyOverflow(ctx context.Context) (string, error) {
	var v string
	err := d.run(ctx, chromedp.Evaluate("document.body.style.overflow", &v))
	return v, err
}

func (d *chromeDocument) SetBodyOverflow(ctx context.Context, value string) error {
	return d.run(ctx, chromedp.Evaluate(
		fmt.Sprintf("document.body.style.overflow = %s", jsValue(value)), nil))
}

func (d *chromeDocument) SetExporting(ctx context.Context, on bool) error {
	return d.run(ctx, chromedp.Evaluate(
		fmt.Sprintf("document.documentElement.classList.toggle('pdf-exporting', %t)", on), nil))
}

type prepareConfig struct {
	ID          string   `json:"id"`
	Hide        []string `json:"hide"`
	HideCTA     bool     `json:"hideCta"`
	Scroll      string   `json:"scroll"`
	Table       string   `json:"table"`
	TableMax    int      `json:"tableMax"`
	Sections    string   `json:"sections"`
	Background  string   `json:"background"`
	WindowWidth int      `json:"windowWidth"`
}

type measurement struct {
	Found bool          `json:"found"`
	Width float64       `json:"width"`
	Total float64       `json:"total"`
	Spans []raster.Span `json:"spans"`
}

type applyConfig struct {
	Sections string    `json:"sections"`
	Padding  []float64 `json:"padding"`
	Trailing float64   `json:"trailing"`
}

type clipRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// prepareScript swaps a deep clone in for the target, adjusts the clone
// for print and measures its sections. The original node is parked on
// window until restoreScript puts it back.
const prepareScript = `(() => {
  const cfg = %s;
  const orig = document.getElementById(cfg.id);
  if (!orig) return {found: false, width: 0, total: 0, spans: []};
  const clone = orig.cloneNode(true);
  clone.setAttribute('data-pdf-clone', '');
  orig.replaceWith(clone);
  window.__reportpdfOriginal = orig;

  clone.style.backgroundColor = cfg.background;
  clone.style.width = cfg.windowWidth + 'px';
  for (const sel of cfg.hide) {
    clone.querySelectorAll(sel).forEach(el => { el.style.display = 'none'; });
  }
  if (cfg.hideCta) {
    const all = clone.querySelectorAll('section');
    const last = all[all.length - 1];
    if (last && last.querySelector('button')) last.style.display = 'none';
  }
  if (cfg.scroll) {
    clone.querySelectorAll(cfg.scroll).forEach(el => {
      if (cfg.table && el.matches(cfg.table)) {
        el.style.maxHeight = cfg.tableMax + 'px';
        el.style.overflow = 'hidden';
        return;
      }
      el.style.maxHeight = 'none';
      el.style.overflow = 'visible';
    });
  }
  if (cfg.table) {
    clone.querySelectorAll(cfg.table).forEach(el => {
      el.style.maxHeight = cfg.tableMax + 'px';
      el.style.overflow = 'hidden';
    });
  }

  const box = clone.getBoundingClientRect();
  const spans = [...clone.querySelectorAll(cfg.sections)]
    .filter(s => s.offsetParent !== null)
    .map(s => {
      const r = s.getBoundingClientRect();
      return {Top: r.top - box.top, Height: r.height};
    });
  return {found: true, width: box.width, total: box.height, spans};
})()`

// applyScript adds the planned padding and returns the clone's page
// rectangle.
const applyScript = `(() => {
  const cfg = %s;
  const clone = document.querySelector('[data-pdf-clone]');
  const secs = [...clone.querySelectorAll(cfg.sections)].filter(s => s.offsetParent !== null);
  const px = v => parseFloat(v) || 0;
  cfg.padding.forEach((p, i) => {
    if (p > 0 && secs[i]) {
      secs[i].style.paddingTop = (px(getComputedStyle(secs[i]).paddingTop) + p) + 'px';
    }
  });
  if (cfg.trailing > 0 && secs.length > 0) {
    const last = secs[secs.length - 1];
    last.style.paddingBottom = (px(getComputedStyle(last).paddingBottom) + cfg.trailing) + 'px';
  }
  const r = clone.getBoundingClientRect();
  return {x: r.left + window.scrollX, y: r.top + window.scrollY, width: r.width, height: r.height};
})()`

const restoreScript = `(() => {
  const clone = document.querySelector('[data-pdf-clone]');
  const orig = window.__reportpdfOriginal;
  if (clone && orig) clone.replaceWith(orig);
  delete window.__reportpdfOriginal;
  return true;
})()`

func (d *chromeDocument) Capture(ctx context.Context, id string, opts CaptureOptions) (*Capture, error) {
	var m measurement
	if err := d.run(ctx, chromedp.Evaluate(fmt.Sprintf(prepareScript, jsValue(prepareConfig{
		ID:          id,
		Hide:        opts.HideSelectors,
		HideCTA:     opts.HideTrailingCTA,
		Scroll:      opts.ScrollSelector,
		Table:       opts.TableScrollSelector,
		TableMax:    opts.TableMaxHeight,
		Sections:    opts.SectionSelector,
		Background:  opts.Background,
		WindowWidth: opts.WindowWidth,
	})), &m)); err != nil {
		return nil, err
	}
	if !m.Found {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, id)
	}
	defer d.run(context.WithoutCancel(ctx), chromedp.Evaluate(restoreScript, nil))

	plan := raster.PlanBreaks(m.Spans, m.Total, A4.PagePixels(int(math.Round(m.Width))),
		opts.OrphanThreshold, opts.PadTrailingSection)

	var box clipRect
	if err := d.run(ctx, chromedp.Evaluate(fmt.Sprintf(applyScript, jsValue(applyConfig{
		Sections: opts.SectionSelector,
		Padding:  plan.Padding,
		Trailing: plan.Trailing,
	})), &box)); err != nil {
		return nil, err
	}
	if box.Width <= 0 || box.Height <= 0 {
		return nil, fmt.Errorf("target %q has no visible area", id)
	}

	var buf []byte
	if err := d.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, err = page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatJpeg).
			WithQuality(int64(opts.Quality)).
			WithClip(&page.Viewport{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height, Scale: 1}).
			WithCaptureBeyondViewport(true).
			WithFromSurface(true).
			Do(ctx)
		return err
	})); err != nil {
		return nil, err
	}

	return &Capture{
		JPEG:   buf,
		Width:  int(math.Round(box.Width * opts.Scale)),
		Height: int(math.Round(box.Height * opts.Scale)),
	}, nil
}

// loadActions sizes the viewport, opens targetURL and waits for fonts.
func loadActions(targetURL string, opts CaptureOptions) chromedp.Tasks {
	return chromedp.Tasks{
		emulation.SetDeviceMetricsOverride(int64(opts.WindowWidth), initialViewportHeight, opts.Scale, false),
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate("document.fonts.ready.then(() => true)", nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}),
	}
}
