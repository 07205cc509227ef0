package reportpdf

// ProgressFunc receives advisory completion percentages between 0 and 100.
type ProgressFunc func(percent int)

// ExportOptions are the per-call settings of an export. A nil
// *ExportOptions is valid and means all defaults.
type ExportOptions struct {
	// Filename is the saved file name. Empty selects the pipeline default.
	Filename string

	// OnProgress, if set, is called synchronously at each milestone.
	OnProgress ProgressFunc
}

func (o *ExportOptions) filename(def string) string {
	if o == nil || o.Filename == "" {
		return def
	}
	return o.Filename
}

func (o *ExportOptions) progress() ProgressFunc {
	if o == nil {
		return monotonic(nil)
	}
	return monotonic(o.OnProgress)
}

// monotonic clamps to 0..100 and drops any value below the last one passed
// on, so fn only ever sees a non-decreasing sequence.
func monotonic(fn ProgressFunc) ProgressFunc {
	if fn == nil {
		return func(int) {}
	}
	last := -1
	return func(p int) {
		p = min(max(p, 0), 100)
		if p < last {
			return
		}
		last = p
		fn(p)
	}
}
