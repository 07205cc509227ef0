package layout

// Writer is the subset of the PDF document writer the composer draws with.
// *fpdf.Fpdf satisfies it.
type Writer interface {
	AddPage()
	SetFont(family, style string, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetLineWidth(width float64)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, style string)
	Text(x, y float64, txt string)
	GetStringWidth(s string) float64
	PageCount() int
	Error() error
}
