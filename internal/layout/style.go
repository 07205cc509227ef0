package layout

// StyleToken names one of the fixed text presets.
type StyleToken string

const (
	Title StyleToken = "title"
	H1    StyleToken = "h1"
	H2    StyleToken = "h2"
	H3    StyleToken = "h3"
	Body  StyleToken = "body"
	Small StyleToken = "small"
	Label StyleToken = "label"
)

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B int
}

// TextStyle is the font, weight, size (pt) and colour behind a token.
type TextStyle struct {
	Family string
	Weight string // fpdf style string: "" or "B"
	Size   float64
	Color  RGB
}

var (
	ink   = RGB{29, 29, 31}
	prose = RGB{80, 80, 80}
	muted = RGB{120, 120, 120}
	brand = RGB{1, 105, 54}
)

var styles = map[StyleToken]TextStyle{
	Title: {Family: "Helvetica", Weight: "B", Size: 28, Color: ink},
	H1:    {Family: "Helvetica", Weight: "B", Size: 22, Color: ink},
	H2:    {Family: "Helvetica", Weight: "B", Size: 16, Color: ink},
	H3:    {Family: "Helvetica", Weight: "B", Size: 13, Color: ink},
	Body:  {Family: "Helvetica", Weight: "", Size: 11, Color: prose},
	Small: {Family: "Helvetica", Weight: "", Size: 9, Color: muted},
	Label: {Family: "Helvetica", Weight: "", Size: 10, Color: brand},
}

// Lookup returns the preset for tok. Unknown tokens fall back to Body.
func Lookup(tok StyleToken) TextStyle {
	if s, ok := styles[tok]; ok {
		return s
	}
	return styles[Body]
}

// Tokens lists every preset in display order.
func Tokens() []StyleToken {
	return []StyleToken{Title, H1, H2, H3, Body, Small, Label}
}
