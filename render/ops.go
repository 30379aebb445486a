package render

import "github.com/lvillar/proposal/content"

// Geometry is the page size and the margins of the body frame, in points.
type Geometry struct {
	PageW, PageH             float64
	Left, Right, Top, Bottom float64
}

// Letter is US Letter with half-inch side margins, 1.2 inch top and 1 inch
// bottom margins.
func Letter() Geometry {
	return Geometry{PageW: 612, PageH: 792, Left: 36, Right: 36, Top: 86.4, Bottom: 72}
}

// FrameWidth is the width available to body content.
func (g Geometry) FrameWidth() float64 { return g.PageW - g.Left - g.Right }

// FrameBottom is the lowest y body content may reach.
func (g Geometry) FrameBottom() float64 { return g.PageH - g.Bottom }

// Op is one drawing command of a page snapshot. Coordinates are in points
// from the top-left corner of the page.
type Op interface {
	isOp()
}

// TextOp draws a single line of text with its baseline at Y. Text is
// already encoded for Face.
type TextOp struct {
	X, Y  float64
	Text  string
	Face  Face
	Color content.RGBColor
}

// RectOp fills a rectangle.
type RectOp struct {
	X, Y, W, H float64
	Fill       content.RGBColor
}

// LineOp strokes a straight line.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Line           content.Line
}

// ImageOp draws an image registered with the document under Name.
type ImageOp struct {
	Name       string
	X, Y, W, H float64
}

// QROp draws a square QR code encoding Data.
type QROp struct {
	Data string
	X, Y float64
	Size float64
}

func (TextOp) isOp()  {}
func (RectOp) isOp()  {}
func (LineOp) isOp()  {}
func (ImageOp) isOp() {}
func (QROp) isOp()    {}

// Page is the snapshot of one laid-out page. Body is captured during layout;
// Chrome holds the header and footer added by the stamp pass.
type Page struct {
	Index  int
	Body   []Op
	Chrome []Op
}

// Texts returns the text of every TextOp in ops, in drawing order.
func Texts(ops []Op) []string {
	var out []string
	for _, op := range ops {
		if t, ok := op.(TextOp); ok {
			out = append(out, t.Text)
		}
	}
	return out
}
