package render

import (
	"github.com/boombuler/barcode/qr"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/barcode"
)

// emit replays ops onto the current gofpdf page.
func (d *Document) emit(ops []Op) {
	pdf := d.pdf
	for _, op := range ops {
		switch v := op.(type) {
		case TextOp:
			pdf.SetFont(v.Face.Family, v.Face.Style, v.Face.Size)
			pdf.SetTextColor(v.Color.R, v.Color.G, v.Color.B)
			pdf.Text(v.X, v.Y, v.Text)
		case RectOp:
			pdf.SetFillColor(v.Fill.R, v.Fill.G, v.Fill.B)
			pdf.Rect(v.X, v.Y, v.W, v.H, "F")
		case LineOp:
			pdf.SetLineWidth(v.Line.Width)
			pdf.SetDrawColor(v.Line.Color.R, v.Line.Color.G, v.Line.Color.B)
			pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
		case ImageOp:
			pdf.ImageOptions(v.Name, v.X, v.Y, v.W, v.H, false, gofpdf.ImageOptions{}, 0, "")
		case QROp:
			key := barcode.RegisterQR(pdf, v.Data, qr.M, qr.Auto)
			barcode.Barcode(pdf, key, v.X, v.Y, v.Size, v.Size, false)
		}
	}
}
