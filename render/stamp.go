package render

import (
	"fmt"

	"github.com/lvillar/proposal/content"
)

const inch = 72

// Chrome is the header and footer stamped on every page after the first.
type Chrome struct {
	// HeaderImage is drawn across the top margin. When it is empty or cannot
	// be loaded a band header is drawn instead.
	HeaderImage string

	URL       string
	Copyright string
	Notice    string

	// Brand and Tagline are set on the band header.
	Brand   string
	Tagline string

	// Before is the number of static pages placed ahead of dynamic page 1
	// in the final document, After the number placed after the last one.
	Before, After int
}

// DefaultChrome returns the house header and footer with three static pages
// before the dynamic body and nine after it.
func DefaultChrome() Chrome {
	return Chrome{
		URL:       "www.incorp.asia",
		Copyright: "© In.Corp Global Pte Ltd. All Right Reserved.",
		Notice:    "This document is being furnished to you on a confidential basis and solely for your information.",
		Brand:     "In.Corp",
		Tagline:   "An Ascentium Company",
		Before:    3,
		After:     9,
	}
}

// PageLabel returns the footer label of 1-based dynamic page page in a
// render of total pages, numbered as it will appear in the stitched
// document.
func PageLabel(page, total, before, after int) string {
	return fmt.Sprintf("Page %d of %d", page+before, total+before+after)
}

var (
	footerRed   = content.Hex("#C00000")
	ruleGrey    = content.Hex("#CCCCCC")
	copyGrey    = content.Hex("#666666")
	noticeGrey  = content.Hex("#999999")
	bandSlate   = content.Hex("#44546A")
	bandLight   = content.Hex("#F5F5F5")
	brandInk    = content.Hex("#333333")
	footerFont  = content.FontSpec{Family: "Helvetica", Size: 8}
	smallFont   = content.FontSpec{Family: "Helvetica", Size: 7}
	brandFont   = content.FontSpec{Family: "Helvetica", Style: "B", Size: 14}
	taglineFont = content.FontSpec{Family: "Helvetica", Size: 6}
)

func (c Chrome) header(d *Document) []Op {
	g := d.g
	if c.HeaderImage != "" {
		img, err := d.image(c.HeaderImage)
		if err == nil {
			return []Op{ImageOp{Name: img.name, X: g.Left, Y: 0, W: g.PageW - g.Left - g.Right, H: inch}}
		}
		d.warn(fmt.Sprintf("header image %s unavailable, drawing band header: %v", c.HeaderImage, err))
	}

	top, h := 0.25*inch, 0.4*inch
	ops := []Op{
		RectOp{X: g.Left, Y: top, W: 1.3 * inch, H: h, Fill: footerRed},
		RectOp{X: 1.75 * inch, Y: top, W: 1.3 * inch, H: h, Fill: bandSlate},
		RectOp{X: 3 * inch, Y: top, W: 5 * inch, H: h, Fill: bandLight},
	}
	right := g.PageW - 0.7*inch
	if c.Brand != "" {
		ops = append(ops, d.rightText(c.Brand, brandFont, brandInk, right, 0.45*inch))
	}
	if c.Tagline != "" {
		ops = append(ops, d.rightText(c.Tagline, taglineFont, copyGrey, right, 0.55*inch))
	}
	return ops
}

func (c Chrome) footer(d *Document, page, total int) []Op {
	g := d.g
	base := func(fromBottom float64) float64 { return g.PageH - fromBottom }
	ops := []Op{
		LineOp{X1: g.Left, Y1: base(0.65 * inch), X2: g.PageW - g.Right, Y2: base(0.65 * inch), Line: content.Line{Width: 0.5, Color: ruleGrey}},
	}
	if c.URL != "" {
		ops = append(ops, d.leftText(c.URL, footerFont, footerRed, g.Left, base(0.5*inch)))
	}
	ops = append(ops, d.rightText(PageLabel(page, total, c.Before, c.After), footerFont, footerRed, 2.2*inch, base(0.5*inch)))
	if c.Copyright != "" {
		ops = append(ops, d.leftText(c.Copyright, smallFont, copyGrey, g.Left, base(0.38*inch)))
	}
	if c.Notice != "" {
		ops = append(ops, d.leftText(c.Notice, smallFont, noticeGrey, g.Left, base(0.26*inch)))
	}
	return ops
}

func (d *Document) leftText(s string, spec content.FontSpec, color content.RGBColor, x, y float64) Op {
	face := d.fonts.Resolve(spec)
	return TextOp{X: x, Y: y, Text: d.fonts.Encode(face, s), Face: face, Color: color}
}

func (d *Document) rightText(s string, spec content.FontSpec, color content.RGBColor, right, y float64) Op {
	face := d.fonts.Resolve(spec)
	enc := d.fonts.Encode(face, s)
	return TextOp{X: right - d.fonts.Width(face, enc), Y: y, Text: enc, Face: face, Color: color}
}
