package content

import (
	"strconv"
	"strings"
)

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// Hex parses "#RRGGBB" (the leading '#' is optional). Malformed input yields black.
func Hex(s string) RGBColor {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGBColor{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBColor{}
	}
	return RGBColor{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// Common colors.
var (
	Black = RGBColor{0, 0, 0}
	White = RGBColor{255, 255, 255}
)

// FontSpec defines font properties for text rendering.
// Family is a logical family name resolved by the renderer; families it
// cannot load fall back to Helvetica.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// WithStyle returns a copy of f using style s.
func (f FontSpec) WithStyle(s string) FontSpec {
	f.Style = s
	return f
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Align is a horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// VAlign is a vertical alignment inside a table cell.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// ParagraphStyle describes how a Text block is set.
type ParagraphStyle struct {
	Name        string
	Font        FontSpec
	Leading     float64 // baseline-to-baseline distance; 0 means 1.2 × size
	Color       RGBColor
	Align       Align
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
}

// LineHeight returns the effective leading.
func (s ParagraphStyle) LineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.Font.Size * 1.2
}

// Line is a stroked edge.
type Line struct {
	Width float64
	Color RGBColor
}

// CellStyle is the resolved appearance of a single table cell.
type CellStyle struct {
	Fill      *RGBColor
	TextColor RGBColor
	Font      FontSpec
	Align     Align
	VAlign    VAlign
	Padding   Padding

	Grid  *Line // all four edges
	Below *Line // bottom edge, drawn over Grid
	Open  bool  // suppress top, left and right edges
}

// DefaultCellStyle is the style a cell has before any rule applies.
func DefaultCellStyle() CellStyle {
	return CellStyle{
		TextColor: Black,
		Font:      FontSpec{Family: "Helvetica", Size: 10},
		Padding:   Padding{Top: 3, Right: 6, Bottom: 3, Left: 6},
	}
}
