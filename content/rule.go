package content

// Rule applies one style property to every cell in the region From..To.
// Rules are applied in the order they were added, so a later rule wins.
type Rule struct {
	From, To Coord
	apply    func(*CellStyle)
}

// Background fills the region.
func Background(from, to Coord, c RGBColor) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Fill = &c }}
}

// TextColor sets the text color.
func TextColor(from, to Coord, c RGBColor) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.TextColor = c }}
}

// FontSize sets the text size without changing family or style.
func FontSize(from, to Coord, size float64) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Font.Size = size }}
}

// Font sets family and style, keeping the current size.
func Font(from, to Coord, family, style string) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) {
		s.Font.Family, s.Font.Style = family, style
	}}
}

// Alignment sets horizontal alignment.
func Alignment(from, to Coord, a Align) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Align = a }}
}

// VAlignment sets vertical alignment.
func VAlignment(from, to Coord, v VAlign) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.VAlign = v }}
}

// Grid strokes all four edges of every cell.
func Grid(from, to Coord, width float64, c RGBColor) Rule {
	l := Line{Width: width, Color: c}
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Grid = &l }}
}

// LineBelow strokes the bottom edge of every cell.
func LineBelow(from, to Coord, width float64, c RGBColor) Rule {
	l := Line{Width: width, Color: c}
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Below = &l }}
}

// OpenEdges removes the top, left and right edges, leaving only the bottom
// edge. Used for table header rows that read as an underlined caption.
func OpenEdges(from, to Coord) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Open = true }}
}

// CellPadding sets the inner padding.
func CellPadding(from, to Coord, p Padding) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Padding = p }}
}

// LeftPadding sets only the left padding.
func LeftPadding(from, to Coord, v float64) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) { s.Padding.Left = v }}
}

// VerticalPadding sets top and bottom padding.
func VerticalPadding(from, to Coord, v float64) Rule {
	return Rule{From: from, To: to, apply: func(s *CellStyle) {
		s.Padding.Top, s.Padding.Bottom = v, v
	}}
}
