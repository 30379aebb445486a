package render

import (
	"github.com/lvillar/proposal/content"
)

// flowable is a block wrapped to a width and ready to draw.
type flowable interface {
	height() float64
	before() float64
	after() float64
	draw(x, y float64) []Op
}

type gap float64

func (g gap) height() float64      { return float64(g) }
func (gap) before() float64        { return 0 }
func (gap) after() float64         { return 0 }
func (gap) draw(x, y float64) []Op { return nil }

type qrFlow struct {
	data string
	size float64
}

func (q qrFlow) height() float64 { return q.size }
func (qrFlow) before() float64   { return 0 }
func (qrFlow) after() float64    { return 0 }
func (q qrFlow) draw(x, y float64) []Op {
	return []Op{QROp{Data: q.data, X: x, Y: y, Size: q.size}}
}

// stackHeight is the height of flowables drawn one under another.
func stackHeight(fl []flowable) float64 {
	h := 0.0
	for i, f := range fl {
		if i > 0 {
			h += f.before()
		}
		h += f.height()
		if i < len(fl)-1 {
			h += f.after()
		}
	}
	return h
}

func drawStack(fl []flowable, x, y float64) []Op {
	var ops []Op
	for i, f := range fl {
		if i > 0 {
			y += f.before()
		}
		ops = append(ops, f.draw(x, y)...)
		y += f.height() + f.after()
	}
	return ops
}

// cellBox is a cell, or the origin of a span, with its content wrapped.
type cellBox struct {
	col, row   int
	cols, rows int
	style      content.CellStyle
	content    []flowable
	contentH   float64
}

// grid is a table wrapped to its column widths.
type grid struct {
	t       *content.Table
	offset  float64 // horizontal offset that centres the table in its frame
	colX    []float64
	rowH    []float64
	boxes   []*cellBox
	header  int
	breakOK []bool // breakOK[r]: the table may break after row r
}

func (d *Document) wrapTable(t *content.Table, avail float64) *grid {
	g := &grid{t: t, header: t.HeaderRows()}
	widths := t.Widths()
	x := 0.0
	for _, w := range widths {
		g.colX = append(g.colX, x)
		x += w
	}
	g.colX = append(g.colX, x)
	if x < avail {
		g.offset = (avail - x) / 2
	}

	n := t.NumRows()
	g.rowH = make([]float64, n)
	g.breakOK = make([]bool, n)
	for r := range g.breakOK {
		g.breakOK[r] = true
	}

	spans := t.SpanRegions()
	covered := map[[2]int]bool{}
	origin := map[[2]int]content.Region{}
	for _, s := range spans {
		origin[[2]int{s.C0, s.R0}] = s
		for r := s.R0; r <= s.R1; r++ {
			for c := s.C0; c <= s.C1; c++ {
				covered[[2]int{c, r}] = true
			}
			if r < s.R1 {
				g.breakOK[r] = false
			}
		}
	}

	for r := 0; r < n; r++ {
		for c := range widths {
			key := [2]int{c, r}
			region, isOrigin := origin[key]
			if covered[key] && !isOrigin {
				continue
			}
			if !isOrigin {
				region = content.Region{C0: c, R0: r, C1: c, R1: r}
			}
			b := &cellBox{
				col: c, row: r,
				cols:  region.C1 - region.C0 + 1,
				rows:  region.R1 - region.R0 + 1,
				style: t.CellStyle(c, r),
			}
			inner := g.colX[region.C1+1] - g.colX[c] - b.style.Padding.Left - b.style.Padding.Right
			b.content = d.wrapCell(t.Cell(c, r), b.style, inner)
			b.contentH = stackHeight(b.content)
			g.boxes = append(g.boxes, b)
		}
	}

	for r, row := range t.Rows() {
		g.rowH[r] = row.MinHeight()
	}
	for _, b := range g.boxes {
		if b.rows == 1 {
			g.rowH[b.row] = max(g.rowH[b.row], b.contentH+b.style.Padding.Top+b.style.Padding.Bottom)
		}
	}
	for _, b := range g.boxes {
		if b.rows > 1 {
			need := b.contentH + b.style.Padding.Top + b.style.Padding.Bottom
			if have := g.span(b.row, b.row+b.rows); need > have {
				g.rowH[b.row+b.rows-1] += need - have
			}
		}
	}
	return g
}

func (d *Document) wrapCell(c content.Cell, s content.CellStyle, width float64) []flowable {
	if len(c.Blocks) == 0 {
		if c.Text == "" {
			return nil
		}
		style := content.ParagraphStyle{Font: s.Font, Color: s.TextColor, Align: s.Align}
		return []flowable{d.fonts.wrapText(style, content.Escape(c.Text), width)}
	}
	var out []flowable
	for _, b := range c.Blocks {
		if f := d.wrapInline(b, width); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// wrapInline wraps a block that lives inside a table cell. Page breaks and
// cover images have no meaning there and are dropped.
func (d *Document) wrapInline(b content.Block, width float64) flowable {
	switch v := b.(type) {
	case content.Text:
		return d.fonts.wrapText(v.Style, v.Markup, width)
	case content.Spacer:
		return gap(v.Height)
	case *content.Table:
		return d.wrapTable(v, width)
	case content.QRCode:
		return qrFlow{data: v.Data, size: v.Size}
	}
	return nil
}

// span returns the total height of rows [from, to).
func (g *grid) span(from, to int) float64 {
	h := 0.0
	for r := from; r < to; r++ {
		h += g.rowH[r]
	}
	return h
}

func (g *grid) height() float64 { return g.span(0, len(g.rowH)) }
func (*grid) before() float64   { return 0 }
func (*grid) after() float64    { return 0 }

func (g *grid) draw(x, y float64) []Op {
	return g.drawRows(x, y, 0, len(g.rowH))
}

// chunks groups body rows that must stay on one page: rows joined by a
// vertical span.
func (g *grid) chunks() [][2]int {
	var out [][2]int
	start := g.header
	for r := g.header; r < len(g.rowH); r++ {
		if g.breakOK[r] {
			out = append(out, [2]int{start, r + 1})
			start = r + 1
		}
	}
	return out
}

// drawRows draws the header rows followed by body rows [from, to) with the
// top edge at y. Passing from == 0 draws the table from its first row.
func (g *grid) drawRows(x, y float64, from, to int) []Op {
	x += g.offset
	rowY := map[int]float64{}
	cy := y
	order := make([]int, 0, to-from+g.header)
	if from > 0 {
		for r := 0; r < g.header; r++ {
			order = append(order, r)
		}
	}
	for r := from; r < to; r++ {
		order = append(order, r)
	}
	for _, r := range order {
		rowY[r] = cy
		cy += g.rowH[r]
	}

	var fills, body, edges []Op
	for _, b := range g.boxes {
		by, ok := rowY[b.row]
		if !ok {
			continue
		}
		bx := x + g.colX[b.col]
		bw := g.colX[b.col+b.cols] - g.colX[b.col]
		bh := g.span(b.row, b.row+b.rows)
		s := b.style

		if s.Fill != nil {
			fills = append(fills, RectOp{X: bx, Y: by, W: bw, H: bh, Fill: *s.Fill})
		}

		ty := by + s.Padding.Top
		switch s.VAlign {
		case content.VAlignMiddle:
			ty = by + (bh-b.contentH)/2
		case content.VAlignBottom:
			ty = by + bh - s.Padding.Bottom - b.contentH
		}
		body = append(body, drawStack(b.content, bx+s.Padding.Left, ty)...)

		edges = append(edges, cellEdges(s, bx, by, bw, bh)...)
	}
	ops := append(fills, body...)
	return append(ops, edges...)
}

func cellEdges(s content.CellStyle, x, y, w, h float64) []Op {
	var ops []Op
	if s.Grid != nil && !s.Open {
		ops = append(ops,
			LineOp{X1: x, Y1: y, X2: x + w, Y2: y, Line: *s.Grid},
			LineOp{X1: x, Y1: y, X2: x, Y2: y + h, Line: *s.Grid},
			LineOp{X1: x + w, Y1: y, X2: x + w, Y2: y + h, Line: *s.Grid},
		)
	}
	bottom := s.Below
	if bottom == nil {
		bottom = s.Grid
	}
	if bottom != nil {
		ops = append(ops, LineOp{X1: x, Y1: y + h, X2: x + w, Y2: y + h, Line: *bottom})
	}
	return ops
}
