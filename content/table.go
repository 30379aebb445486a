package content

// Coord addresses a cell by column and row. Negative values count from the
// end, so Coord{-1, -1} is the bottom-right cell whatever the table size.
type Coord struct {
	Col, Row int
}

// At is shorthand for Coord{col, row}.
func At(col, row int) Coord { return Coord{Col: col, Row: row} }

// Region is a resolved, inclusive rectangle of cells.
type Region struct {
	C0, R0, C1, R1 int
}

// Contains reports whether (col, row) lies inside the region.
func (g Region) Contains(col, row int) bool {
	return col >= g.C0 && col <= g.C1 && row >= g.R0 && row <= g.R1
}

// Span merges the cells between From and To into one cell whose content is
// the content of the From cell.
type Span struct {
	From, To Coord
}

// Table is a grid of cells with fixed column widths, an ordered list of style
// rules and a list of spans.
type Table struct {
	widths []float64
	rows   []*Row
	rules  []Rule
	spans  []Span
}

// NewTable creates a table with the given column widths in points.
func NewTable(widths ...float64) *Table {
	return &Table{widths: append([]float64(nil), widths...)}
}

// Widths returns the column widths.
func (t *Table) Widths() []float64 { return t.widths }

// Width returns the total table width.
func (t *Table) Width() float64 {
	w := 0.0
	for _, cw := range t.widths {
		w += cw
	}
	return w
}

// Rows returns all rows, header rows first.
func (t *Table) Rows() []*Row { return t.rows }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// Rules returns the style rules in the order they were added.
func (t *Table) Rules() []Rule { return t.rules }

// Spans returns the declared spans.
func (t *Table) Spans() []Span { return t.spans }

// HeaderRows returns how many leading rows are header rows.
func (t *Table) HeaderRows() int {
	n := 0
	for _, r := range t.rows {
		if !r.isHeader {
			break
		}
		n++
	}
	return n
}

// AddRow adds a new data row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddHeaderRow adds a new header row after any existing header rows.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	at := t.HeaderRows()
	t.rows = append(t.rows, nil)
	copy(t.rows[at+1:], t.rows[at:])
	t.rows[at] = r
	return r
}

// SetStyle appends style rules. Later rules override earlier ones.
func (t *Table) SetStyle(rules ...Rule) *Table {
	t.rules = append(t.rules, rules...)
	return t
}

// SetSpan merges the cells between from and to.
func (t *Table) SetSpan(from, to Coord) *Table {
	t.spans = append(t.spans, Span{From: from, To: to})
	return t
}

// Resolve turns a possibly negative coordinate pair into a region clipped to
// the table. ok is false when the region is empty.
func (t *Table) Resolve(from, to Coord) (Region, bool) {
	cols, rows := len(t.widths), len(t.rows)
	g := Region{
		C0: resolveIndex(from.Col, cols),
		R0: resolveIndex(from.Row, rows),
		C1: resolveIndex(to.Col, cols),
		R1: resolveIndex(to.Row, rows),
	}
	if g.C0 > g.C1 {
		g.C0, g.C1 = g.C1, g.C0
	}
	if g.R0 > g.R1 {
		g.R0, g.R1 = g.R1, g.R0
	}
	g.C0, g.R0 = max(g.C0, 0), max(g.R0, 0)
	g.C1, g.R1 = min(g.C1, cols-1), min(g.R1, rows-1)
	return g, g.C0 <= g.C1 && g.R0 <= g.R1
}

func resolveIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// SpanRegions returns the resolved spans covering more than one cell.
// A span overlapping an earlier one is dropped.
func (t *Table) SpanRegions() []Region {
	var out []Region
	for _, s := range t.spans {
		g, ok := t.Resolve(s.From, s.To)
		if !ok || (g.C0 == g.C1 && g.R0 == g.R1) {
			continue
		}
		overlaps := false
		for _, o := range out {
			if g.C0 <= o.C1 && o.C0 <= g.C1 && g.R0 <= o.R1 && o.R0 <= g.R1 {
				overlaps = true
				break
			}
		}
		if !overlaps {
			out = append(out, g)
		}
	}
	return out
}

// Cell returns the cell at (col, row), or an empty cell if the row is short.
func (t *Table) Cell(col, row int) Cell {
	if row < 0 || row >= len(t.rows) {
		return Cell{}
	}
	cells := t.rows[row].cells
	if col < 0 || col >= len(cells) {
		return Cell{}
	}
	return cells[col]
}

// CellStyle resolves the style of the cell at (col, row) by applying every
// rule whose region contains it, in order.
func (t *Table) CellStyle(col, row int) CellStyle {
	s := DefaultCellStyle()
	for _, r := range t.rules {
		g, ok := t.Resolve(r.From, r.To)
		if !ok || !g.Contains(col, row) {
			continue
		}
		r.apply(&s)
	}
	return s
}
