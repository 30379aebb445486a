package content

import "fmt"

// Cell is the content of one table cell: either plain text set in the
// cell's resolved style, or a stack of blocks (paragraphs, spacers and
// nested tables) laid out top to bottom.
type Cell struct {
	Text   string
	Blocks []Block
}

// IsEmpty reports whether the cell has nothing to draw.
func (c Cell) IsEmpty() bool {
	return c.Text == "" && len(c.Blocks) == 0
}

// Row represents a single row in a table.
type Row struct {
	cells    []Cell
	isHeader bool
	minH     float64
}

// Cells returns the row's cells.
func (r *Row) Cells() []Cell { return r.cells }

// IsHeader reports whether the row repeats at the top of each page the
// table spans.
func (r *Row) IsHeader() bool { return r.isHeader }

// MinHeight returns the minimum row height.
func (r *Row) MinHeight() float64 { return r.minH }

// AddCell adds a plain text cell and returns the row for chaining.
func (r *Row) AddCell(text string) *Row {
	r.cells = append(r.cells, Cell{Text: text})
	return r
}

// AddCellf adds a formatted text cell.
func (r *Row) AddCellf(format string, args ...any) *Row {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// AddBlocks adds a cell holding a stack of blocks.
func (r *Row) AddBlocks(blocks ...Block) *Row {
	r.cells = append(r.cells, Cell{Blocks: blocks})
	return r
}

// AddEmpty adds a blank cell, typically one covered by a span.
func (r *Row) AddEmpty() *Row {
	r.cells = append(r.cells, Cell{})
	return r
}

// Add appends an already-built cell.
func (r *Row) Add(c Cell) *Row {
	r.cells = append(r.cells, c)
	return r
}

// SetMinHeight sets the minimum height for this row.
func (r *Row) SetMinHeight(h float64) *Row {
	r.minH = h
	return r
}
