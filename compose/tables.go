package compose

import (
	"github.com/lvillar/proposal/content"
	"github.com/lvillar/proposal/fee"
)

var (
	all0  = content.At(0, 0)
	all1  = content.At(-1, -1)
	head1 = content.At(-1, 0)
	body0 = content.At(0, 1)
)

// look is the shared appearance of the fee tables: an underlined header row
// without side edges over a fully gridded body.
type look struct {
	headFamily string
	headStyle  string
	bodySize   float64
	pad        float64
	alignFrom  content.Coord // first centred cell
	alignTo    content.Coord
}

func (l look) rules() []content.Rule {
	return []content.Rule{
		content.Background(all0, head1, content.White),
		content.Font(all0, head1, l.headFamily, l.headStyle),
		content.FontSize(all0, head1, 10),
		content.FontSize(body0, all1, l.bodySize),
		content.Alignment(l.alignFrom, l.alignTo, content.AlignCenter),
		content.Grid(all0, all1, 0.5, content.Black),
		content.VAlignment(all0, all1, content.VAlignTop),
		content.CellPadding(all0, all1, content.Padding{Top: l.pad, Right: 8, Bottom: l.pad, Left: 6}),
		content.LeftPadding(body0, content.At(0, -1), 2),
		content.LineBelow(all0, head1, 0.75, content.Black),
		content.OpenEdges(all0, head1),
	}
}

func handoverTable(st Stylesheet, entries []Entry) *content.Table {
	t := content.NewTable(4.4*Inch, 1.5*Inch, 1.5*Inch)
	t.AddHeaderRow().AddCell("Services").AddCell("Frequency").AddCell("Fee (In USD)")
	for _, e := range entries {
		t.AddRow().
			AddBlocks(content.P(st.Body, e.Section.Description)).
			AddCell(e.Frequency).
			AddCell(e.FeeCell())
	}
	t.SetStyle(look{
		headFamily: FamilySans,
		bodySize:   9,
		pad:        8,
		alignFrom:  content.At(1, 0),
		alignTo:    content.At(2, -1),
	}.rules()...)
	return t
}

// serviceTable is the two-column Services / fee layout of group B.
func serviceTable(st Stylesheet, entries []Entry, feeHead string, pad float64) *content.Table {
	t := content.NewTable(5.7*Inch, 1.5*Inch)
	t.AddHeaderRow().AddCell("Services").AddCell(feeHead)
	for _, e := range entries {
		t.AddRow().
			AddBlocks(content.P(st.Body, e.Section.Description)).
			AddCell(e.FeeCell())
	}
	t.SetStyle(look{
		headFamily: FamilyHelvetica,
		headStyle:  "B",
		bodySize:   8,
		pad:        pad,
		alignFrom:  content.At(1, 0),
		alignTo:    content.At(1, -1),
	}.rules()...)
	return t
}

// recurringTable lays group C out as one table. Each category's label cell
// spans however many rows the category actually produced, and two totals
// rows close the table.
func recurringTable(st Stylesheet, entries []Entry, totals fee.Totals) *content.Table {
	t := content.NewTable(1.3*Inch, 1.3*Inch, 3.2*Inch, 1.4*Inch)
	t.AddHeaderRow().AddCell("Services").AddCell("Frequency").AddCell("Notes").AddCell("Fees (in USD)")

	type run struct{ start, n int }
	var runs []run
	for _, cat := range Categorize(entries) {
		runs = append(runs, run{start: t.NumRows(), n: len(cat.Entries)})
		for i, e := range cat.Entries {
			r := t.AddRow()
			if i == 0 {
				r.AddBlocks(content.P(st.SectionHeader, heading(cat.Name)))
			} else {
				r.AddEmpty()
			}
			r.AddCell(e.Frequency)
			r.AddBlocks(notesCell(st, e)...)
			r.AddCell(e.FeeCell())
		}
	}

	annual := t.NumRows()
	t.AddRow().
		AddBlocks(content.P(st.Small, "<b>Total costs (excluding one time costs)</b>")).
		AddEmpty().AddEmpty().
		AddCell(fee.Group(totals.Annualized) + " per annum")
	t.AddRow().
		AddBlocks(content.P(st.Small, "<b>One-time costs</b>")).
		AddEmpty().AddEmpty().
		AddCell(fee.Group(totals.OneTime) + " one time")

	t.SetStyle(
		content.Background(all0, head1, content.White),
		content.Font(all0, head1, FamilyHelvetica, "B"),
		content.FontSize(all0, head1, 10),
		content.Alignment(content.At(1, 0), content.At(3, -1), content.AlignCenter),
		content.Grid(all0, all1, 0.5, content.Black),
		content.VAlignment(all0, all1, content.VAlignTop),
		content.VerticalPadding(all0, all1, 4),
		content.LineBelow(all0, head1, 0.75, content.Black),
		content.OpenEdges(all0, head1),
		content.Font(content.At(1, 1), content.At(1, -1), FamilyHelvetica, ""),
		content.FontSize(content.At(1, 1), content.At(1, -1), 9),
		content.Font(content.At(3, 1), content.At(3, -1), FamilyHelvetica, ""),
		content.FontSize(content.At(3, 1), content.At(3, -1), 9),
		content.Background(content.At(0, annual), all1, content.White),
	)
	for _, r := range runs {
		if r.n > 1 {
			t.SetSpan(content.At(0, r.start), content.At(0, r.start+r.n-1))
		}
	}
	t.SetSpan(content.At(0, annual), content.At(2, annual))
	t.SetSpan(content.At(0, annual+1), content.At(2, annual+1))
	return t
}

func notesCell(st Stylesheet, e Entry) []content.Block {
	blocks := []content.Block{content.P(st.Body, e.Section.Description)}
	if e.Section.Tiers != nil && len(e.Tiers) > 0 {
		blocks = append(blocks, content.Gap(4), tierTable(st, e.Section.Tiers, e))
	}
	return blocks
}

func tierTable(st Stylesheet, tt *TierTable, e Entry) *content.Table {
	t := content.NewTable(1.4*Inch, 1.4*Inch)
	t.AddRow().
		AddBlocks(content.P(st.TierHead, tt.LabelHead)).
		AddBlocks(content.P(st.TierHeadRight, tt.FeeHead))
	for _, tier := range e.Tiers {
		t.AddRow().AddCell(tier.Label).AddCell(tier.Fee)
	}
	t.SetStyle(
		content.Grid(all0, all1, 0.5, content.Black),
		content.FontSize(all0, all1, 8),
		content.Alignment(content.At(1, 0), content.At(1, -1), content.AlignRight),
		content.VAlignment(all0, all1, content.VAlignMiddle),
		content.CellPadding(all0, all1, content.UniformPadding(3)),
	)
	return t
}

func transferPricingTable(st Stylesheet, entries []Entry, total fee.Totals) *content.Table {
	t := content.NewTable(1.4*Inch, 1.1*Inch, 3.3*Inch, 1.4*Inch)
	t.AddHeaderRow().AddCell("Services").AddCell("Frequency").AddCell("Notes").AddCell("Fee (In USD)")
	for _, e := range entries {
		t.AddRow().
			AddBlocks(content.P(st.Body, heading(e.Section.Name))).
			AddCell(e.Frequency).
			AddBlocks(content.P(st.Body, e.Section.Description)).
			AddCell(e.FeeCell())
	}
	last := t.NumRows()
	t.AddRow().
		AddBlocks(content.P(st.Small, "<b>Total one-time costs</b>")).
		AddEmpty().AddEmpty().
		AddCell(fee.Group(total.OneTime))

	t.SetStyle(
		content.Background(all0, head1, content.White),
		content.Font(all0, head1, FamilyHelvetica, "B"),
		content.FontSize(all0, head1, 10),
		content.FontSize(body0, all1, 8),
		content.VAlignment(all0, all1, content.VAlignTop),
		content.Grid(all0, all1, 0.5, content.Black),
		content.CellPadding(all0, all1, content.UniformPadding(8)),
		content.LeftPadding(body0, content.At(0, -1), 2),
		content.LineBelow(all0, head1, 0.75, content.Black),
		content.OpenEdges(all0, head1),
		content.Alignment(content.At(0, last), content.At(2, last), content.AlignCenter),
	)
	t.SetSpan(content.At(0, last), content.At(2, last))
	return t
}
