// Package content defines the abstract document model a proposal is
// composed into: an ordered sequence of blocks (styled paragraphs, tables,
// spacers, page breaks, cover images and QR codes).
//
// Blocks carry no rendering state; the same sequence can be laid out any
// number of times.
package content

// Kind identifies the variant of a Block.
type Kind string

const (
	KindText       Kind = "text"
	KindTable      Kind = "table"
	KindSpacer     Kind = "spacer"
	KindPageBreak  Kind = "pagebreak"
	KindCoverImage Kind = "cover"
	KindQRCode     Kind = "qrcode"
)

// Block is one element of the reading order.
type Block interface {
	Kind() Kind
}

// Text is a paragraph of inline markup set in Style.
type Text struct {
	Style  ParagraphStyle
	Markup string
}

// Spacer is vertical whitespace.
type Spacer struct {
	Height float64
}

// PageBreak ends the current page.
type PageBreak struct{}

// CoverImage fills the whole page with an image and overlays a single line
// of centred text. When Path is empty or unreadable only the overlay is drawn.
type CoverImage struct {
	Path     string
	Overlay  string
	Font     FontSpec
	Color    RGBColor
	OverlayY float64 // baseline distance from the bottom edge of the page
}

// QRCode draws a square QR code of side Size encoding Data, left aligned.
type QRCode struct {
	Data string
	Size float64
}

func (Text) Kind() Kind       { return KindText }
func (*Table) Kind() Kind     { return KindTable }
func (Spacer) Kind() Kind     { return KindSpacer }
func (PageBreak) Kind() Kind  { return KindPageBreak }
func (CoverImage) Kind() Kind { return KindCoverImage }
func (QRCode) Kind() Kind     { return KindQRCode }

// P is shorthand for a Text block.
func P(style ParagraphStyle, markup string) Text {
	return Text{Style: style, Markup: markup}
}

// Gap is shorthand for a Spacer block.
func Gap(h float64) Spacer {
	return Spacer{Height: h}
}

// Count returns how many blocks of kind k appear in blocks, including those
// nested inside table cells.
func Count(blocks []Block, k Kind) int {
	n := 0
	for _, b := range blocks {
		if b.Kind() == k {
			n++
		}
		if t, ok := b.(*Table); ok {
			for _, r := range t.rows {
				for _, c := range r.cells {
					n += Count(c.Blocks, k)
				}
			}
		}
	}
	return n
}
