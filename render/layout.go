package render

import (
	"fmt"

	"github.com/lvillar/proposal/content"
)

// layout places blocks into page snapshots. It draws nothing itself.
type layout struct {
	d     *Document
	g     Geometry
	pages []*Page
	cur   *Page
	y     float64
	fresh bool // nothing placed on cur yet
}

func (l *layout) newPage() {
	l.cur = &Page{Index: len(l.pages)}
	l.pages = append(l.pages, l.cur)
	l.y = l.g.Top
	l.fresh = true
}

func (l *layout) avail() float64 { return l.g.FrameBottom() - l.y }

func (l *layout) emit(ops ...Op) {
	l.cur.Body = append(l.cur.Body, ops...)
	l.fresh = false
}

func (l *layout) run(blocks []content.Block) {
	l.newPage()
	for _, b := range blocks {
		switch v := b.(type) {
		case content.PageBreak:
			if !l.fresh {
				l.newPage()
			}
		case content.Spacer:
			if l.fresh {
				continue
			}
			if v.Height > l.avail() {
				l.newPage()
				continue
			}
			l.y += v.Height
		case content.Text:
			l.text(l.d.fonts.wrapText(v.Style, v.Markup, l.g.FrameWidth()))
		case *content.Table:
			l.table(l.d.wrapTable(v, l.g.FrameWidth()))
		case content.CoverImage:
			l.cover(v)
		case content.QRCode:
			if v.Size > l.avail() && !l.fresh {
				l.newPage()
			}
			l.emit(QROp{Data: v.Data, X: l.g.Left, Y: l.y, Size: v.Size})
			l.y += v.Size
		}
	}
}

func (l *layout) text(p *paragraph) {
	if !l.fresh {
		l.y += p.before()
	}
	for len(p.lines) > 0 {
		fit := int(l.avail() / p.leading)
		if fit <= 0 {
			if l.fresh {
				fit = 1
			} else {
				l.newPage()
				continue
			}
		}
		if fit >= len(p.lines) {
			l.emit(p.draw(l.g.Left, l.y)...)
			l.y += p.height() + p.after()
			return
		}
		head, tail := p.split(fit)
		l.emit(head.draw(l.g.Left, l.y)...)
		l.newPage()
		p = tail
	}
}

// table places g, breaking between row chunks and repeating the header rows
// at the top of every continuation page.
func (l *layout) table(g *grid) {
	headH := g.span(0, g.header)
	chunks := g.chunks()
	if len(chunks) == 0 {
		if headH > l.avail() && !l.fresh {
			l.newPage()
		}
		l.emit(g.draw(l.g.Left, l.y)...)
		l.y += headH
		return
	}

	next := 0
	for next < len(chunks) {
		h := headH
		end := next
		for end < len(chunks) {
			ch := g.span(chunks[end][0], chunks[end][1])
			if h+ch > l.avail() && (end > next || !l.fresh) {
				break
			}
			h += ch
			end++
		}
		if end == next {
			l.newPage()
			continue
		}
		from := chunks[next][0]
		if next == 0 {
			from = 0
		}
		l.emit(g.drawRows(l.g.Left, l.y, from, chunks[end-1][1])...)
		l.y += h
		next = end
		if next < len(chunks) {
			l.newPage()
		}
	}
}

// cover fills the page with the cover image, scaled to fit and centred, and
// sets the overlay line in the middle near the bottom edge.
func (l *layout) cover(c content.CoverImage) {
	if !l.fresh {
		l.newPage()
	}
	if c.Path != "" {
		img, err := l.d.image(c.Path)
		if err != nil {
			l.d.warn(fmt.Sprintf("cover image %s unavailable: %v", c.Path, err))
		} else {
			w, h := fitInside(img.w, img.h, l.g.PageW, l.g.PageH)
			l.emit(ImageOp{Name: img.name, X: (l.g.PageW - w) / 2, Y: (l.g.PageH - h) / 2, W: w, H: h})
		}
	}
	if c.Overlay != "" {
		face := l.d.fonts.Resolve(c.Font)
		text := l.d.fonts.Encode(face, c.Overlay)
		w := l.d.fonts.Width(face, text)
		l.emit(TextOp{X: (l.g.PageW - w) / 2, Y: l.g.PageH - c.OverlayY, Text: text, Face: face, Color: c.Color})
	}
	l.fresh = false
	l.y = l.g.FrameBottom()
}

func fitInside(w, h, boxW, boxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return boxW, boxH
	}
	scale := min(boxW/w, boxH/h)
	return w * scale, h * scale
}
