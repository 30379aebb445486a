package render

import (
	"strings"
	"unicode/utf8"

	"github.com/lvillar/proposal/content"
)

type piece struct {
	text  string // encoded
	face  Face
	color content.RGBColor
	w     float64
}

// word is a run of pieces with no space between them, such as "<b>Note</b>:".
type word struct {
	pieces []piece
	w      float64
	space  float64 // width of a space before this word
	brk    bool    // forced line break
}

type textLine struct {
	words  []word
	w      float64 // natural width including single spaces
	forced bool    // ended by a break or the end of the paragraph
}

// paragraph is a Text block wrapped to a width.
type paragraph struct {
	style   content.ParagraphStyle
	width   float64
	lines   []textLine
	leading float64
}

func (p *paragraph) height() float64 { return float64(len(p.lines)) * p.leading }
func (p *paragraph) before() float64 { return p.style.SpaceBefore }
func (p *paragraph) after() float64  { return p.style.SpaceAfter }

// split returns the first n lines as one paragraph and the rest as another.
func (p *paragraph) split(n int) (*paragraph, *paragraph) {
	head, tail := *p, *p
	head.lines = p.lines[:n]
	head.style.SpaceAfter = 0
	tail.lines = p.lines[n:]
	tail.style.SpaceBefore = 0
	return &head, &tail
}

func (p *paragraph) draw(x, y float64) []Op {
	var ops []Op
	x += p.style.LeftIndent
	size := p.style.Font.Size
	for i, ln := range p.lines {
		base := y + float64(i)*p.leading + 0.8*size + (p.leading-size)/2
		lx, gap := x, 0.0
		switch p.style.Align {
		case content.AlignCenter:
			lx += (p.width - ln.w) / 2
		case content.AlignRight:
			lx += p.width - ln.w
		case content.AlignJustify:
			if !ln.forced && len(ln.words) > 1 {
				gap = (p.width - ln.w) / float64(len(ln.words)-1)
			}
		}
		for j, w := range ln.words {
			if j > 0 {
				lx += w.space + gap
			}
			for _, pc := range w.pieces {
				ops = append(ops, TextOp{X: lx, Y: base, Text: pc.text, Face: pc.face, Color: pc.color})
				lx += pc.w
			}
		}
	}
	return ops
}

// wrapText breaks markup set in style into lines no wider than width.
func (fs *FontSet) wrapText(style content.ParagraphStyle, markup string, width float64) *paragraph {
	width -= style.LeftIndent
	p := &paragraph{style: style, width: width, leading: style.LineHeight()}
	words := fs.words(style, content.ParseMarkup(markup))

	var cur textLine
	emit := func(forced bool) {
		cur.forced = forced
		p.lines = append(p.lines, cur)
		cur = textLine{}
	}
	for _, w := range words {
		if w.brk {
			emit(true)
			continue
		}
		for _, part := range fs.fit(w, width) {
			need := part.w
			if len(cur.words) > 0 {
				need += part.space
			}
			if len(cur.words) > 0 && cur.w+need > width {
				emit(false)
				need = part.w
			}
			cur.words = append(cur.words, part)
			cur.w += need
		}
	}
	if len(cur.words) > 0 {
		emit(true)
	}
	return p
}

func (fs *FontSet) words(style content.ParagraphStyle, runs []content.Run) []word {
	var out []word
	var pending *word
	flush := func() {
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
	}
	for _, r := range runs {
		if r.Break {
			flush()
			out = append(out, word{brk: true})
			continue
		}
		spec := style.Font
		spec.Style += r.Style()
		if r.Face != "" {
			spec.Family = r.Face
		}
		face := fs.Resolve(spec)
		color := style.Color
		if r.Color != nil {
			color = *r.Color
		}
		for i, part := range strings.Split(r.Text, " ") {
			if i > 0 {
				flush()
			}
			if part == "" {
				continue
			}
			enc := fs.Encode(face, part)
			pc := piece{text: enc, face: face, color: color, w: fs.Width(face, enc)}
			if pending == nil {
				pending = &word{space: fs.Width(face, " ")}
			}
			pending.pieces = append(pending.pieces, pc)
			pending.w += pc.w
		}
	}
	flush()
	return out
}

// fit splits a word wider than width into several, breaking between
// characters. Narrower words are returned unchanged.
func (fs *FontSet) fit(w word, width float64) []word {
	if w.w <= width || width <= 0 {
		return []word{w}
	}
	var out []word
	cur := word{space: w.space}
	for _, pc := range w.pieces {
		var buf strings.Builder
		bw := 0.0
		for _, ch := range runes(pc) {
			cw := fs.Width(pc.face, ch)
			if cur.w+bw+cw > width && (cur.w > 0 || bw > 0) {
				if bw > 0 {
					cur.pieces = append(cur.pieces, piece{text: buf.String(), face: pc.face, color: pc.color, w: bw})
					cur.w += bw
				}
				out = append(out, cur)
				cur = word{space: w.space}
				buf.Reset()
				bw = 0
			}
			buf.WriteString(ch)
			bw += cw
		}
		if bw > 0 {
			cur.pieces = append(cur.pieces, piece{text: buf.String(), face: pc.face, color: pc.color, w: bw})
			cur.w += bw
		}
	}
	if len(cur.pieces) > 0 {
		out = append(out, cur)
	}
	return out
}

// runes splits encoded text into characters. Core-font text is single byte.
func runes(pc piece) []string {
	var out []string
	s := pc.text
	for len(s) > 0 {
		n := 1
		if pc.face.UTF8 {
			_, n = utf8.DecodeRuneInString(s)
		}
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}
