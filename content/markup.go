package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"
)

// Run is a stretch of text sharing one set of inline attributes. A Run with
// Break set is a forced line break and carries no text.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Color     *RGBColor // nil means the paragraph color
	Face      string    // font face override from <font face="...">
	Break     bool
}

// Style returns the gofpdf style string for the run ("", "B", "I", "BI"),
// with "U" appended when underlined.
func (r Run) Style() string {
	s := ""
	if r.Bold {
		s += "B"
	}
	if r.Italic {
		s += "I"
	}
	if r.Underline {
		s += "U"
	}
	return s
}

var spaces = regexp.MustCompile(`\s+`)

type inline struct {
	tag       string
	bold      bool
	italic    bool
	underline bool
	color     *RGBColor
	face      string
}

// ParseMarkup splits inline markup into runs. The recognised tags are
// <b>, <i>, <u>, <br/> and <font color="#RRGGBB" face="...">; other tags are
// dropped and their text kept. Whitespace is collapsed the way a browser
// would, so line breaks in the source do not show.
func ParseMarkup(markup string) []Run {
	z := xhtml.NewTokenizer(strings.NewReader(markup))
	stack := []inline{{}}
	var runs []Run
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			return mergeRuns(runs)
		case xhtml.TextToken:
			text := spaces.ReplaceAllString(string(z.Text()), " ")
			if text == "" {
				continue
			}
			top := stack[len(stack)-1]
			runs = append(runs, Run{
				Text:      text,
				Bold:      top.bold,
				Italic:    top.italic,
				Underline: top.underline,
				Color:     top.color,
				Face:      top.face,
			})
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if tag == "br" {
				runs = append(runs, Run{Break: true})
				continue
			}
			next := stack[len(stack)-1]
			next.tag = tag
			switch tag {
			case "b", "strong":
				next.bold = true
			case "i", "em":
				next.italic = true
			case "u":
				next.underline = true
			case "font":
				for hasAttr {
					var k, v []byte
					k, v, hasAttr = z.TagAttr()
					switch string(k) {
					case "color":
						c := Hex(string(v))
						next.color = &c
					case "face":
						next.face = string(v)
					}
				}
			default:
				continue
			}
			if tt == xhtml.StartTagToken {
				stack = append(stack, next)
			}
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == tag {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

// mergeRuns joins adjacent runs with identical attributes.
func mergeRuns(runs []Run) []Run {
	out := runs[:0]
	for _, r := range runs {
		if n := len(out); n > 0 && !r.Break && !out[n-1].Break && sameAttrs(out[n-1], r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

func sameAttrs(a, b Run) bool {
	if a.Bold != b.Bold || a.Italic != b.Italic || a.Underline != b.Underline || a.Face != b.Face {
		return false
	}
	if (a.Color == nil) != (b.Color == nil) {
		return false
	}
	return a.Color == nil || *a.Color == *b.Color
}

// PlainText flattens runs back into text, with breaks as newlines.
func PlainText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// Escape makes s safe to embed in markup as literal text.
func Escape(s string) string {
	return html.EscapeString(s)
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// markupPolicy admits only the inline tags ParseMarkup understands.
var markupPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "u", "br", "strong", "em", "font")
	p.AllowAttrs("color").Matching(hexColor).OnElements("font")
	p.AllowAttrs("face").Matching(bluemonday.SpaceSeparatedTokens).OnElements("font")
	return p
}()

// Sanitize strips everything but the supported inline markup from user
// supplied text, such as a free-form scope of services.
func Sanitize(markup string) string {
	return markupPolicy.Sanitize(markup)
}
