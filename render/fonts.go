package render

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/proposal/assets"
	"github.com/lvillar/proposal/content"
)

// Face is a font resolved against what the document actually has
// registered. UTF8 faces take text as is; core faces take cp1252.
type Face struct {
	Family string
	Style  string // "", "B", "I", "BI", optionally with "U"
	Size   float64
	UTF8   bool
}

// FontSet resolves logical font specs to registered faces and measures text.
type FontSet struct {
	pdf  *gofpdf.Fpdf
	utf8 map[string]bool
	tr   func(string) string
}

var coreFamilies = map[string]bool{
	"helvetica": true, "arial": true, "times": true, "courier": true,
	"symbol": true, "zapfdingbats": true,
}

// newFontSet registers sources with pdf. A font that fails to load is
// skipped with a warning and text in that family falls back to Helvetica.
func newFontSet(pdf *gofpdf.Fpdf, sources []assets.Font) (*FontSet, []string) {
	fs := &FontSet{
		pdf:  pdf,
		utf8: map[string]bool{},
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
	var warnings []string
	for _, src := range sources {
		if err := fs.register(src); err != nil {
			warnings = append(warnings, fmt.Sprintf("font %s unavailable, using Helvetica: %v", src.Family, err))
		}
	}
	return fs, warnings
}

func (fs *FontSet) register(src assets.Font) (err error) {
	if len(src.Data) == 0 {
		return fmt.Errorf("no font data")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing font: %v", r)
		}
		if err != nil {
			fs.pdf.ClearError()
		}
	}()
	fs.pdf.AddUTF8FontFromBytes(src.Family, "", src.Data)
	if fs.pdf.Err() {
		return fs.pdf.Error()
	}
	fs.utf8[strings.ToLower(src.Family)] = true
	return nil
}

// Has reports whether family was registered from a TrueType file.
func (fs *FontSet) Has(family string) bool {
	return fs.utf8[strings.ToLower(family)]
}

// Resolve maps spec to a face the document can draw. TrueType families are
// registered in a single regular style, so a bold request uses the family's
// "-Bold" sibling when there is one and Helvetica otherwise.
func (fs *FontSet) Resolve(spec content.FontSpec) Face {
	style := strings.ToUpper(spec.Style)
	bold := strings.Contains(style, "B")
	italic := strings.Contains(style, "I")
	under := ""
	if strings.Contains(style, "U") {
		under = "U"
	}
	family := spec.Family

	if fs.Has(family) && !italic {
		switch {
		case !bold, strings.HasSuffix(family, "-Bold"):
			return Face{Family: family, Style: under, Size: spec.Size, UTF8: true}
		case fs.Has(family + "-Bold"):
			return Face{Family: family + "-Bold", Style: under, Size: spec.Size, UTF8: true}
		}
	}

	core := "Helvetica"
	if coreFamilies[strings.ToLower(family)] {
		core = family
	}
	if strings.HasSuffix(family, "-Bold") {
		bold = true
	}
	s := ""
	if bold {
		s += "B"
	}
	if italic {
		s += "I"
	}
	return Face{Family: core, Style: s + under, Size: spec.Size}
}

// Encode converts UTF-8 text to what f expects.
func (fs *FontSet) Encode(f Face, s string) string {
	if f.UTF8 {
		return s
	}
	return fs.tr(s)
}

// Width measures already encoded text set in f.
func (fs *FontSet) Width(f Face, encoded string) float64 {
	fs.pdf.SetFont(f.Family, f.Style, f.Size)
	return fs.pdf.GetStringWidth(encoded)
}
