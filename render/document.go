// Package render lays a composed block sequence out onto pages and writes
// the result as PDF.
//
// Rendering runs in two passes. Layout captures every page as a snapshot of
// abstract drawing operations without writing anything. Once the page count
// is known, Stamp adds the header and footer to each snapshot except the
// first. Write then replays the snapshots through gofpdf.
//
//	doc := render.New(render.Options{Fonts: fonts})
//	if err := doc.Layout(blocks); err != nil { ... }
//	if err := doc.Stamp(render.DefaultChrome()); err != nil { ... }
//	err := doc.Write(w)
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/proposal/assets"
	"github.com/lvillar/proposal/content"
)

// Sentinel errors for out-of-order use of a Document.
var (
	ErrLayoutIncomplete = errors.New("render: layout has not run")
	ErrAlreadyLaidOut   = errors.New("render: layout already ran")
	ErrAlreadyStamped   = errors.New("render: pages already stamped")
	ErrNotStamped       = errors.New("render: pages have not been stamped")
	ErrNoPages          = errors.New("render: nothing to lay out")
	ErrWritten          = errors.New("render: document already written")
)

type phase int

const (
	phaseNew phase = iota
	phaseLaidOut
	phaseStamped
	phaseWritten
)

// Options configures a Document. The zero value renders US Letter with core
// fonts only.
type Options struct {
	Geometry Geometry
	Fonts    []assets.Font

	// LoadImage reads the header and cover images. Defaults to
	// assets.LoadImage.
	LoadImage func(path string) (assets.Image, error)

	Title, Author, Creator string
	CreationDate           time.Time
}

// Document is a single render. It is not safe for concurrent use and is
// discarded after Write.
type Document struct {
	opts     Options
	g        Geometry
	pdf      *gofpdf.Fpdf
	fonts    *FontSet
	images   map[string]imageRef
	pages    []*Page
	phase    phase
	warnings []string
}

type imageRef struct {
	name string
	w, h float64
	err  error
}

// New prepares a Document and registers its fonts. Fonts that cannot be
// loaded are reported by Warnings.
func New(opts Options) *Document {
	if opts.Geometry == (Geometry{}) {
		opts.Geometry = Letter()
	}
	if opts.LoadImage == nil {
		opts.LoadImage = assets.LoadImage
	}
	g := opts.Geometry
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: g.PageW, Ht: g.PageH},
	})
	pdf.SetMargins(g.Left, g.Top, g.Right)
	pdf.SetAutoPageBreak(false, 0)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}
	if !opts.CreationDate.IsZero() {
		pdf.SetCreationDate(opts.CreationDate)
	}

	d := &Document{opts: opts, g: g, pdf: pdf, images: map[string]imageRef{}}
	d.fonts, d.warnings = newFontSet(pdf, opts.Fonts)
	return d
}

// Fonts exposes the document's font set for measuring text.
func (d *Document) Fonts() *FontSet { return d.fonts }

// Warnings lists the degradations met so far: missing fonts and images.
func (d *Document) Warnings() []string {
	return append([]string(nil), d.warnings...)
}

func (d *Document) warn(msg string) { d.warnings = append(d.warnings, msg) }

// Layout is the first pass. It places blocks onto pages and captures each
// page as a snapshot. Nothing is written.
func (d *Document) Layout(blocks []content.Block) error {
	if d.phase != phaseNew {
		return ErrAlreadyLaidOut
	}
	if len(blocks) == 0 {
		return ErrNoPages
	}
	l := &layout{d: d, g: d.g}
	l.run(blocks)
	if d.pdf.Err() {
		return fmt.Errorf("render: layout: %w", d.pdf.Error())
	}
	d.pages = l.pages
	d.phase = phaseLaidOut
	return nil
}

// PageCount returns the number of laid-out pages, or 0 before Layout.
func (d *Document) PageCount() int { return len(d.pages) }

// Pages returns copies of the page snapshots.
func (d *Document) Pages() []Page {
	out := make([]Page, len(d.pages))
	for i, p := range d.pages {
		out[i] = Page{
			Index:  p.Index,
			Body:   append([]Op(nil), p.Body...),
			Chrome: append([]Op(nil), p.Chrome...),
		}
	}
	return out
}

// Stamp is the second pass. With the page count now fixed it adds the
// header and footer to every page but the first.
func (d *Document) Stamp(c Chrome) error {
	switch d.phase {
	case phaseNew:
		return ErrLayoutIncomplete
	case phaseStamped, phaseWritten:
		return ErrAlreadyStamped
	}
	total := len(d.pages)
	header := c.header(d)
	for i, p := range d.pages {
		if i == 0 {
			continue
		}
		p.Chrome = append(append([]Op(nil), header...), c.footer(d, i+1, total)...)
	}
	d.phase = phaseStamped
	return nil
}

// Write replays the stamped snapshots into a PDF and writes it to w. A
// Document can be written once.
func (d *Document) Write(w io.Writer) error {
	switch d.phase {
	case phaseNew:
		return ErrLayoutIncomplete
	case phaseLaidOut:
		return ErrNotStamped
	case phaseWritten:
		return ErrWritten
	}
	d.phase = phaseWritten
	for _, p := range d.pages {
		d.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: d.g.PageW, Ht: d.g.PageH})
		d.emit(p.Body)
		d.emit(p.Chrome)
		if d.pdf.Err() {
			return fmt.Errorf("render: page %d: %w", p.Index, d.pdf.Error())
		}
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("render: output: %w", err)
	}
	return nil
}

// Bytes writes the document to memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// image registers the image at path once and returns its handle. Failures
// are cached too so a missing file is only reported once.
func (d *Document) image(path string) (imageRef, error) {
	if ref, ok := d.images[path]; ok {
		return ref, ref.err
	}
	ref := d.registerImage(path)
	d.images[path] = ref
	return ref, ref.err
}

func (d *Document) registerImage(path string) (ref imageRef) {
	img, err := d.opts.LoadImage(path)
	if err != nil {
		return imageRef{err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			ref = imageRef{err: fmt.Errorf("decoding image: %v", r)}
			d.pdf.ClearError()
		}
	}()
	name := fmt.Sprintf("img%d", len(d.images))
	info := d.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: img.Type}, bytes.NewReader(img.Data))
	if d.pdf.Err() || info == nil {
		err := d.pdf.Error()
		d.pdf.ClearError()
		if err == nil {
			err = errors.New("image not registered")
		}
		return imageRef{err: err}
	}
	return imageRef{name: name, w: info.Width(), h: info.Height()}
}
