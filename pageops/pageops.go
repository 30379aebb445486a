// Package pageops assembles the final proposal PDF from the rendered
// dynamic pages and the static, pre-rendered page ranges that surround them.
//
// Pages are imported as templates with the gofpdi contrib package and placed
// on pages of the same size, so the content of every source page is carried
// over unchanged. Page counts and sizes are read with phpdave11/gofpdi.
package pageops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	srcpdf "github.com/phpdave11/gofpdi"
)

// ErrEmpty is returned when a plan yields no pages at all.
var ErrEmpty = errors.New("pageops: plan produced no pages")

// Source says where a segment's pages come from.
type Source int

const (
	// Dynamic pages come from the freshly rendered document.
	Dynamic Source = iota
	// StaticFile pages come from a PDF on disk, taken whole.
	StaticFile
)

func (s Source) String() string {
	if s == StaticFile {
		return "static"
	}
	return "dynamic"
}

// Segment is one contiguous run of pages in the final document. For Dynamic
// segments From and To select the 0-based page range [From, To); a negative
// To runs to the last page.
type Segment struct {
	Source   Source
	From, To int
	Path     string
}

// DynamicRange selects dynamic pages [from, to).
func DynamicRange(from, to int) Segment {
	return Segment{Source: Dynamic, From: from, To: to}
}

// Static selects every page of the PDF at path.
func Static(path string) Segment {
	return Segment{Source: StaticFile, Path: path}
}

func (s Segment) String() string {
	if s.Source == StaticFile {
		return "static " + s.Path
	}
	if s.To < 0 {
		return fmt.Sprintf("dynamic %d..end", s.From)
	}
	return fmt.Sprintf("dynamic %d..%d", s.From, s.To)
}

// bounds clips the segment's dynamic range to a document of n pages.
func (s Segment) bounds(n int) (int, int) {
	from, to := max(s.From, 0), s.To
	if to < 0 || to > n {
		to = n
	}
	if from > to {
		from = to
	}
	return from, to
}

// Plan is the page order of the final document.
type Plan []Segment

// DefaultPlan is the proposal order: the cover, the static pages in before,
// the rest of the dynamic pages, then the static pages in after.
func DefaultPlan(before, after string) Plan {
	return Plan{
		DynamicRange(0, 1),
		Static(before),
		DynamicRange(1, -1),
		Static(after),
	}
}

// Result is a stitched document.
type Result struct {
	Data  []byte
	Pages int

	// Warnings name the static segments that were skipped.
	Warnings []string
}

// pageSize is a page's MediaBox size in points.
type pageSize struct {
	w, h float64
}

// inspect opens a source with phpdave11/gofpdi and reads its page sizes.
// The importer panics on malformed input, which is returned as an error.
func inspect(open func(*srcpdf.Importer)) (sizes []pageSize, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf: %v", r)
		}
	}()
	imp := srcpdf.NewImporter()
	open(imp)
	boxes := imp.GetPageSizes()
	for p := 1; p <= len(boxes); p++ {
		mb := boxes[p]["/MediaBox"]
		sizes = append(sizes, pageSize{w: mb["w"], h: mb["h"]})
	}
	return sizes, nil
}

// tailSize is how much of the end of a file is searched for the trailer.
const tailSize = 1024

// checkFraming rejects input gofpdi cannot parse without looping forever:
// it must open with a PDF header and end with a startxref and %%EOF.
func checkFraming(head, tail []byte) error {
	if !bytes.HasPrefix(head, []byte("%PDF-")) {
		return errors.New("missing %PDF- header")
	}
	if !bytes.Contains(tail, []byte("startxref")) || !bytes.Contains(tail, []byte("%%EOF")) {
		return errors.New("missing trailer, file is truncated")
	}
	return nil
}

func inspectFile(path string) ([]pageSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	head := make([]byte, 5)
	n, _ := io.ReadFull(f, head)
	tail := make([]byte, min(fi.Size(), tailSize))
	if _, err := f.ReadAt(tail, fi.Size()-int64(len(tail))); err != nil && err != io.EOF {
		return nil, err
	}
	if err := checkFraming(head[:n], tail); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inspect(func(imp *srcpdf.Importer) { imp.SetSourceFile(path) })
}

func inspectBytes(data []byte) ([]pageSize, error) {
	if err := checkFraming(data, data[max(0, len(data)-tailSize):]); err != nil {
		return nil, err
	}
	var rs io.ReadSeeker = bytes.NewReader(data)
	return inspect(func(imp *srcpdf.Importer) { imp.SetSourceStream(&rs) })
}

// PageCount returns the number of pages of the PDF in data.
func PageCount(data []byte) (int, error) {
	sizes, err := inspectBytes(data)
	if err != nil {
		return 0, fmt.Errorf("pageops: %w", err)
	}
	return len(sizes), nil
}

// FilePageCount returns the number of pages of the PDF at path.
func FilePageCount(path string) (int, error) {
	sizes, err := inspectFile(path)
	if err != nil {
		return 0, fmt.Errorf("pageops: %w", err)
	}
	return len(sizes), nil
}

// placePage adds a page the size of the imported template and draws the
// template over all of it.
func placePage(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, tplID int, size pageSize) {
	if size.w <= 0 || size.h <= 0 {
		size = pageSize{w: 612, h: 792}
	}
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.w, Ht: size.h})
	imp.UseImportedTemplate(pdf, tplID, 0, 0, size.w, size.h)
}
