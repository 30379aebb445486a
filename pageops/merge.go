package pageops

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// Stitch builds the final document from the rendered pages in dynamic,
// following plan. A static segment whose file is missing or unreadable is
// skipped and reported in Result.Warnings; the remaining segments keep their
// order. A dynamic document that cannot be read is an error.
func Stitch(dynamic []byte, plan Plan) (res Result, err error) {
	var dynSizes []pageSize
	for _, seg := range plan {
		if seg.Source == Dynamic {
			if dynSizes, err = inspectBytes(dynamic); err != nil {
				return Result{}, fmt.Errorf("pageops: dynamic pages: %w", err)
			}
			break
		}
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("pageops: importing pages: %v", r)
		}
	}()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()
	// One stream variable for every dynamic import; the importer keys its
	// sources by the stream's address.
	var rs io.ReadSeeker = bytes.NewReader(dynamic)

	for i, seg := range plan {
		switch seg.Source {
		case Dynamic:
			from, to := seg.bounds(len(dynSizes))
			for n := from; n < to; n++ {
				tpl := imp.ImportPageFromStream(pdf, &rs, n+1, "/MediaBox")
				placePage(pdf, imp, tpl, dynSizes[n])
				res.Pages++
			}
		case StaticFile:
			sizes, ierr := inspectFile(seg.Path)
			if ierr != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("segment %d (%s) skipped: %v", i, seg, ierr))
				continue
			}
			for n := range sizes {
				tpl := imp.ImportPage(pdf, seg.Path, n+1, "/MediaBox")
				placePage(pdf, imp, tpl, sizes[n])
				res.Pages++
			}
		}
		if pdf.Err() {
			return Result{}, fmt.Errorf("pageops: segment %d (%s): %w", i, seg, pdf.Error())
		}
	}
	if res.Pages == 0 {
		return Result{}, ErrEmpty
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("pageops: writing: %w", err)
	}
	res.Data = buf.Bytes()
	return res, nil
}

// Merge concatenates the PDFs at paths and writes the result to w. Unlike
// Stitch, a file that cannot be read is an error.
func Merge(w io.Writer, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("pageops: no input files provided")
	}
	plan := make(Plan, len(paths))
	for i, p := range paths {
		plan[i] = Static(p)
	}
	res, err := Stitch(nil, plan)
	if err != nil {
		return err
	}
	if len(res.Warnings) > 0 {
		return fmt.Errorf("pageops: %s", res.Warnings[0])
	}
	_, err = w.Write(res.Data)
	return err
}
