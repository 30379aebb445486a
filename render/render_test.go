package render_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phpdave11/gofpdi"

	"github.com/lvillar/proposal/assets"
	"github.com/lvillar/proposal/content"
	"github.com/lvillar/proposal/render"
)

var body = content.ParagraphStyle{Font: content.FontSpec{Family: "Helvetica", Size: 10}}

// pagesOf returns n blocks separated by page breaks, one short paragraph per
// page.
func pagesOf(n int) []content.Block {
	var blocks []content.Block
	for i := 0; i < n; i++ {
		if i > 0 {
			blocks = append(blocks, content.PageBreak{})
		}
		blocks = append(blocks, content.P(body, "page body"))
	}
	return blocks
}

func noImages(string) (assets.Image, error) { return assets.Image{}, os.ErrNotExist }

func laidOut(t *testing.T, blocks []content.Block) *render.Document {
	t.Helper()
	doc := render.New(render.Options{LoadImage: noImages})
	if err := doc.Layout(blocks); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return doc
}

func TestPageLabel(t *testing.T) {
	tests := []struct {
		page, total, before, after int
		want                       string
	}{
		{2, 9, 3, 9, "Page 5 of 21"},
		{9, 9, 3, 9, "Page 12 of 21"},
		{2, 2, 0, 0, "Page 2 of 2"},
	}
	for _, tt := range tests {
		if got := render.PageLabel(tt.page, tt.total, tt.before, tt.after); got != tt.want {
			t.Errorf("PageLabel(%d, %d, %d, %d) = %q, want %q", tt.page, tt.total, tt.before, tt.after, got, tt.want)
		}
	}
}

func TestStampSkipsFirstPage(t *testing.T) {
	doc := laidOut(t, pagesOf(9))
	if got := doc.PageCount(); got != 9 {
		t.Fatalf("PageCount = %d, want 9", got)
	}
	if err := doc.Stamp(render.DefaultChrome()); err != nil {
		t.Fatal(err)
	}
	pages := doc.Pages()
	if len(pages[0].Chrome) != 0 {
		t.Errorf("first page stamped with %d ops", len(pages[0].Chrome))
	}
	for _, p := range pages[1:] {
		if len(p.Chrome) == 0 {
			t.Errorf("page %d has no header or footer", p.Index)
		}
	}
	if texts := render.Texts(pages[1].Chrome); !slices.Contains(texts, "Page 5 of 21") {
		t.Errorf("second page chrome = %q, want page label %q", texts, "Page 5 of 21")
	}
}

func TestStampSinglePage(t *testing.T) {
	doc := laidOut(t, pagesOf(1))
	if got := doc.PageCount(); got != 1 {
		t.Fatalf("PageCount = %d, want 1", got)
	}
	if err := doc.Stamp(render.DefaultChrome()); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if ops := doc.Pages()[0].Chrome; len(ops) != 0 {
		t.Errorf("only page stamped with %d ops", len(ops))
	}
	if _, err := doc.Bytes(); err != nil {
		t.Errorf("Bytes: %v", err)
	}
}

func TestStampLeavesBodyUntouched(t *testing.T) {
	doc := laidOut(t, pagesOf(3))
	before := doc.Pages()
	if err := doc.Stamp(render.DefaultChrome()); err != nil {
		t.Fatal(err)
	}
	after := doc.Pages()
	for i := range before {
		if diff := cmp.Diff(render.Texts(before[i].Body), render.Texts(after[i].Body)); diff != "" {
			t.Errorf("page %d body changed (-before +after):\n%s", i, diff)
		}
	}
}

func TestHeaderFallsBackToBand(t *testing.T) {
	doc := laidOut(t, pagesOf(2))
	c := render.DefaultChrome()
	c.HeaderImage = "missing/header.png"
	if err := doc.Stamp(c); err != nil {
		t.Fatal(err)
	}
	chrome := doc.Pages()[1].Chrome
	rects := 0
	for _, op := range chrome {
		if _, ok := op.(render.RectOp); ok {
			rects++
		}
	}
	if rects != 3 {
		t.Errorf("band header has %d rects, want 3", rects)
	}
	texts := render.Texts(chrome)
	for _, want := range []string{"In.Corp", "An Ascentium Company", "www.incorp.asia"} {
		if !slices.Contains(texts, want) {
			t.Errorf("chrome missing %q", want)
		}
	}
	if w := doc.Warnings(); len(w) != 1 || !strings.Contains(w[0], "missing/header.png") {
		t.Errorf("Warnings = %q, want one naming the header image", w)
	}
}

func TestPhaseErrors(t *testing.T) {
	doc := render.New(render.Options{})
	if err := doc.Stamp(render.DefaultChrome()); !errors.Is(err, render.ErrLayoutIncomplete) {
		t.Errorf("Stamp before Layout = %v, want ErrLayoutIncomplete", err)
	}
	if err := doc.Write(io.Discard); !errors.Is(err, render.ErrLayoutIncomplete) {
		t.Errorf("Write before Layout = %v, want ErrLayoutIncomplete", err)
	}
	if err := doc.Layout(nil); !errors.Is(err, render.ErrNoPages) {
		t.Errorf("Layout(nil) = %v, want ErrNoPages", err)
	}

	doc = laidOut(t, pagesOf(1))
	if err := doc.Layout(pagesOf(1)); !errors.Is(err, render.ErrAlreadyLaidOut) {
		t.Errorf("second Layout = %v, want ErrAlreadyLaidOut", err)
	}
	if err := doc.Write(io.Discard); !errors.Is(err, render.ErrNotStamped) {
		t.Errorf("Write before Stamp = %v, want ErrNotStamped", err)
	}
	if err := doc.Stamp(render.DefaultChrome()); err != nil {
		t.Fatal(err)
	}
	if err := doc.Stamp(render.DefaultChrome()); !errors.Is(err, render.ErrAlreadyStamped) {
		t.Errorf("second Stamp = %v, want ErrAlreadyStamped", err)
	}
	if err := doc.Write(io.Discard); err != nil {
		t.Fatal(err)
	}
	if err := doc.Write(io.Discard); !errors.Is(err, render.ErrWritten) {
		t.Errorf("second Write = %v, want ErrWritten", err)
	}
}

func TestPageBreakOnEmptyPageIsIgnored(t *testing.T) {
	blocks := []content.Block{
		content.PageBreak{},
		content.P(body, "one"),
		content.PageBreak{},
		content.PageBreak{},
		content.P(body, "two"),
	}
	if got := laidOut(t, blocks).PageCount(); got != 2 {
		t.Errorf("PageCount = %d, want 2", got)
	}
}

func TestLongParagraphFlowsOntoNextPage(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 600)
	doc := laidOut(t, []content.Block{content.P(body, text)})
	if doc.PageCount() < 2 {
		t.Fatalf("PageCount = %d, want the paragraph to continue on a second page", doc.PageCount())
	}
	frame := render.Letter().FrameBottom()
	for _, p := range doc.Pages() {
		for _, op := range p.Body {
			if tx, ok := op.(render.TextOp); ok && tx.Y > frame {
				t.Fatalf("page %d: text baseline %.1f below frame bottom %.1f", p.Index, tx.Y, frame)
			}
		}
	}
}

func TestTableRepeatsHeaderRows(t *testing.T) {
	tbl := content.NewTable(200, 100)
	tbl.AddHeaderRow().AddCell("Service").AddCell("Fee")
	for i := 0; i < 80; i++ {
		tbl.AddRow().AddCell("row").AddCell("100")
	}
	doc := laidOut(t, []content.Block{tbl})
	pages := doc.Pages()
	if len(pages) < 2 {
		t.Fatalf("table fit on %d page, want it to split", len(pages))
	}
	for _, p := range pages {
		texts := render.Texts(p.Body)
		if len(texts) == 0 || texts[0] != "Service" {
			t.Errorf("page %d starts with %q, want the header row", p.Index, texts[:min(1, len(texts))])
		}
	}
}

func TestSpannedRowsStayTogether(t *testing.T) {
	tbl := content.NewTable(200, 100)
	tbl.AddHeaderRow().AddCell("Service").AddCell("Fee")
	for i := 0; i < 40; i++ {
		tbl.AddRow().AddCell("filler").AddCell("1")
	}
	tbl.AddRow().AddCell("group").AddCell("a")
	tbl.AddRow().AddEmpty().AddCell("b")
	tbl.AddRow().AddEmpty().AddCell("c")
	tbl.SetSpan(content.At(0, 41), content.At(0, 43))

	doc := laidOut(t, []content.Block{tbl})
	for _, p := range doc.Pages() {
		texts := render.Texts(p.Body)
		has := func(s string) bool { return slices.Contains(texts, s) }
		if has("a") != has("c") {
			t.Errorf("page %d splits a spanned group: %q", p.Index, texts)
		}
	}
}

func TestCoverImageMissingWarns(t *testing.T) {
	blocks := []content.Block{
		content.CoverImage{Path: "cover.png", Overlay: "Acme Pte Ltd", Font: content.FontSpec{Family: "Helvetica", Size: 20}, Color: content.White, OverlayY: 72},
		content.P(body, "after cover"),
	}
	doc := laidOut(t, blocks)
	if doc.PageCount() != 2 {
		t.Errorf("PageCount = %d, want the cover to fill its page", doc.PageCount())
	}
	first := doc.Pages()[0]
	if diff := cmp.Diff([]string{"Acme Pte Ltd"}, render.Texts(first.Body)); diff != "" {
		t.Errorf("cover text (-want +got):\n%s", diff)
	}
	if len(doc.Warnings()) != 1 {
		t.Errorf("Warnings = %q, want one for the cover image", doc.Warnings())
	}
}

func TestWriteProducesReadablePDF(t *testing.T) {
	blocks := append(pagesOf(4), content.QRCode{Data: "InCorp_Proposal_Acme_20240102.pdf", Size: 64})
	doc := laidOut(t, blocks)
	if err := doc.Stamp(render.DefaultChrome()); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header")
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	imp := gofpdi.NewImporter()
	imp.SetSourceFile(path)
	if got := len(imp.GetPageSizes()); got != 4 {
		t.Errorf("written PDF has %d pages, want 4", got)
	}
}
