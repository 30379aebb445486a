package proposal_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/convert"
	"github.com/lvillar/proposal/pageops"
	"github.com/lvillar/proposal/submission"
)

var fixedNow = time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

func clock() time.Time { return fixedNow }

func sampleForm() submission.Form {
	return submission.New(map[string]any{
		"clientName":           "Priya Raman",
		"clientCompany":        "Acme Widgets Pte Ltd",
		"proposalDate":         "2024-03-01",
		"includeHandover":      "on",
		"handoverFee":          "1,500",
		"includeIncorporation": "on",
		"includeAcctMaint":     "on",
		"includeTDS":           "on",
		"tdsFee":               "100",
		"includeBenchmarking":  "on",
		"benchmarkingFee":      "2500",
	})
}

// writeStatic writes a PDF of n Letter pages to dir/name.
func writeStatic(t *testing.T, dir, name string, n int) {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < n; i++ {
		pdf.AddPage()
		pdf.Text(72, 72, name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := pdf.OutputFileAndClose(filepath.Join(dir, name)); err != nil {
		t.Fatal(err)
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		company, ext, want string
	}{
		{"Acme Widgets Pte Ltd", ".pdf", "InCorp_Proposal_Acme_Widgets_Pte_Ltd_20240307.pdf"},
		{"", ".docx", "InCorp_Proposal_Client_20240307.docx"},
		{"A/B Co", ".pdf", "InCorp_Proposal_A_B_Co_20240307.pdf"},
	}
	for _, tt := range tests {
		if got := proposal.ArtifactName("InCorp_Proposal", tt.company, fixedNow, tt.ext); got != tt.want {
			t.Errorf("ArtifactName(%q) = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestGenerateStitchesStaticPages(t *testing.T) {
	dir := t.TempDir()
	writeStatic(t, filepath.Join(dir, "static_pdfs"), "static_pages_2_3_4.pdf", 3)
	writeStatic(t, filepath.Join(dir, "static_pdfs"), "static_pages_14_21.pdf", 8)

	gen := proposal.New(proposal.WithAssetsDir(dir), proposal.WithClock(clock))
	art, err := gen.Generate(context.Background(), sampleForm())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if art.Name != "InCorp_Proposal_Acme_Widgets_Pte_Ltd_20240307.pdf" || art.ContentType != proposal.ContentTypePDF {
		t.Errorf("artifact = %q (%s)", art.Name, art.ContentType)
	}
	n, err := pageops.PageCount(art.Data)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if n != art.Pages {
		t.Errorf("artifact has %d pages, Pages says %d", n, art.Pages)
	}
	if art.Pages < 11+5 {
		t.Errorf("Pages = %d, want the 11 static pages plus at least 5 dynamic ones", art.Pages)
	}
	for _, w := range art.Warnings {
		if strings.Contains(w, "static_pages") {
			t.Errorf("unexpected static warning: %s", w)
		}
	}

	// TDS monthly 100 and accounting maintenance monthly 200.
	if art.Totals.Annualized != 12*100+12*200 {
		t.Errorf("Totals.Annualized = %d, want %d", art.Totals.Annualized, 12*100+12*200)
	}
	if art.TransferPricing.OneTime != 2500 {
		t.Errorf("TransferPricing.OneTime = %d, want 2500", art.TransferPricing.OneTime)
	}
}

func TestGenerateWithoutAssets(t *testing.T) {
	gen := proposal.New(proposal.WithAssetsDir(t.TempDir()), proposal.WithClock(clock))
	art, err := gen.Generate(context.Background(), sampleForm())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	joined := strings.Join(art.Warnings, "\n")
	for _, want := range []string{"static_pages_2_3_4.pdf", "static_pages_14_21.pdf", "header", "Roboto", "cover"} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings do not mention %q:\n%s", want, joined)
		}
	}
	if !bytes.HasPrefix(art.Data, []byte("%PDF-")) {
		t.Error("artifact is not a PDF")
	}
}

func TestGenerateIsDeterministicByDay(t *testing.T) {
	gen := proposal.New(proposal.WithAssetsDir(t.TempDir()), proposal.WithClock(clock))
	a, err := gen.Generate(context.Background(), sampleForm())
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.Generate(context.Background(), sampleForm())
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != b.Name || a.Pages != b.Pages {
		t.Errorf("two runs differ: %s/%d vs %s/%d", a.Name, a.Pages, b.Name, b.Pages)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := proposal.New(proposal.WithAssetsDir(t.TempDir())).Generate(ctx, sampleForm())
	var ge *proposal.GenerateError
	if !errors.As(err, &ge) || !errors.Is(err, context.Canceled) {
		t.Errorf("Generate = %v, want a GenerateError wrapping context.Canceled", err)
	}
}

func TestGenerateWord(t *testing.T) {
	var got []byte
	enc := convert.Func(func(_ context.Context, pdf []byte) ([]byte, error) {
		got = pdf
		return []byte("PK docx"), nil
	})
	gen := proposal.New(proposal.WithAssetsDir(t.TempDir()), proposal.WithClock(clock), proposal.WithEncoder(enc))
	if !gen.CanConvert() {
		t.Fatal("CanConvert = false with an encoder configured")
	}
	art, err := gen.GenerateWord(context.Background(), sampleForm())
	if err != nil {
		t.Fatalf("GenerateWord: %v", err)
	}
	if art.Name != "InCorp_Proposal_Acme_Widgets_Pte_Ltd_20240307.docx" {
		t.Errorf("Name = %q", art.Name)
	}
	if art.ContentType != proposal.ContentTypeDOCX || string(art.Data) != "PK docx" {
		t.Errorf("artifact = %s %q", art.ContentType, art.Data)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Error("encoder was not given the stitched PDF")
	}
}

func TestGenerateWordErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := proposal.New(proposal.WithAssetsDir(dir)).GenerateWord(ctx, sampleForm())
	if !errors.Is(err, proposal.ErrNoEncoder) {
		t.Errorf("no encoder: %v, want ErrNoEncoder", err)
	}

	boom := errors.New("converter crashed")
	failing := convert.Func(func(context.Context, []byte) ([]byte, error) { return nil, boom })
	_, err = proposal.New(proposal.WithAssetsDir(dir), proposal.WithEncoder(failing)).GenerateWord(ctx, sampleForm())
	if !errors.Is(err, proposal.ErrConversion) || !errors.Is(err, boom) {
		t.Errorf("failing encoder: %v, want ErrConversion wrapping the cause", err)
	}
	var ge *proposal.GenerateError
	if !errors.As(err, &ge) || ge.Op != "convert" {
		t.Errorf("failing encoder: %v, want GenerateError{Op: convert}", err)
	}

	empty := convert.Func(func(context.Context, []byte) ([]byte, error) { return nil, nil })
	_, err = proposal.New(proposal.WithAssetsDir(dir), proposal.WithEncoder(empty)).GenerateWord(ctx, sampleForm())
	if !errors.Is(err, proposal.ErrEmptyArtifact) {
		t.Errorf("empty output: %v, want ErrEmptyArtifact", err)
	}
}

func TestSummarize(t *testing.T) {
	s := proposal.Summarize(sampleForm())
	if len(s.Sections) != 5 {
		t.Errorf("Sections = %d, want 5", len(s.Sections))
	}
	if s.Totals.Annualized != 3600 || s.Totals.OneTime != 0 {
		t.Errorf("Totals = %+v", s.Totals)
	}
	if s.TransferPricing.OneTime != 2500 {
		t.Errorf("TransferPricing = %+v", s.TransferPricing)
	}
}

func TestGenerateErrorFormat(t *testing.T) {
	err := &proposal.GenerateError{Op: "stitch", Err: errors.New("boom")}
	if err.Error() != "proposal.stitch: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if (&proposal.GenerateError{Op: "layout"}).Error() != "proposal.layout: unknown error" {
		t.Error("nil cause not reported")
	}
}
