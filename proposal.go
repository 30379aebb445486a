// Package proposal generates client proposal documents.
//
// A Generator runs the whole pipeline for one form submission: it selects
// and prices the optional sections, composes the block sequence, lays it out
// and stamps page headers and footers in two passes, then stitches the
// rendered pages together with the static page ranges. GenerateWord
// additionally hands the result to an external converter.
//
//	gen := proposal.New(proposal.WithAssetsDir("assets"))
//	art, err := gen.Generate(ctx, form)
package proposal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lvillar/proposal/assets"
	"github.com/lvillar/proposal/compose"
	"github.com/lvillar/proposal/fee"
	"github.com/lvillar/proposal/pageops"
	"github.com/lvillar/proposal/render"
	"github.com/lvillar/proposal/submission"
)

// Content types of the two artifact formats.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Artifact is a finished proposal.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte

	// Pages is the page count of the stitched PDF.
	Pages int

	// Totals is the recurring-services summary; TransferPricing the
	// transfer-pricing total.
	Totals          fee.Totals
	TransferPricing fee.Totals

	// Warnings lists every degradation met on the way: missing fonts,
	// images and static pages, and fees left out of the totals.
	Warnings []string
}

// Generator produces proposals. It holds configuration only and is safe for
// concurrent use; every call builds its own document.
type Generator struct {
	cfg generatorConfig
	log *zap.SugaredLogger
}

// New returns a Generator. Without options it looks for assets in the
// working directory and has no Word converter.
func New(opts ...Option) *Generator {
	cfg := generatorConfig{
		assetsDir:   ".",
		fonts:       DefaultFonts(),
		headerImage: "incorp_header.png",
		coverImages: []string{"cover_image.png", "cover_image.jpg", "cover_image.jpeg"},
		before:      filepath.Join("static_pdfs", "static_pages_2_3_4.pdf"),
		after:       filepath.Join("static_pdfs", "static_pages_14_21.pdf"),
		chrome:      render.DefaultChrome(),
		reference:   true,
		namePrefix:  "InCorp_Proposal",
		now:         time.Now,
		loadImage:   assets.LoadImage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{cfg: cfg, log: log}
}

// ArtifactName returns the download name of a proposal for company
// generated at t: prefix, company with spaces replaced by underscores and
// the date as YYYYMMDD, joined by underscores, followed by ext.
func ArtifactName(prefix, company string, t time.Time, ext string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		company = "Client"
	}
	company = strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(company)
	return fmt.Sprintf("%s_%s_%s%s", prefix, company, t.Format("20060102"), ext)
}

func (g *Generator) path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(g.cfg.assetsDir, name)
}

// Generate builds the stitched PDF proposal for form.
func (g *Generator) Generate(ctx context.Context, form submission.Form) (*Artifact, error) {
	now := g.cfg.now()
	art := &Artifact{
		Name:        ArtifactName(g.cfg.namePrefix, form.String("clientCompany", ""), now, ".pdf"),
		ContentType: ContentTypePDF,
	}
	if err := ctx.Err(); err != nil {
		return nil, newGenerateError("compose", err)
	}

	fonts, warnings := assets.LoadFonts(g.cfg.assetsDir, g.cfg.fonts)
	art.Warnings = append(art.Warnings, warnings...)

	copts := compose.Options{
		Signatory: g.cfg.signatory,
		Now:       func() time.Time { return now },
	}
	if len(g.cfg.coverImages) > 0 {
		if p, err := assets.Find(g.cfg.assetsDir, g.cfg.coverImages...); err == nil {
			copts.CoverImage = p
		} else {
			art.Warnings = append(art.Warnings, "no cover image found, using a text cover")
		}
	}
	if g.cfg.reference {
		copts.Reference = art.Name
	}
	flow := compose.Compose(form, copts)
	art.Totals, art.TransferPricing = flow.Totals, flow.TransferPricing
	art.Warnings = append(art.Warnings, flow.Warnings...)

	doc := render.New(render.Options{
		Fonts:        fonts,
		LoadImage:    g.cfg.loadImage,
		Title:        "Proposal for " + form.String("clientCompany", "Client"),
		Author:       g.cfg.chrome.Brand,
		Creator:      "proposal",
		CreationDate: now,
	})
	if err := doc.Layout(flow.Blocks); err != nil {
		return nil, newGenerateError("layout", err)
	}
	chrome := g.cfg.chrome
	if g.cfg.headerImage != "" {
		chrome.HeaderImage = g.path(g.cfg.headerImage)
	}
	if err := doc.Stamp(chrome); err != nil {
		return nil, newGenerateError("stamp", err)
	}
	dynamic, err := doc.Bytes()
	if err != nil {
		return nil, newGenerateError("write", err)
	}
	art.Warnings = append(art.Warnings, doc.Warnings()...)

	if err := ctx.Err(); err != nil {
		return nil, newGenerateError("stitch", err)
	}
	res, err := pageops.Stitch(dynamic, pageops.DefaultPlan(g.path(g.cfg.before), g.path(g.cfg.after)))
	if err != nil {
		return nil, newGenerateError("stitch", err)
	}
	if len(res.Data) == 0 {
		return nil, newGenerateError("stitch", ErrEmptyArtifact)
	}
	art.Data, art.Pages = res.Data, res.Pages
	art.Warnings = append(art.Warnings, res.Warnings...)

	for _, w := range art.Warnings {
		g.log.Warnw("proposal degraded", "artifact", art.Name, "warning", w)
	}
	return art, nil
}

// GenerateWord builds the proposal and converts it with the configured
// encoder. The artifact keeps the PDF's name with a .docx extension.
func (g *Generator) GenerateWord(ctx context.Context, form submission.Form) (*Artifact, error) {
	if g.cfg.encoder == nil {
		return nil, newGenerateError("convert", ErrNoEncoder)
	}
	art, err := g.Generate(ctx, form)
	if err != nil {
		return nil, err
	}
	data, err := g.cfg.encoder.Encode(ctx, art.Data)
	if err != nil {
		return nil, newGenerateError("convert", fmt.Errorf("%w: %w", ErrConversion, err))
	}
	if len(data) == 0 {
		return nil, newGenerateError("convert", ErrEmptyArtifact)
	}
	art.Name = strings.TrimSuffix(art.Name, ".pdf") + ".docx"
	art.ContentType = ContentTypeDOCX
	art.Data = data
	return art, nil
}

// CanConvert reports whether GenerateWord has an encoder to use.
func (g *Generator) CanConvert() bool { return g.cfg.encoder != nil }

// Summary is the priced selection of a form without any rendering.
type Summary struct {
	Sections        []compose.Entry
	Totals          fee.Totals
	TransferPricing fee.Totals
}

// Summarize selects and prices the sections of form.
func Summarize(form submission.Form) Summary {
	entries := compose.Select(form)
	return Summary{
		Sections:        entries,
		Totals:          compose.GroupTotals(entries, compose.GroupRecurring),
		TransferPricing: compose.GroupTotals(entries, compose.GroupTransferPricing),
	}
}
