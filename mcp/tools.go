package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/compose"
	"github.com/lvillar/proposal/fee"
	"github.com/lvillar/proposal/pageops"
	"github.com/lvillar/proposal/submission"
)

// RegisterTools adds the proposal tools to s. Generation runs through gen.
func RegisterTools(s *Server, gen *proposal.Generator) {
	s.AddTool(generateProposalTool(gen))
	s.AddTool(computeTotalsTool())
	s.AddTool(listSectionsTool())
	s.AddTool(pageCountTool())
	s.AddTool(mergePDFsTool())
}

var formSchema = map[string]any{
	"type":        "object",
	"description": "Proposal form fields as submitted by the web form, e.g. {\"clientCompany\": \"Acme\", \"includeTDS\": \"on\", \"tdsFee\": \"100\"}",
}

func generateProposalTool(gen *proposal.Generator) Tool {
	return Tool{
		Name:        "generate_proposal",
		Description: "Generate a client proposal from form fields. Writes the document to outputPath when given, otherwise returns it as base64. Reports page count, totals and any warnings.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"form": formSchema,
				"format": map[string]any{
					"type":        "string",
					"enum":        []string{"pdf", "docx"},
					"description": "Output format. docx requires a configured converter.",
				},
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Optional file or directory to write the proposal to.",
				},
			},
			"required": []string{"form"},
		},
		Handler: func(ctx context.Context, args map[string]any) (ToolResult, error) {
			form, err := formArg(args)
			if err != nil {
				return ToolResult{}, err
			}
			var art *proposal.Artifact
			switch format, _ := args["format"].(string); format {
			case "", "pdf":
				art, err = gen.Generate(ctx, form)
			case "docx":
				art, err = gen.GenerateWord(ctx, form)
			default:
				return ToolResult{}, fmt.Errorf("unknown format %q", format)
			}
			if err != nil {
				return ToolResult{}, err
			}

			summary := artifactSummary(art)
			if out, _ := args["outputPath"].(string); out != "" {
				if fi, err := os.Stat(out); err == nil && fi.IsDir() {
					out = filepath.Join(out, art.Name)
				}
				if err := os.WriteFile(out, art.Data, 0o644); err != nil {
					return ToolResult{}, fmt.Errorf("writing proposal: %w", err)
				}
				return Text("Proposal written to %s (%d bytes).\n%s", out, len(art.Data), summary), nil
			}
			return ToolResult{Content: []ContentBlock{
				{Type: "text", Text: summary},
				{Type: "text", MIMEType: art.ContentType, Text: base64.StdEncoding.EncodeToString(art.Data)},
			}}, nil
		},
	}
}

func artifactSummary(art *proposal.Artifact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d pages\n", art.Name, art.Pages)
	fmt.Fprintf(&b, "Annualized recurring fees: %s\n", fee.Group(art.Totals.Annualized))
	fmt.Fprintf(&b, "One-time fees: %s\n", fee.Group(art.Totals.OneTime))
	if art.TransferPricing.Annualized != 0 || art.TransferPricing.OneTime != 0 {
		fmt.Fprintf(&b, "Transfer pricing: %s\n", fee.Group(art.TransferPricing.OneTime+art.TransferPricing.Annualized))
	}
	for _, w := range art.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}

func computeTotalsTool() Tool {
	return Tool{
		Name:        "compute_totals",
		Description: "Select the sections a form includes and compute the annualized and one-time fee totals without rendering a document.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"form": formSchema},
			"required":   []string{"form"},
		},
		Handler: func(_ context.Context, args map[string]any) (ToolResult, error) {
			form, err := formArg(args)
			if err != nil {
				return ToolResult{}, err
			}
			return jsonResult(totalsReport(proposal.Summarize(form)))
		},
	}
}

type sectionLine struct {
	Flag       string `json:"flag"`
	Group      string `json:"group"`
	Name       string `json:"name"`
	Fee        string `json:"fee"`
	Frequency  string `json:"frequency"`
	Cadence    string `json:"cadence"`
	Annualized int64  `json:"annualized"`
	OneTime    int64  `json:"oneTime"`
}

type totalsLine struct {
	Annualized   int64    `json:"annualized"`
	OneTime      int64    `json:"oneTime"`
	Unclassified []string `json:"unclassified,omitempty"`
}

func totalsReport(s proposal.Summary) map[string]any {
	lines := make([]sectionLine, 0, len(s.Sections))
	for _, e := range s.Sections {
		lines = append(lines, sectionLine{
			Flag:       e.Section.Flag,
			Group:      string(e.Section.Group),
			Name:       e.Section.Name,
			Fee:        e.FeeCell(),
			Frequency:  e.Frequency,
			Cadence:    e.Contribution.Frequency.String(),
			Annualized: e.Contribution.Annualized,
			OneTime:    e.Contribution.OneTime,
		})
	}
	return map[string]any{
		"sections":        lines,
		"totals":          totalsLine(s.Totals),
		"transferPricing": totalsLine(s.TransferPricing),
	}
}

func listSectionsTool() Tool {
	return Tool{
		Name:        "list_sections",
		Description: "List the optional proposal sections with their inclusion flag, fee and frequency fields, and default fee. Optionally filter by group A, B, C or D.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"group": map[string]any{
					"type": "string",
					"enum": []string{"A", "B", "C", "D"},
				},
			},
		},
		Handler: func(_ context.Context, args map[string]any) (ToolResult, error) {
			group, _ := args["group"].(string)
			var out []compose.Section
			for _, s := range compose.Catalog() {
				if group == "" || string(s.Group) == strings.ToUpper(group) {
					out = append(out, s)
				}
			}
			return jsonResult(out)
		},
	}
}

func pageCountTool() Tool {
	return Tool{
		Name:        "page_count",
		Description: "Count the pages of a PDF file, e.g. to check a static page range before it is stitched into proposals.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{"type": "string", "description": "Path to the PDF file"},
			},
			"required": []string{"path"},
		},
		Handler: func(_ context.Context, args map[string]any) (ToolResult, error) {
			path, ok := args["path"].(string)
			if !ok || path == "" {
				return ToolResult{}, fmt.Errorf("missing 'path' argument")
			}
			n, err := pageops.FilePageCount(path)
			if err != nil {
				return ToolResult{}, err
			}
			return Text("%s: %d pages", path, n), nil
		},
	}
}

func mergePDFsTool() Tool {
	return Tool{
		Name:        "merge_pdfs",
		Description: "Concatenate PDF files in order into a single PDF.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"paths": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Input PDF files in order",
				},
				"outputPath": map[string]any{"type": "string", "description": "Output file"},
			},
			"required": []string{"paths", "outputPath"},
		},
		Handler: func(_ context.Context, args map[string]any) (ToolResult, error) {
			paths, err := stringsArg(args, "paths")
			if err != nil {
				return ToolResult{}, err
			}
			out, ok := args["outputPath"].(string)
			if !ok || out == "" {
				return ToolResult{}, fmt.Errorf("missing 'outputPath' argument")
			}
			if sameFile(out, paths) {
				return ToolResult{}, fmt.Errorf("outputPath %s is also an input", out)
			}
			var buf bytes.Buffer
			if err := pageops.Merge(&buf, paths...); err != nil {
				return ToolResult{}, err
			}
			if err := writeAtomic(out, buf.Bytes()); err != nil {
				return ToolResult{}, err
			}
			return Text("Merged %d files into %s", len(paths), out), nil
		},
	}
}

// sameFile reports whether out names the same file as any of paths.
func sameFile(out string, paths []string) bool {
	outInfo, outErr := os.Stat(out)
	outAbs, _ := filepath.Abs(out)
	for _, p := range paths {
		if abs, _ := filepath.Abs(p); abs == outAbs {
			return true
		}
		if outErr == nil {
			if fi, err := os.Stat(p); err == nil && os.SameFile(outInfo, fi) {
				return true
			}
		}
	}
	return false
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so path is never left truncated.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".merge-*.pdf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func formArg(args map[string]any) (submission.Form, error) {
	switch v := args["form"].(type) {
	case map[string]any:
		return submission.New(v), nil
	case string:
		// Some clients pass nested objects as encoded JSON.
		return submission.Parse([]byte(v))
	case nil:
		return submission.Form{}, fmt.Errorf("missing 'form' argument")
	default:
		return submission.Form{}, fmt.Errorf("'form' must be an object, got %T", v)
	}
}

func stringsArg(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key].([]any)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("missing '%s' argument", key)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("'%s' must be a list of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func jsonResult(v any) (ToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{Content: []ContentBlock{{Type: "text", MIMEType: "application/json", Text: string(data)}}}, nil
}
