package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lvillar/proposal"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gen := proposal.New(
		proposal.WithAssetsDir(t.TempDir()),
		proposal.WithClock(func() time.Time { return time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC) }),
	)
	s := NewServer("proposal", "test", nil)
	RegisterTools(s, gen)
	RegisterResources(s)
	return s
}

func sendRequest(t *testing.T, s *Server, method string, id int, params any) response {
	t.Helper()

	req := map[string]any{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		req["params"] = params
	}
	line, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}

	var out bytes.Buffer
	if err := s.Run(context.Background(), bytes.NewReader(append(line, '\n')), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response %q: %v", out.String(), err)
	}
	return resp
}

// callTool returns the text of every content block of a tool result.
func callTool(t *testing.T, s *Server, name string, args map[string]any) ([]string, bool) {
	t.Helper()
	resp := sendRequest(t, s, "tools/call", 1, map[string]any{"name": name, "arguments": args})
	if resp.Error != nil {
		t.Fatalf("%s: protocol error: %s", name, resp.Error.Message)
	}
	raw, _ := json.Marshal(resp.Result)
	var res ToolResult
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("%s: result %s: %v", name, raw, err)
	}
	var texts []string
	for _, c := range res.Content {
		texts = append(texts, c.Text)
	}
	return texts, res.IsError
}

func TestServerInitialize(t *testing.T) {
	s := newTestServer(t)
	resp := sendRequest(t, s, "initialize", 1, map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "1.0"},
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	result := resp.Result.(map[string]any)
	if result["protocolVersion"] != ProtocolVersion {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	if info := result["serverInfo"].(map[string]any); info["name"] != "proposal" {
		t.Errorf("serverInfo = %v", info)
	}
}

func TestServerToolsList(t *testing.T) {
	resp := sendRequest(t, newTestServer(t), "tools/list", 2, nil)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	var names []string
	for _, tool := range resp.Result.(map[string]any)["tools"].([]any) {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	want := "compute_totals,generate_proposal,list_sections,merge_pdfs,page_count"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("tools = %s, want %s", got, want)
	}
}

func TestServerResourcesList(t *testing.T) {
	resp := sendRequest(t, newTestServer(t), "resources/list", 3, nil)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	if n := len(resp.Result.(map[string]any)["resources"].([]any)); n != 3 {
		t.Errorf("got %d resources, want 3", n)
	}
}

func TestServerUnknownMethod(t *testing.T) {
	resp := sendRequest(t, newTestServer(t), "nonexistent/method", 5, nil)
	if resp.Error == nil || resp.Error.Code != codeMethodNotFound {
		t.Fatalf("error = %+v, want method not found", resp.Error)
	}
}

func TestServerNotificationGetsNoResponse(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n")
	if err := newTestServer(t).Run(context.Background(), in, &out); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("notification answered with %q", out.String())
	}
}

func TestServerUnknownTool(t *testing.T) {
	resp := sendRequest(t, newTestServer(t), "tools/call", 6, map[string]any{"name": "nonexistent_tool"})
	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
}

var testForm = map[string]any{
	"clientCompany":       "Acme Widgets",
	"includeTDS":          "on",
	"tdsFee":              "100",
	"includeBenchmarking": "on",
	"benchmarkingFee":     "2500",
}

func TestComputeTotalsTool(t *testing.T) {
	texts, isErr := callTool(t, newTestServer(t), "compute_totals", map[string]any{"form": testForm})
	if isErr {
		t.Fatalf("tool error: %v", texts)
	}
	var report struct {
		Sections        []sectionLine `json:"sections"`
		Totals          totalsLine    `json:"totals"`
		TransferPricing totalsLine    `json:"transferPricing"`
	}
	if err := json.Unmarshal([]byte(texts[0]), &report); err != nil {
		t.Fatalf("report %s: %v", texts[0], err)
	}
	if len(report.Sections) != 2 {
		t.Errorf("sections = %+v", report.Sections)
	}
	if report.Totals.Annualized != 1200 || report.TransferPricing.OneTime != 2500 {
		t.Errorf("totals = %+v / %+v", report.Totals, report.TransferPricing)
	}
}

func TestComputeTotalsRequiresForm(t *testing.T) {
	texts, isErr := callTool(t, newTestServer(t), "compute_totals", nil)
	if !isErr || !strings.Contains(texts[0], "form") {
		t.Errorf("result = %v (isError %v)", texts, isErr)
	}
}

func TestListSectionsTool(t *testing.T) {
	texts, isErr := callTool(t, newTestServer(t), "list_sections", map[string]any{"group": "d"})
	if isErr {
		t.Fatalf("tool error: %v", texts)
	}
	if !strings.Contains(texts[0], "includeBenchmarking") || strings.Contains(texts[0], "includeHandover") {
		t.Errorf("group D listing:\n%s", texts[0])
	}
}

func TestGenerateProposalTool(t *testing.T) {
	s := newTestServer(t)
	out := t.TempDir()

	texts, isErr := callTool(t, s, "generate_proposal", map[string]any{"form": testForm, "outputPath": out})
	if isErr {
		t.Fatalf("tool error: %v", texts)
	}
	path := filepath.Join(out, "InCorp_Proposal_Acme_Widgets_20240307.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("proposal not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("written file is not a PDF")
	}
	if !strings.Contains(texts[0], "warning:") {
		t.Errorf("summary does not report the missing assets:\n%s", texts[0])
	}

	texts, isErr = callTool(t, s, "page_count", map[string]any{"path": path})
	if isErr || !strings.Contains(texts[0], "pages") {
		t.Errorf("page_count = %v", texts)
	}
}

func TestGenerateProposalToolInline(t *testing.T) {
	texts, isErr := callTool(t, newTestServer(t), "generate_proposal", map[string]any{"form": testForm})
	if isErr {
		t.Fatalf("tool error: %v", texts)
	}
	if len(texts) != 2 || !strings.HasPrefix(texts[1], "JVBERi") {
		t.Errorf("want a summary and base64 PDF, got %d blocks", len(texts))
	}
}

func TestGenerateProposalToolWordWithoutConverter(t *testing.T) {
	texts, isErr := callTool(t, newTestServer(t), "generate_proposal", map[string]any{"form": testForm, "format": "docx"})
	if !isErr || !strings.Contains(texts[0], "encoder") {
		t.Errorf("result = %v (isError %v)", texts, isErr)
	}
}

func TestMergePDFsTool(t *testing.T) {
	s := newTestServer(t)
	dir := t.TempDir()
	gen, _ := callTool(t, s, "generate_proposal", map[string]any{"form": testForm, "outputPath": dir})
	if len(gen) == 0 {
		t.Fatal("no proposal generated")
	}
	in := filepath.Join(dir, "InCorp_Proposal_Acme_Widgets_20240307.pdf")
	orig, err := os.ReadFile(in)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "merged.pdf")
	if texts, isErr := callTool(t, s, "merge_pdfs", map[string]any{"paths": []any{in, in}, "outputPath": out}); isErr {
		t.Fatalf("merge_pdfs: %v", texts)
	}
	texts, _ := callTool(t, s, "page_count", map[string]any{"path": out})
	if !strings.Contains(texts[0], "pages") {
		t.Errorf("merged output unreadable: %v", texts)
	}

	texts, isErr := callTool(t, s, "merge_pdfs", map[string]any{"paths": []any{in}, "outputPath": in})
	if !isErr || !strings.Contains(texts[0], "also an input") {
		t.Errorf("merging into an input = %v (isError %v)", texts, isErr)
	}
	if got, _ := os.ReadFile(in); !bytes.Equal(got, orig) {
		t.Error("input file changed by a rejected merge")
	}
}

func TestMergePDFsToolKeepsOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "keep.pdf")
	if err := os.WriteFile(out, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}
	texts, isErr := callTool(t, newTestServer(t), "merge_pdfs", map[string]any{
		"paths":      []any{filepath.Join(dir, "missing.pdf")},
		"outputPath": out,
	})
	if !isErr {
		t.Fatalf("merge of a missing file succeeded: %v", texts)
	}
	if got, err := os.ReadFile(out); err != nil || string(got) != "existing" {
		t.Errorf("output after failed merge = %q, %v", got, err)
	}
}

func TestReadFrequenciesResource(t *testing.T) {
	resp := sendRequest(t, newTestServer(t), "resources/read", 1, map[string]any{"uri": "proposal://frequencies"})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	raw, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(raw), `\"perYear\": 12`) {
		t.Errorf("frequencies: %s", raw)
	}
}

func TestReadPagesResourceNeedsPath(t *testing.T) {
	resp := sendRequest(t, newTestServer(t), "resources/read", 1, map[string]any{"uri": "proposal://pages"})
	if resp.Error == nil || resp.Error.Code != codeInternalError {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestServerMultipleRequests(t *testing.T) {
	requests := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":4,"method":"ping"}`,
	}
	var out bytes.Buffer
	if err := newTestServer(t).Run(context.Background(), strings.NewReader(strings.Join(requests, "\n")+"\n"), &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(lines), out.String())
	}
	for i, line := range lines {
		var resp response
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response %d: %v\nline: %s", i, err, line)
		}
		if resp.Error != nil {
			t.Errorf("response %d: unexpected error: %s", i, resp.Error.Message)
		}
	}
}

func TestAddTool(t *testing.T) {
	s := NewServer("test", "0", nil)
	s.AddTool(Tool{
		Name:        "custom_tool",
		InputSchema: map[string]any{"type": "object"},
		Handler: func(context.Context, map[string]any) (ToolResult, error) {
			return Text("custom %s", "result"), nil
		},
	})
	texts, isErr := callTool(t, s, "custom_tool", nil)
	if isErr || texts[0] != "custom result" {
		t.Errorf("result = %v", texts)
	}
}
