package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/internal/config"
	"github.com/lvillar/proposal/internal/logger"
)

func writeForm(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTotalsCommand(t *testing.T) {
	form := writeForm(t, `{"includeTDS": "on", "tdsFee": "100", "includeGSTComp": "on", "gstComplianceFee": "50", "gstFrequency": "biannual"}`)
	out, err := execute(t, "totals", form)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	for _, want := range []string{"Annualized:       1,200", `excluded (frequency "biannual" not recognized)`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTotalsCommandBadForm(t *testing.T) {
	if _, err := execute(t, "totals", writeForm(t, `[1, 2]`)); err == nil {
		t.Error("totals accepted a JSON array")
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	form := writeForm(t, `{"clientCompany": "Acme", "includeHandover": "on"}`)
	out, err := execute(t, "generate", "--config", filepath.Join(dir, "missing.yaml"), "--assets", dir, "-o", dir, form)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "InCorp_Proposal_Acme_*.pdf"))
	if len(matches) != 1 {
		t.Fatalf("written files = %v\n%s", matches, out)
	}
	if !strings.Contains(out, "warning:") {
		t.Errorf("missing assets not reported:\n%s", out)
	}
}

func TestGeneratorOptionsConverter(t *testing.T) {
	cfg := config.DefaultConfig()
	if !proposal.New(generatorOptions(cfg, logger.Nop())...).CanConvert() {
		t.Error("default config has no converter")
	}
	cfg.Convert.Command = ""
	if proposal.New(generatorOptions(cfg, logger.Nop())...).CanConvert() {
		t.Error("empty convert command still converts")
	}
}
