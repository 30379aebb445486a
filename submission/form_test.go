package submission

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeScalars(t *testing.T) {
	f, err := Decode(strings.NewReader(`{
		"clientCompany": "  Acme Pvt Ltd ",
		"handoverFee": 1500,
		"tdsFee": "2,000",
		"blank": "",
		"includeHandover": "on",
		"includeGST": true,
		"includeTDS": "off",
		"includeROC": false
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := f.String("clientCompany", "x"); got != "Acme Pvt Ltd" {
		t.Errorf("String = %q", got)
	}
	if got := f.String("handoverFee", ""); got != "1500" {
		t.Errorf("numeric field = %q, want 1500", got)
	}
	if got := f.String("blank", "dflt"); got != "dflt" {
		t.Errorf("blank field = %q, want default", got)
	}
	if got := f.String("missing", "dflt"); got != "dflt" {
		t.Errorf("missing field = %q, want default", got)
	}

	flags := map[string]bool{
		"includeHandover": true,
		"includeGST":      true,
		"includeTDS":      false,
		"includeROC":      false,
		"includeNothing":  false,
	}
	for k, want := range flags {
		if got := f.Flag(k); got != want {
			t.Errorf("Flag(%s) = %v, want %v", k, got, want)
		}
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	for _, in := range []string{`[1,2]`, `null`, `{`} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%s) succeeded, want error", in)
		}
	}
}

func TestTiers(t *testing.T) {
	f, err := Parse([]byte(`{
		"accountingEntries": [
			{"transactions": "Upto 20", "fee": "200"},
			{"transactions": "20 - 50", "fee": 250}
		],
		"payrollEntries": [
			{"employees": "Upto 10 employees", "amount": "125 USD"},
			"garbage"
		],
		"generic": [{"label": "Band A", "fee": "10"}],
		"empty": [],
		"notAList": "x"
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []Tier{{"Upto 20", "200"}, {"20 - 50", "250"}}
	if diff := cmp.Diff(want, f.Tiers("accountingEntries")); diff != "" {
		t.Errorf("accounting tiers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Tier{{"Upto 10 employees", "125 USD"}}, f.Tiers("payrollEntries")); diff != "" {
		t.Errorf("payroll tiers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Tier{{"Band A", "10"}}, f.Tiers("generic")); diff != "" {
		t.Errorf("generic tiers (-want +got):\n%s", diff)
	}
	for _, k := range []string{"empty", "notAList", "missing"} {
		if got := f.Tiers(k); got != nil {
			t.Errorf("Tiers(%s) = %v, want nil", k, got)
		}
	}
}

func TestNewCopiesFields(t *testing.T) {
	m := map[string]any{"includeIEC": "on"}
	f := New(m)
	m["includeIEC"] = "off"
	if !f.Flag("includeIEC") {
		t.Error("form changed after source map was mutated")
	}
}
