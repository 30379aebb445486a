package fee

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"0", ""},
		{"0.0", ""},
		{"0.9", ""},
		{"abc", ""},
		{"-5", ""},
		{"NaN", ""},
		{"100", "100"},
		{"1234", "1,234"},
		{"1234.99", "1,234"},
		{" 2500 ", "2,500"},
		{"1,234,567", "1,234,567"},
		{"12 000", "12,000"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmountIdempotent(t *testing.T) {
	for _, in := range []string{"7", "999", "1000", "65536", "1234567.8", "12,000", "0", "x"} {
		once := FormatAmount(in)
		if twice := FormatAmount(once); twice != once {
			t.Errorf("FormatAmount not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDisplayOr(t *testing.T) {
	if got := DisplayOr("", "0"); got != "0" {
		t.Errorf("DisplayOr blank = %q, want 0", got)
	}
	if got := DisplayOr("1500", "0"); got != "1,500" {
		t.Errorf("DisplayOr = %q, want 1,500", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		want  Frequency
	}{
		{"One-time", OneTime},
		{"one time", OneTime},
		{"ONE TIME", OneTime},
		{"Monthly", Monthly},
		{"Monthly and Annual", Monthly},
		{"Monthly/Quarterly", Monthly},
		{"Quarterly", Quarterly},
		{"Annual", Annual},
		{"Semi-annual", Annual},
		{"biannual", Unrecognized},
		{"bimonthly", Unrecognized},
		{"per instance", Unrecognized},
		{"", Unrecognized},
	}
	for _, tt := range tests {
		if got := Classify(tt.label); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestContribute(t *testing.T) {
	tests := []struct {
		label, amount        string
		annualized, oneTime int64
	}{
		{"Monthly", "100", 1200, 0},
		{"One-time", "500", 0, 500},
		{"Quarterly", "100", 400, 0},
		{"Annual", "100", 100, 0},
		{"biannual", "100", 0, 0},
		{"Monthly", "", 0, 0},
		{"Monthly", "1,000", 12000, 0},
		{"Annual", "junk", 0, 0},
		{"Monthly", "1,000,000,000,000,000,000", math.MaxInt64, 0},
		{"Quarterly", "3,000,000,000,000,000,000", math.MaxInt64, 0},
		{"Annual", "9,000,000,000,000,000,000", 9000000000000000000, 0},
	}
	for _, tt := range tests {
		c := Contribute(tt.label, tt.amount)
		if c.Annualized != tt.annualized || c.OneTime != tt.oneTime {
			t.Errorf("Contribute(%q, %q) = (%d, %d), want (%d, %d)",
				tt.label, tt.amount, c.Annualized, c.OneTime, tt.annualized, tt.oneTime)
		}
	}
}

func TestSumOrderIndependent(t *testing.T) {
	entries := []Contribution{
		Contribute("Monthly", "200"),
		Contribute("Quarterly", "150"),
		Contribute("Annual", "1,200"),
		Contribute("One time", "750"),
		Contribute("One-time", "300"),
		Contribute("biannual", "90"),
		Contribute("Monthly and Annual", "80"),
		Contribute("per filing", "40"),
	}
	want := Sum(entries...)
	if want.Annualized != 200*12+150*4+1200+80*12 {
		t.Fatalf("annualized = %d", want.Annualized)
	}
	if want.OneTime != 1050 {
		t.Fatalf("one-time = %d", want.OneTime)
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := append([]Contribution(nil), entries...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if diff := cmp.Diff(want, Sum(shuffled...)); diff != "" {
			t.Fatalf("totals depend on order (-want +got):\n%s", diff)
		}
	}
}

func TestSumSaturates(t *testing.T) {
	big := Contribute("Annual", "9,000,000,000,000,000,000")
	got := Sum(big, big, Contribute("One-time", "9,000,000,000,000,000,000"), Contribute("One time", "9,000,000,000,000,000,000"))
	if got.Annualized != math.MaxInt64 || got.OneTime != math.MaxInt64 {
		t.Errorf("Sum = (%d, %d), want both clamped to MaxInt64", got.Annualized, got.OneTime)
	}
	var merged Totals
	merged.Merge(got)
	merged.Merge(got)
	if merged.Annualized != math.MaxInt64 {
		t.Errorf("Merge wrapped to %d", merged.Annualized)
	}
}

func TestAggregatorMatchesSum(t *testing.T) {
	var a Aggregator
	var cs []Contribution
	for _, e := range [][2]string{{"Monthly", "10"}, {"Annual", "5"}, {"One-time", "7"}, {"weekly", "3"}} {
		cs = append(cs, a.Add(e[0], e[1]))
	}
	if diff := cmp.Diff(Sum(cs...), a.Totals()); diff != "" {
		t.Errorf("aggregator differs from fold (-sum +aggregator):\n%s", diff)
	}
	if got := a.Totals().Unclassified; len(got) != 1 || got[0] != "weekly" {
		t.Errorf("Unclassified = %v, want [weekly]", got)
	}
}

func TestGroup(t *testing.T) {
	if got := Group(0); got != "0" {
		t.Errorf("Group(0) = %q", got)
	}
	if got := Group(1234567); got != "1,234,567" {
		t.Errorf("Group(1234567) = %q", got)
	}
}
