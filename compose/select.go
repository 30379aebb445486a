package compose

import (
	"github.com/lvillar/proposal/fee"
	"github.com/lvillar/proposal/submission"
)

// Entry is a section the submission included, with its fee and frequency
// resolved.
type Entry struct {
	Section   Section
	Frequency string
	Fee       string            // display value, never empty
	Tiers     []submission.Tier // nil unless the section carries a tier table

	// Contribution is what this entry adds to its group's totals.
	Contribution fee.Contribution
}

// FeeCell returns the text of the entry's fee column.
func (e Entry) FeeCell() string {
	if e.Section.PerMonth {
		return e.Fee + " per month"
	}
	return e.Fee
}

// Select returns, in catalog order, every section whose inclusion flag is set
// in form.
func Select(form submission.Form) []Entry {
	var out []Entry
	for _, s := range catalog {
		if form.Flag(s.Flag) {
			out = append(out, resolve(form, s))
		}
	}
	return out
}

func resolve(form submission.Form, s Section) Entry {
	freq := s.Frequency
	if s.FreqField != "" {
		freq = form.String(s.FreqField, s.Frequency)
	}
	display := fee.DisplayOr(form.String(s.FeeField, ""), s.DefaultFee)
	e := Entry{
		Section:      s,
		Frequency:    freq,
		Fee:          display,
		Contribution: fee.Contribute(freq, display),
	}
	if s.Tiers != nil {
		if e.Tiers = form.Tiers(s.Tiers.Field); e.Tiers == nil {
			e.Tiers = s.Tiers.Defaults
		}
	}
	return e
}

// Filter returns the entries of group g, and of part p when p is not empty.
func Filter(entries []Entry, g Group, p string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Section.Group == g && (p == "" || e.Section.Part == p) {
			out = append(out, e)
		}
	}
	return out
}

// GroupTotals folds the contributions of group g.
func GroupTotals(entries []Entry, g Group) fee.Totals {
	var cs []fee.Contribution
	for _, e := range Filter(entries, g, "") {
		cs = append(cs, e.Contribution)
	}
	return fee.Sum(cs...)
}

// Category is a run of consecutive entries sharing a group C category.
type Category struct {
	Name    string
	Entries []Entry
}

// Categorize splits entries into runs of equal Part, keeping order.
func Categorize(entries []Entry) []Category {
	var out []Category
	for _, e := range entries {
		if n := len(out); n > 0 && out[n-1].Name == e.Section.Part {
			out[n-1].Entries = append(out[n-1].Entries, e)
			continue
		}
		out = append(out, Category{Name: e.Section.Part, Entries: []Entry{e}})
	}
	return out
}
