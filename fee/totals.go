package fee

import (
	"math"
	"sort"
)

// Contribution is what a single fee entry adds to the running totals.
type Contribution struct {
	Label      string // frequency label as entered
	Frequency  Frequency
	Amount     int64 // parsed amount; zero when the amount was blank or invalid
	Annualized int64
	OneTime    int64
}

// Contribute computes the contribution of one fee entry without touching any
// shared state. Unparseable amounts contribute zero.
func Contribute(label, amount string) Contribution {
	n, _ := ParseAmount(amount)
	c := Contribution{
		Label:     label,
		Frequency: Classify(label),
		Amount:    n,
	}
	switch {
	case c.Frequency == OneTime:
		c.OneTime = n
	case c.Frequency.Recurring():
		c.Annualized = mulSat(n, c.Frequency.PerYear())
	}
	return c
}

// Totals is the fold of a set of contributions.
type Totals struct {
	Annualized int64
	OneTime    int64

	// Unclassified lists, sorted, the labels of non-zero entries whose
	// frequency matched no known cadence and were therefore left out.
	Unclassified []string
}

// Add folds c into t.
func (t *Totals) Add(c Contribution) {
	t.Annualized = addSat(t.Annualized, c.Annualized)
	t.OneTime = addSat(t.OneTime, c.OneTime)
	if c.Frequency == Unrecognized && c.Amount != 0 {
		t.Unclassified = append(t.Unclassified, c.Label)
		sort.Strings(t.Unclassified)
	}
}

// Merge folds another total into t.
func (t *Totals) Merge(o Totals) {
	t.Annualized = addSat(t.Annualized, o.Annualized)
	t.OneTime = addSat(t.OneTime, o.OneTime)
	if len(o.Unclassified) > 0 {
		t.Unclassified = append(t.Unclassified, o.Unclassified...)
		sort.Strings(t.Unclassified)
	}
}

// Sum folds contributions into totals. The result does not depend on the
// order of cs.
func Sum(cs ...Contribution) Totals {
	var t Totals
	for _, c := range cs {
		t.Add(c)
	}
	return t
}

// Aggregator accumulates contributions one entry at a time.
// The zero value is ready to use.
type Aggregator struct {
	totals Totals
}

// Add computes the contribution of (label, amount), folds it in and returns it.
func (a *Aggregator) Add(label, amount string) Contribution {
	c := Contribute(label, amount)
	a.totals.Add(c)
	return c
}

// Totals returns a copy of the accumulated totals.
func (a *Aggregator) Totals() Totals {
	t := a.totals
	t.Unclassified = append([]string(nil), a.totals.Unclassified...)
	return t
}

// Amounts are never negative, so sums and products saturate at MaxInt64
// instead of wrapping.

func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func mulSat(a, b int64) int64 {
	if b != 0 && a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
