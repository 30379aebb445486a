// Package fee normalizes fee amounts entered on the proposal form and folds
// them, by billing frequency, into annualized and one-time totals.
//
// Nothing in this package fails: unparseable input degrades to an empty
// display value and a zero contribution.
package fee

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ParseAmount parses a raw amount after removing grouping separators and
// surrounding whitespace. Fractional parts are truncated, not rounded.
// It reports false for empty, non-numeric, negative or non-finite input.
func ParseAmount(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	if v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// FormatAmount returns the display form of a raw amount: a thousands-grouped
// integer, or "" when the input is missing, zero-equivalent or not a number.
//
// FormatAmount is idempotent: FormatAmount(FormatAmount(s)) == FormatAmount(s).
func FormatAmount(raw string) string {
	n, ok := ParseAmount(raw)
	if !ok || n == 0 {
		return ""
	}
	return Group(n)
}

// Group formats n with thousands separators. Unlike FormatAmount it renders
// zero as "0"; it is used for totals, which are always shown.
func Group(n int64) string {
	return printer.Sprintf("%d", n)
}

// DisplayOr returns FormatAmount(raw), or fallback when that is empty.
func DisplayOr(raw, fallback string) string {
	if s := FormatAmount(raw); s != "" {
		return s
	}
	return fallback
}
