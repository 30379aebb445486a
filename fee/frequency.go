package fee

import "strings"

// Frequency is the billing cadence a free-text frequency label resolves to.
type Frequency int

const (
	Unrecognized Frequency = iota
	OneTime
	Monthly
	Quarterly
	Annual
)

func (f Frequency) String() string {
	switch f {
	case OneTime:
		return "one-time"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annual:
		return "annual"
	default:
		return "unrecognized"
	}
}

// PerYear is the number of times a recurring fee is charged in a year.
// It is zero for one-time and unrecognized frequencies.
func (f Frequency) PerYear() int64 {
	switch f {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annual:
		return 1
	default:
		return 0
	}
}

// Recurring reports whether the frequency contributes to the annualized total.
func (f Frequency) Recurring() bool {
	return f.PerYear() > 0
}

// classification order matters: the first keyword found wins, so
// "Monthly and Annual" is monthly and "Monthly/Quarterly" is monthly.
var keywords = []struct {
	word string
	freq Frequency
}{
	{"one time", OneTime},
	{"one-time", OneTime},
	{"monthly", Monthly},
	{"quarterly", Quarterly},
	{"annual", Annual},
}

// Classify resolves a frequency label by case-insensitive keyword match.
// A keyword only matches at the start of a word, so "biannual" and
// "bimonthly" stay Unrecognized rather than being read as annual or monthly.
func Classify(label string) Frequency {
	s := strings.ToLower(label)
	for _, kw := range keywords {
		if containsWord(s, kw.word) {
			return kw.freq
		}
	}
	return Unrecognized
}

// containsWord reports whether word occurs in s at a position not preceded
// by a letter.
func containsWord(s, word string) bool {
	for off := 0; off < len(s); {
		i := strings.Index(s[off:], word)
		if i < 0 {
			return false
		}
		at := off + i
		if at == 0 || !isLetter(s[at-1]) {
			return true
		}
		off = at + 1
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
