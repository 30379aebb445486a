// Package submission holds the structured form submission a proposal is
// generated from.
//
// A Form is a read-only mapping from field name to value. Values arrive as
// JSON: strings, booleans or numbers for scalar fields, and arrays of objects
// for the accounting and payroll tier lists.
package submission

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Form is an immutable form submission.
type Form struct {
	fields map[string]any
}

// New copies fields into a new Form. Later changes to fields are not seen by
// the Form.
func New(fields map[string]any) Form {
	cp := make(map[string]any, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Form{fields: cp}
}

// Decode reads a JSON object from r.
func Decode(r io.Reader) (Form, error) {
	var fields map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return Form{}, fmt.Errorf("submission: decoding form: %w", err)
	}
	if fields == nil {
		return Form{}, fmt.Errorf("submission: form must be a JSON object")
	}
	return Form{fields: fields}, nil
}

// Parse decodes a JSON object held in memory.
func Parse(data []byte) (Form, error) {
	return Decode(strings.NewReader(string(data)))
}

// Has reports whether the field is present, whatever its value.
func (f Form) Has(key string) bool {
	_, ok := f.fields[key]
	return ok
}

// Len returns the number of fields in the submission.
func (f Form) Len() int {
	return len(f.fields)
}

// Raw returns the scalar value of a field as a string, and whether the field
// was present. Non-scalar values yield "".
func (f Form) Raw(key string) (string, bool) {
	v, ok := f.fields[key]
	if !ok {
		return "", false
	}
	return scalar(v), true
}

// String returns the trimmed value of a field, or def when the field is
// missing or blank.
func (f Form) String(key, def string) string {
	s, _ := f.Raw(key)
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// Flag reports whether an inclusion checkbox is set. HTML forms post "on";
// JSON clients may send true, "true", "1" or "yes".
func (f Form) Flag(key string) bool {
	v, ok := f.fields[key]
	if !ok {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(scalar(v))) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Tier is one row of a volume-band fee table.
type Tier struct {
	Label string `json:"label"`
	Fee   string `json:"fee"`
}

// Tiers returns the tier list stored under key. Each element may name its
// label "label", "transactions" or "employees" and its fee "fee" or
// "amount". Missing or malformed lists yield nil.
func (f Form) Tiers(key string) []Tier {
	list, ok := f.fields[key].([]any)
	if !ok {
		return nil
	}
	tiers := make([]Tier, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tiers = append(tiers, Tier{
			Label: first(m, "label", "transactions", "employees"),
			Fee:   first(m, "fee", "amount"),
		})
	}
	if len(tiers) == 0 {
		return nil
	}
	return tiers
}

func first(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return scalar(v)
		}
	}
	return ""
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}
