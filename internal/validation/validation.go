// Package validation implements the request-body checks shared by both
// entities: required-field presence over the raw JSON keys, string
// trimming, and the permissive decimal coercion the mobile client relies
// on (it often sends numbers as strings).
package validation

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind selects the coercion applied to an allow-listed field.
type Kind int

const (
	String Kind = iota
	Decimal
)

// Field is one entry of an entity's column allow-list. Dynamic update
// statements are built only from these, never from raw input keys.
type Field struct {
	Name string
	Kind Kind
}

// Missing returns the required fields absent from the input keys, in the
// declared order. Presence is key-based: an empty string still counts as
// provided, matching what the client has always been allowed to send.
func Missing(input map[string]any, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := input[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Coerce folds the allow-list over the input and returns the coerced
// values for the fields actually present. Keys outside the allow-list are
// dropped.
func Coerce(input map[string]any, allowed []Field) map[string]any {
	out := make(map[string]any, len(allowed))
	for _, f := range allowed {
		raw, ok := input[f.Name]
		if !ok {
			continue
		}
		switch f.Kind {
		case Decimal:
			out[f.Name] = DecimalValue(raw)
		default:
			out[f.Name] = StringValue(raw)
		}
	}
	return out
}

// StringValue trims the value; non-string input yields "".
func StringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// DecimalValue parses a money amount from whatever the client sent.
// Unparsable or negative input coerces to zero instead of failing; the
// stored amounts are always non-negative.
func DecimalValue(v any) decimal.Decimal {
	var d decimal.Decimal
	switch n := v.(type) {
	case float64:
		d = decimal.NewFromFloat(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
