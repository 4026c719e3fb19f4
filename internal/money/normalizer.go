// Package money normalizes raw amount input into canonical two-decimal form.
//
// Sanitize and SanitizeInput run on every keystroke and Format on field blur,
// so none of them ever return an error: unusable input collapses to "".
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Sanitize strips every character that is not a digit, comma or dot, maps
// commas to dots and collapses multiple decimal separators by keeping the
// integer part plus the first fractional group ("1.2.3" -> "1.2").
func Sanitize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		}
	}
	cleaned := b.String()

	parts := strings.Split(cleaned, ".")
	if len(parts) > 2 {
		cleaned = parts[0] + "." + parts[1]
	}
	return cleaned
}

// SanitizeInput sanitizes a live keystroke value, capping the fractional
// group at two digits without rounding.
func SanitizeInput(raw string) string {
	cleaned := Sanitize(raw)
	if i := strings.IndexByte(cleaned, '.'); i >= 0 && len(cleaned) > i+3 {
		cleaned = cleaned[:i+3]
	}
	return cleaned
}

// Format sanitizes and renders the amount with exactly two fractional
// digits, rounding half away from zero. Non-numeric input yields "".
func Format(raw string) string {
	cleaned := Sanitize(raw)
	if cleaned == "" || cleaned == "." {
		return ""
	}

	d, err := decimal.NewFromString(normalizeDecimal(cleaned))
	if err != nil {
		return ""
	}
	return d.StringFixed(2)
}

// Split derives whole and fractional currency units from a raw amount:
// majorUnits = floor(value), minorUnits = round(frac*100). A value like
// "1.999" rounds minor to 100; the carry is intentionally not applied.
func Split(raw string) (major int64, minor int64, ok bool) {
	cleaned := Sanitize(raw)
	if cleaned == "" || cleaned == "." {
		return 0, 0, false
	}
	d, err := decimal.NewFromString(normalizeDecimal(cleaned))
	if err != nil || d.IsNegative() {
		return 0, 0, false
	}
	floor := d.Floor()
	major = floor.IntPart()
	minor = d.Sub(floor).Mul(hundred).Round(0).IntPart()
	return major, minor, true
}

// normalizeDecimal makes sanitized fragments like "12." or ".5" parseable.
func normalizeDecimal(s string) string {
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return s
}
