package words

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adamwal/payout-receipt/internal/money"
)

var hundred = decimal.NewFromInt(100)

// ToWords converts a raw amount such as "123.45" or "123,45" into a phrase
// like "сто двадцать три злотых сорок пять грошей".
//
// The converter runs on every keystroke, so any input it cannot use yields
// "" rather than an error. Input goes through the same sanitize step as the
// amount field, so mid-edit values like "12." or "1,2,3" convert the way the
// field displays them. Two asymmetric rules are deliberate: a zero amount
// still renders the major-unit phrase ("zero dollars"), while a zero minor
// part is silently omitted.
func ToWords(amount string, locale Locale, currency Currency) string {
	// Sanitize drops the sign, so reject negatives up front.
	if strings.Contains(amount, "-") {
		return ""
	}
	normalized := strings.TrimSuffix(money.Sanitize(amount), ".")
	if normalized == "" {
		return ""
	}
	if strings.HasPrefix(normalized, ".") {
		normalized = "0" + normalized
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return ""
	}

	floor := d.Floor()
	major := floor.IntPart()
	minor := d.Sub(floor).Mul(hundred).Round(0).IntPart()
	if major > MaxSpellable {
		return ""
	}

	forms := Lookup(currency, locale)

	var parts []string
	if major > 0 || (major == 0 && minor == 0) {
		parts = append(parts, Spell(major, locale)+" "+forms.Major.Pick(major))
	}
	if minor > 0 {
		parts = append(parts, Spell(minor, locale)+" "+forms.Minor.Pick(minor))
	}
	return strings.Join(parts, " ")
}
