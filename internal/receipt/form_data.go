// Package receipt holds the payout-receipt domain model shared by the
// layout, attachment and assembly packages.
package receipt

import (
	"strings"

	"github.com/adamwal/payout-receipt/internal/words"
)

// FormData carries the already-validated field values of one payout receipt.
// AmountInWords is derived from amount/locale/currency but stays a plain
// field: a manual override survives until one of its dependencies changes.
type FormData struct {
	Date           string `json:"date"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	IssuedTo       string `json:"issued_to"`
	AccountInfo    string `json:"account_info"`
	DepartmentName string `json:"department_name"`
	BasedOn        string `json:"based_on"`
	AmountInWords  string `json:"amount_in_words"`

	// RecipientSignature is an optional image blob; empty means no signature.
	RecipientSignature []byte `json:"-"`
}

// DeriveAmountInWords recomputes AmountInWords from the current amount.
// Called when amount, currency or locale changes; a caller that has set the
// field manually simply skips the call.
func (f *FormData) DeriveAmountInWords(locale words.Locale, currency words.Currency) {
	f.AmountInWords = words.ToWords(f.Amount, locale, currency)
}

// FallbackFileName names the output when the date field is empty.
const FallbackFileName = "document"

// FileName derives the output document name from the date field:
// non-alphanumeric separators become dashes, an empty date falls back to a
// fixed literal.
func FileName(date string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(date))

	if strings.Trim(slug, "-") == "" {
		slug = FallbackFileName
	}
	return "Dowod_wyplaty_" + slug + ".pdf"
}
