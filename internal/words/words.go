// Package words renders monetary amounts as grammatically correct phrases
// in the supported languages and currencies.
package words

import "fmt"

// Locale is one of the supported interface languages.
type Locale string

// Supported locales
const (
	LocaleEN Locale = "en"
	LocalePL Locale = "pl"
	LocaleRU Locale = "ru"
	LocaleUK Locale = "uk"
)

// Currency is one of the supported currency codes.
type Currency string

// Supported currencies
const (
	CurrencyUSD Currency = "USD"
	CurrencyPLN Currency = "PLN"
	CurrencyUAH Currency = "UAH"
	CurrencyEUR Currency = "EUR"
)

// Category is the grammatical class governing which word form accompanies
// a count.
type Category int

// Plural categories, in Forms order.
const (
	Singular Category = iota
	Few
	Many
)

// Forms holds the word forms for {singular, few, many}, indexed by Category.
type Forms [3]string

// Pick returns the form matching the plural category of n.
func (f Forms) Pick(n int64) string {
	return f[CategoryOf(n)]
}

// CategoryOf resolves the plural category for a non-negative count using the
// Slavic rule over the last two digits. The rule is locale-independent; the
// English tables simply carry the same word in every slot where English does
// not distinguish.
func CategoryOf(n int64) Category {
	if n < 0 {
		n = -n
	}
	lastTwo := n % 100
	lastOne := n % 10

	switch {
	case lastTwo >= 11 && lastTwo <= 19:
		return Many
	case lastOne == 1:
		return Singular
	case lastOne >= 2 && lastOne <= 4:
		return Few
	default:
		return Many
	}
}

// ParseLocale validates a raw locale code.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case LocaleEN, LocalePL, LocaleRU, LocaleUK:
		return Locale(s), nil
	}
	return "", fmt.Errorf("unsupported locale: %q", s)
}

// ParseCurrency validates a raw currency code.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyPLN, CurrencyUAH, CurrencyEUR:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unsupported currency: %q", s)
}
