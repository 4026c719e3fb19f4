package words

import "fmt"

// UnitForms holds the word forms for a currency's major and minor units.
type UnitForms struct {
	Major Forms
	Minor Forms
}

type lexiconKey struct {
	currency Currency
	locale   Locale
}

// The full lexicon is a fixed compile-time table: 4 currencies x 4 locales,
// 6 word forms each.
var lexicon = map[lexiconKey]UnitForms{
	{CurrencyPLN, LocalePL}: {
		Major: Forms{"złoty", "złote", "złotych"},
		Minor: Forms{"grosz", "grosze", "groszy"},
	},
	{CurrencyPLN, LocaleEN}: {
		Major: Forms{"zloty", "zloty", "zloty"},
		Minor: Forms{"grosz", "grosz", "grosz"},
	},
	{CurrencyPLN, LocaleRU}: {
		Major: Forms{"злотый", "злотых", "злотых"},
		Minor: Forms{"грош", "гроша", "грошей"},
	},
	{CurrencyPLN, LocaleUK}: {
		Major: Forms{"злотий", "злотих", "злотих"},
		Minor: Forms{"грош", "гроші", "грошів"},
	},

	{CurrencyUSD, LocalePL}: {
		Major: Forms{"dolar", "dolary", "dolarów"},
		Minor: Forms{"cent", "centy", "centów"},
	},
	{CurrencyUSD, LocaleEN}: {
		Major: Forms{"dollar", "dollars", "dollars"},
		Minor: Forms{"cent", "cents", "cents"},
	},
	{CurrencyUSD, LocaleRU}: {
		Major: Forms{"доллар", "доллара", "долларов"},
		Minor: Forms{"цент", "цента", "центов"},
	},
	{CurrencyUSD, LocaleUK}: {
		Major: Forms{"долар", "долари", "доларів"},
		Minor: Forms{"цент", "центи", "центів"},
	},

	{CurrencyEUR, LocalePL}: {
		Major: Forms{"euro", "euro", "euro"},
		Minor: Forms{"cent", "centy", "centów"},
	},
	{CurrencyEUR, LocaleEN}: {
		Major: Forms{"euro", "euros", "euros"},
		Minor: Forms{"cent", "cents", "cents"},
	},
	{CurrencyEUR, LocaleRU}: {
		Major: Forms{"евро", "евро", "евро"},
		Minor: Forms{"цент", "цента", "центов"},
	},
	{CurrencyEUR, LocaleUK}: {
		Major: Forms{"євро", "євро", "євро"},
		Minor: Forms{"цент", "центи", "центів"},
	},

	{CurrencyUAH, LocalePL}: {
		Major: Forms{"hrywna", "hrywny", "hrywien"},
		Minor: Forms{"kopiejka", "kopiejki", "kopiejek"},
	},
	{CurrencyUAH, LocaleEN}: {
		Major: Forms{"hryvnia", "hryvnias", "hryvnias"},
		Minor: Forms{"kopeck", "kopecks", "kopecks"},
	},
	{CurrencyUAH, LocaleRU}: {
		Major: Forms{"гривна", "гривны", "гривен"},
		Minor: Forms{"копейка", "копейки", "копеек"},
	},
	{CurrencyUAH, LocaleUK}: {
		Major: Forms{"гривня", "гривні", "гривень"},
		Minor: Forms{"копійка", "копійки", "копійок"},
	},
}

// Lookup returns the unit word forms for a (currency, locale) pair. Both
// values are validated at the boundary, so a miss is a programming error.
func Lookup(currency Currency, locale Locale) UnitForms {
	forms, ok := lexicon[lexiconKey{currency, locale}]
	if !ok {
		panic(fmt.Sprintf("words: no lexicon entry for %s/%s", currency, locale))
	}
	return forms
}
