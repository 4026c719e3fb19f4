package words

import "strings"

// MaxSpellable is the largest cardinal the speller renders. Payout amounts
// are far below it.
const MaxSpellable = 999_999_999

type scaleWord struct {
	forms    Forms
	feminine bool // ru/uk thousands agree with feminine one/two
	omitOne  bool // pl: "tysiąc", not "jeden tysiąc"
}

type speller struct {
	zero        string
	ones        [20]string
	onesFem     map[int64]string
	tens        [10]string
	hundreds    [10]string
	hundredWord string // set for languages composing "<one> hundred"
	hyphenTens  bool
	scales      []scaleWord
}

var spellers = map[Locale]*speller{
	LocaleEN: {
		zero: "zero",
		ones: [20]string{"", "one", "two", "three", "four", "five", "six", "seven",
			"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
			"fifteen", "sixteen", "seventeen", "eighteen", "nineteen"},
		tens: [10]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty",
			"seventy", "eighty", "ninety"},
		hundredWord: "hundred",
		hyphenTens:  true,
		scales: []scaleWord{
			{forms: Forms{"thousand", "thousand", "thousand"}},
			{forms: Forms{"million", "million", "million"}},
		},
	},
	LocalePL: {
		zero: "zero",
		ones: [20]string{"", "jeden", "dwa", "trzy", "cztery", "pięć", "sześć",
			"siedem", "osiem", "dziewięć", "dziesięć", "jedenaście", "dwanaście",
			"trzynaście", "czternaście", "piętnaście", "szesnaście",
			"siedemnaście", "osiemnaście", "dziewiętnaście"},
		tens: [10]string{"", "", "dwadzieścia", "trzydzieści", "czterdzieści",
			"pięćdziesiąt", "sześćdziesiąt", "siedemdziesiąt", "osiemdziesiąt",
			"dziewięćdziesiąt"},
		hundreds: [10]string{"", "sto", "dwieście", "trzysta", "czterysta",
			"pięćset", "sześćset", "siedemset", "osiemset", "dziewięćset"},
		scales: []scaleWord{
			{forms: Forms{"tysiąc", "tysiące", "tysięcy"}, omitOne: true},
			{forms: Forms{"milion", "miliony", "milionów"}, omitOne: true},
		},
	},
	LocaleRU: {
		zero: "ноль",
		ones: [20]string{"", "один", "два", "три", "четыре", "пять", "шесть",
			"семь", "восемь", "девять", "десять", "одиннадцать", "двенадцать",
			"тринадцать", "четырнадцать", "пятнадцать", "шестнадцать",
			"семнадцать", "восемнадцать", "девятнадцать"},
		onesFem: map[int64]string{1: "одна", 2: "две"},
		tens: [10]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
			"шестьдесят", "семьдесят", "восемьдесят", "девяносто"},
		hundreds: [10]string{"", "сто", "двести", "триста", "четыреста",
			"пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"},
		scales: []scaleWord{
			{forms: Forms{"тысяча", "тысячи", "тысяч"}, feminine: true},
			{forms: Forms{"миллион", "миллиона", "миллионов"}},
		},
	},
	LocaleUK: {
		zero: "нуль",
		ones: [20]string{"", "один", "два", "три", "чотири", "п'ять", "шість",
			"сім", "вісім", "дев'ять", "десять", "одинадцять", "дванадцять",
			"тринадцять", "чотирнадцять", "п'ятнадцять", "шістнадцять",
			"сімнадцять", "вісімнадцять", "дев'ятнадцять"},
		onesFem: map[int64]string{1: "одна", 2: "дві"},
		tens: [10]string{"", "", "двадцять", "тридцять", "сорок", "п'ятдесят",
			"шістдесят", "сімдесят", "вісімдесят", "дев'яносто"},
		hundreds: [10]string{"", "сто", "двісті", "триста", "чотириста",
			"п'ятсот", "шістсот", "сімсот", "вісімсот", "дев'ятсот"},
		scales: []scaleWord{
			{forms: Forms{"тисяча", "тисячі", "тисяч"}, feminine: true},
			{forms: Forms{"мільйон", "мільйони", "мільйонів"}},
		},
	},
}

// Spell renders a cardinal number as words in the given locale. Numbers
// outside [0, MaxSpellable] yield "".
func Spell(n int64, locale Locale) string {
	sp, ok := spellers[locale]
	if !ok || n < 0 || n > MaxSpellable {
		return ""
	}
	if n == 0 {
		return sp.zero
	}

	// Split into thousand groups, least significant first.
	var groups [3]int64
	rest := n
	for i := 0; i < 3; i++ {
		groups[i] = rest % 1000
		rest /= 1000
	}

	var parts []string
	for i := 2; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		feminine := false
		if i > 0 {
			feminine = sp.scales[i-1].feminine
		}
		if i > 0 && g == 1 && sp.scales[i-1].omitOne {
			parts = append(parts, sp.scales[i-1].forms[Singular])
			continue
		}
		parts = append(parts, sp.spellTriad(g, feminine))
		if i > 0 {
			parts = append(parts, sp.scales[i-1].forms.Pick(g))
		}
	}
	return strings.Join(parts, " ")
}

// spellTriad renders 1..999.
func (sp *speller) spellTriad(n int64, feminine bool) string {
	var parts []string

	if h := n / 100; h > 0 {
		if sp.hundredWord != "" {
			parts = append(parts, sp.ones[h], sp.hundredWord)
		} else {
			parts = append(parts, sp.hundreds[h])
		}
	}

	rem := n % 100
	switch {
	case rem == 0:
	case rem < 20:
		parts = append(parts, sp.one(rem, feminine))
	default:
		ten := sp.tens[rem/10]
		if o := rem % 10; o > 0 {
			if sp.hyphenTens {
				parts = append(parts, ten+"-"+sp.one(o, feminine))
			} else {
				parts = append(parts, ten, sp.one(o, feminine))
			}
		} else {
			parts = append(parts, ten)
		}
	}
	return strings.Join(parts, " ")
}

func (sp *speller) one(n int64, feminine bool) string {
	if feminine {
		if w, ok := sp.onesFem[n]; ok {
			return w
		}
	}
	return sp.ones[n]
}
