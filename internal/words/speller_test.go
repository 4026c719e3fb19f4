package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpellEnglish(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{100, "one hundred"},
		{105, "one hundred five"},
		{121, "one hundred twenty-one"},
		{1000, "one thousand"},
		{2500, "two thousand five hundred"},
		{1000000, "one million"},
		{999999, "nine hundred ninety-nine thousand nine hundred ninety-nine"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Spell(tt.n, LocaleEN), "n=%d", tt.n)
	}
}

func TestSpellPolish(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "zero"},
		{1, "jeden"},
		{15, "piętnaście"},
		{21, "dwadzieścia jeden"},
		{100, "sto"},
		{152, "sto pięćdziesiąt dwa"},
		{1000, "tysiąc"},
		{2000, "dwa tysiące"},
		{5000, "pięć tysięcy"},
		{1000000, "milion"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Spell(tt.n, LocalePL), "n=%d", tt.n)
	}
}

func TestSpellRussian(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "ноль"},
		{1, "один"},
		{2, "два"},
		{21, "двадцать один"},
		{40, "сорок"},
		{231, "двести тридцать один"},
		{1000, "одна тысяча"},
		{2000, "две тысячи"},
		{5000, "пять тысяч"},
		{21000, "двадцать одна тысяча"},
		{1000000, "один миллион"},
		{2000000, "два миллиона"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Spell(tt.n, LocaleRU), "n=%d", tt.n)
	}
}

func TestSpellUkrainian(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "нуль"},
		{1, "один"},
		{4, "чотири"},
		{21, "двадцять один"},
		{90, "дев'яносто"},
		{1000, "одна тисяча"},
		{2000, "дві тисячі"},
		{800, "вісімсот"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Spell(tt.n, LocaleUK), "n=%d", tt.n)
	}
}

func TestSpellOutOfRange(t *testing.T) {
	assert.Equal(t, "", Spell(-1, LocaleEN))
	assert.Equal(t, "", Spell(MaxSpellable+1, LocaleEN))
	assert.Equal(t, "", Spell(5, Locale("de")))
}
