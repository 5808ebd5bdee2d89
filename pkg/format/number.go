package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencySymbol      = "$"
	numberFractionLimit = 3
)

var (
	currencyLocale = language.AmericanEnglish
	numberLocale   = language.Vietnamese
)

// Currency renders amount as whole US dollars with thousands grouping.
// Halves round away from zero: 1234.5 becomes "$1,235". NaN renders as "$0".
func Currency(amount float64) string {
	if math.IsNaN(amount) {
		amount = 0
	}
	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	p := message.NewPrinter(currencyLocale)
	return sign + currencySymbol + p.Sprint(number.Decimal(math.Abs(rounded), number.MaxFractionDigits(0)))
}

// Number renders n with Vietnamese grouping and decimal separators,
// keeping at most three fraction digits: 1234567.5 becomes "1.234.567,5".
func Number(n float64) string {
	return NumberIn(numberLocale, n)
}

// NumberIn is Number for an arbitrary locale.
func NumberIn(tag language.Tag, n float64) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(numberFractionLimit)))
}

// Percentage renders a ratio as a percentage with the given number of
// decimals (default 1): 0.123 becomes "12.3%".
func Percentage(value float64, decimals ...int) string {
	d := 1
	if len(decimals) > 0 && decimals[0] >= 0 {
		d = decimals[0]
	}
	return strconv.FormatFloat(value*100, 'f', d, 64) + "%"
}
