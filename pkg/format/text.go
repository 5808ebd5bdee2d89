package format

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "..."

var (
	textLocale = language.Vietnamese

	snakeSegment = regexp.MustCompile(`_([a-z])`)
	upperLetter  = regexp.MustCompile(`[A-Z]`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// Truncate cuts s to at most maxLen runes and appends "..." when anything
// was cut.
func Truncate(s string, maxLen int) string {
	maxLen = max(maxLen, 0)
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen]) + ellipsis
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + cases.Lower(textLocale).String(s[size:])
}

// TitleCase capitalizes every word: "xin chào thế giới" becomes
// "Xin Chào Thế Giới".
func TitleCase(s string) string {
	return cases.Title(textLocale).String(s)
}

// ToCamelCase converts snake_case to camelCase. Only lower-case ASCII
// letters following an underscore are folded.
func ToCamelCase(s string) string {
	return snakeSegment.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// ToSnakeCase converts camelCase to snake_case by prefixing every upper-case
// ASCII letter with an underscore.
func ToSnakeCase(s string) string {
	return upperLetter.ReplaceAllStringFunc(s, func(m string) string {
		return "_" + strings.ToLower(m)
	})
}

// PhoneNumber groups Vietnamese phone numbers for display.
// Numbers with the 84 country code become "+84 912 345 678", domestic
// numbers starting with 0 become "0912 345 678". Anything else is returned
// unchanged.
func PhoneNumber(phone string) string {
	digits := nonDigit.ReplaceAllString(phone, "")

	switch {
	case strings.HasPrefix(digits, "84"):
		return strings.TrimRight("+"+span(digits, 0, 2)+" "+span(digits, 2, 5)+" "+span(digits, 5, 8)+" "+span(digits, 8, len(digits)), " ")
	case strings.HasPrefix(digits, "0"):
		return strings.TrimRight(span(digits, 0, 4)+" "+span(digits, 4, 7)+" "+span(digits, 7, len(digits)), " ")
	}
	return phone
}

func span(s string, from, to int) string {
	from = min(from, len(s))
	to = min(to, len(s))
	return s[from:to]
}

// RemoveVietnameseAccents strips combining diacritics and maps đ/Đ to d/D:
// "Đà Nẵng" becomes "Da Nang".
func RemoveVietnameseAccents(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(isCombiningDiacritic)),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}

func isCombiningDiacritic(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}
