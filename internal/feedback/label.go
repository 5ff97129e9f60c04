package feedback

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatIndustry turns a snake_case identifier into a display label:
// "data_scientist" becomes "Data Scientist". The empty string stays empty.
func FormatIndustry(industry string) string {
	if industry == "" {
		return ""
	}
	words := strings.Split(industry, "_")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
