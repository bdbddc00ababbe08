package weather

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cityAliases maps known misspellings and accented forms of a city word to
// the ASCII form the upstream geocoder accepts. Keys are lower-case and
// matched against whole words or hyphen-separated parts only.
//
//	são, saõ, sāo, soa -> sao   ("São Paulo", "Saõ Paulo", "Soa Paulo")
var cityAliases = map[string]string{
	"são": "sao",
	"saõ": "sao",
	"sāo": "sao",
	"soa": "sao",
}

// NormalizeCity trims and collapses whitespace, rewrites known aliases and
// title-cases every word. Hyphenated words are handled part by part, and a
// part that starts with a digit ("1st") is lower-cased instead. Unknown
// names pass through; the result is never rejected.
// NormalizeCity(NormalizeCity(s)) == NormalizeCity(s).
func NormalizeCity(name string) string {
	words := strings.Fields(name)
	// A Caser is stateful and must not be shared across goroutines.
	titler := cases.Title(language.Und)
	lower := cases.Lower(language.Und)
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, part := range parts {
			if canon, ok := cityAliases[strings.ToLower(part)]; ok {
				part = canon
			}
			r, _ := utf8.DecodeRuneInString(part)
			if unicode.IsLetter(r) {
				parts[j] = titler.String(part)
			} else {
				parts[j] = lower.String(part)
			}
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}
