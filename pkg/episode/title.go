package episode

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopwords stay lowercase unless they open the title.
var stopwords = map[string]bool{
	"the": true, "of": true, "a": true, "or": true, "with": true,
}

// NormalizeTitle converts a captured show name such as "the.office.us" into
// title case ("The Office Us"), joining the words with sep.
func NormalizeTitle(raw, sep string) string {
	lower := cases.Lower(language.Und)
	words := strings.Fields(strings.ReplaceAll(raw, ".", " "))
	for i, w := range words {
		w = lower.String(w)
		if i > 0 && stopwords[w] {
			words[i] = w
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, sep)
}

// capitalize upper-cases the first rune of an already lowercased word.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToTitle(r)) + w[size:]
}
