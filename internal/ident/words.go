package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripMarks removes diacritics and other combining marks ("Café" -> "Cafe").
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// clean keeps letters, digits, underscores and whitespace, collapsing runs of
// whitespace into a single space.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// isNumericWord reports whether w consists of digits only.
func isNumericWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// leadsWithNumber reports whether the cleaned name is empty, purely numeric,
// or starts with a purely numeric word.
func leadsWithNumber(cleaned string) bool {
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return true
	}
	return isNumericWord(fields[0])
}

// splitWords splits s on whitespace, underscores and case boundaries.
// Examples:
//   - "First Name" -> ["First", "Name"]
//   - "orderID" -> ["order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
func splitWords(s string) []string {
	var words []string

	var current strings.Builder

	rs := []rune(s)
	for i, r := range rs {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(rs, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}

// startsWord determines if a new word starts at position i.
func startsWord(rs []rune, i int) bool {
	r, prev := rs[i], rs[i-1]

	// "orderID" -> split before 'I'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}

// capitalizedWords joins words as "firstSecondThird".
func capitalizedWords(words []string) string {
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for i, w := range words {
		w = lower.String(w)
		if i > 0 {
			w = upperFirst(w)
		}
		b.WriteString(w)
	}

	return b.String()
}

func upperFirst(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
