package application

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// WordsPerMinute is the reading speed used to estimate reading time
	WordsPerMinute = 200

	idLength  = 24
	uidLength = 12
)

// Slugify lowercases the title and replaces every single space with a hyphen.
// Punctuation and runs of spaces are left as they are, so "a  b" becomes "a--b".
func Slugify(title string) string {
	// a Caser keeps state between calls, so each call gets its own
	lower := cases.Lower(language.Und)
	return strings.ReplaceAll(lower.String(title), " ", "-")
}

// ReadingTime estimates minutes to read content at WordsPerMinute.
// Words are counted by splitting on the space character only; newlines and tabs do not
// separate words and repeated spaces count as extra words. Existing documents were
// written with this count, so it is kept.
func ReadingTime(content string) int {
	words := len(strings.Split(content, " "))
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
